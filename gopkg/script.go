package gopkg

import (
	"fmt"
	"io"

	"github.com/mattn/anko/core"
	"github.com/mattn/anko/env"
	"github.com/mattn/anko/vm"
	"github.com/mattn/troll"
)

// NewScriptEnv returns an anko environment for running scripts against te.
// Besides import("troll"), scripts get roll(src), which evaluates src with
// te, and print/println/printf writing to out.
func NewScriptEnv(te *troll.Env, out io.Writer) (*env.Env, error) {
	e := env.NewEnv()
	core.Import(e)

	defs := map[string]interface{}{
		"roll": te.Evaluate,
		"print": func(a ...interface{}) {
			fmt.Fprint(out, a...)
		},
		"println": func(a ...interface{}) {
			fmt.Fprintln(out, a...)
		},
		"printf": func(format string, a ...interface{}) {
			fmt.Fprintf(out, format, a...)
		},
	}
	for k, v := range defs {
		if err := e.Define(k, v); err != nil {
			return nil, fmt.Errorf("define %s: %w", k, err)
		}
	}
	return e, nil
}

// Run executes script in e and returns the value of its last statement.
func Run(e *env.Env, script string) (interface{}, error) {
	return vm.Execute(e, nil, script)
}
