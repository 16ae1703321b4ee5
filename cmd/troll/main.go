package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	_ "github.com/mattn/anko/packages"
	"github.com/mattn/go-isatty"

	"github.com/mattn/troll"
	"github.com/mattn/troll/gopkg"
)

type config struct {
	Seed   int64  `env:"TROLL_SEED"`
	Trace  bool   `env:"TROLL_TRACE"`
	Script string `env:"TROLL_SCRIPT"`
}

var demos = []string{
	"sum 3d6",
	"10d10",
	"(1d6) d d6",
}

// rollAll evaluates every expression, resolving preset names through lib.
// It reports whether all of them succeeded.
func rollAll(w io.Writer, e *troll.Env, lib troll.Library, exprs []string) bool {
	ok := true
	for _, s := range exprs {
		res, err := e.Evaluate(lib.Lookup(s))
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", s, err)
			ok = false
			continue
		}
		fmt.Fprintf(w, "%s = %v\n", s, res)
	}
	return ok
}

func repl(e *troll.Env, lib troll.Library) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rollAll(os.Stdout, e, lib, []string{line})
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	var demo bool
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")
	flag.BoolVar(&cfg.Trace, "trace", cfg.Trace, "print every die rolled to stderr")
	flag.StringVar(&cfg.Script, "script", cfg.Script, "run an anko script")
	flag.BoolVar(&demo, "demo", false, "roll a few examples")
	flag.Parse()

	if cfg.Seed != 0 {
		troll.Seed(cfg.Seed)
	}
	e := troll.Default()
	if cfg.Trace {
		e.SetOutput(os.Stderr)
	}

	lib := troll.Library{}
	if err := troll.LoadLib(lib); err != nil {
		log.Fatal(err)
	}

	if cfg.Script != "" {
		b, err := os.ReadFile(cfg.Script)
		if err != nil {
			log.Fatal(err)
		}
		se, err := gopkg.NewScriptEnv(e, os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := gopkg.Run(se, string(b)); err != nil {
			log.Fatal(err)
		}
		return
	}

	var exprs []string
	switch {
	case demo:
		exprs = demos
	case flag.NArg() > 0:
		exprs = flag.Args()
	case isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()):
		repl(e, lib)
		return
	default:
		lines, err := readLines(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		exprs = lines
	}

	if !rollAll(os.Stdout, e, lib, exprs) {
		os.Exit(1)
	}
}
