package gopkg

import (
	"reflect"

	"github.com/mattn/anko/env"
	"github.com/mattn/troll"
)

func init() {
	env.Packages["troll"] = map[string]reflect.Value{
		"Default":           reflect.ValueOf(troll.Default),
		"Evaluate":          reflect.ValueOf(troll.Evaluate),
		"NewEnv":            reflect.ValueOf(troll.NewEnv),
		"NewSeed":           reflect.ValueOf(troll.NewSeed),
		"Parse":             reflect.ValueOf(troll.Parse),
		"Seed":              reflect.ValueOf(troll.Seed),
		"ErrParse":          reflect.ValueOf(troll.ErrParse),
		"ErrSyntax":         reflect.ValueOf(troll.ErrSyntax),
		"ErrIncomplete":     reflect.ValueOf(troll.ErrIncomplete),
		"ErrInvalidDieSize": reflect.ValueOf(troll.ErrInvalidDieSize),
		"ErrOverflow":       reflect.ValueOf(troll.ErrOverflow),
	}
	env.PackageTypes["troll"] = map[string]reflect.Type{
		"Env":     reflect.TypeOf((*troll.Env)(nil)).Elem(),
		"Library": reflect.TypeOf(troll.Library{}),
		"Node":    reflect.TypeOf(troll.Node{}),
	}
}
