package troll

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var nodeOpts = cmp.AllowUnexported(Node{})

func roll(n *Node) *Node { return NewRoll(n) }

func c(v uint8) *Node { return NewConst(v) }

func TestParseRules(t *testing.T) {
	tests := []struct {
		name  string
		parse func(*Parser) (*Node, error)
		input string
		want  *Node
		rest  string
	}{
		{"const", (*Parser).ParseConst, "123", c(123), ""},
		{"const rest", (*Parser).ParseConst, "123abc", c(123), "abc"},
		{"roll prefix", (*Parser).ParseRoll, "1d6", roll(c(6)), ""},
		{"roll", (*Parser).ParseRoll, "d6", roll(c(6)), ""},
		{"roll roll", (*Parser).ParseRoll, "dd6", roll(roll(c(6))), ""},
		{"roll spaces", (*Parser).ParseRoll, "1 d 6", roll(c(6)), ""},
		{"sum", (*Parser).ParseSum, " sum  3d6", NewSum(NewDice(c(3), roll(c(6)))), ""},
		{"atom paren", (*Parser).ParseAtom, "(1d6)x", roll(c(6)), "x"},
		{"atom literal", (*Parser).ParseAtom, "12", c(12), ""},
		{"dice", (*Parser).ParseDice, "3d6", NewDice(c(3), roll(c(6))), ""},
		{"dice spaces", (*Parser).ParseDice, "3 d 6", NewDice(c(3), roll(c(6))), ""},
		{
			"dice nested", (*Parser).ParseDice, "(1d6) d d6",
			NewDice(roll(c(6)), roll(roll(c(6)))), "",
		},
		{"expr tuple", (*Parser).ParseExpr, "3d6", NewDice(c(3), roll(c(6))), ""},
		{"expr atom", (*Parser).ParseExpr, "d6", roll(c(6)), ""},
		{"expr one", (*Parser).ParseExpr, "1", c(1), ""},
		{"expr rest", (*Parser).ParseExpr, "3d6 + 2", NewDice(c(3), roll(c(6))), " + 2"},
		{"expr incomplete tuple", (*Parser).ParseExpr, "3d", c(3), "d"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := NewParser(test.input)
			got, err := test.parse(p)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got, nodeOpts); diff != "" {
				t.Errorf("parse %q (-want +got):\n%s", test.input, diff)
			}
			if p.Rest() != test.rest {
				t.Errorf("rest of %q = %q, want %q", test.input, p.Rest(), test.rest)
			}
		})
	}
}

func TestParseRuleErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse func(*Parser) (*Node, error)
		input string
		want  error
	}{
		{"const range", (*Parser).ParseConst, "1234", ErrSyntax},
		{"const empty", (*Parser).ParseConst, "abc", ErrSyntax},
		{"roll no face", (*Parser).ParseRoll, "d", ErrIncomplete},
		{"sum atom", (*Parser).ParseSum, "sum d6", ErrIncomplete},
		{"sum no tuple", (*Parser).ParseSum, "sum x", ErrSyntax},
		{"dice incomplete", (*Parser).ParseDice, "3d", ErrIncomplete},
		{"atom unclosed", (*Parser).ParseAtom, "(d6", ErrIncomplete},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := NewParser(test.input)
			_, err := test.parse(p)
			if !errors.Is(err, test.want) {
				t.Fatalf("parse %q: got error %v, want %v", test.input, err, test.want)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("parse %q: %v is not a parse error", test.input, err)
			}
			if p.Pos() != 0 {
				t.Errorf("parse %q: position %d after failure, want 0", test.input, p.Pos())
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  *Node
	}{
		{"3d6", NewDice(c(3), roll(c(6)))},
		{"d6", roll(c(6))},
		{"1d6", roll(c(6))},
		{" 3d6 ", NewDice(c(3), roll(c(6)))},
		{"(1d6) d d6", NewDice(roll(c(6)), roll(roll(c(6))))},
		{"sum 3d6", NewSum(NewDice(c(3), roll(c(6))))},
		{"sum (1d6) d d6", NewSum(NewDice(roll(c(6)), roll(roll(c(6)))))},
		{"(1)d6", NewDice(c(1), roll(c(6)))},
		{"d(sum 2d4)", roll(NewSum(NewDice(c(2), roll(c(4)))))},
		{"(sum 2d4)d6", NewDice(NewSum(NewDice(c(2), roll(c(4)))), roll(c(6)))},
		{"12d1", NewDice(c(12), roll(c(1)))},
	}
	for _, test := range tests {
		got, err := Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got, nodeOpts); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseLiterals(t *testing.T) {
	for n := 0; n <= 255; n++ {
		input := fmt.Sprint(n)
		got, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if diff := cmp.Diff(c(uint8(n)), got, nodeOpts); diff != "" {
			t.Errorf("Parse(%q) (-want +got):\n%s", input, diff)
		}
	}
	for _, input := range []string{"256", "1234", "999"} {
		if _, err := Parse(input); !errors.Is(err, ErrSyntax) {
			t.Errorf("Parse(%q): got %v, want %v", input, err, ErrSyntax)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
		pos   int
	}{
		{"", ErrIncomplete, 0},
		{"3d", ErrIncomplete, 2},
		{"3 d ", ErrIncomplete, 4},
		{"(", ErrIncomplete, 1},
		{"d su", ErrIncomplete, 4},
		{"x", ErrSyntax, 0},
		{"3d6 x", ErrSyntax, 4},
		{"3dx", ErrSyntax, 2},
		{"1234", ErrSyntax, 0},
		{"sum 3", ErrIncomplete, 5},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): got %v, want a *ParseError", test.input, err)
			continue
		}
		if perr.Kind != test.kind || perr.Pos != test.pos {
			t.Errorf("Parse(%q): got %v at %d, want %v at %d", test.input, perr.Kind, perr.Pos, test.kind, test.pos)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	first, err := Parse("(1d6) d d6")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		got, err := Parse("(1d6) d d6")
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, got, nodeOpts); diff != "" {
			t.Fatalf("parse differs (-first +got):\n%s", diff)
		}
	}
}

func TestNodeString(t *testing.T) {
	tests := []struct {
		node *Node
		want string
	}{
		{c(7), "7"},
		{roll(c(6)), "d6"},
		{roll(roll(c(6))), "dd6"},
		{NewDice(c(3), roll(c(6))), "3d6"},
		{NewDice(c(1), roll(c(6))), "(1)d6"},
		{NewDice(roll(c(6)), roll(roll(c(6)))), "(d6)dd6"},
		{NewSum(NewDice(c(3), roll(c(6)))), "sum 3d6"},
		{roll(NewSum(NewDice(c(2), roll(c(4))))), "d(sum 2d4)"},
		{NewDice(NewSum(NewDice(c(2), roll(c(4)))), roll(c(6))), "(sum 2d4)d6"},
	}
	for _, test := range tests {
		got := test.node.String()
		if got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
			continue
		}
		back, err := Parse(got)
		if err != nil {
			t.Errorf("Parse(%q): %v", got, err)
			continue
		}
		if diff := cmp.Diff(test.node, back, nodeOpts); diff != "" {
			t.Errorf("round trip of %q (-want +got):\n%s", got, diff)
		}
	}
}

func TestNewDicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewDice with a const face did not panic")
		}
	}()
	NewDice(c(3), c(6))
}
