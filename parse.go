package troll

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrParse is matched by every error returned from the parser.
	ErrParse = errors.New("parse error")
	// ErrSyntax reports input that does not follow the grammar.
	ErrSyntax = errors.New("syntax error")
	// ErrIncomplete reports input that ended where more was required.
	ErrIncomplete = errors.New("incomplete input")
)

type NodeType int

const (
	NodeConst NodeType = iota
	NodeRoll
	NodeSum
	NodeDice
)

func (t NodeType) String() string {
	switch t {
	case NodeConst:
		return "const"
	case NodeRoll:
		return "roll"
	case NodeSum:
		return "sum"
	case NodeDice:
		return "dice"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is an expression tree node. Const, roll and sum nodes are atoms and
// produce one value; dice nodes are tuples and produce a sequence.
//
// For a roll car is the face count, for a sum car is the tuple, and for
// dice car is the count and cdr the roll performed for every die.
type Node struct {
	t   NodeType
	v   uint8
	car *Node
	cdr *Node
}

func NewConst(v uint8) *Node {
	return &Node{
		t: NodeConst,
		v: v,
	}
}

func NewRoll(face *Node) *Node {
	mustAtom(face)
	return &Node{
		t:   NodeRoll,
		car: face,
	}
}

func NewSum(tuple *Node) *Node {
	if !tuple.IsTuple() {
		panic(fmt.Sprintf("troll: sum of %v node", tuple.t))
	}
	return &Node{
		t:   NodeSum,
		car: tuple,
	}
}

// NewDice returns a tuple rolling count dice. face must be a roll node; it
// is evaluated again for every die.
func NewDice(count, face *Node) *Node {
	mustAtom(count)
	if face.t != NodeRoll {
		panic(fmt.Sprintf("troll: dice face is a %v node", face.t))
	}
	return &Node{
		t:   NodeDice,
		car: count,
		cdr: face,
	}
}

func mustAtom(n *Node) {
	if !n.IsAtom() {
		panic(fmt.Sprintf("troll: %v node is not an atom", n.t))
	}
}

func (n *Node) Type() NodeType {
	return n.t
}

// Value returns the literal of a const node.
func (n *Node) Value() uint8 {
	return n.v
}

// Inner returns the face count of a roll or the tuple of a sum.
func (n *Node) Inner() *Node {
	if n.t == NodeRoll || n.t == NodeSum {
		return n.car
	}
	return nil
}

func (n *Node) Count() *Node {
	if n.t == NodeDice {
		return n.car
	}
	return nil
}

func (n *Node) Face() *Node {
	if n.t == NodeDice {
		return n.cdr
	}
	return nil
}

func (n *Node) IsAtom() bool {
	return n != nil && n.t != NodeDice
}

func (n *Node) IsTuple() bool {
	return n != nil && n.t == NodeDice
}

// String renders n in dice notation. The result parses back into an equal
// tree.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeConst:
		fmt.Fprint(&buf, n.v)
	case NodeRoll:
		if n.car.t == NodeSum {
			fmt.Fprintf(&buf, "d(%v)", n.car)
		} else {
			fmt.Fprintf(&buf, "d%v", n.car)
		}
	case NodeSum:
		fmt.Fprintf(&buf, "sum %v", n.car)
	case NodeDice:
		// a bare 1 would be read as the optional prefix of the roll
		if n.car.t != NodeConst || n.car.v == 1 {
			fmt.Fprintf(&buf, "(%v)", n.car)
		} else {
			fmt.Fprint(&buf, n.car)
		}
		fmt.Fprint(&buf, n.cdr)
	default:
		fmt.Fprintf(&buf, "<%v>", n.t)
	}
	return buf.String()
}

// ParseError describes where and why parsing stopped.
type ParseError struct {
	Pos  int
	Kind error // ErrSyntax or ErrIncomplete
	Msg  string

	// hard is set once an alternative has matched its first token.
	hard bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %v at offset %d: %s", ErrParse, e.Kind, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Kind}
}

// furthest picks the error that got further into the input.
func furthest(a, b *ParseError) *ParseError {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Pos > a.Pos || (b.Pos == a.Pos && b.hard && !a.hard) {
		return b
	}
	return a
}

type Parser struct {
	src string
	pos int

	// tupleErr keeps why the last ParseExpr fell back to an atom.
	tupleErr *ParseError
}

func NewParser(src string) *Parser {
	return &Parser{
		src: src,
	}
}

func (p *Parser) Pos() int {
	return p.pos
}

// Rest returns the input not consumed yet.
func (p *Parser) Rest() string {
	return p.src[p.pos:]
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *Parser) newError(pos int, hard bool, format string, args ...interface{}) *ParseError {
	kind := ErrSyntax
	if pos >= len(p.src) {
		kind = ErrIncomplete
	}
	return &ParseError{
		Pos:  pos,
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		hard: hard,
	}
}

// expected reports an alternative that did not match at pos.
func (p *Parser) expected(pos int, what string) *ParseError {
	return p.newError(pos, false, "expected %s", what)
}

func (p *Parser) SkipWhite() {
	for !p.eof() {
		r, n := utf8.DecodeRuneInString(p.src[p.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		p.pos += n
	}
}

func (p *Parser) accept(b byte) bool {
	if !p.eof() && p.src[p.pos] == b {
		p.pos++
		return true
	}
	return false
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func (p *Parser) constant() (*Node, *ParseError) {
	start := p.pos
	for !p.eof() && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return nil, p.expected(start, "digit")
	}
	lit := p.src[start:p.pos]
	v, err := strconv.ParseUint(lit, 10, 8)
	if err != nil {
		p.pos = start
		return nil, p.newError(start, true, "literal %s out of range [0, 255]", lit)
	}
	return NewConst(uint8(v)), nil
}

func (p *Parser) roll() (*Node, *ParseError) {
	start := p.pos
	p.accept('1')
	p.SkipWhite()
	if !p.accept('d') {
		p.pos = start
		return nil, p.expected(start, "'d'")
	}
	p.SkipWhite()
	face, err := p.atom()
	if err != nil {
		p.pos = start
		return nil, err
	}
	return NewRoll(face), nil
}

func (p *Parser) sum() (*Node, *ParseError) {
	start := p.pos
	p.SkipWhite()
	rest := p.Rest()
	if !strings.HasPrefix(rest, "sum") {
		p.pos = start
		if rest != "" && strings.HasPrefix("sum", rest) {
			return nil, p.expected(len(p.src), `"sum"`)
		}
		return nil, p.expected(start, `"sum"`)
	}
	p.pos += len("sum")
	p.SkipWhite()
	tuple, err := p.tuple()
	if err != nil {
		p.pos = start
		return nil, err
	}
	return NewSum(tuple), nil
}

func (p *Parser) atomRaw() (*Node, *ParseError) {
	start := p.pos
	var best *ParseError
	for _, alt := range []func() (*Node, *ParseError){p.roll, p.constant, p.sum} {
		node, err := alt()
		if err == nil {
			return node, nil
		}
		best = furthest(best, err)
	}
	if best.Pos == start && !best.hard {
		return nil, p.expected(start, "atom")
	}
	return nil, best
}

func (p *Parser) atom() (*Node, *ParseError) {
	node, err := p.atomRaw()
	if err == nil {
		return node, nil
	}
	start := p.pos
	if !p.accept('(') {
		return nil, err
	}
	node, perr := p.atomRaw()
	if perr != nil {
		p.pos = start
		return nil, furthest(err, perr)
	}
	if !p.accept(')') {
		perr = p.newError(p.pos, true, "expected ')'")
		p.pos = start
		return nil, perr
	}
	return node, nil
}

func (p *Parser) dice() (*Node, *ParseError) {
	start := p.pos
	count, err := p.atom()
	if err != nil {
		return nil, err
	}
	face, err := p.roll()
	if err != nil {
		p.pos = start
		return nil, err
	}
	return NewDice(count, face), nil
}

func (p *Parser) tuple() (*Node, *ParseError) {
	return p.dice()
}

func (p *Parser) expr() (*Node, *ParseError) {
	p.tupleErr = nil
	node, terr := p.tuple()
	if terr == nil {
		return node, nil
	}
	node, aerr := p.atom()
	if aerr != nil {
		return nil, furthest(terr, aerr)
	}
	p.tupleErr = terr
	return node, nil
}

func wrap(node *Node, err *ParseError) (*Node, error) {
	if err != nil {
		return nil, err
	}
	return node, nil
}

// ParseConst parses a decimal literal in [0, 255].
func (p *Parser) ParseConst() (*Node, error) {
	return wrap(p.constant())
}

// ParseRoll parses `["1"] "d" atom`.
func (p *Parser) ParseRoll() (*Node, error) {
	return wrap(p.roll())
}

// ParseSum parses `"sum" tuple`.
func (p *Parser) ParseSum() (*Node, error) {
	return wrap(p.sum())
}

// ParseAtom parses a roll, a literal or a sum, optionally in parentheses.
func (p *Parser) ParseAtom() (*Node, error) {
	return wrap(p.atom())
}

// ParseDice parses an atom followed by a roll.
func (p *Parser) ParseDice() (*Node, error) {
	return wrap(p.dice())
}

// ParseExpr parses a tuple, or an atom when no tuple matches. Input after
// the expression is left in the parser; see Rest.
func (p *Parser) ParseExpr() (*Node, error) {
	return wrap(p.expr())
}

// Parse parses src as a whole expression. Surrounding white space is
// ignored; anything else left over is an error.
func Parse(src string) (*Node, error) {
	p := NewParser(src)
	p.SkipWhite()
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.SkipWhite()
	if !p.eof() {
		if p.tupleErr != nil && p.tupleErr.Pos >= p.pos {
			return nil, p.tupleErr
		}
		return nil, p.newError(p.pos, true, "unexpected %q", p.Rest())
	}
	return node, nil
}
