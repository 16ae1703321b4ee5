package troll

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"sync"
)

var (
	// ErrInvalidDieSize is returned when a die has no faces.
	ErrInvalidDieSize = errors.New("invalid die size")
	// ErrOverflow is returned when a sum does not fit in 16 bits.
	ErrOverflow = errors.New("sum overflows 16 bits")
	// ErrNilNode is returned by Eval for a nil node.
	ErrNilNode = errors.New("nil node")
)

// Env evaluates expressions. Every die it rolls is drawn from its own
// random source; an Env may be shared between goroutines.
type Env struct {
	mu  sync.Mutex
	rng *rand.Rand
	out io.Writer
}

// NewEnv returns an Env whose rolls are determined by seed.
func NewEnv(seed int64) *Env {
	return &Env{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// SetOutput makes e write one line per die rolled to w. A nil w turns the
// trace off.
func (e *Env) SetOutput(w io.Writer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.out = w
}

// Eval evaluates node. An atom yields a single value, a tuple yields one
// value per die in the order they were rolled.
func (e *Env) Eval(node *Node) ([]uint16, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if node.IsTuple() {
		return e.evalTuple(node)
	}
	v, err := e.evalAtom(node)
	if err != nil {
		return nil, err
	}
	return []uint16{v}, nil
}

// Evaluate parses and evaluates src.
func (e *Env) Evaluate(src string) ([]uint16, error) {
	node, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Eval(node)
}

// Evaluate parses and evaluates src with the default Env.
func Evaluate(src string) ([]uint16, error) {
	return Default().Evaluate(src)
}

func (e *Env) evalAtom(node *Node) (uint16, error) {
	switch node.t {
	case NodeConst:
		return uint16(node.v), nil
	case NodeRoll:
		n, err := e.evalAtom(node.car)
		if err != nil {
			return 0, err
		}
		return e.roll(n)
	case NodeSum:
		vs, err := e.evalTuple(node.car)
		if err != nil {
			return 0, err
		}
		var total uint32
		for _, v := range vs {
			total += uint32(v)
			if total > math.MaxUint16 {
				return 0, fmt.Errorf("%v: %w", node, ErrOverflow)
			}
		}
		return uint16(total), nil
	}
	panic(fmt.Sprintf("troll: %v node is not an atom", node.t))
}

func (e *Env) evalTuple(node *Node) ([]uint16, error) {
	if node.t != NodeDice {
		panic(fmt.Sprintf("troll: %v node is not a tuple", node.t))
	}
	n, err := e.evalAtom(node.car)
	if err != nil {
		return nil, err
	}
	vs := make([]uint16, 0, n)
	for len(vs) < int(n) {
		v, err := e.evalAtom(node.cdr)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// roll draws a value in [1, faces].
func (e *Env) roll(faces uint16) (uint16, error) {
	if faces == 0 {
		return 0, fmt.Errorf("roll d%d: %w", faces, ErrInvalidDieSize)
	}
	v := uint16(e.rng.Intn(int(faces))) + 1
	if e.out != nil {
		fmt.Fprintf(e.out, "d%d -> %d\n", faces, v)
	}
	return v, nil
}
