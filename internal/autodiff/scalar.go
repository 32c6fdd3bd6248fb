// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built out of Scalar nodes. Applying a binary operator to
// two existing nodes creates a brand-new node that records its forward
// value, the operation that produced it, and references to its operands.
// Nothing gradient-related happens until Backward is called on a terminal
// node, which walks the reachable subgraph in reverse topological order and
// accumulates ∂terminal/∂node into every node it can reach.
//
// Usage:
//
//	a := autodiff.New(-4.0, "a")
//	b := autodiff.New(2.0, "b")
//	c := a.Add(b)
//	d := a.Mul(b)
//	e, _ := d.Div(c)
//
//	e.Backward()
//	fmt.Println(a.Grad()) // ∂e/∂a
//
// Gradients accumulate across Backward calls; call ZeroGrad between passes
// to reuse a graph.
package autodiff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDivisionByZero is returned by Div when the divisor's value is exactly
// zero. Failing at construction time keeps the graph free of non-finite
// values.
var ErrDivisionByZero = errors.New("autodiff: division by zero")

// Scalar is a single real-valued node in a computation graph.
//
// A Scalar is either a leaf (created by New) or the result of applying a
// binary operator to two existing nodes. The forward value is fixed at
// construction; the gradient is the only mutable field and is written
// exclusively by Backward and ZeroGrad. Nodes are shared by pointer, so the
// same Scalar may appear as a child of any number of parents and receives
// one gradient contribution per parent.
type Scalar struct {
	value    float64
	grad     float64
	op       Op
	children []*Scalar
	label    string
}

// New creates a leaf node holding value. The label is cosmetic: it shows up
// in String output and error messages but never affects computation.
func New(value float64, label string) *Scalar {
	return &Scalar{value: value, op: OpLeaf, label: label}
}

// newBinary creates the result node for op applied to (a, b).
// Child order is significant for non-commutative operations.
func newBinary(value float64, op Op, a, b *Scalar) *Scalar {
	return &Scalar{
		value:    value,
		op:       op,
		children: []*Scalar{a, b},
	}
}

// Add returns a new node with value s + o.
func (s *Scalar) Add(o *Scalar) *Scalar {
	return newBinary(s.value+o.value, OpAdd, s, o)
}

// Sub returns a new node with value s - o. The receiver is the minuend.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	return newBinary(s.value-o.value, OpSub, s, o)
}

// Mul returns a new node with value s * o.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	return newBinary(s.value*o.value, OpMul, s, o)
}

// Div returns a new node with value s / o. The receiver is the dividend.
// It fails fast with ErrDivisionByZero when o holds exactly zero, leaving
// the graph untouched.
func (s *Scalar) Div(o *Scalar) (*Scalar, error) {
	if o.value == 0 {
		return nil, fmt.Errorf("div %q by %q: %w", s.label, o.label, ErrDivisionByZero)
	}
	return newBinary(s.value/o.value, OpDiv, s, o), nil
}

// Value returns the forward value recorded at construction.
func (s *Scalar) Value() float64 {
	return s.value
}

// Grad returns the accumulated gradient ∂output/∂s for whichever output
// Backward was last seeded on. Zero until a backward pass touches s.
func (s *Scalar) Grad() float64 {
	return s.grad
}

// Label returns the display name given at construction. Nodes produced by
// operators have an empty label unless SetLabel was called.
func (s *Scalar) Label() string {
	return s.label
}

// SetLabel sets the display name. Labels are cosmetic only.
func (s *Scalar) SetLabel(label string) {
	s.label = label
}

// Op returns the operation that produced s.
func (s *Scalar) Op() Op {
	return s.op
}

// Children returns the operand nodes that produced s, in operand order.
// The returned slice is the node's own; callers must not modify it.
func (s *Scalar) Children() []*Scalar {
	return s.children
}

// String renders the node with its immediate children for debugging.
func (s *Scalar) String() string {
	var b strings.Builder
	for i, c := range s.children {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "Scalar(label=%s, value=%v, grad=%v)", c.label, c.value, c.grad)
	}
	return fmt.Sprintf("Scalar(label=%s, value=%v, grad=%v, op=%s, children=[%s])",
		s.label, s.value, s.grad, s.op, b.String())
}
