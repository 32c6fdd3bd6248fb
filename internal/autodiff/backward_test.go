package autodiff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shahabhishek1729/minigrad/internal/autodiff"
)

const tol = 1e-6

// TestBackward_Add checks ∂(a+b)/∂a = ∂(a+b)/∂b = 1.
func TestBackward_Add(t *testing.T) {
	a := autodiff.New(3.1, "a")
	b := autodiff.New(4.2, "b")
	c := a.Add(b)

	c.Backward()

	assert.InDelta(t, 1.0, c.Grad(), tol)
	assert.InDelta(t, 1.0, a.Grad(), tol)
	assert.InDelta(t, 1.0, b.Grad(), tol)
}

// TestBackward_Sub checks ∂(a-b)/∂a = 1 and ∂(a-b)/∂b = -1.
func TestBackward_Sub(t *testing.T) {
	a := autodiff.New(3.1, "a")
	b := autodiff.New(4.2, "b")
	c := a.Sub(b)

	c.Backward()

	assert.InDelta(t, -1.1, c.Value(), tol)
	assert.InDelta(t, 1.0, c.Grad(), tol)
	assert.InDelta(t, 1.0, a.Grad(), tol)
	assert.InDelta(t, -1.0, b.Grad(), tol)
}

// TestBackward_Mul checks ∂(ab)/∂a = b and ∂(ab)/∂b = a.
func TestBackward_Mul(t *testing.T) {
	a := autodiff.New(3.1, "a")
	b := autodiff.New(4.2, "b")
	c := a.Mul(b)

	c.Backward()

	assert.InDelta(t, 1.0, c.Grad(), tol)
	assert.InDelta(t, 4.2, a.Grad(), tol)
	assert.InDelta(t, 3.1, b.Grad(), tol)
}

// TestBackward_Div checks the quotient rule at both operands:
// ∂(a/b)/∂a = 1/b and ∂(a/b)/∂b = -a/b².
func TestBackward_Div(t *testing.T) {
	a := autodiff.New(3.1, "a")
	b := autodiff.New(4.2, "b")
	c, err := a.Div(b)
	require.NoError(t, err)

	c.Backward()

	assert.InDelta(t, 1.0, c.Grad(), tol)
	assert.InDelta(t, 1/4.2, a.Grad(), tol)
	assert.InDelta(t, -3.1/(4.2*4.2), b.Grad(), tol)
}

// TestBackward_SelfSeed checks that any terminal ends the pass with
// gradient exactly 1, leaves included.
func TestBackward_SelfSeed(t *testing.T) {
	leaf := autodiff.New(7.0, "leaf")
	leaf.Backward()
	assert.Equal(t, 1.0, leaf.Grad())

	a := autodiff.New(2.0, "a")
	b := autodiff.New(5.0, "b")
	c := a.Mul(b)
	c.Backward()
	assert.Equal(t, 1.0, c.Grad())
}

// TestBackward_Accumulation routes one leaf through two paths into a common
// output and checks the contributions sum: y = x + k1, z = x + k2,
// w = y + z gives ∂w/∂x = 2.
func TestBackward_Accumulation(t *testing.T) {
	x := autodiff.New(1.5, "x")
	k1 := autodiff.New(10.0, "k1")
	k2 := autodiff.New(20.0, "k2")

	y := x.Add(k1)
	z := x.Add(k2)
	w := y.Add(z)

	w.Backward()

	assert.InDelta(t, 2.0, x.Grad(), tol)
	assert.InDelta(t, 1.0, k1.Grad(), tol)
	assert.InDelta(t, 1.0, k2.Grad(), tol)
}

// TestBackward_DiamondReuse squares a value by multiplying it with itself:
// both children of the product are the same node, so ∂(x·x)/∂x = 2x.
func TestBackward_DiamondReuse(t *testing.T) {
	x := autodiff.New(3.0, "x")
	y := x.Mul(x)

	y.Backward()

	assert.InDelta(t, 6.0, x.Grad(), tol)
}

// TestBackward_WorkedExample reproduces the documented compound expression:
//
//	a = -4, b = 2
//	c = a + b        (-2)
//	d = a * b        (-8)
//	e = d / c        (4)
//	f = 10
//	g = f / e        (2.5)
func TestBackward_WorkedExample(t *testing.T) {
	a := autodiff.New(-4.0, "a")
	b := autodiff.New(2.0, "b")

	c := a.Add(b)
	c.SetLabel("c")
	d := a.Mul(b)
	d.SetLabel("d")
	e, err := d.Div(c)
	require.NoError(t, err)
	e.SetLabel("e")

	f := autodiff.New(10.0, "f")
	g, err := f.Div(e)
	require.NoError(t, err)
	g.SetLabel("g")

	g.Backward()

	assert.InDelta(t, 2.5, g.Value(), tol)
	assert.InDelta(t, 1.0, g.Grad(), tol)
	assert.InDelta(t, 0.25, f.Grad(), tol)
	assert.InDelta(t, -0.625, e.Grad(), tol)
	assert.InDelta(t, -1.25, c.Grad(), tol)
	assert.InDelta(t, 0.3125, d.Grad(), tol)
	assert.InDelta(t, -2.5, b.Grad(), tol)
	assert.InDelta(t, -0.625, a.Grad(), tol)
}

// TestBackward_AccumulatesAcrossCalls documents the no-auto-clear behavior:
// a second pass on a graph that still carries gradients adds on top.
func TestBackward_AccumulatesAcrossCalls(t *testing.T) {
	a := autodiff.New(3.0, "a")
	b := autodiff.New(4.0, "b")
	c := a.Mul(b)

	c.Backward()
	c.Backward()

	// The terminal is re-seeded to 1, but leaf contributions doubled.
	assert.InDelta(t, 1.0, c.Grad(), tol)
	assert.InDelta(t, 8.0, a.Grad(), tol)
	assert.InDelta(t, 6.0, b.Grad(), tol)
}

// TestZeroGrad checks that clearing restores a reusable graph.
func TestZeroGrad(t *testing.T) {
	a := autodiff.New(3.0, "a")
	b := autodiff.New(4.0, "b")
	c := a.Mul(b)

	c.Backward()
	c.ZeroGrad()

	assert.Equal(t, 0.0, a.Grad())
	assert.Equal(t, 0.0, b.Grad())
	assert.Equal(t, 0.0, c.Grad())

	// A fresh pass after clearing behaves like the first one.
	c.Backward()
	assert.InDelta(t, 4.0, a.Grad(), tol)
	assert.InDelta(t, 3.0, b.Grad(), tol)
}
