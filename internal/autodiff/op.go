package autodiff

import "fmt"

// Op identifies how a Scalar was produced.
//
// The operator set is closed: extending it means adding a constant here,
// a case to String, a forward constructor on Scalar, and a case to the
// local-derivative rule in localGrads. The traversal and backward pass
// never change.
type Op int

const (
	// OpLeaf marks an input node created directly from a value. Leaf
	// nodes have no children and propagate nothing during backward.
	OpLeaf Op = iota
	// OpAdd is binary addition: value = a + b.
	OpAdd
	// OpSub is binary subtraction: value = a - b (receiver is the minuend).
	OpSub
	// OpMul is binary multiplication: value = a * b.
	OpMul
	// OpDiv is binary division: value = a / b (receiver is the dividend).
	OpDiv
)

// String renders the operator the way expression dumps expect.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "BASE"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// arity returns the number of operands op consumes.
func (op Op) arity() int {
	if op == OpLeaf {
		return 0
	}
	return 2
}
