package autodiff

import "fmt"

// localGrads returns the local derivative of s.value with respect to each
// child, in child order. Leaf nodes have none.
func (s *Scalar) localGrads() []float64 {
	switch s.op {
	case OpLeaf:
		return nil
	case OpAdd:
		// y = a + b: ∂y/∂a = 1, ∂y/∂b = 1
		return []float64{1, 1}
	case OpSub:
		// y = a - b: ∂y/∂a = 1, ∂y/∂b = -1
		return []float64{1, -1}
	case OpMul:
		// y = a * b: ∂y/∂a = b, ∂y/∂b = a
		a, b := s.children[0], s.children[1]
		return []float64{b.value, a.value}
	case OpDiv:
		// y = a / b: ∂y/∂a = 1/b, ∂y/∂b = -a/b²
		a, b := s.children[0], s.children[1]
		return []float64{1 / b.value, -a.value / (b.value * b.value)}
	default:
		panic(fmt.Sprintf("autodiff: unsupported operation %s", s.op))
	}
}

// topoSort returns every node reachable from t through child links, ordered
// so that each node appears after all of its children; t itself is last.
//
// Depth-first traversal with a visited set keyed on node identity: shared
// nodes (diamonds) are processed exactly once, so the walk is linear in the
// number of edges. Among unrelated branches only the dependency partial
// order is guaranteed.
func topoSort(t *Scalar) []*Scalar {
	order := make([]*Scalar, 0, 16)
	visited := make(map[*Scalar]struct{})

	var visit func(*Scalar)
	visit = func(s *Scalar) {
		if _, ok := visited[s]; ok {
			return
		}
		visited[s] = struct{}{}
		for _, c := range s.children {
			visit(c)
		}
		order = append(order, s)
	}
	visit(t)

	return order
}

// Backward computes ∂s/∂n for every node n reachable from s and adds it
// into n's gradient.
//
// The pass seeds s's own gradient with 1 (the derivative of a quantity with
// respect to itself), then visits the reachable subgraph in reverse
// topological order, applying the chain rule at each node: every child
// receives the node's accumulated gradient scaled by the operation's local
// derivative. Contributions are summed, never overwritten, so a node feeding
// multiple parents collects one term per path.
//
// Backward never clears gradients first: re-running it on a graph that
// already carries gradients accumulates on top. Call ZeroGrad between
// passes when that is not wanted.
func (s *Scalar) Backward() {
	s.grad = 1

	order := topoSort(s)
	for i := len(order) - 1; i >= 0; i-- {
		n := order[i]
		local := n.localGrads()
		for j, c := range n.children {
			c.grad += n.grad * local[j]
		}
	}
}

// ZeroGrad resets the gradient of s and of every node reachable from it.
func (s *Scalar) ZeroGrad() {
	for _, n := range topoSort(s) {
		n.grad = 0
	}
}
