package run

import "github.com/coral-mesh/calltrace/pkg/probe"

// treeWalk is the built-in instrumented workload: a full tree walk where
// every visited node is one traced call.
type treeWalk struct {
	hooks  *probe.Hooks
	fanout int
}

// visit walks a subtree of the given height and returns the number of nodes
// visited.
func (w *treeWalk) visit(height int) int {
	defer w.hooks.Trace()()

	if height <= 1 {
		return 1
	}

	nodes := 1
	for i := 0; i < w.fanout; i++ {
		nodes += w.visit(height - 1)
	}
	return nodes
}

// treeSize returns the number of nodes in a full tree of the given height.
func treeSize(height, fanout int) int {
	size, level := 0, 1
	for i := 0; i < height; i++ {
		size += level
		level *= fanout
	}
	return size
}
