package dfs

import (
	"fmt"

	"github.com/katalvlaran/mstrepair/core"
)

// Walk marks and returns every vertex reachable from start that is not already
// marked in visited. visited is updated in place.
//
// If start itself is already visited the walk reaches nothing and returns an
// empty slice. On a hook error the vertices reached so far are returned along
// with the error.
func Walk(adj core.Adjacency, start int, visited []bool, opts ...Option) ([]int, error) {
	// 1. Validate input.
	if len(visited) != adj.Len() {
		return nil, fmt.Errorf("%w: %d != %d", ErrVisitedLength, len(visited), adj.Len())
	}
	if start < 0 || start >= adj.Len() {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Explicit-stack traversal: mark on pop, push unvisited neighbors.
	reached := make([]int, 0)
	stack := []int{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		reached = append(reached, cur)

		if dopts.OnVisit != nil {
			if err := dopts.OnVisit(cur); err != nil {
				return reached, fmt.Errorf("dfs: OnVisit hook for %d: %w", cur, err)
			}
		}

		for _, nb := range adj.Neighbors(cur) {
			if !visited[nb] {
				stack = append(stack, nb)
			}
		}
	}

	return reached, nil
}
