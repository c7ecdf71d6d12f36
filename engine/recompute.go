package engine

import (
	"sheet/ferr"
	"sheet/formula"
	"sheet/grid"
	"sheet/parser"
)

// recomputeFrom refreshes every cell whose value may have changed
// because root's value changed, and no others.
func recomputeFrom(g *grid.Grid, root int) *ferr.Error {
	affected := collectAffected(g, root)
	if len(affected) == 0 {
		return nil
	}

	inA := make(map[int]bool, len(affected))
	for _, idx := range affected {
		inA[idx] = true
	}

	indeg := make(map[int]int, len(affected))
	for _, idx := range affected {
		cell := g.Cell(idx)
		for dep := range cell.DependsOn {
			if inA[dep] {
				indeg[idx]++
			}
		}
	}

	var queue []int
	for _, idx := range affected {
		if indeg[idx] == 0 {
			queue = append(queue, idx)
		}
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cell := g.Cell(idx)

		if cell.HasFormula {
			expr, perr := parser.Parse(cell.Formula)
			if perr != nil {
				// Validation at assignment time should have ruled this
				// out; abort and let the caller surface it.
				return perr
			}
			val, eerr := formula.Eval(expr, g)
			switch {
			case eerr == nil:
				cell.Value = val
				cell.Status = grid.OK
			case eerr.Kind == ferr.DivByZero || eerr.Kind == ferr.DependencyError:
				cell.Value = 0
				cell.Status = grid.ERROR
			default:
				return eerr
			}
		}

		for dep := range cell.DependedBy {
			if !inA[dep] {
				continue
			}
			indeg[dep]--
			if indeg[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	return nil
}

// collectAffected does an iterative DFS over DependedBy starting at
// root, excluding root itself.
func collectAffected(g *grid.Grid, root int) []int {
	visited := make([]bool, g.Rows*g.Cols)
	stack := []int{root}
	var affected []int

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		if cur != root {
			affected = append(affected, cur)
		}
		for dep := range g.Cell(cur).DependedBy {
			if !visited[dep] {
				stack = append(stack, dep)
			}
		}
	}
	return affected
}
