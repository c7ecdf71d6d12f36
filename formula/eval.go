// Package formula evaluates a parsed formula expression against a grid
// and extracts the cell references a formula text depends on.
package formula

import (
	"math"
	"time"

	"sheet/ast"
	"sheet/ferr"
	"sheet/grid"
)

// Eval evaluates expr against g, reading cell values only — it never
// mutates a cell. SLEEP(n>0) blocks the calling goroutine for n seconds
// of wall time, matching the single-threaded, no-cancellation
// suspension model of the engine.
func Eval(expr ast.Expr, g *grid.Grid) (int32, *ferr.Error) {
	switch e := expr.(type) {
	case *ast.Number:
		return e.Value, nil

	case *ast.CellRef:
		return evalCellRef(e, g)

	case *ast.Binary:
		left, err := Eval(e.Left, g)
		if err != nil {
			return 0, err
		}
		right, err := Eval(e.Right, g)
		if err != nil {
			return 0, err
		}
		switch e.Op {
		case "+":
			return left + right, nil
		case "-":
			return left - right, nil
		case "*":
			return left * right, nil
		case "/":
			if right == 0 {
				return 0, ferr.At(ferr.DivByZero, "division by zero", e.Token)
			}
			return left / right, nil
		}
		return 0, ferr.At(ferr.InvalidFormula, "unknown operator", e.Token)

	case *ast.Call:
		return evalCall(e, g)
	}
	return 0, ferr.New(ferr.InvalidFormula, "unrecognised expression node")
}

func evalCellRef(ref *ast.CellRef, g *grid.Grid) (int32, *ferr.Error) {
	if !g.InBounds(ref.Row, ref.Col) {
		return 0, ferr.At(ferr.RefOutOfBounds, "cell reference out of bounds", ref.Token)
	}
	cell := g.At(ref.Row, ref.Col)
	if cell.Status == grid.ERROR {
		return 0, ferr.At(ferr.DependencyError, "reference to a cell in error", ref.Token)
	}
	return cell.Value, nil
}

func evalCall(call *ast.Call, g *grid.Grid) (int32, *ferr.Error) {
	switch {
	case call.Name == "SLEEP":
		n, err := Eval(call.Arg, g)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			time.Sleep(time.Duration(n) * time.Second)
		}
		return n, nil

	case call.Range != nil:
		return evalRange(call, g)

	default:
		// Unknown function: deliberate soft-fail, preserved from source.
		return 0, nil
	}
}

func evalRange(call *ast.Call, g *grid.Grid) (int32, *ferr.Error) {
	r := call.Range
	if !g.InBounds(r.From.Row, r.From.Col) {
		return 0, ferr.At(ferr.RefOutOfBounds, "cell reference out of bounds", r.From.Token)
	}
	if !g.InBounds(r.To.Row, r.To.Col) {
		return 0, ferr.At(ferr.RefOutOfBounds, "cell reference out of bounds", r.To.Token)
	}
	if r.From.Row > r.To.Row || r.From.Col > r.To.Col {
		return 0, ferr.At(ferr.InvalidRange, "range corners reversed", call.Token)
	}

	var sum int64
	var count int64
	minVal := int32(math.MaxInt32)
	maxVal := int32(math.MinInt32)
	var values []int32

	for row := r.From.Row; row <= r.To.Row; row++ {
		for col := r.From.Col; col <= r.To.Col; col++ {
			cell := g.At(row, col)
			if cell.Status == grid.ERROR {
				return 0, ferr.At(ferr.DependencyError, "range contains a cell in error", call.Token)
			}
			v := cell.Value
			sum += int64(v)
			count++
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
			values = append(values, v)
		}
	}

	switch call.Name {
	case "MIN":
		return minVal, nil
	case "MAX":
		return maxVal, nil
	case "SUM":
		return int32(sum), nil
	case "AVG":
		return int32(sum / count), nil
	case "STDEV":
		mean := int32(sum / count)
		var variance float64
		for _, v := range values {
			d := float64(v - mean)
			variance += d * d
		}
		variance /= float64(count)
		return int32(math.Round(math.Sqrt(variance))), nil
	}
	return 0, ferr.New(ferr.InvalidFormula, "unrecognised range function")
}
