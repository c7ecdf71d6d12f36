package parser

import (
	"testing"

	"sheet/ast"
	"sheet/ferr"
)

func mustParse(t *testing.T, text string) ast.Expr {
	t.Helper()
	expr, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", text, err)
	}
	return expr
}

func TestParseNumber(t *testing.T) {
	expr := mustParse(t, "42")
	n, ok := expr.(*ast.Number)
	if !ok || n.Value != 42 {
		t.Fatalf("expected Number(42), got %#v", expr)
	}
}

func TestParseNegativeNumber(t *testing.T) {
	expr := mustParse(t, "-42")
	n, ok := expr.(*ast.Number)
	if !ok || n.Value != -42 {
		t.Fatalf("expected Number(-42), got %#v", expr)
	}
}

func TestParseArithmeticPrecedence(t *testing.T) {
	expr := mustParse(t, "1+2*3")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected top-level '+', got %#v", expr)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Op != "*" {
		t.Fatalf("expected right-hand '*', got %#v", bin.Right)
	}
}

func TestParseCellRefAndBinaryMinus(t *testing.T) {
	expr := mustParse(t, "A1-3")
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Op != "-" {
		t.Fatalf("expected binary '-', got %#v", expr)
	}
	if _, ok := bin.Left.(*ast.CellRef); !ok {
		t.Fatalf("expected CellRef on left, got %#v", bin.Left)
	}
}

func TestParseRangeCall(t *testing.T) {
	expr := mustParse(t, "SUM(A1:B2)")
	call, ok := expr.(*ast.Call)
	if !ok || call.Name != "SUM" || call.Range == nil {
		t.Fatalf("expected SUM call with range, got %#v", expr)
	}
}

func TestParseSleepCall(t *testing.T) {
	expr := mustParse(t, "SLEEP(A1+1)")
	call, ok := expr.(*ast.Call)
	if !ok || call.Name != "SLEEP" || call.Arg == nil {
		t.Fatalf("expected SLEEP call with expr arg, got %#v", expr)
	}
}

func TestParseUnknownFunctionSoftFails(t *testing.T) {
	expr := mustParse(t, "FOO(1,2,3)")
	call, ok := expr.(*ast.Call)
	if !ok || call.Name != "FOO" || call.Range != nil || call.Arg != nil {
		t.Fatalf("expected bare unknown call, got %#v", expr)
	}
}

func TestParseMissingColonIsInvalidFormula(t *testing.T) {
	_, err := Parse("SUM(A1 B2)")
	if err == nil || err.Kind != ferr.InvalidFormula {
		t.Fatalf("expected InvalidFormula, got %v", err)
	}
}

func TestParseUnmatchedParenIsInvalidFormula(t *testing.T) {
	_, err := Parse("(1+2")
	if err == nil || err.Kind != ferr.InvalidFormula {
		t.Fatalf("expected InvalidFormula, got %v", err)
	}
}

func TestParseTrailingJunkIsInvalidFormula(t *testing.T) {
	_, err := Parse("1+2)")
	if err == nil || err.Kind != ferr.InvalidFormula {
		t.Fatalf("expected InvalidFormula, got %v", err)
	}
}

func TestParseUnaryMinusDoesNotPrefixCellRef(t *testing.T) {
	_, err := Parse("-A1")
	if err == nil || err.Kind != ferr.InvalidFormula {
		t.Fatalf("expected InvalidFormula for '-A1', got %v", err)
	}
}
