package osil

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNumVars(t *testing.T) {
	model := Model{
		Objective: []Expr{Term(1, 0)},
	}
	model.AddNonlinearRow(math.Inf(-1), nil, Apply("square", Var(4)), 1.0)

	if n := model.NumVars(); n != 5 {
		t.Errorf("NumVars = %d, expected 5 from expression scan", n)
	}

	model.ColUpper = []float64{1, 1, 1, 1, 1, 1, 1}
	if n := model.NumVars(); n != 7 {
		t.Errorf("NumVars = %d, expected 7 from ColUpper length", n)
	}
}

func TestNumConstraints(t *testing.T) {
	model := Model{}
	if n := model.NumConstraints(); n != 0 {
		t.Errorf("NumConstraints = %d, expected 0", n)
	}
	model.AddLeRow([]float64{1}, 2)
	model.AddGeRow([]float64{1}, 0)
	if n := model.NumConstraints(); n != 2 {
		t.Errorf("NumConstraints = %d, expected 2", n)
	}
}

func TestAddDenseRow(t *testing.T) {
	model := Model{}
	model.AddDenseRow(1.0, []float64{2.0, 0.0, 3.0}, 10.0)

	if len(model.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(model.Rows))
	}
	row := model.Rows[0]
	if row.Lower != 1.0 || row.Upper != 10.0 {
		t.Errorf("bounds = [%f, %f], expected [1, 10]", row.Lower, row.Upper)
	}
	want := []Expr{Term(2.0, 0), Term(3.0, 2)}
	if !reflect.DeepEqual(row.Linear, want) {
		t.Errorf("terms = %#v, expected zero coefficients filtered out", row.Linear)
	}
}

func TestAddEqRow(t *testing.T) {
	model := Model{}
	model.AddEqRow([]float64{1.0}, 4.0)
	row := model.Rows[0]
	if row.Lower != 4.0 || row.Upper != 4.0 {
		t.Errorf("bounds = [%f, %f], expected [4, 4]", row.Lower, row.Upper)
	}
}

func TestAddLeGeRows(t *testing.T) {
	model := Model{}
	model.AddLeRow([]float64{1.0}, 3.0)
	model.AddGeRow([]float64{1.0}, 2.0)

	if !math.IsInf(model.Rows[0].Lower, -1) || model.Rows[0].Upper != 3.0 {
		t.Errorf("le row bounds = [%f, %f]", model.Rows[0].Lower, model.Rows[0].Upper)
	}
	if model.Rows[1].Lower != 2.0 || !math.IsInf(model.Rows[1].Upper, 1) {
		t.Errorf("ge row bounds = [%f, %f]", model.Rows[1].Lower, model.Rows[1].Upper)
	}
}

func TestSolveMissingSolver(t *testing.T) {
	model := Model{
		Objective: []Expr{Term(1, 0)},
		ColLower:  []float64{0.0},
		ColUpper:  []float64{1.0},
	}

	_, err := model.Solve("ipopt",
		WithSolverPath(filepath.Join(t.TempDir(), "no-such-solver")))
	if err == nil {
		t.Fatal("expected an error for a missing solver executable")
	}
}
