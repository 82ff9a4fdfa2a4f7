package osil

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testModel builds a small mixed linear/nonlinear instance:
//
//	min  x0 + 2x2 + 5 + 1 + x0*x1
//	s.t. 5 <= x0 + 2x1 + 3 <= 15
//	     x0^2 <= 4
//	0 <= x0 <= 10; -1 <= x1 (integer); x2 binary
func testModel() *Model {
	m := &Model{
		Description:  "test instance",
		Offset:       1,
		Objective:    []Expr{Term(1, 0), Term(2, 2), Num(5)},
		ObjNonlinear: Apply("*", Var(0), Var(1)),
		ColLower:     []float64{0, -1, math.Inf(-1)},
		ColUpper:     []float64{10, math.Inf(1), math.Inf(1)},
		VarTypes:     []VariableType{Continuous, Integer, Binary},
	}
	m.AddRow(5, []Expr{Term(1, 0), Term(2, 1), Num(3)}, 15)
	m.AddNonlinearRow(math.Inf(-1), nil, Apply("^", Var(0), Num(2)), 4)
	return m
}

func TestBuildProblem(t *testing.T) {
	m := testModel()
	doc, err := buildProblem(m, 3, m.ColLower, m.ColUpper)
	require.NoError(t, err)

	assert.Equal(t, "test instance", doc.Description)

	require.Equal(t, 3, doc.Variables.NumberOfVariables)
	assert.Equal(t, osilVar{UB: "10"}, doc.Variables.Var[0])
	assert.Equal(t, osilVar{LB: "-1", Type: "I"}, doc.Variables.Var[1])
	assert.Equal(t, osilVar{LB: "-INF", Type: "B"}, doc.Variables.Var[2])

	require.Equal(t, 1, doc.Objectives.NumberOfObjectives)
	obj := doc.Objectives.Obj[0]
	assert.Equal(t, "min", obj.MaxOrMin)
	assert.Equal(t, "6", obj.Constant, "objective constant must fold offset and bare constants")
	assert.Equal(t, 2, obj.NumberOfObjCoef)
	assert.Equal(t, []osilObjCoef{{Idx: 0, Value: "1"}, {Idx: 2, Value: "2"}}, obj.Coef)

	require.Equal(t, 2, doc.Constraints.NumberOfConstraints)
	assert.Equal(t, osilCon{LB: "2", UB: "12"}, doc.Constraints.Con[0],
		"bare-constant terms must shift the row bounds")
	assert.Equal(t, osilCon{UB: "4"}, doc.Constraints.Con[1])

	require.NotNil(t, doc.LinearCoefs)
	assert.Equal(t, 2, doc.LinearCoefs.NumberOfValues)
	assert.Equal(t, []int{0, 2, 2}, doc.LinearCoefs.Start.El)
	assert.Equal(t, []int{0, 1}, doc.LinearCoefs.ColIdx.El)
	assert.Equal(t, []string{"1", "2"}, doc.LinearCoefs.Value.El)

	require.NotNil(t, doc.Nonlinear)
	require.Equal(t, 2, doc.Nonlinear.NumberOfNonlinearExpressions)
	assert.Equal(t, -1, doc.Nonlinear.Nl[0].Idx, "objective nonlinear part uses the -1 sentinel")
	wantObj := &Node{Tag: "times", Children: []*Node{
		{Tag: "variable", Idx: "0"},
		{Tag: "variable", Idx: "1"},
	}}
	if diff := cmp.Diff(wantObj, doc.Nonlinear.Nl[0].Root); diff != "" {
		t.Errorf("objective nonlinear tree mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, doc.Nonlinear.Nl[1].Idx)
	assert.Equal(t, "square", doc.Nonlinear.Nl[1].Root.Tag)
}

func TestBuildProblemMaximize(t *testing.T) {
	m := &Model{Maximize: true, Objective: []Expr{Term(1, 0)}}
	doc, err := buildProblem(m, 1, []float64{0}, []float64{math.Inf(1)})
	require.NoError(t, err)
	assert.Equal(t, "max", doc.Objectives.Obj[0].MaxOrMin)
	assert.Empty(t, doc.Objectives.Obj[0].Constant)
	assert.Nil(t, doc.LinearCoefs, "no linear coefficients section without constraints")
	assert.Nil(t, doc.Nonlinear)
}

func TestWriteProblem(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testModel().WriteProblem(&buf))

	out := buf.String()
	for _, want := range []string{
		`<osil>`,
		`<description>test instance</description>`,
		`numberOfVariables="3"`,
		`<var ub="10">`,
		`<var lb="-1" type="I">`,
		`<var lb="-INF" type="B">`,
		`maxOrMin="min"`,
		`<coef idx="2">2</coef>`,
		`<con lb="2" ub="12">`,
		`<nl idx="-1">`,
		`<square>`,
		`<variable idx="0">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("problem document missing %s\n%s", want, out)
		}
	}
}

func TestWriteProblemDimensionMismatch(t *testing.T) {
	m := testModel()
	m.ColLower = []float64{0, 1}

	var dimErr *DimensionError
	err := m.WriteProblem(&bytes.Buffer{})
	require.ErrorAs(t, err, &dimErr)
}

func TestBuildProblemVarTypesMismatch(t *testing.T) {
	m := &Model{Objective: []Expr{Term(1, 1)}, VarTypes: []VariableType{Integer}}
	var dimErr *DimensionError
	_, err := buildProblem(m, 2, []float64{0, 0}, []float64{1, 1})
	require.ErrorAs(t, err, &dimErr)
}

func TestBuildProblemRejectsBadLinearTerm(t *testing.T) {
	m := &Model{Objective: []Expr{Apply("*", Var(0), Var(1))}}
	var shapeErr *ShapeError
	_, err := buildProblem(m, 2, []float64{0, 0}, []float64{1, 1})
	require.ErrorAs(t, err, &shapeErr)
}

func TestBuildProblemRejectsUnknownNonlinearOperator(t *testing.T) {
	m := &Model{ObjNonlinear: Apply("bogus", Var(0))}
	var opErr *UnknownOperatorError
	_, err := buildProblem(m, 1, []float64{0}, []float64{1})
	require.ErrorAs(t, err, &opErr)
}
