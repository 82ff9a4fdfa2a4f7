// Package osil bridges an algebraic optimization model to an external solver
// through the XML interchange documents of the Optimization Services
// protocol: a problem instance, a solver-options file, and a results file.
//
// The package compiles symbolic expression trees into the nonlinear-node
// form of the problem document, extracts canonical linear terms into sparse
// coefficient lists, invokes the solver service as a subprocess on the three
// files, and decodes the returned status and solution vectors.
//
// # Example
//
//	model := osil.Model{
//		Objective: []osil.Expr{osil.Term(1, 0), osil.Term(1, 1)},
//		ColLower:  []float64{0.0, 0.0},
//		ColUpper:  []float64{10.0, 10.0},
//	}
//	model.AddDenseRow(1.0, []float64{1.0, 1.0}, 5.0) // 1 <= x + y <= 5
//
//	solution, err := model.Solve("ipopt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Optimal values:", solution.ColValues)
package osil

import (
	"fmt"
	"math"
)

// Row is one constraint: optional finite bounds around a linear part held as
// additive canonical terms, plus an optional nonlinear part held as an
// arbitrary expression tree.
type Row struct {
	// Lower is the constraint lower bound. Use math.Inf(-1) for none.
	Lower float64

	// Upper is the constraint upper bound. Use math.Inf(1) for none.
	Upper float64

	// Linear holds the additive terms of the linear part. Every term must be
	// canonical: Term(coef, idx) or a bare constant.
	Linear []Expr

	// Nonlinear holds the nonlinear part, or nil for a purely linear row.
	Nonlinear Expr
}

// Model represents a high-level optimization model destined for an external
// solver speaking the interchange protocol.
//
// The model describes problems of the form:
//
//	Minimize (or Maximize): Objective + ObjNonlinear + Offset
//	Subject to:             Row.Lower ≤ linear + nonlinear ≤ Row.Upper
//	And:                    ColLower ≤ x ≤ ColUpper
type Model struct {
	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	// Offset is a constant added to the objective function.
	Offset float64

	// Description is written into the problem document header.
	Description string

	// Objective holds the additive canonical terms of the linear objective
	// part.
	Objective []Expr

	// ObjNonlinear holds the nonlinear objective part, or nil.
	ObjNonlinear Expr

	// ColLower are the lower bounds for each variable.
	// If empty, defaults to 0 (the wire default).
	ColLower []float64

	// ColUpper are the upper bounds for each variable.
	// If empty, defaults to +∞.
	ColUpper []float64

	// VarTypes specifies the type of each variable.
	// If empty, all variables are treated as continuous.
	VarTypes []VariableType

	// Rows are the constraints.
	Rows []Row
}

// AddRow adds a constraint from canonical linear terms.
func (m *Model) AddRow(lower float64, terms []Expr, upper float64) {
	m.Rows = append(m.Rows, Row{Lower: lower, Upper: upper, Linear: terms})
}

// AddNonlinearRow adds a constraint carrying both a linear and a nonlinear
// part. Either part may be empty.
func (m *Model) AddNonlinearRow(lower float64, terms []Expr, nonlinear Expr, upper float64) {
	m.Rows = append(m.Rows, Row{Lower: lower, Upper: upper, Linear: terms, Nonlinear: nonlinear})
}

// AddDenseRow adds a constraint from a dense coefficient vector.
// Zero coefficients are automatically filtered out.
//
// Example:
//
//	model.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// Adds constraint: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) {
	var terms []Expr
	for col, val := range coeffs {
		if val != 0.0 {
			terms = append(terms, Term(val, col))
		}
	}
	m.AddRow(lower, terms, upper)
}

// AddEqRow adds an equality constraint: sum(coeffs * x) = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, rhs)
}

// AddLeRow adds a less-than-or-equal constraint: sum(coeffs * x) <= rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(math.Inf(-1), coeffs, rhs)
}

// AddGeRow adds a greater-than-or-equal constraint: sum(coeffs * x) >= rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) {
	m.AddDenseRow(rhs, coeffs, math.Inf(1))
}

// NumVars returns the number of variables in the model, derived from the
// bound and type slices and from the largest variable index referenced by
// any expression.
func (m *Model) NumVars() int {
	maxIdx := maxVarIndexTerms(m.Objective)
	if m.ObjNonlinear != nil {
		if idx := maxVarIndex(m.ObjNonlinear); idx > maxIdx {
			maxIdx = idx
		}
	}
	for _, row := range m.Rows {
		if idx := maxVarIndexTerms(row.Linear); idx > maxIdx {
			maxIdx = idx
		}
		if row.Nonlinear != nil {
			if idx := maxVarIndex(row.Nonlinear); idx > maxIdx {
				maxIdx = idx
			}
		}
	}
	if len(m.ColLower) > maxIdx+1 {
		return len(m.ColLower)
	}
	if len(m.ColUpper) > maxIdx+1 {
		return len(m.ColUpper)
	}
	if len(m.VarTypes) > maxIdx+1 {
		return len(m.VarTypes)
	}
	return maxIdx + 1
}

// NumConstraints returns the number of constraints in the model.
func (m *Model) NumConstraints() int {
	return len(m.Rows)
}

// Solve writes the problem and options documents, runs the solver service
// subprocess, and decodes the results document. The solver argument selects
// the back-end solver by name (for example "ipopt" or "cbc"); an empty
// string leaves the choice to the service.
//
// Options can be set using SolveOptions:
//
//	solution, err := model.Solve("ipopt",
//		osil.WithTimeLimit(60),
//		osil.WithInitialValues([]float64{1, 0}),
//	)
func (m *Model) Solve(solver string, opts ...SolveOption) (*Solution, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return solve(m, solver, cfg)
}

// SolveOption configures one solve attempt.
type SolveOption func(*solveConfig)

type solveConfig struct {
	solverPath string
	workDir    string
	keepFiles  bool
	initial    []float64
	options    map[string]string
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		solverPath: "OSSolverService",
		options:    make(map[string]string),
	}
}

// WithSolverPath sets the path of the solver service executable.
// It defaults to "OSSolverService" resolved through PATH.
func WithSolverPath(path string) SolveOption {
	return func(c *solveConfig) {
		c.solverPath = path
	}
}

// WithWorkDir writes the interchange documents into dir instead of a
// temporary directory. The directory must exist and is not removed.
func WithWorkDir(dir string) SolveOption {
	return func(c *solveConfig) {
		c.workDir = dir
	}
}

// WithKeepFiles retains the interchange documents after the solve.
func WithKeepFiles(keep bool) SolveOption {
	return func(c *solveConfig) {
		c.keepFiles = keep
	}
}

// WithInitialValues supplies a dense warm-start vector, one value per
// variable. Zero entries are omitted from the options document.
func WithInitialValues(values []float64) SolveOption {
	return func(c *solveConfig) {
		c.initial = values
	}
}

// WithSolverOption sets a named solver option in the options document.
func WithSolverOption(name, value string) SolveOption {
	return func(c *solveConfig) {
		c.options[name] = value
	}
}

// WithTimeLimit sets the solver time limit in seconds.
func WithTimeLimit(seconds float64) SolveOption {
	return func(c *solveConfig) {
		c.options["maxTime"] = fmt.Sprintf("%g", seconds)
	}
}
