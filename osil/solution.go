package osil

// Solution contains the decoded results of one solve attempt.
type Solution struct {
	// Status is the canonical outcome of the solve.
	Status Outcome

	// RawStatus is the status token as reported by the solver.
	RawStatus string

	// Message is the free-text status description, if any.
	Message string

	// ColValues contains the primal solution values for each variable.
	ColValues []float64

	// RowDuals contains the dual values for each constraint.
	// Only populated when the solver reports them.
	RowDuals []float64

	// Objective is the value of the objective function at the solution.
	Objective float64

	// Warnings records the soft inconsistencies tolerated while decoding the
	// results document (unexpected solution or objective counts, a status
	// description contradicting the status token).
	Warnings []string
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.Status == Optimal
}

// IsInfeasible returns true if the model is infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == Infeasible
}

// IsUnbounded returns true if the model is unbounded.
func (s *Solution) IsUnbounded() bool {
	return s.Status == Unbounded
}

// IsUserLimit returns true if the solve stopped at a user-imposed limit.
func (s *Solution) IsUserLimit() bool {
	return s.Status == UserLimit
}

// Value returns the solution value for a variable by index.
// Returns 0 if the index is out of range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.ColValues) {
		return 0
	}
	return s.ColValues[index]
}
