package osil

import (
	"fmt"
	"strings"
)

// Outcome classifies the result of a solve attempt.
type Outcome int

const (
	// Optimal indicates the solver proved or accepted optimality.
	Optimal Outcome = iota
	// Infeasible indicates the problem has no feasible point.
	Infeasible
	// Unbounded indicates the objective is unbounded.
	Unbounded
	// UserLimit indicates the solver stopped at a user-imposed limit.
	UserLimit
	// SolveError indicates the solver failed or could not classify the run.
	SolveError
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Optimal:
		return "Optimal"
	case Infeasible:
		return "Infeasible"
	case Unbounded:
		return "Unbounded"
	case UserLimit:
		return "UserLimit"
	case SolveError:
		return "Error"
	default:
		return "Unknown"
	}
}

// statusTable maps the raw status tokens of the results document to
// canonical outcomes. "IpoptAccetable" is a misspelling Ipopt actually
// emits and is accepted as-is.
var statusTable = map[string]Outcome{
	"unbounded":       Unbounded,
	"globallyOptimal": Optimal,
	"locallyOptimal":  Optimal,
	"optimal":         Optimal,
	"bestSoFar":       Optimal,
	"feasible":        Optimal,
	"infeasible":      Infeasible,
	"unsure":          SolveError,
	"error":           SolveError,
	"other":           SolveError,
	"stoppedByLimit":  UserLimit,
	"stoppedByBounds": UserLimit,
	"IpoptAccetable":  Optimal,
}

// NormalizeStatus maps a raw status token plus an optional free-text
// description to a canonical outcome. A description beginning with "LIMIT"
// forces UserLimit; when that contradicts the table classification the
// returned warning records the inconsistency (and is empty otherwise).
// NormalizeStatus is a pure function of its two inputs.
func NormalizeStatus(raw, description string) (Outcome, string, error) {
	outcome, ok := statusTable[raw]
	if !ok {
		return SolveError, "", &UnknownStatusError{Status: raw}
	}
	if strings.HasPrefix(description, "LIMIT") && outcome != UserLimit {
		warning := fmt.Sprintf("status %q classified as %s but description %q indicates a limit; reporting %s",
			raw, outcome, description, UserLimit)
		return UserLimit, warning, nil
	}
	return outcome, "", nil
}
