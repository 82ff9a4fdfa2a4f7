package osil

import "fmt"

// ShapeError indicates an expression or term that does not match the
// canonical form required at its position (for example a linear term that is
// not coefficient * variable).
type ShapeError struct {
	Msg string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("osil: bad expression shape: %s", e.Msg)
}

func shapeErrorf(format string, args ...interface{}) error {
	return &ShapeError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownOperatorError indicates an operator token with no entry in the
// classification table for the attempted arity class.
type UnknownOperatorError struct {
	Operator string
	Arity    string // "unary", "binary" or "variadic"
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("osil: unknown %s operator %q", e.Arity, e.Operator)
}

// UnknownStatusError indicates a raw solver status token outside the
// recognized vocabulary.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("osil: unknown solver status %q", e.Status)
}

// DimensionError indicates caller-supplied array lengths that disagree, such
// as a bounds slice shorter than the variable count or a results document
// reporting different dimensions than were sent.
type DimensionError struct {
	Op  string // operation that detected the mismatch
	Msg string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("osil: %s: %s", e.Op, e.Msg)
}

func newDimensionError(op, format string, args ...interface{}) error {
	return &DimensionError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
