package osil

import "fmt"

// VariableType specifies whether a variable is continuous, integer, etc.
type VariableType int

const (
	// Continuous indicates a continuous variable (default).
	Continuous VariableType = iota
	// Integer indicates an integer variable.
	Integer
	// Binary indicates a 0/1 variable.
	Binary
	// SemiContinuous indicates a semi-continuous variable.
	SemiContinuous
	// SemiInteger indicates a semi-integer variable.
	SemiInteger
	// Fixed indicates a variable whose lower and upper bound coincide.
	// It is written with the continuous type code; the caller is responsible
	// for the bound equality.
	Fixed
)

// String returns a human-readable representation of the variable type.
func (v VariableType) String() string {
	switch v {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	case SemiContinuous:
		return "SemiContinuous"
	case SemiInteger:
		return "SemiInteger"
	case Fixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}

// Code returns the single-character type code used in the problem document.
func (v VariableType) Code() (string, error) {
	switch v {
	case Continuous, Fixed:
		return "C", nil
	case Integer:
		return "I", nil
	case Binary:
		return "B", nil
	case SemiContinuous:
		return "S", nil
	case SemiInteger:
		return "D", nil
	default:
		return "", fmt.Errorf("osil: unknown variable type %d", int(v))
	}
}
