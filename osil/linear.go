package osil

// LinearAccumulator is the shared scratch state for extracting the linear
// part of one row or of the objective. It pairs a dense coefficient buffer
// with a parallel presence indicator; mark[i] is true iff coef[i] holds a
// value accumulated during the current pass.
//
// The accumulator is reused across rows. It must be owned by one extraction
// pass at a time, and every pass must end with Drain (or Clear) so that no
// indicator leaks into the next pass.
type LinearAccumulator struct {
	mark []bool
	coef []float64
}

// NewLinearAccumulator returns an accumulator for numVars variables.
func NewLinearAccumulator(numVars int) *LinearAccumulator {
	return &LinearAccumulator{
		mark: make([]bool, numVars),
		coef: make([]float64, numVars),
	}
}

// Len returns the number of variables the accumulator covers.
func (a *LinearAccumulator) Len() int { return len(a.mark) }

// Add processes one additive term and returns its constant contribution.
//
// A Call term must match exactly the canonical shape
// multiply(Constant, VariableRef); its coefficient is summed into the buffer
// slot of the referenced variable and 0 is returned. A Constant term leaves
// the accumulator untouched and returns its value. Anything else is a
// ShapeError: the extractor performs no simplification.
func (a *LinearAccumulator) Add(term Expr) (float64, error) {
	switch v := term.(type) {
	case Call:
		if v.Op != "*" {
			return 0, shapeErrorf("linear term uses operator %q, want \"*\"", v.Op)
		}
		if len(v.Args) != 2 {
			return 0, shapeErrorf("linear term has %d operands, want 2", len(v.Args))
		}
		coef, ok := v.Args[0].(Constant)
		if !ok {
			return 0, shapeErrorf("linear term coefficient is %T, want a constant", v.Args[0])
		}
		ref, ok := v.Args[1].(VariableRef)
		if !ok {
			return 0, shapeErrorf("linear term operand is %T, want a variable reference", v.Args[1])
		}
		if ref.Index < 0 || ref.Index >= len(a.mark) {
			return 0, newDimensionError("LinearAccumulator.Add",
				"variable index %d out of range [0,%d)", ref.Index, len(a.mark))
		}
		if a.mark[ref.Index] {
			a.coef[ref.Index] += coef.Value
		} else {
			a.coef[ref.Index] = coef.Value
			a.mark[ref.Index] = true
		}
		return 0, nil
	case Constant:
		return v.Value, nil
	default:
		return 0, shapeErrorf("linear term is %T, want a constant or coefficient*variable", term)
	}
}

// Drain emits one entry per marked variable in ascending index order and
// clears every touched indicator, leaving the accumulator ready for the next
// pass.
func (a *LinearAccumulator) Drain() []SparseEntry {
	var entries []SparseEntry
	for i, set := range a.mark {
		if set {
			entries = append(entries, SparseEntry{Idx: i, Val: a.coef[i]})
			a.mark[i] = false
		}
	}
	return entries
}

// Clear resets every indicator without emitting entries.
func (a *LinearAccumulator) Clear() {
	for i := range a.mark {
		a.mark[i] = false
	}
}
