package osil

// SparseEntry is one (index, value) pair of a sparse vector. Indices are
// zero-based on the wire.
type SparseEntry struct {
	Idx int
	Val float64
}

// DecodeSparse materializes a sparse vector into a dense slice of length n.
// Absent indices keep fill; duplicate indices are summed into the slot, never
// overwritten. An index outside [0, n) is a DimensionError.
func DecodeSparse(n int, fill float64, entries []SparseEntry) ([]float64, error) {
	dense := make([]float64, n)
	for i := range dense {
		dense[i] = fill
	}
	seen := make([]bool, n)
	for _, e := range entries {
		if e.Idx < 0 || e.Idx >= n {
			return nil, newDimensionError("DecodeSparse", "index %d out of range [0,%d)", e.Idx, n)
		}
		if seen[e.Idx] {
			dense[e.Idx] += e.Val
		} else {
			dense[e.Idx] = e.Val
			seen[e.Idx] = true
		}
	}
	return dense, nil
}

// EncodeSparse converts a dense vector into its sparse form, omitting slots
// whose value is exactly zero.
func EncodeSparse(dense []float64) []SparseEntry {
	entries := make([]SparseEntry, 0, len(dense))
	for i, v := range dense {
		if v != 0.0 {
			entries = append(entries, SparseEntry{Idx: i, Val: v})
		}
	}
	return entries
}

// expandSlice expands a slice to length n if it's empty, filling with
// fillValue. Returns the original slice if it already has length n, and a
// DimensionError if it has any other non-zero length.
func expandSlice(op string, n int, slice []float64, fillValue float64) ([]float64, error) {
	if len(slice) == n {
		return slice, nil
	}
	if len(slice) == 0 {
		result := make([]float64, n)
		for i := range result {
			result[i] = fillValue
		}
		return result, nil
	}
	return nil, newDimensionError(op, "inconsistent slice length %d, want %d", len(slice), n)
}
