package osil

// Expr is a node of a symbolic expression tree. The model wrapper supplies
// objective and constraint expressions as trees of Constant, VariableRef and
// Call nodes; the compiler and the linear term extractor consume them.
//
// Expression trees are never mutated by this package.
type Expr interface {
	expr()
}

// Constant is a numeric literal.
type Constant struct {
	Value float64
}

// VariableRef references a decision variable by its zero-based column index.
type VariableRef struct {
	Index int
}

// Call applies an operator to an ordered argument list. The argument count
// decides which operator classification table applies.
type Call struct {
	Op   string
	Args []Expr
}

func (Constant) expr()    {}
func (VariableRef) expr() {}
func (Call) expr()        {}

// Num returns a constant expression.
func Num(v float64) Expr { return Constant{Value: v} }

// Var returns a reference to variable idx (zero-based).
func Var(idx int) Expr { return VariableRef{Index: idx} }

// Apply returns a call of op to args.
func Apply(op string, args ...Expr) Expr { return Call{Op: op, Args: args} }

// Term returns the canonical linear term coef * x_idx.
func Term(coef float64, idx int) Expr {
	return Apply("*", Num(coef), Var(idx))
}

// maxVarIndexTerms returns the largest variable index referenced by any of
// terms, or -1.
func maxVarIndexTerms(terms []Expr) int {
	maxIdx := -1
	for _, t := range terms {
		if idx := maxVarIndex(t); idx > maxIdx {
			maxIdx = idx
		}
	}
	return maxIdx
}

// maxVarIndex returns the largest variable index referenced by e, or -1 if e
// references no variable. A nil expression is treated as empty.
func maxVarIndex(e Expr) int {
	switch v := e.(type) {
	case VariableRef:
		return v.Index
	case Call:
		return maxVarIndexTerms(v.Args)
	default:
		return -1
	}
}
