package osil

// Compile converts a symbolic expression into its nonlinear-node form and
// appends the result to parent (parent may be nil for a root expression).
// Exactly one node is appended per call; nothing is appended when an error
// is returned. The input expression is never mutated.
func Compile(e Expr, parent *Node) (*Node, error) {
	node, err := compile(e)
	if err != nil {
		return nil, err
	}
	if parent != nil {
		parent.append(node)
	}
	return node, nil
}

func compile(e Expr) (*Node, error) {
	switch v := e.(type) {
	case Constant:
		return numberNode(v.Value), nil
	case VariableRef:
		return variableNode(v.Index), nil
	case Call:
		return compileCall(v)
	default:
		return nil, shapeErrorf("cannot compile node of type %T", e)
	}
}

func compileCall(c Call) (*Node, error) {
	switch len(c.Args) {
	case 1:
		tag, ok := unaryOps[c.Op]
		if !ok {
			return nil, &UnknownOperatorError{Operator: c.Op, Arity: "unary"}
		}
		node := newNode(tag)
		if _, err := Compile(c.Args[0], node); err != nil {
			return nil, err
		}
		return node, nil
	case 2:
		return compileBinary(c)
	default:
		if len(c.Args) < 3 {
			return nil, shapeErrorf("call to %q with no arguments", c.Op)
		}
		tag, ok := variadicOps[c.Op]
		if !ok {
			return nil, &UnknownOperatorError{Operator: c.Op, Arity: "variadic"}
		}
		node := newNode(tag)
		for _, arg := range c.Args {
			if _, err := Compile(arg, node); err != nil {
				return nil, err
			}
		}
		return node, nil
	}
}

// compileBinary applies the special-case rewrites before falling back to the
// generic two-child form. Rewrites, in priority order:
//
//  1. x ^ 2 with a literal exponent becomes a square node over x alone.
//  2. c * x (either operand order) becomes a single variable node with coef c.
//  3. x / c becomes a variable node with coef 1/c.
func compileBinary(c Call) (*Node, error) {
	tag, ok := binaryOps[c.Op]
	if !ok {
		return nil, &UnknownOperatorError{Operator: c.Op, Arity: "binary"}
	}

	lhs, rhs := c.Args[0], c.Args[1]

	if c.Op == "^" {
		if exp, ok := rhs.(Constant); ok && exp.Value == 2 {
			node := newNode("square")
			if _, err := Compile(lhs, node); err != nil {
				return nil, err
			}
			return node, nil
		}
	}

	if c.Op == "*" {
		if ref, ok := lhs.(VariableRef); ok {
			if coef, ok := rhs.(Constant); ok {
				return coefNode(ref, coef.Value), nil
			}
		}
		if coef, ok := lhs.(Constant); ok {
			if ref, ok := rhs.(VariableRef); ok {
				return coefNode(ref, coef.Value), nil
			}
		}
	}

	if c.Op == "/" {
		if ref, ok := lhs.(VariableRef); ok {
			if div, ok := rhs.(Constant); ok {
				return coefNode(ref, 1/div.Value), nil
			}
		}
	}

	node := newNode(tag)
	if _, err := Compile(lhs, node); err != nil {
		return nil, err
	}
	if _, err := Compile(rhs, node); err != nil {
		return nil, err
	}
	return node, nil
}

func coefNode(ref VariableRef, coef float64) *Node {
	node := variableNode(ref.Index)
	node.Coef = formatFloat(coef)
	return node
}
