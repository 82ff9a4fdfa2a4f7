package osil

// Operator classification tables. Each table maps an operator token to the
// tag name of the corresponding nonlinear-expression node in the problem
// document. A token may appear in more than one table ("-" is negation in
// unary position and subtraction in binary position); the observed argument
// count selects the table.
//
// The tables are built once and never mutated, so they are safe to share
// across concurrent compiler invocations.

var unaryOps = map[string]string{
	"-":      "negate",
	"sqrt":   "squareRoot",
	"square": "square",
	"abs":    "abs",
	"ceil":   "ceiling",
	"floor":  "floor",
	"exp":    "exp",
	"log":    "ln",
	"log10":  "log10",
	"sin":    "sin",
	"cos":    "cos",
	"tan":    "tan",
}

var binaryOps = map[string]string{
	"+":   "plus",
	"-":   "minus",
	"*":   "times",
	"/":   "divide",
	"^":   "power",
	"min": "min",
	"max": "max",
}

// variadicOps classifies calls with three or more arguments.
var variadicOps = map[string]string{
	"+":   "sum",
	"*":   "product",
	"min": "min",
	"max": "max",
}
