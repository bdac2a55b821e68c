package scicalc

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates the expression. The result may be NaN or infinite, e.g. for
// division by zero or an argument outside a function's domain; that is not an
// error. Evaluating the same Expr always gives the same result.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeCall:
		return n.fn(n.left.eval())
	case nodeNeg:
		return -n.left.eval()
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodeMod:
		// Truncated remainder; the sign follows the dividend.
		return math.Mod(n.left.eval(), n.right.eval())
	case nodePow:
		return math.Pow(n.left.eval(), n.right.eval())
	default:
		panic("scicalc: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
