package scicalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/' | '%') Factor }
// Factor = '+' Factor | '-' Factor | Primary [ '^' Factor ]
// Primary = num | '(' Expr [ ')' ] | funcname Factor

// Expr is a parsed expression. It is immutable and safe for concurrent use.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

func (e *Expr) String() string {
	return e.n.String()
}

// Parse parses an expression so it can be evaluated. The entire input must
// form one expression.
func Parse(src io.RuneScanner) (*Expr, error) {
	c, err := scan(src)
	if err != nil {
		return nil, err
	}
	n, err := parseexpr(c)
	if err != nil {
		return nil, err
	}
	if err := c.skip(); err != nil {
		return nil, err
	}
	if !c.done() {
		return nil, &TrailingError{Col: c.col, Char: c.ch}
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseexpr parses a sum of terms.
func parseexpr(c *cursor) (*node, error) {
	n, err := parseterm(c)
	if err != nil {
		return nil, err
	}
	for {
		op, err := parseop(c, "+-")
		if err != nil {
			return nil, err
		}
		if op == nodeNone {
			return n, nil
		}
		rhs, err := parseterm(c)
		if err != nil {
			return nil, err
		}
		n = &node{kind: op, left: n, right: rhs}
	}
}

// parseterm parses a product of factors.
func parseterm(c *cursor) (*node, error) {
	n, err := parsefactor(c)
	if err != nil {
		return nil, err
	}
	for {
		op, err := parseop(c, "*/%")
		if err != nil {
			return nil, err
		}
		if op == nodeNone {
			return n, nil
		}
		rhs, err := parsefactor(c)
		if err != nil {
			return nil, err
		}
		n = &node{kind: op, left: n, right: rhs}
	}
}

// parseop consumes the next binary operator if it is one of ops. The result is
// nodeNone if there is no such operator.
func parseop(c *cursor, ops string) (nodeKind, error) {
	for _, r := range ops {
		ok, err := c.eat(r)
		if err != nil {
			return nodeNone, err
		}
		if ok {
			return binops[r], nil
		}
	}
	return nodeNone, nil
}

// parsefactor parses a signed primary with an optional exponent. The exponent
// is itself a factor, so ^ is right-associative and "-2^2" is "-(2^2)".
func parsefactor(c *cursor) (*node, error) {
	for _, r := range "+-" {
		ok, err := c.eat(r)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		n, err := parsefactor(c)
		if err != nil {
			return nil, err
		}
		if r == '+' {
			return &node{kind: nodeNop, left: n}, nil
		}
		return &node{kind: nodeNeg, left: n}, nil
	}
	n, err := parseprimary(c)
	if err != nil {
		return nil, err
	}
	ok, err := c.eat('^')
	if err != nil {
		return nil, err
	}
	if !ok {
		return n, nil
	}
	rhs, err := parsefactor(c)
	if err != nil {
		return nil, err
	}
	return &node{kind: nodePow, left: n, right: rhs}, nil
}

// parseprimary parses a number, a parenthesized expression, or a function
// applied to a factor. The cursor is already past any spaces.
func parseprimary(c *cursor) (*node, error) {
	ok, err := c.eat('(')
	if err != nil {
		return nil, err
	}
	if ok {
		n, err := parseexpr(c)
		if err != nil {
			return nil, err
		}
		// The close bracket is optional.
		if _, err := c.eat(')'); err != nil {
			return nil, err
		}
		return n, nil
	}
	col := c.col
	switch {
	case isdigit(c.ch):
		text, err := c.scanNum()
		if err != nil {
			return nil, err
		}
		x, err := strconv.ParseFloat(text, 64)
		// Out of range literals are still numbers: +Inf, or 0 for underflow.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &NumberError{Col: col, Text: text}
		}
		return &node{kind: nodeNum, num: x, name: text}, nil
	case isletter(c.ch):
		name, err := c.scanIdent()
		if err != nil {
			return nil, err
		}
		fn := globalfuncs[name]
		if fn == nil {
			return nil, &FuncError{Col: col, Name: name}
		}
		arg, err := parsefactor(c)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, name: name, fn: fn, left: arg}, nil
	default:
		return nil, &CharError{Col: col, Char: c.ch}
	}
}
