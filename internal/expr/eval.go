package expr

import (
	"fmt"
	"math"
)

// Evaluate computes the value of an expression tree.
//
// Evaluation is total and pure: it never mutates the tree, always terminates
// (trees are finite and acyclic), and repeated calls on the same tree return
// the same value. Every sub-expression is evaluated eagerly, exactly once per
// reference path.
//
// Arithmetic saturates at the int64 bounds: results beyond math.MaxInt64
// clamp to math.MaxInt64, and results below math.MinInt64 clamp to
// math.MinInt64. Values never wrap.
func Evaluate(e Expr) int64 {
	switch n := e.(type) {
	case *Literal:
		return n.Value
	case *Sum:
		return satAdd(Evaluate(n.Left), Evaluate(n.Right))
	case *Product:
		return satMul(Evaluate(n.Left), Evaluate(n.Right))
	default:
		// Unreachable: Expr is sealed to the three variants above.
		panic(fmt.Sprintf("expr: unknown node type %T", e))
	}
}

// satAdd returns a+b, clamped to the int64 range.
func satAdd(a, b int64) int64 {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 {
		return math.MaxInt64
	}
	if a < 0 && b < 0 && sum >= 0 {
		return math.MinInt64
	}
	return sum
}

// satMul returns a*b, clamped to the int64 range.
func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// |MinInt64| is not representable, so any product other than
		// multiplication by one overflows.
		if a == 1 {
			return b
		}
		if b == 1 {
			return a
		}
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	p := a * b
	if p/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return p
}
