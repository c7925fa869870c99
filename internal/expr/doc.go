// Package expr provides immutable arithmetic expression trees and a
// recursive evaluator.
//
// A tree is built bottom-up from three node variants:
//
//	tree := expr.Mul(expr.Add(expr.Lit(3), expr.Lit(5)), expr.Lit(2))
//	expr.Evaluate(tree) // 16
//
// or parsed from source text:
//
//	tree, err := expr.Parse("(3 + 5) * 2")
//
// # Variants
//
// Expr is sealed: Literal, Sum, and Product are the only implementations,
// so Evaluate can match them exhaustively. Nodes own their children
// exclusively and are never mutated after construction, which makes trees
// acyclic by construction and evaluation deterministic.
//
// # Overflow
//
// Arithmetic saturates at the int64 bounds rather than wrapping; see
// Evaluate for the exact clamping rules.
package expr
