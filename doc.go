// Package analyzer decides whether two single-line arithmetic expressions
// are mathematically equivalent.
//
// The pipeline has four stages:
//   - Tokenize: text into tokens, inserting implicit multiplication (2x, x y)
//   - Parse: recursive descent into an immutable expression tree
//   - Normalize: canonical sparse polynomial over variables and opaque atoms
//   - AreEquivalent / CheckEquivalence: a three-strategy cascade
//     (polynomial comparison, commutativity-aware structural comparison,
//     rational cross-multiplication)
//
// Supported input: integer literals, single-letter variables, the operators
// + - * / ^ with parentheses, and the functions sin, cos, tan, ln, sqrt.
// Decimal literals, multi-letter identifiers and negative exponents are
// rejected by the lexer and parser.
//
// The checker is sound but not complete. Non-expandable subexpressions
// (divisions, general powers, function calls) are compared by their
// canonical printed form, so two semantically equal subtrees that print
// differently are not unified and may yield a false "not equivalent".
package analyzer
