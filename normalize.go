package analyzer

import "fmt"

// IsExpandable reports whether the subtree consists only of Number,
// Variable, the + - * binary operators and unary minus. Division, powers
// and function calls are not expandable on their own, but may still appear
// inside an otherwise-expandable tree as atoms.
func IsExpandable(e Expr) bool {
	switch v := e.(type) {
	case *Number, *Variable:
		return true
	case *UnaryOp:
		return v.Op == "-" && IsExpandable(v.Operand)
	case *BinaryOp:
		switch v.Op {
		case "+", "-", "*":
			return IsExpandable(v.Left) && IsExpandable(v.Right)
		}
		return false
	default:
		return false
	}
}

// Normalizer expands expression trees into canonical polynomials. It owns
// the atom id counter and an interning table, so identical atom strings
// within one normalizer share a single Atom. The ids label atoms in debug
// output only; equality uses the canonical string alone.
type Normalizer struct {
	atoms  map[string]*Atom
	nextID int
}

func NewNormalizer() *Normalizer {
	return &Normalizer{atoms: make(map[string]*Atom)}
}

// Normalize expands e with a fresh Normalizer.
func Normalize(e Expr) *Polynomial {
	return NewNormalizer().Normalize(e)
}

// Normalize is total over trees produced by Parse: anything it cannot
// expand becomes an opaque atom rather than a failure. Node shapes outside
// the grammar are a programming error and panic.
func (n *Normalizer) Normalize(e Expr) *Polynomial {
	switch v := e.(type) {
	case *Number:
		return polyConstant(v.Value)
	case *Variable:
		return polySymbol(v.Name)
	case *UnaryOp:
		if v.Op != "-" {
			panic(fmt.Sprintf("analyzer: unsupported unary operator %q", v.Op))
		}
		return n.Normalize(v.Operand).Neg()
	case *BinaryOp:
		switch v.Op {
		case "+":
			return n.Normalize(v.Left).Add(n.Normalize(v.Right))
		case "-":
			return n.Normalize(v.Left).Sub(n.Normalize(v.Right))
		case "*":
			return n.Normalize(v.Left).Mul(n.Normalize(v.Right))
		case "^":
			// Only literal squares and cubes of expandable bases are
			// expanded; everything else stays opaque.
			if exp, ok := v.Right.(*Number); ok && (exp.Value == 2 || exp.Value == 3) && IsExpandable(v.Left) {
				base := n.Normalize(v.Left)
				result := base
				for i := 1; i < exp.Value; i++ {
					result = result.Mul(base)
				}
				return result
			}
			return n.atomTerm(v)
		case "/":
			return n.atomTerm(v)
		}
		panic(fmt.Sprintf("analyzer: unsupported binary operator %q", v.Op))
	case *Call:
		return n.atomTerm(v)
	}
	panic(fmt.Sprintf("analyzer: unsupported node type %T", e))
}

// atomTerm wraps e as an atom and returns the polynomial 1*atom.
func (n *Normalizer) atomTerm(e Expr) *Polynomial {
	return polySymbol(n.intern(e).Key())
}

func (n *Normalizer) intern(e Expr) *Atom {
	key := e.String()
	if a, ok := n.atoms[key]; ok {
		return a
	}
	a := &Atom{ID: n.nextID, Node: e, key: key}
	n.nextID++
	n.atoms[key] = a
	tracer().Debugf("atom #%d for %s", a.ID, key)
	return a
}
