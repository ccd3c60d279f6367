package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
)

// Atom wraps a non-expandable subtree. Identity is the canonical printed
// string of the subtree; the id is a per-Normalizer debug label with no
// bearing on equality or ordering.
type Atom struct {
	ID   int
	Node Expr
	key  string
}

// Key returns the canonical string that identifies the atom.
func (a *Atom) Key() string { return a.key }

func (a *Atom) String() string { return fmt.Sprintf("atom#%d(%s)", a.ID, a.key) }

// factor is one symbol of a monomial: a variable name or an atom key,
// raised to a positive integer power.
type factor struct {
	sym string
	pow int
}

// Monomial is a product of distinct symbols with positive integer powers.
// Factors are kept sorted by symbol, so the derived keys are canonical and
// two monomials are identical iff their storage keys are equal.
type Monomial struct {
	factors []factor
}

// Key renders the monomial in ascending symbol order, sym^pow for powers
// above one, joined by *. The constant monomial has the empty key. This is
// the display form; it is ambiguous for atom symbols that themselves
// contain * or ^ and therefore never decides identity.
func (m Monomial) Key() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if f.pow > 1 {
			parts[i] = f.sym + "^" + strconv.Itoa(f.pow)
		} else {
			parts[i] = f.sym
		}
	}
	return strings.Join(parts, "*")
}

// mapKey is the injective storage key. Symbols are quoted, so an atom such
// as x/y raised to a power cannot collide with a one-symbol atom whose text
// is x/y^2. Two monomials have equal pair-sets iff their mapKeys are equal.
func (m Monomial) mapKey() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = strconv.Quote(f.sym) + "^" + strconv.Itoa(f.pow)
	}
	return strings.Join(parts, "*")
}

// mulMonomials unions the symbol sets of two monomials, adding the powers
// of symbols present on both sides. Both inputs are sorted; a merge walk
// keeps the result sorted.
func mulMonomials(a, b Monomial) Monomial {
	merged := make([]factor, 0, len(a.factors)+len(b.factors))
	i, j := 0, 0
	for i < len(a.factors) && j < len(b.factors) {
		switch {
		case a.factors[i].sym < b.factors[j].sym:
			merged = append(merged, a.factors[i])
			i++
		case a.factors[i].sym > b.factors[j].sym:
			merged = append(merged, b.factors[j])
			j++
		default:
			merged = append(merged, factor{a.factors[i].sym, a.factors[i].pow + b.factors[j].pow})
			i++
			j++
		}
	}
	merged = append(merged, a.factors[i:]...)
	merged = append(merged, b.factors[j:]...)
	return Monomial{merged}
}

type term struct {
	mono  Monomial
	coeff int
}

// Polynomial is a canonical sum of monomials with non-zero integer
// coefficients. Terms live in a tree map keyed by the injective monomial
// storage key, so iteration is always in ascending key order. Polynomials
// are immutable
// value objects; the arithmetic methods return fresh instances and never
// store a zero coefficient.
type Polynomial struct {
	terms *treemap.Map
}

func newPolynomial() *Polynomial {
	return &Polynomial{terms: treemap.NewWithStringComparator()}
}

// polyConstant is the polynomial c. Zero is the empty polynomial.
func polyConstant(c int) *Polynomial {
	p := newPolynomial()
	if c != 0 {
		p.terms.Put("", &term{Monomial{}, c})
	}
	return p
}

// polySymbol is the polynomial 1*sym, for a variable name or an atom key.
func polySymbol(sym string) *Polynomial {
	p := newPolynomial()
	mono := Monomial{[]factor{{sym, 1}}}
	p.terms.Put(mono.mapKey(), &term{mono, 1})
	return p
}

// addTerm merges coeff into the term for mono, dropping the entry when the
// sum cancels to zero.
func (p *Polynomial) addTerm(mono Monomial, coeff int) {
	if coeff == 0 {
		return
	}
	key := mono.mapKey()
	if existing, ok := p.terms.Get(key); ok {
		t := existing.(*term)
		t.coeff += coeff
		if t.coeff == 0 {
			p.terms.Remove(key)
		}
		return
	}
	p.terms.Put(key, &term{mono, coeff})
}

func (p *Polynomial) clone() *Polynomial {
	out := newPolynomial()
	it := p.terms.Iterator()
	for it.Next() {
		t := it.Value().(*term)
		out.terms.Put(it.Key(), &term{t.mono, t.coeff})
	}
	return out
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	out := p.clone()
	it := q.terms.Iterator()
	for it.Next() {
		t := it.Value().(*term)
		out.addTerm(t.mono, t.coeff)
	}
	return out
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	out := p.clone()
	it := q.terms.Iterator()
	for it.Next() {
		t := it.Value().(*term)
		out.addTerm(t.mono, -t.coeff)
	}
	return out
}

// Mul returns p * q: every pair of monomials is combined by summing
// per-symbol powers, with coefficients multiplied, and the partial
// products summed.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out := newPolynomial()
	pi := p.terms.Iterator()
	for pi.Next() {
		pt := pi.Value().(*term)
		qi := q.terms.Iterator()
		for qi.Next() {
			qt := qi.Value().(*term)
			out.addTerm(mulMonomials(pt.mono, qt.mono), pt.coeff*qt.coeff)
		}
	}
	return out
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := newPolynomial()
	it := p.terms.Iterator()
	for it.Next() {
		t := it.Value().(*term)
		out.terms.Put(it.Key(), &term{t.mono, -t.coeff})
	}
	return out
}

// Equal is exact map equality: same monomials, same coefficients.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p.terms.Size() != q.terms.Size() {
		return false
	}
	it := p.terms.Iterator()
	for it.Next() {
		other, ok := q.terms.Get(it.Key())
		if !ok || other.(*term).coeff != it.Value().(*term).coeff {
			return false
		}
	}
	return true
}

// Len is the number of monomials with non-zero coefficient.
func (p *Polynomial) Len() int { return p.terms.Size() }

// Coefficient returns the coefficient of the first monomial whose display
// key (Key) equals key, or zero if the polynomial has no such term. The
// constant term has the empty key. This is a diagnostic accessor; identity
// and arithmetic use the injective storage key.
func (p *Polynomial) Coefficient(key string) int {
	it := p.terms.Iterator()
	for it.Next() {
		if t := it.Value().(*term); t.mono.Key() == key {
			return t.coeff
		}
	}
	return 0
}

// String renders the polynomial with monomials in ascending key order,
// joined by " + " or " - " according to each coefficient's sign. The empty
// polynomial renders as "0".
func (p *Polynomial) String() string {
	if p.terms.Size() == 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	it := p.terms.Iterator()
	for it.Next() {
		t := it.Value().(*term)
		c := t.coeff
		switch {
		case first && c < 0:
			sb.WriteString("-")
		case !first && c < 0:
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		first = false
		if c < 0 {
			c = -c
		}
		sb.WriteString(formatMonomial(t.mono, c))
	}
	return sb.String()
}

// formatMonomial renders one monomial with a positive coefficient.
// Coefficient 1 suppresses the numeral; a coefficient above 1 applied to
// more than one symbol or to a powered symbol takes an explicit
// multiplication with parentheses, e.g. 2*(x*y) and 2*(x^2) but 2*x.
func formatMonomial(m Monomial, coeff int) string {
	if len(m.factors) == 0 {
		return strconv.Itoa(coeff)
	}
	body := m.Key()
	if coeff == 1 {
		return body
	}
	if len(m.factors) > 1 || m.factors[0].pow > 1 {
		return strconv.Itoa(coeff) + "*(" + body + ")"
	}
	return strconv.Itoa(coeff) + "*" + body
}
