package analyzer_test

import (
	"testing"

	analyzer "github.com/SinuoXu/Mathematical-Expression-Analyzer"
)

func normalize(t *testing.T, input string) *analyzer.Polynomial {
	t.Helper()
	return analyzer.Normalize(mustParse(t, input))
}

func TestNormalize_BinomialSquare(t *testing.T) {
	expanded := normalize(t, "(x+1)^2")
	reference := normalize(t, "x^2+2*x+1")
	if !expanded.Equal(reference) {
		t.Fatalf("(x+1)^2 = %s, want %s", expanded, reference)
	}
	if expanded.Len() != 3 {
		t.Errorf("want 3 monomials, got %d", expanded.Len())
	}
	if c := expanded.Coefficient(""); c != 1 {
		t.Errorf("constant term: want 1, got %d", c)
	}
	if c := expanded.Coefficient("x"); c != 2 {
		t.Errorf("x term: want 2, got %d", c)
	}
	if c := expanded.Coefficient("x^2"); c != 1 {
		t.Errorf("x^2 term: want 1, got %d", c)
	}
}

func TestNormalize_BinomialCube(t *testing.T) {
	if got, want := normalize(t, "(x+1)^3"), normalize(t, "x^3+3*x^2+3*x+1"); !got.Equal(want) {
		t.Errorf("(x+1)^3 = %s, want %s", got, want)
	}
}

func TestNormalize_QuarticStaysOpaque(t *testing.T) {
	p := normalize(t, "(x+1)^4")
	if p.Len() != 1 {
		t.Fatalf("want a single atom monomial, got %s", p)
	}
	if c := p.Coefficient("(x+1)^4"); c != 1 {
		t.Errorf("want coefficient 1 for atom (x+1)^4, got %d", c)
	}
	if p.Equal(normalize(t, "x^4+4*x^3+6*x^2+4*x+1")) {
		t.Error("opaque quartic must differ from its expanded form")
	}
}

func TestNormalize_ExponentOneStaysOpaque(t *testing.T) {
	p := normalize(t, "x^1")
	if p.Len() != 1 || p.Coefficient("x^1") != 1 {
		t.Errorf("x^1 should be a single atom monomial, got %s", p)
	}
}

func TestNormalize_NonExpandableBaseStaysOpaque(t *testing.T) {
	p := normalize(t, "(sin(x)+1)^2")
	if p.Len() != 1 || p.Coefficient("(sin(x)+1)^2") != 1 {
		t.Errorf("(sin(x)+1)^2 should be a single atom monomial, got %s", p)
	}
}

func TestNormalize_ZeroCoefficientsPruned(t *testing.T) {
	p := normalize(t, "x-x")
	if p.Len() != 0 || p.String() != "0" {
		t.Errorf("x-x: want empty polynomial, got %s", p)
	}
	if q := normalize(t, "x*0"); q.Len() != 0 {
		t.Errorf("x*0: want empty polynomial, got %s", q)
	}
}

func TestNormalize_RepeatedSymbolPowers(t *testing.T) {
	p := normalize(t, "x*x*x")
	if p.Len() != 1 || p.Coefficient("x^3") != 1 {
		t.Errorf("x*x*x: want x^3, got %s", p)
	}
	q := normalize(t, "sin(x)*sin(x)")
	if q.Len() != 1 || q.Coefficient("sin(x)^2") != 1 {
		t.Errorf("sin(x)*sin(x): want sin(x)^2, got %s", q)
	}
}

func TestNormalize_DivisionIsAtomic(t *testing.T) {
	p := normalize(t, "x/y")
	if p.Len() != 1 || p.Coefficient("x/y") != 1 {
		t.Errorf("x/y: want a single x/y atom, got %s", p)
	}
	// The whole left-associated quotient is one atom, not 2 * (x/y).
	q := normalize(t, "2*x/y")
	if q.Len() != 1 || q.Coefficient("2*x/y") != 1 {
		t.Errorf("2*x/y: want a single 2*x/y atom, got %s", q)
	}
}

func TestNormalize_UnaryMinusNegates(t *testing.T) {
	p := normalize(t, "0-(x+2)")
	if p.Coefficient("x") != -1 || p.Coefficient("") != -2 {
		t.Errorf("0-(x+2): got %s", p)
	}
	// y+-x carries a genuine UnaryOp node.
	q := normalize(t, "y+-x")
	if q.Coefficient("x") != -1 || q.Coefficient("y") != 1 {
		t.Errorf("y+-x: got %s", q)
	}
}

// An atom raised to a power and a single atom whose text happens to render
// the same way are different monomials, even though both display as x/y^2.
func TestNormalize_AtomPowersKeepIdentity(t *testing.T) {
	squared := normalize(t, "(x/y)*(x/y)")
	quotient := normalize(t, "x/y^2")
	if squared.Equal(quotient) {
		t.Error("(x/y)*(x/y) must not equal x/y^2")
	}
	if normalize(t, "x^4*x^4").Equal(normalize(t, "x^4^2")) {
		t.Error("x^4*x^4 must not equal x^4^2")
	}
}

func TestNormalize_DifferenceOfSquares(t *testing.T) {
	if got, want := normalize(t, "(x+y)*(x-y)"), normalize(t, "x^2-y^2"); !got.Equal(want) {
		t.Errorf("(x+y)*(x-y) = %s, want %s", got, want)
	}
}

func TestPolynomial_String(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"x^2+2*x+1", "1 + 2*x + x^2"},
		{"0", "0"},
		{"x-x", "0"},
		{"2*x*y", "2*(x*y)"},
		{"3*x", "3*x"},
		{"2*x^2", "2*(x^2)"},
		{"0-x", "-x"},
		{"y-2*x", "-2*x + y"},
		{"x*y+z", "x*y + z"},
		{"2sin(x)y", "2*(sin(x)*y)"},
	}
	for _, c := range cases {
		if got := normalize(t, c.input).String(); got != c.want {
			t.Errorf("Normalize(%q).String(): want %q, got %q", c.input, c.want, got)
		}
	}
}

func TestPolynomial_EqualIsMapEquality(t *testing.T) {
	if normalize(t, "x").Equal(normalize(t, "y")) {
		t.Error("x and y must differ")
	}
	if normalize(t, "x").Equal(normalize(t, "2*x")) {
		t.Error("x and 2*x must differ")
	}
	if !normalize(t, "x+y").Equal(normalize(t, "y+x")) {
		t.Error("x+y and y+x must normalize identically")
	}
}

func TestIsExpandable(t *testing.T) {
	expandable := []string{"42", "x", "x+y", "x-y", "x*y", "-x", "x*(y+z)", "y+-x"}
	for _, input := range expandable {
		if !analyzer.IsExpandable(mustParse(t, input)) {
			t.Errorf("IsExpandable(%q): want true", input)
		}
	}
	opaque := []string{"x/y", "x^2", "sin(x)"}
	for _, input := range opaque {
		if analyzer.IsExpandable(mustParse(t, input)) {
			t.Errorf("IsExpandable(%q): want false", input)
		}
	}
	// Atoms inside an expandable spine do not make the spine expandable.
	if analyzer.IsExpandable(mustParse(t, "x+sin(y)")) {
		t.Error("IsExpandable(x+sin(y)): want false")
	}
}
