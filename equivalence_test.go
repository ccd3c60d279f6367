package analyzer_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	analyzer "github.com/SinuoXu/Mathematical-Expression-Analyzer"
)

func checkEquivalent(t *testing.T, a, b string, want bool) {
	t.Helper()
	got := analyzer.AreEquivalent(mustParse(t, a), mustParse(t, b))
	if got != want {
		t.Errorf("AreEquivalent(%q, %q): want %v, got %v", a, b, want, got)
	}
}

func TestAreEquivalent_Commutativity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	checkEquivalent(t, "a+b", "b+a", true)
	checkEquivalent(t, "a*b", "b*a", true)
	checkEquivalent(t, "x-y", "y-x", false)
	checkEquivalent(t, "x/y", "y/x", false)
}

func TestAreEquivalent_Associativity(t *testing.T) {
	checkEquivalent(t, "(x+y)+z", "x+(y+z)", true)
	checkEquivalent(t, "(x*y)*z", "x*(y*z)", true)
}

func TestAreEquivalent_Distributivity(t *testing.T) {
	checkEquivalent(t, "x*(y+z)", "x*y+x*z", true)
	checkEquivalent(t, "x*y+x*z", "x*(y+z)", true)
}

func TestAreEquivalent_Identities(t *testing.T) {
	checkEquivalent(t, "x+0", "x", true)
	checkEquivalent(t, "x*1", "x", true)
	checkEquivalent(t, "x*0", "0", true)
	checkEquivalent(t, "x-x", "0", true)
}

func TestAreEquivalent_BinomialExpansion(t *testing.T) {
	checkEquivalent(t, "(x+1)^2", "x^2+2*x+1", true)
	checkEquivalent(t, "(x+1)^3", "x^3+3*x^2+3*x+1", true)
}

func TestAreEquivalent_Distinct(t *testing.T) {
	checkEquivalent(t, "1", "2", false)
	checkEquivalent(t, "x", "y", false)
	checkEquivalent(t, "sin(x)", "cos(x)", false)
	// x^2/y^2 vs x/y^2 and x^8 vs x^16; their atoms render alike.
	checkEquivalent(t, "(x/y)*(x/y)", "x/y^2", false)
	checkEquivalent(t, "x^4*x^4", "x^4^2", false)
}

func TestAreEquivalent_FunctionArguments(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	checkEquivalent(t, "sin(x+y)", "sin(y+x)", true)
	checkEquivalent(t, "ln(x*(y+z))", "ln(x*y+x*z)", true)
	checkEquivalent(t, "sin(x)", "sin(y)", false)
}

func TestAreEquivalent_Rational(t *testing.T) {
	checkEquivalent(t, "1-1/x", "(x-1)/x", true)
	checkEquivalent(t, "x/x", "1", true)
	checkEquivalent(t, "x/y+1", "(x+y)/y", true)
	checkEquivalent(t, "1/x", "1/y", false)
}

// The oracle is sound but not complete: sqrt(x)*sqrt(x) and x print as
// different atoms and no strategy sees through the radical.
func TestAreEquivalent_Incomplete(t *testing.T) {
	checkEquivalent(t, "sqrt(x)*sqrt(x)", "x", false)
}

func TestCheckEquivalence_Methods(t *testing.T) {
	cases := []struct {
		a, b       string
		want       bool
		wantMethod analyzer.Method
	}{
		{"a+b", "b+a", true, analyzer.MethodPolynomial},
		{"(x+1)^2", "x^2+2*x+1", true, analyzer.MethodPolynomial},
		{"sin(x+y)", "sin(y+x)", true, analyzer.MethodStructural},
		{"1-1/x", "(x-1)/x", true, analyzer.MethodRational},
		{"x/x", "1", true, analyzer.MethodRational},
		{"x", "y", false, analyzer.MethodRational},
	}
	for _, c := range cases {
		ok, method, details := analyzer.CheckEquivalence(mustParse(t, c.a), mustParse(t, c.b))
		if ok != c.want || method != c.wantMethod {
			t.Errorf("CheckEquivalence(%q, %q): want (%v, %s), got (%v, %s): %s",
				c.a, c.b, c.want, c.wantMethod, ok, method, details)
		}
		if details == "" {
			t.Errorf("CheckEquivalence(%q, %q): details must not be empty", c.a, c.b)
		}
	}
}

func TestCheckEquivalence_NegativeVerdictCarriesNormalForms(t *testing.T) {
	_, _, details := analyzer.CheckEquivalence(mustParse(t, "x"), mustParse(t, "y"))
	if !strings.Contains(details, "no strategy proved equivalence") {
		t.Errorf("unexpected details: %s", details)
	}
}

// Malformed trees are a programming error for the normalizer, but the
// checker must degrade to a verdict instead of propagating the panic.
func TestCheckEquivalence_RecoversInternalErrors(t *testing.T) {
	bad := &analyzer.BinaryOp{Left: &analyzer.Variable{Name: "x"}, Op: "%", Right: &analyzer.Variable{Name: "y"}}
	ok, method, details := analyzer.CheckEquivalence(bad, mustParse(t, "x"))
	if ok {
		t.Fatal("malformed input must not prove equivalence")
	}
	if method != analyzer.MethodError {
		t.Errorf("want MethodError, got %s (%s)", method, details)
	}
}

func TestCheckEquivalence_NilExpressions(t *testing.T) {
	if ok, method, _ := analyzer.CheckEquivalence(nil, nil); ok || method != analyzer.MethodError {
		t.Errorf("nil inputs: want (false, error), got (%v, %s)", ok, method)
	}
	if analyzer.AreEquivalent(nil, mustParse(t, "x")) {
		t.Error("nil input must not be equivalent to anything")
	}
}
