package analyzer

import "fmt"

// Method names the strategy that produced an equivalence verdict.
type Method string

const (
	MethodPolynomial Method = "polynomial"
	MethodStructural Method = "structural"
	MethodRational   Method = "rational"
	MethodError      Method = "error"
)

// AreEquivalent reports whether a and b are mathematically equivalent. It
// never fails: internal errors degrade to "not proven equivalent".
//
// The check is sound but not complete; see the package documentation.
func AreEquivalent(a, b Expr) bool {
	ok, _, _ := CheckEquivalence(a, b)
	return ok
}

// CheckEquivalence runs the three-strategy cascade and reports which
// strategy produced the verdict. Strategies run in order — polynomial
// comparison, structural comparison with commutativity, rational
// cross-multiplication — each only if the previous did not already prove
// equivalence. A clean negative verdict carries both normal forms in the
// details; a verdict degraded by an internal failure reports MethodError.
func CheckEquivalence(a, b Expr) (bool, Method, string) {
	if a == nil || b == nil {
		return false, MethodError, "nil expression"
	}

	var firstErr error

	pa, errA := safeNormalize(a)
	pb, errB := safeNormalize(b)
	switch {
	case errA != nil:
		firstErr = errA
	case errB != nil:
		firstErr = errB
	case pa.Equal(pb):
		tracer().Debugf("equivalent by polynomial comparison: %s", pa)
		return true, MethodPolynomial, fmt.Sprintf("both normalize to %s", pa)
	}

	if ok, err := safeStructural(a, b); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else if ok {
		tracer().Debugf("equivalent by structural comparison")
		return true, MethodStructural, "trees match up to commutativity of + and *"
	}

	if poly, err := safeRational(a, b); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else if poly != nil {
		tracer().Debugf("equivalent by rational cross-multiplication: %s", poly)
		return true, MethodRational, fmt.Sprintf("cross products normalize to %s", poly)
	}

	if firstErr != nil {
		tracer().Errorf("equivalence check degraded: %v", firstErr)
		return false, MethodError, firstErr.Error()
	}
	return false, MethodRational,
		fmt.Sprintf("no strategy proved equivalence; normal forms %s vs %s", pa, pb)
}

// safeNormalize demotes normalizer panics to errors so the cascade can
// fall through to the next strategy.
func safeNormalize(e Expr) (p *Polynomial, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("normalization failed: %v", r)
		}
	}()
	return Normalize(e), nil
}

func safeStructural(a, b Expr) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("structural comparison failed: %v", r)
		}
	}()
	return structuralEqual(a, b), nil
}

// structuralEqual compares two trees node by node, accepting either
// orientation of the operands of + and *. At every level it first probes
// for polynomial equality of the corresponding subtrees, which is what
// lets sin(x+y) and sin(y+x) match as function arguments.
func structuralEqual(a, b Expr) bool {
	if pa, err := safeNormalize(a); err == nil {
		if pb, err2 := safeNormalize(b); err2 == nil && pa.Equal(pb) {
			return true
		}
	}
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Name == y.Name
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.Op == y.Op && structuralEqual(x.Operand, y.Operand)
	case *Call:
		y, ok := b.(*Call)
		return ok && x.Func == y.Func && structuralEqual(x.Arg, y.Arg)
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		if !ok || x.Op != y.Op {
			return false
		}
		if x.Op == "+" || x.Op == "*" {
			return (structuralEqual(x.Left, y.Left) && structuralEqual(x.Right, y.Right)) ||
				(structuralEqual(x.Left, y.Right) && structuralEqual(x.Right, y.Left))
		}
		return structuralEqual(x.Left, y.Left) && structuralEqual(x.Right, y.Right)
	}
	return false
}

// safeRational rewrites both expressions as numerator/denominator pairs,
// cross-multiplies and compares the normalized products. It returns the
// shared normal form on success, nil when the strategy proves nothing.
func safeRational(a, b Expr) (p *Polynomial, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("rational comparison failed: %v", r)
		}
	}()
	numA, denA := rationalForm(a)
	numB, denB := rationalForm(b)
	crossA := Normalize(&BinaryOp{numA, "*", denB})
	crossB := Normalize(&BinaryOp{numB, "*", denA})
	if crossA.Equal(crossB) {
		return crossA, nil
	}
	return nil, nil
}

// rationalForm rewrites e into a single fraction by structural recursion
// over + - * and /. Power nodes and all other shapes are left as-is with
// denominator 1.
func rationalForm(e Expr) (num, den Expr) {
	switch v := e.(type) {
	case *BinaryOp:
		switch v.Op {
		case "+", "-":
			n1, d1 := rationalForm(v.Left)
			n2, d2 := rationalForm(v.Right)
			// a/b ± c/d = (a·d ± c·b) / (b·d)
			num = &BinaryOp{
				Left:  &BinaryOp{n1, "*", d2},
				Op:    v.Op,
				Right: &BinaryOp{n2, "*", d1},
			}
			return num, &BinaryOp{d1, "*", d2}
		case "*":
			n1, d1 := rationalForm(v.Left)
			n2, d2 := rationalForm(v.Right)
			return &BinaryOp{n1, "*", n2}, &BinaryOp{d1, "*", d2}
		case "/":
			n1, d1 := rationalForm(v.Left)
			n2, d2 := rationalForm(v.Right)
			// (a/b) / (c/d) = (a·d) / (b·c)
			return &BinaryOp{n1, "*", d2}, &BinaryOp{d1, "*", n2}
		}
		return e, &Number{1}
	case *UnaryOp:
		n, d := rationalForm(v.Operand)
		return &UnaryOp{"-", n}, d
	default:
		return e, &Number{1}
	}
}
