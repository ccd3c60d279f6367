package analyzer

import (
	"strconv"
	"strings"
)

// Expr is an immutable expression tree node. The variant set is closed:
// Number, Variable, BinaryOp, UnaryOp, Call. Equal is strict structural
// equality per variant; String is the canonical minimal-parenthesization
// rendering used to key atoms during normalization.
type Expr interface {
	Equal(other Expr) bool
	String() string
	exprNode()
}

// Number is a non-negative integer literal. Negative constants only occur
// wrapped in a UnaryOp or as 0 - n.
type Number struct {
	Value int
}

// Variable is a single-letter variable.
type Variable struct {
	Name string
}

// BinaryOp applies one of + - * / ^ to two operands.
type BinaryOp struct {
	Left  Expr
	Op    string
	Right Expr
}

// UnaryOp is unary minus. Op is always "-".
type UnaryOp struct {
	Op      string
	Operand Expr
}

// Call applies one of the five fixed functions to a single argument.
type Call struct {
	Func string
	Arg  Expr
}

func (*Number) exprNode()   {}
func (*Variable) exprNode() {}
func (*BinaryOp) exprNode() {}
func (*UnaryOp) exprNode()  {}
func (*Call) exprNode()     {}

func (n *Number) Equal(other Expr) bool {
	o, ok := other.(*Number)
	return ok && n.Value == o.Value
}

func (v *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && v.Name == o.Name
}

func (b *BinaryOp) Equal(other Expr) bool {
	o, ok := other.(*BinaryOp)
	return ok && b.Op == o.Op && b.Left.Equal(o.Left) && b.Right.Equal(o.Right)
}

func (u *UnaryOp) Equal(other Expr) bool {
	o, ok := other.(*UnaryOp)
	return ok && u.Op == o.Op && u.Operand.Equal(o.Operand)
}

func (c *Call) Equal(other Expr) bool {
	o, ok := other.(*Call)
	return ok && c.Func == o.Func && c.Arg.Equal(o.Arg)
}

// Operator precedence levels for rendering. Leaves and calls never need
// parentheses; unary minus always takes them when nested in an operator.
func precedence(e Expr) int {
	switch v := e.(type) {
	case *BinaryOp:
		return binaryPrecedence(v.Op)
	case *UnaryOp:
		return 0
	default:
		return 4
	}
}

func binaryPrecedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	case "^":
		return 3
	}
	return 4
}

func (n *Number) String() string   { return strconv.Itoa(n.Value) }
func (v *Variable) String() string { return v.Name }

func (b *BinaryOp) String() string {
	p := binaryPrecedence(b.Op)
	left := b.Left.String()
	if lp := precedence(b.Left); lp < p || (b.Op == "^" && lp == p) {
		left = "(" + left + ")"
	}
	right := b.Right.String()
	// ^ is right-associative; - and / are left-associative and
	// non-commutative, so an equal-precedence right child keeps parens.
	if rp := precedence(b.Right); rp < p || (rp == p && (b.Op == "-" || b.Op == "/")) {
		right = "(" + right + ")"
	}
	return left + b.Op + right
}

func (u *UnaryOp) String() string {
	operand := u.Operand.String()
	if precedence(u.Operand) < 2 {
		operand = "(" + operand + ")"
	}
	return u.Op + operand
}

func (c *Call) String() string { return c.Func + "(" + c.Arg.String() + ")" }

// Dump renders the tree as an indented listing, one node per line. It is a
// diagnostic aid for embedding programs; the pipeline never consumes it.
func Dump(e Expr) string {
	var sb strings.Builder
	dumpNode(&sb, e, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, e Expr, indent int) {
	prefix := strings.Repeat("  ", indent)
	switch v := e.(type) {
	case *Number:
		sb.WriteString(prefix + "Number: " + strconv.Itoa(v.Value) + "\n")
	case *Variable:
		sb.WriteString(prefix + "Variable: " + v.Name + "\n")
	case *BinaryOp:
		sb.WriteString(prefix + "BinaryOp: " + v.Op + "\n")
		sb.WriteString(prefix + "  Left:\n")
		dumpNode(sb, v.Left, indent+2)
		sb.WriteString(prefix + "  Right:\n")
		dumpNode(sb, v.Right, indent+2)
	case *UnaryOp:
		sb.WriteString(prefix + "UnaryOp: " + v.Op + "\n")
		sb.WriteString(prefix + "  Operand:\n")
		dumpNode(sb, v.Operand, indent+2)
	case *Call:
		sb.WriteString(prefix + "Call: " + v.Func + "\n")
		sb.WriteString(prefix + "  Argument:\n")
		dumpNode(sb, v.Arg, indent+2)
	}
}
