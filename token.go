package analyzer

import "fmt"

// Kind classifies a token.
type Kind int

const (
	TokenNumber Kind = iota
	TokenVariable
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenImplicitMultiply
	TokenDivide
	TokenPower
	TokenLParen
	TokenRParen
	TokenFunction
	TokenEnd
)

var kindNames = [...]string{
	TokenNumber:           "NUMBER",
	TokenVariable:         "VARIABLE",
	TokenPlus:             "PLUS",
	TokenMinus:            "MINUS",
	TokenMultiply:         "MULTIPLY",
	TokenImplicitMultiply: "IMPLICIT_MULTIPLY",
	TokenDivide:           "DIVIDE",
	TokenPower:            "POWER",
	TokenLParen:           "LPAREN",
	TokenRParen:           "RPAREN",
	TokenFunction:         "FUNCTION",
	TokenEnd:              "END",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one lexeme of the input. Value holds the literal text
// ("2", "x", "sin", "+"); Pos is the byte offset in the source.
// Tokens are produced once per Tokenize call and never mutated.
type Token struct {
	Kind  Kind
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Kind == TokenEnd {
		return fmt.Sprintf("END at %d", t.Pos)
	}
	return fmt.Sprintf("%s(%q) at %d", t.Kind, t.Value, t.Pos)
}
