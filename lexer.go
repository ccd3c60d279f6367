package analyzer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// LexError reports an invalid character in the input. Pos is the byte
// offset of the offending character.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

// functions are the only multi-letter identifiers the lexer accepts.
var functions = map[string]bool{
	"sin":  true,
	"cos":  true,
	"tan":  true,
	"ln":   true,
	"sqrt": true,
}

var operatorKinds = map[rune]Kind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMultiply,
	'/': TokenDivide,
	'^': TokenPower,
	'(': TokenLParen,
	')': TokenRParen,
}

// implicitMultNext maps a token kind to the set of follower kinds that
// trigger insertion of an IMPLICIT_MULTIPLY token between the two.
var implicitMultNext = map[Kind]map[Kind]bool{
	TokenNumber:   {TokenVariable: true, TokenFunction: true, TokenLParen: true},
	TokenVariable: {TokenVariable: true, TokenFunction: true, TokenLParen: true, TokenNumber: true},
	TokenRParen:   {TokenVariable: true, TokenFunction: true, TokenLParen: true, TokenNumber: true},
}

// Tokenize converts input into a token sequence terminated by an END token.
// It fails on the first invalid character. A second pass inserts
// IMPLICIT_MULTIPLY tokens for adjacent pairs such as 2x, xy and )( .
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(input) {
		r, width := utf8.DecodeRuneInString(input[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += width
		case r >= '0' && r <= '9':
			start := pos
			for pos < len(input) && input[pos] >= '0' && input[pos] <= '9' {
				pos++
			}
			if pos < len(input) && input[pos] == '.' {
				return nil, &LexError{
					Pos: pos,
					Msg: "unexpected character '.': decimal literals are not supported",
				}
			}
			tokens = append(tokens, Token{TokenNumber, input[start:pos], start})
		case isLetter(r):
			start := pos
			for pos < len(input) {
				r2, w2 := utf8.DecodeRuneInString(input[pos:])
				if !isLetter(r2) {
					break
				}
				pos += w2
			}
			ident := input[start:pos]
			switch {
			case functions[ident]:
				tokens = append(tokens, Token{TokenFunction, ident, start})
			case len(ident) == 1:
				tokens = append(tokens, Token{TokenVariable, ident, start})
			default:
				return nil, &LexError{
					Pos: start,
					Msg: fmt.Sprintf("invalid identifier %q", ident),
				}
			}
		default:
			kind, ok := operatorKinds[r]
			if !ok {
				return nil, &LexError{
					Pos: pos,
					Msg: fmt.Sprintf("unexpected character %q", r),
				}
			}
			tokens = append(tokens, Token{kind, string(r), pos})
			pos += width
		}
	}
	tokens = append(tokens, Token{TokenEnd, "", len(input)})
	tokens = insertImplicitMultiply(tokens)
	tracer().Debugf("tokenized %q into %d tokens", input, len(tokens))
	return tokens, nil
}

// insertImplicitMultiply is a pure function of the token kind sequence; it
// never re-scans the source text.
func insertImplicitMultiply(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	for i, tok := range tokens {
		out = append(out, tok)
		if i+1 >= len(tokens) {
			break
		}
		next := tokens[i+1]
		if implicitMultNext[tok.Kind][next.Kind] {
			out = append(out, Token{TokenImplicitMultiply, "*", tok.Pos + len(tok.Value)})
		}
	}
	return out
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
