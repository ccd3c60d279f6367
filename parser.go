package analyzer

import (
	"fmt"
	"strconv"
)

// ParseError reports a grammar violation. Pos is the byte offset of the
// token that could not be consumed.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}

// Parse tokenizes input and parses it into an expression tree.
//
// Precedence, lowest to highest: addition/subtraction, unary minus,
// multiplication/division, exponentiation (right-associative), function
// application, primaries. Unary minus deliberately sits below
// multiplication and power, so -x^2 is -(x^2) and -x*y is -(x*y).
func Parse(input string) (Expr, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a token sequence produced by Tokenize. The sequence
// must be END-terminated; trailing tokens after a complete expression are
// an error.
func ParseTokens(tokens []Token) (Expr, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{0, "empty token stream"}
	}
	p := &parser{tokens: tokens}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEnd {
		return nil, &ParseError{tok.Pos, fmt.Sprintf("trailing token %s after complete expression", tok)}
	}
	tracer().Debugf("parsed expression %s", expr)
	return expr, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// parseExpression handles + and - (left-associative). A leading minus is a
// special production rewritten as 0 - operand, distinct from nested unary
// minus.
func (p *parser) parseExpression() (Expr, error) {
	var left Expr
	if p.current().Kind == TokenMinus {
		p.advance()
		if p.current().Kind == TokenMinus {
			return nil, &ParseError{p.current().Pos, "consecutive unary minus is not supported"}
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{&Number{0}, "-", operand}
	} else {
		var err error
		left, err = p.parseUnary()
		if err != nil {
			return nil, err
		}
	}
	for {
		tok := p.current()
		if tok.Kind != TokenPlus && tok.Kind != TokenMinus {
			break
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{left, tok.Value, right}
	}
	return left, nil
}

// parseUnary handles nested unary minus. The operand binds at the
// multiplication level, so -x^2 parses as -(x^2), never (-x)^2.
func (p *parser) parseUnary() (Expr, error) {
	if p.current().Kind == TokenMinus {
		p.advance()
		if p.current().Kind == TokenMinus {
			return nil, &ParseError{p.current().Pos, "consecutive unary minus is not supported"}
		}
		operand, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{"-", operand}, nil
	}
	return p.parseTerm()
}

// parseTerm handles * and / (left-associative). Implicit multiplication
// tokens are consumed here and rewritten to the * operator.
func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.current()
		if tok.Kind != TokenMultiply && tok.Kind != TokenImplicitMultiply && tok.Kind != TokenDivide {
			break
		}
		p.advance()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		op := tok.Value
		if tok.Kind == TokenImplicitMultiply {
			op = "*"
		}
		left = &BinaryOp{left, op, right}
	}
	return left, nil
}

// parsePower handles ^ (right-associative): a^b^c is a^(b^c).
func (p *parser) parsePower() (Expr, error) {
	left, err := p.parseFuncall()
	if err != nil {
		return nil, err
	}
	if p.current().Kind == TokenPower {
		p.advance()
		if p.current().Kind == TokenMinus {
			return nil, &ParseError{p.current().Pos, "negative exponents are not supported"}
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{left, "^", right}, nil
	}
	return left, nil
}

// parseFuncall handles function application. The argument is a single
// primary, so sin x+y parses as sin(x) + y.
func (p *parser) parseFuncall() (Expr, error) {
	if p.current().Kind == TokenFunction {
		tok := p.advance()
		arg, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return &Call{tok.Value, arg}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case TokenNumber:
		p.advance()
		value, err := strconv.Atoi(tok.Value)
		if err != nil {
			return nil, &ParseError{tok.Pos, fmt.Sprintf("number literal %q out of range", tok.Value)}
		}
		return &Number{value}, nil
	case TokenVariable:
		p.advance()
		return &Variable{tok.Value}, nil
	case TokenLParen:
		p.advance()
		if p.current().Kind == TokenRParen {
			return nil, &ParseError{p.current().Pos, "empty parentheses"}
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != TokenRParen {
			return nil, &ParseError{p.current().Pos, "missing closing parenthesis"}
		}
		p.advance()
		return expr, nil
	case TokenEnd:
		return nil, &ParseError{tok.Pos, "unexpected end of expression: missing operand"}
	}
	return nil, &ParseError{tok.Pos, fmt.Sprintf("unexpected token %s", tok)}
}
