package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/commodity"
)

// evalExpression parses and evaluates an infix expression over amount
// literals, following the usual precedence:
//
//	expr   = term   { ("+"|"-") term } .
//	term   = factor { ("*"|"/") factor } .
//	factor = "-" factor | "(" expr ")" | literal .
//
// Operands go through ParseAmount (ParseAmountExact when exact is set), so
// evaluating an expression also observes its literals on the default
// registry.
func evalExpression(s string, exact bool) (commodity.Value, error) {
	p := &exprParser{tokens: tokenize(s), exact: exact}
	if len(p.tokens) == 0 {
		return nil, errors.New("empty expression")
	}
	v, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, fmt.Errorf("unexpected %q after expression", tok)
	}
	return v, nil
}

// tokenize splits s into operator and literal tokens. Operators are the
// single characters + - * / ( ); a literal is any other maximal run,
// whitespace trimmed. Double quotes protect operator characters so quoted
// commodity names pass through.
func tokenize(s string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			tokens = append(tokens, t)
		}
		cur.Reset()
	}

	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			cur.WriteRune(r)
		case !quoted && strings.ContainsRune("+-*/()", r):
			flush()
			tokens = append(tokens, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}

type exprParser struct {
	tokens []string
	pos    int
	exact  bool
}

func (p *exprParser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *exprParser) next() (string, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// accept consumes the next token if it is one of the single-character
// operators in ops.
func (p *exprParser) accept(ops string) (string, bool) {
	tok, ok := p.peek()
	if ok && len(tok) == 1 && strings.Contains(ops, tok) {
		p.pos++
		return tok, true
	}
	return "", false
}

func (p *exprParser) expr() (commodity.Value, error) {
	v, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept("+-")
		if !ok {
			return v, nil
		}
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			v = commodity.Add(v, r)
		} else {
			v = commodity.Sub(v, r)
		}
	}
}

func (p *exprParser) term() (commodity.Value, error) {
	v, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept("*/")
		if !ok {
			return v, nil
		}
		r, err := p.factor()
		if err != nil {
			return nil, err
		}
		if op == "*" {
			v, err = commodity.Mul(v, r)
		} else {
			v, err = commodity.Div(v, r)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *exprParser) factor() (commodity.Value, error) {
	tok, ok := p.next()
	if !ok {
		return nil, errors.New("unexpected end of expression")
	}
	switch tok {
	case "-":
		v, err := p.factor()
		if err != nil {
			return nil, err
		}
		return commodity.Neg(v), nil
	case "(":
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(")"); !ok {
			return nil, errors.New("missing closing parenthesis")
		}
		return v, nil
	case "+", "*", "/", ")":
		return nil, fmt.Errorf("unexpected %q", tok)
	}

	if p.exact {
		return commodity.ParseAmountExact(tok)
	}
	return commodity.ParseAmount(tok)
}
