/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package filter

import (
	"strconv"
	"strings"

	"github.com/suparena/tablebind/errors"
	"github.com/suparena/tablebind/storagemodels"
)

// Op is a comparison operator keyword.
type Op string

const (
	OpEq Op = "eq"
	OpNe Op = "ne"
	OpGt Op = "gt"
	OpGe Op = "ge"
	OpLt Op = "lt"
	OpLe Op = "le"
)

var comparisonOps = map[string]Op{
	"eq": OpEq, "ne": OpNe, "gt": OpGt, "ge": OpGe, "lt": OpLt, "le": OpLe,
}

// Node is a parsed filter expression node.
type Node interface {
	isNode()
}

// Comparison is `Ident op literal`.
type Comparison struct {
	Ident string
	Op    Op
	Lit   storagemodels.Value
}

// And is the conjunction of two sub-expressions.
type And struct {
	Left, Right Node
}

// Or is the disjunction of two sub-expressions.
type Or struct {
	Left, Right Node
}

// Not negates a sub-expression.
type Not struct {
	Operand Node
}

func (*Comparison) isNode() {}
func (*And) isNode()        {}
func (*Or) isNode()         {}
func (*Not) isNode()        {}

// Expr is a compiled filter expression. A nil *Expr matches everything.
type Expr struct {
	source string
	root   Node
}

// Source returns the original expression text.
func (x *Expr) Source() string {
	if x == nil {
		return ""
	}
	return x.source
}

// Root returns the expression tree, nil for a match-all expression.
func (x *Expr) Root() Node {
	if x == nil {
		return nil
	}
	return x.root
}

// Parse compiles a filter expression. Empty or blank input yields a nil
// expression, meaning match-all.
//
// Grammar:
//
//	expr       = or
//	or         = and { "or" and }
//	and        = unary { "and" unary }
//	unary      = "not" unary | "(" expr ")" | comparison
//	comparison = Ident ( "eq"|"ne"|"gt"|"ge"|"lt"|"le" ) literal
//	literal    = 'string' | number | "true" | "false"
func Parse(source string) (*Expr, error) {
	if strings.TrimSpace(source) == "" {
		return nil, nil
	}
	p := &parser{source: source}
	p.next()
	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.tok.kind != tokEOF {
		return nil, errors.NewFilterSyntaxError(source, p.tok.offset, "unexpected trailing input")
	}
	return &Expr{source: source, root: root}, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokString
	tokNumber
	tokLParen
	tokRParen
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

type parser struct {
	source string
	pos    int
	tok    token
	err    error
}

func (p *parser) next() {
	for p.pos < len(p.source) && (p.source[p.pos] == ' ' || p.source[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.source) {
		p.tok = token{kind: tokEOF, offset: start}
		return
	}

	c := p.source[p.pos]
	switch {
	case c == '(':
		p.pos++
		p.tok = token{kind: tokLParen, text: "(", offset: start}
	case c == ')':
		p.pos++
		p.tok = token{kind: tokRParen, text: ")", offset: start}
	case c == '\'':
		var sb strings.Builder
		p.pos++
		for {
			if p.pos >= len(p.source) {
				p.err = errors.NewFilterSyntaxError(p.source, start, "unterminated string literal")
				p.tok = token{kind: tokEOF, offset: p.pos}
				return
			}
			if p.source[p.pos] == '\'' {
				// '' escapes a literal quote
				if p.pos+1 < len(p.source) && p.source[p.pos+1] == '\'' {
					sb.WriteByte('\'')
					p.pos += 2
					continue
				}
				p.pos++
				break
			}
			sb.WriteByte(p.source[p.pos])
			p.pos++
		}
		p.tok = token{kind: tokString, text: sb.String(), offset: start}
	case c == '-' || (c >= '0' && c <= '9'):
		p.pos++
		for p.pos < len(p.source) && (isDigit(p.source[p.pos]) || p.source[p.pos] == '.' ||
			p.source[p.pos] == 'e' || p.source[p.pos] == 'E' ||
			((p.source[p.pos] == '+' || p.source[p.pos] == '-') && (p.source[p.pos-1] == 'e' || p.source[p.pos-1] == 'E'))) {
			p.pos++
		}
		p.tok = token{kind: tokNumber, text: p.source[start:p.pos], offset: start}
	case isIdentStart(c):
		p.pos++
		for p.pos < len(p.source) && isIdentPart(p.source[p.pos]) {
			p.pos++
		}
		p.tok = token{kind: tokIdent, text: p.source[start:p.pos], offset: start}
	default:
		p.err = errors.NewFilterSyntaxError(p.source, start, "unexpected character "+strconv.QuoteRune(rune(c)))
		p.tok = token{kind: tokEOF, offset: start}
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

func (p *parser) parseOr() (Node, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIdent && p.tok.text == "or" {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokIdent && p.tok.text == "and" {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.err != nil {
		return nil, p.err
	}
	switch {
	case p.tok.kind == tokIdent && p.tok.text == "not":
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	case p.tok.kind == tokLParen:
		p.next()
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, errors.NewFilterSyntaxError(p.source, p.tok.offset, "expected ')'")
		}
		p.next()
		return inner, nil
	case p.tok.kind == tokIdent:
		return p.parseComparison()
	default:
		return nil, errors.NewFilterSyntaxError(p.source, p.tok.offset, "expected expression")
	}
}

func (p *parser) parseComparison() (Node, error) {
	ident := p.tok.text
	p.next()

	if p.tok.kind != tokIdent {
		return nil, errors.NewFilterSyntaxError(p.source, p.tok.offset, "expected comparison operator")
	}
	op, ok := comparisonOps[p.tok.text]
	if !ok {
		return nil, errors.NewFilterSyntaxError(p.source, p.tok.offset, "unknown operator "+strconv.Quote(p.tok.text))
	}
	p.next()

	lit, err := p.parseLiteral()
	if err != nil {
		return nil, err
	}
	return &Comparison{Ident: ident, Op: op, Lit: lit}, nil
}

func (p *parser) parseLiteral() (storagemodels.Value, error) {
	if p.err != nil {
		return storagemodels.Value{}, p.err
	}
	defer p.next()
	switch p.tok.kind {
	case tokString:
		return storagemodels.StringValue(p.tok.text), nil
	case tokNumber:
		text := p.tok.text
		if !strings.ContainsAny(text, ".eE") {
			if i, err := strconv.ParseInt(text, 10, 64); err == nil {
				return storagemodels.IntegerValue(i), nil
			}
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return storagemodels.Value{}, errors.NewFilterSyntaxError(p.source, p.tok.offset, "invalid number literal")
		}
		return storagemodels.FloatValue(f), nil
	case tokIdent:
		switch p.tok.text {
		case "true":
			return storagemodels.BooleanValue(true), nil
		case "false":
			return storagemodels.BooleanValue(false), nil
		}
	}
	return storagemodels.Value{}, errors.NewFilterSyntaxError(p.source, p.tok.offset, "expected literal")
}
