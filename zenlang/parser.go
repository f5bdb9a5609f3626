package zenlang

import (
	"errors"
	"unicode/utf8"
)

const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth bounds expression and block nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// LogicalOperators is passed to the Lexer.
	LogicalOperators bool
	// Recover collects parse errors into BadExpr nodes and keeps going.
	Recover bool
}

func DefaultOptions() Options {
	return Options{
		MaxDepth:         DefaultMaxDepth,
		LogicalOperators: true,
	}
}

// Parser builds Expr trees with one token of lookahead. It only ever sees
// the formatting-free view of its token stream.
type Parser struct {
	source  *Source
	tokens  TokenStream
	options Options
	depth   int
	errs    []error
}

func NewParser(source *Source, options Options) *Parser {
	lexer := NewLexer(source)
	lexer.LogicalOperators = options.LogicalOperators
	return NewTokenParser(source, lexer, options)
}

func NewTokenParser(source *Source, tokens TokenStream, options Options) *Parser {
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}
	return &Parser{
		source:  source,
		tokens:  SkipFormatting(tokens),
		options: options,
	}
}

func Parse(name string, content string, options Options) (*Group, error) {
	return NewParser(NewSource(name, content), options).Parse()
}

// Parse reads every top-level expression into a StatementBlock. In recovery
// mode the tree is returned together with all collected errors.
func (p *Parser) Parse() (*Group, error) {
	root := NewGroup(StatementBlock, nil, Pos{Line: 1, Column: 1})
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			break
		}
		expr, err := p.ParseExpression()
		if err != nil {
			if !p.recoverFrom(err, TokenEOF) {
				return nil, err
			}
			expr = &BadExpr{Err: err, Pos: tok.Pos}
		}
		root.Exprs = append(root.Exprs, expr)
	}
	if len(p.errs) > 0 {
		return root, errors.Join(p.errs...)
	}
	return root, nil
}

// ParseExpression parses one expression. At end of input it returns an
// *EndOfFile without advancing.
func (p *Parser) ParseExpression() (Expr, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if err := p.enter(tok); err != nil {
		return nil, err
	}
	defer p.leave()

	switch tok.Kind {
	case TokenIdentifier:
		return p.parseIdentifier()
	case TokenNumber, TokenString, TokenChar, TokenBool:
		return p.parseLiteral()
	case TokenSpread:
		return p.parseSpread()
	case TokenCurlyOpen:
		return p.parseCurlyBlock(nil)
	case TokenParenOpen:
		return p.parseParenBlock(nil)
	case TokenEOF:
		return &EndOfFile{Pos: tok.Pos}, nil
	}

	return nil, p.unexpected(tok, "expression")
}

func (p *Parser) enter(tok *Token) error {
	if p.depth >= p.options.MaxDepth {
		return p.errorAt(ErrTooDeep, tok, "")
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) errorAt(err error, tok *Token, context string) error {
	return WithPos(&ParseError{
		Err:     err,
		Token:   tok,
		Context: context,
	}, p.source, tok.Pos)
}

func (p *Parser) unexpected(tok *Token, context string) error {
	if tok.Kind == TokenEOF {
		return p.errorAt(ErrUnexpectedEOF, tok, context)
	}
	return p.errorAt(ErrUnexpectedToken, tok, context)
}

// fail is for errors raised after the construct was fully consumed.
func (p *Parser) fail(err error, pos Pos) (Expr, error) {
	if p.options.Recover {
		p.errs = append(p.errs, err)
		return &BadExpr{Err: err, Pos: pos}, nil
	}
	return nil, err
}

func (p *Parser) expect(kind TokenKind, context string) (*Token, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind != kind {
		return nil, p.unexpected(tok, context)
	}
	p.tokens.Consume()
	return tok, nil
}

func (p *Parser) peekKind() (TokenKind, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return TokenInvalid, err
	}
	return tok.Kind, nil
}

// operand parses the expression after ':', '.' or '...'.
func (p *Parser) operand(context string, identifierOnly bool) (Expr, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenEOF || (identifierOnly && tok.Kind != TokenIdentifier) {
		return nil, p.unexpected(tok, context)
	}
	return p.ParseExpression()
}

func (p *Parser) parseIdentifier() (Expr, error) {
	tok, err := p.expect(TokenIdentifier, "identifier")
	if err != nil {
		return nil, err
	}
	ident := &Identifier{
		Name: tok.Text,
		Pos:  tok.Pos,
	}

	next, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	switch next {

	case TokenColon:
		p.tokens.Consume()
		value, err := p.operand("assignment value", false)
		if err != nil {
			return nil, err
		}
		return &Binary{
			Op:    Assignment,
			Left:  ident,
			Right: value,
			Pos:   ident.Pos,
		}, nil

	case TokenDot:
		p.tokens.Consume()
		property, err := p.operand("accessor property", true)
		if err != nil {
			return nil, err
		}
		return &Binary{
			Op:    Accessor,
			Left:  ident,
			Right: property,
			Pos:   ident.Pos,
		}, nil

	case TokenCurlyOpen:
		return p.parseCurlyBlock(ident)

	case TokenParenOpen:
		return p.parseParenBlock(ident)

	}

	return ident, nil
}

func (p *Parser) parseSpread() (Expr, error) {
	tok, err := p.expect(TokenSpread, "spread")
	if err != nil {
		return nil, err
	}
	inner, err := p.operand("spread operand", true)
	if err != nil {
		return nil, err
	}
	return &Unary{
		Op:   UnarySpread,
		Expr: inner,
		Pos:  tok.Pos,
	}, nil
}

func (p *Parser) parseLiteral() (Expr, error) {
	tok, err := p.tokens.Current()
	if err != nil {
		return nil, err
	}
	p.tokens.Consume()

	switch tok.Kind {
	case TokenNumber:
		lit, err := parseNumber(tok.Text, tok.Pos)
		if err != nil {
			return p.fail(p.errorAt(err, tok, "number literal"), tok.Pos)
		}
		return lit, nil
	case TokenString:
		return &StringLiteral{Value: tok.Text, Pos: tok.Pos}, nil
	case TokenChar:
		r, _ := utf8.DecodeRuneInString(tok.Text)
		return &CharLiteral{Value: r, Pos: tok.Pos}, nil
	case TokenBool:
		return &BoolLiteral{Value: tok.Text == "true", Pos: tok.Pos}, nil
	}

	return nil, p.unexpected(tok, "literal")
}

// members collects the children of a group until closer. member is called
// with the first token of each child.
func (p *Parser) members(closer TokenKind, context string, member func(*Token) (Expr, error)) ([]Expr, error) {
	var exprs []Expr
	for {
		tok, err := p.tokens.Current()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case closer:
			p.tokens.Consume()
			return exprs, nil
		case TokenEOF:
			return nil, p.errorAt(ErrUnexpectedEOF, tok, "unterminated "+context)
		}

		expr, err := member(tok)
		if err != nil {
			if !p.recoverFrom(err, closer) {
				return nil, err
			}
			expr = &BadExpr{Err: err, Pos: tok.Pos}
		}
		exprs = append(exprs, expr)
	}
}

// recoverFrom records a recoverable error and skips the offending token
// unless it closes the current group.
func (p *Parser) recoverFrom(err error, closer TokenKind) bool {
	if !p.options.Recover || !errors.Is(err, ErrUnexpectedToken) {
		return false
	}
	tok, cerr := p.tokens.Current()
	if cerr != nil || tok.Kind == TokenEOF {
		return false
	}
	p.errs = append(p.errs, err)
	if tok.Kind != closer {
		p.skip()
	}
	return true
}

// skip drops one token, or a whole balanced group when it opens one.
func (p *Parser) skip() {
	depth := 0
	for {
		tok, err := p.tokens.Current()
		if err != nil || tok.Kind == TokenEOF {
			return
		}
		p.tokens.Consume()
		switch tok.Kind {
		case TokenCurlyOpen, TokenParenOpen:
			depth++
		case TokenCurlyClose, TokenParenClose:
			depth--
		}
		if depth <= 0 {
			return
		}
	}
}
