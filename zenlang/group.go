package zenlang

// ClassifyBlock decides the kind of a curly group from its parsed children.
// Any Accessor or FuncCall child makes the block a StatementBlock; otherwise
// the block is data shaped and becomes an AnonymousType.
func ClassifyBlock(children []Expr) GroupKind {
	for _, child := range children {
		if isStatement(child) {
			return StatementBlock
		}
	}
	return AnonymousType
}

// classifyTrailing is ClassifyBlock for the block following a call's
// argument list, where an empty block is an empty body.
func classifyTrailing(children []Expr) GroupKind {
	if len(children) == 0 {
		return StatementBlock
	}
	return ClassifyBlock(children)
}

func isStatement(expr Expr) bool {
	switch expr := expr.(type) {
	case *Binary:
		return expr.Op == Accessor
	case *FuncCall:
		return true
	}
	return false
}

// braces parses `{ members }` and returns the opening token and the children.
func (p *Parser) braces() (*Token, []Expr, error) {
	open, err := p.expect(TokenCurlyOpen, "block")
	if err != nil {
		return nil, nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, nil, err
	}
	defer p.leave()
	exprs, err := p.members(TokenCurlyClose, "block", p.blockMember)
	if err != nil {
		return nil, nil, err
	}
	return open, exprs, nil
}

// blockMember accepts what may appear directly inside braces: spreads and
// identifier continuations.
func (p *Parser) blockMember(tok *Token) (Expr, error) {
	switch tok.Kind {
	case TokenSpread:
		return p.parseSpread()
	case TokenIdentifier:
		return p.parseIdentifier()
	}
	return nil, p.unexpected(tok, "block member")
}

// parseCurlyBlock parses a brace group. With an owner, a data shaped group
// becomes a TypeDef and a statement shaped one is rejected.
func (p *Parser) parseCurlyBlock(owner *Identifier) (Expr, error) {
	open, exprs, err := p.braces()
	if err != nil {
		return nil, err
	}
	group := NewGroup(ClassifyBlock(exprs), exprs, open.Pos)

	if owner == nil {
		return group, nil
	}
	if group.Op == StatementBlock {
		return p.fail(
			p.errorAt(ErrUnimplemented, open, "named block with statement body "+owner.Name),
			owner.Pos,
		)
	}
	return &TypeDef{
		Name:   owner,
		Fields: group,
		Pos:    owner.Pos,
	}, nil
}

// argument accepts what may appear inside parentheses. Unlike braces, bare
// literals are allowed.
func (p *Parser) argument(tok *Token) (Expr, error) {
	switch tok.Kind {
	case TokenSpread:
		return p.parseSpread()
	case TokenIdentifier:
		return p.parseIdentifier()
	case TokenNumber, TokenString, TokenChar, TokenBool:
		return p.parseLiteral()
	case TokenCurlyOpen:
		return p.parseCurlyBlock(nil)
	case TokenParenOpen:
		return p.parseParenBlock(nil)
	}
	return nil, p.unexpected(tok, "argument")
}

// parseParenBlock parses `(args)` and an optional trailing block. Only named
// calls are supported.
func (p *Parser) parseParenBlock(owner *Identifier) (Expr, error) {
	open, err := p.expect(TokenParenOpen, "argument list")
	if err != nil {
		return nil, err
	}
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	args, err := p.members(TokenParenClose, "argument list", p.argument)
	if err != nil {
		return nil, err
	}
	call := &FuncCall{
		Args: NewGroup(ParamBlock, args, open.Pos),
		Pos:  open.Pos,
	}

	next, err := p.peekKind()
	if err != nil {
		return nil, err
	}
	if next == TokenCurlyOpen {
		blockOpen, exprs, err := p.braces()
		if err != nil {
			return nil, err
		}
		block := NewGroup(classifyTrailing(exprs), exprs, blockOpen.Pos)
		if block.Op == StatementBlock {
			call.Body = block
		} else {
			call.Fields = block
		}
	}

	if owner == nil {
		return p.fail(
			p.errorAt(ErrUnimplemented, open, "nameless parenthesized group"),
			open.Pos,
		)
	}
	call.Name = owner
	call.Pos = owner.Pos
	return call, nil
}
