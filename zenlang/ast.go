package zenlang

import "fmt"

// Expr is a node of the syntax tree. The set of implementations is closed.
// Every node owns its children.
type Expr interface {
	Start() Pos
	exprNode()
}

// Literal is an Expr holding a constant in its final parsed form.
type Literal interface {
	Expr
	literalNode()
}

// atoms

type Identifier struct {
	Name string
	Pos  Pos
}

type IntLiteral struct {
	Value int64
	Pos   Pos
}

type FloatLiteral struct {
	Value float64
	Pos   Pos
}

type HexLiteral struct {
	Value uint64
	Pos   Pos
}

type OctalLiteral struct {
	Value uint64
	Pos   Pos
}

type BinaryLiteral struct {
	Value uint64
	Pos   Pos
}

type StringLiteral struct {
	Value string
	Pos   Pos
}

type CharLiteral struct {
	Value rune
	Pos   Pos
}

type BoolLiteral struct {
	Value bool
	Pos   Pos
}

// EndOfFile is returned by ParseExpression once the input is exhausted.
type EndOfFile struct {
	Pos Pos
}

// unary

type UnaryOp uint8

const (
	UnarySpread UnaryOp = iota + 1
)

func (o UnaryOp) String() string {
	switch o {
	case UnarySpread:
		return "Spread"
	}
	return fmt.Sprintf("UnaryOp(%d)", o)
}

// Unary is `...Expr`.
type Unary struct {
	Op   UnaryOp
	Expr Expr
	Pos  Pos
}

// binary

type BinaryOp uint8

const (
	// Assignment is `key: value`.
	Assignment BinaryOp = iota + 1
	// Accessor is `object.property`.
	Accessor
)

func (o BinaryOp) String() string {
	switch o {
	case Assignment:
		return "Assignment"
	case Accessor:
		return "Accessor"
	}
	return fmt.Sprintf("BinaryOp(%d)", o)
}

type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
	Pos   Pos
}

// groups

type GroupKind uint8

const (
	AssignmentBlock GroupKind = iota + 1
	StatementBlock
	ParamBlock
	AnonymousType
)

func (k GroupKind) String() string {
	switch k {
	case AssignmentBlock:
		return "AssignmentBlock"
	case StatementBlock:
		return "StatementBlock"
	case ParamBlock:
		return "ParamBlock"
	case AnonymousType:
		return "AnonymousType"
	}
	return fmt.Sprintf("GroupKind(%d)", k)
}

// Group is a `{ ... }` or `( ... )` whose kind was decided from its contents.
// Op never changes after construction.
type Group struct {
	Op    GroupKind
	Exprs []Expr
	Pos   Pos
}

func NewGroup(op GroupKind, exprs []Expr, pos Pos) *Group {
	return &Group{
		Op:    op,
		Exprs: exprs,
		Pos:   pos,
	}
}

// TypeDef is `Name { fields }`.
type TypeDef struct {
	Name   Expr
	Fields *Group
	Pos    Pos
}

// FuncCall is `name(args)`, optionally followed by a block that becomes either
// Fields (data shaped) or Body (statement shaped).
type FuncCall struct {
	Name   Expr
	Args   *Group
	Fields *Group
	Body   *Group
	Pos    Pos
}

// BadExpr stands in for a construct that failed to parse when recovering.
type BadExpr struct {
	Err error
	Pos Pos
}

func (e *Identifier) Start() Pos    { return e.Pos }
func (e *IntLiteral) Start() Pos    { return e.Pos }
func (e *FloatLiteral) Start() Pos  { return e.Pos }
func (e *HexLiteral) Start() Pos    { return e.Pos }
func (e *OctalLiteral) Start() Pos  { return e.Pos }
func (e *BinaryLiteral) Start() Pos { return e.Pos }
func (e *StringLiteral) Start() Pos { return e.Pos }
func (e *CharLiteral) Start() Pos   { return e.Pos }
func (e *BoolLiteral) Start() Pos   { return e.Pos }
func (e *EndOfFile) Start() Pos     { return e.Pos }
func (e *Unary) Start() Pos         { return e.Pos }
func (e *Binary) Start() Pos        { return e.Pos }
func (e *Group) Start() Pos         { return e.Pos }
func (e *TypeDef) Start() Pos       { return e.Pos }
func (e *FuncCall) Start() Pos      { return e.Pos }
func (e *BadExpr) Start() Pos       { return e.Pos }

func (*Identifier) exprNode()    {}
func (*IntLiteral) exprNode()    {}
func (*FloatLiteral) exprNode()  {}
func (*HexLiteral) exprNode()    {}
func (*OctalLiteral) exprNode()  {}
func (*BinaryLiteral) exprNode() {}
func (*StringLiteral) exprNode() {}
func (*CharLiteral) exprNode()   {}
func (*BoolLiteral) exprNode()   {}
func (*EndOfFile) exprNode()     {}
func (*Unary) exprNode()         {}
func (*Binary) exprNode()        {}
func (*Group) exprNode()         {}
func (*TypeDef) exprNode()       {}
func (*FuncCall) exprNode()      {}
func (*BadExpr) exprNode()       {}

func (*IntLiteral) literalNode()    {}
func (*FloatLiteral) literalNode()  {}
func (*HexLiteral) literalNode()    {}
func (*OctalLiteral) literalNode()  {}
func (*BinaryLiteral) literalNode() {}
func (*StringLiteral) literalNode() {}
func (*CharLiteral) literalNode()   {}
func (*BoolLiteral) literalNode()   {}
