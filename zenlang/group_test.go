package zenlang

import "testing"

func TestClassifyBlock(t *testing.T) {
	ident := func(name string) *Identifier {
		return &Identifier{Name: name}
	}
	assign := &Binary{Op: Assignment, Left: ident("a"), Right: ident("B")}
	access := &Binary{Op: Accessor, Left: ident("a"), Right: ident("b")}
	call := &FuncCall{Name: ident("f"), Args: NewGroup(ParamBlock, nil, Pos{})}
	spread := &Unary{Op: UnarySpread, Expr: ident("base")}

	tests := []struct {
		name     string
		children []Expr
		expected GroupKind
	}{
		{"empty", nil, AnonymousType},
		{"assignments", []Expr{assign, assign}, AnonymousType},
		{"spread", []Expr{spread, assign}, AnonymousType},
		{"bare identifier", []Expr{ident("x")}, AnonymousType},
		{"accessor", []Expr{access}, StatementBlock},
		{"call", []Expr{call}, StatementBlock},
		{"mixed", []Expr{assign, call}, StatementBlock},
		{"nested typedef", []Expr{&TypeDef{Name: ident("T"), Fields: NewGroup(AnonymousType, nil, Pos{})}}, AnonymousType},
		{"bad", []Expr{&BadExpr{}}, AnonymousType},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ClassifyBlock(test.children); got != test.expected {
				t.Fatalf("expected %v, got %v", test.expected, got)
			}
		})
	}

	if got := classifyTrailing(nil); got != StatementBlock {
		t.Fatalf("got %v", got)
	}
	if got := classifyTrailing([]Expr{assign}); got != AnonymousType {
		t.Fatalf("got %v", got)
	}
}

func TestGroupKindNeverChanges(t *testing.T) {
	root, err := Parse("test", "f() { a: 1 } g() { a.b }", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	f := root.Exprs[0].(*FuncCall)
	if f.Body != nil || f.Fields == nil || f.Fields.Op != AnonymousType {
		t.Fatalf("got %s", Dump(f))
	}
	g := root.Exprs[1].(*FuncCall)
	if g.Fields != nil || g.Body == nil || g.Body.Op != StatementBlock {
		t.Fatalf("got %s", Dump(g))
	}
	if f.Args.Op != ParamBlock || g.Args.Op != ParamBlock {
		t.Fatal()
	}
}
