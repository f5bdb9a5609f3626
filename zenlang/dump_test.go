package zenlang

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDumpIndent(t *testing.T) {
	root, err := Parse("test", "p: Point(1) { x: 2 }", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		"(statements",
		"  (assign",
		"    (identifier p)",
		"    (call",
		"      (identifier Point)",
		"      (params",
		"        (int 1))",
		"      (fields",
		"        (type",
		"          (assign",
		"            (identifier x)",
		"            (int 2)))))))",
	}, "\n")
	if got := DumpIndent(root); got != expected {
		t.Fatalf("got\n%s", got)
	}
}

func TestDumpBadExpr(t *testing.T) {
	bad := &BadExpr{
		Err: WithPos(&ParseError{Err: ErrUnexpectedToken}, NewSource("x", "a"), Pos{Line: 1, Column: 1}),
	}
	if got := Dump(bad); got != `(bad "unexpected token at 1:1")` {
		t.Fatalf("got %s", got)
	}
	if got := Dump(&BadExpr{Err: errors.New("foo")}); got != `(bad "foo")` {
		t.Fatalf("got %s", got)
	}
	if got := Dump(nil); got != "(nil)" {
		t.Fatalf("got %s", got)
	}
	if got := Dump(&EndOfFile{}); got != "(end)" {
		t.Fatalf("got %s", got)
	}
}

func TestJSON(t *testing.T) {
	root, err := Parse("test", "a: 10\nf(...x) { io.print }", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	bs, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}

	var tree struct {
		Type  string
		Op    string
		Exprs []struct {
			Type string
			Op   string
			Pos  Pos
			Left struct {
				Type string
				Name string
			}
			Right struct {
				Type  string
				Value int
			}
			Args struct {
				Op    string
				Exprs []struct {
					Type string
					Op   string
				}
			}
			Fields *struct{}
			Body   *struct {
				Op string
			}
		}
	}
	if err := json.Unmarshal(bs, &tree); err != nil {
		t.Fatal(err)
	}

	if tree.Type != "group" || tree.Op != "statement_block" || len(tree.Exprs) != 2 {
		t.Fatalf("got %s", bs)
	}
	assign := tree.Exprs[0]
	if assign.Type != "binary" || assign.Op != "assignment" {
		t.Fatalf("got %s", bs)
	}
	if assign.Left.Type != "identifier" || assign.Left.Name != "a" {
		t.Fatalf("got %s", bs)
	}
	if assign.Right.Type != "int" || assign.Right.Value != 10 {
		t.Fatalf("got %s", bs)
	}
	call := tree.Exprs[1]
	if call.Type != "call" || call.Pos.Line != 2 || call.Pos.Column != 1 {
		t.Fatalf("got %s", bs)
	}
	if call.Args.Op != "param_block" || len(call.Args.Exprs) != 1 || call.Args.Exprs[0].Op != "spread" {
		t.Fatalf("got %s", bs)
	}
	if call.Fields != nil || call.Body == nil || call.Body.Op != "statement_block" {
		t.Fatalf("got %s", bs)
	}
}

func TestJSONInvalidEnum(t *testing.T) {
	_, err := json.Marshal(&Group{Op: GroupKind(42)})
	if err == nil {
		t.Fatal("should error")
	}
}
