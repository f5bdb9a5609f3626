package debugs

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/reusee/zen/zenlang"
)

// TapTree opens a Tap over a parsed compilation unit. The REPL sees the
// source text, the tree as nested dicts, and helpers to print it.
type TapTree func(ctx context.Context, source *zenlang.Source, root *zenlang.Group)

func (Module) TapTree(
	tap Tap,
) TapTree {
	return func(ctx context.Context, source *zenlang.Source, root *zenlang.Group) {
		tap(ctx, source.Name, TreeGlobals(source, root))
	}
}

func TreeGlobals(source *zenlang.Source, root *zenlang.Group) map[string]any {
	return map[string]any{
		"name":   source.Name,
		"source": source.Content,
		"root":   root,
		"kinds":  countKinds(root),
		"dump": func() string {
			return zenlang.Dump(root)
		},
		"dump_indent": func() string {
			return zenlang.DumpIndent(root)
		},
		"json": func() string {
			bs, err := json.MarshalIndent(root, "", "  ")
			if err != nil {
				return err.Error()
			}
			return string(bs)
		},
	}
}

// countKinds counts nodes by Go type name.
func countKinds(root zenlang.Expr) map[string]int {
	ret := make(map[string]int)
	var walk func(zenlang.Expr)
	walk = func(expr zenlang.Expr) {
		if expr == nil {
			return
		}
		ret[reflect.TypeOf(expr).Elem().Name()]++
		switch expr := expr.(type) {
		case *zenlang.Unary:
			walk(expr.Expr)
		case *zenlang.Binary:
			walk(expr.Left)
			walk(expr.Right)
		case *zenlang.Group:
			for _, child := range expr.Exprs {
				walk(child)
			}
		case *zenlang.TypeDef:
			walk(expr.Name)
			walkGroup(walk, expr.Fields)
		case *zenlang.FuncCall:
			walk(expr.Name)
			walkGroup(walk, expr.Args)
			walkGroup(walk, expr.Fields)
			walkGroup(walk, expr.Body)
		}
	}
	walk(root)
	return ret
}

func walkGroup(walk func(zenlang.Expr), group *zenlang.Group) {
	if group != nil {
		walk(group)
	}
}
