package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/zen/zenlang"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestTapTree(t *testing.T) {
	source := zenlang.NewSource("test.zen", "p: Point(1) { x: 2 }")
	root, err := zenlang.NewParser(source, zenlang.DefaultOptions()).Parse()
	if err != nil {
		t.Fatal(err)
	}

	globals := TreeGlobals(source, root)
	if dump := globals["dump"].(func() string)(); dump != zenlang.Dump(root) {
		t.Fatalf("got %s", dump)
	}
	kinds := globals["kinds"].(map[string]int)
	if kinds["Identifier"] != 3 {
		t.Fatalf("got %v", kinds)
	}
	if kinds["Group"] != 3 {
		t.Fatalf("got %v", kinds)
	}
	if kinds["IntLiteral"] != 2 {
		t.Fatalf("got %v", kinds)
	}
	for name, value := range globals {
		if toStarlarkValue(value) == nil {
			t.Fatalf("%s not converted", name)
		}
	}

	dscope.New(
		new(Module),
	).Call(func(
		tapTree TapTree,
	) {
		tapTree(t.Context(), source, root)
	})
}
