package zenlang

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/logs"
	"github.com/reusee/zen/modes"
)

func testScope(t *testing.T, buf *bytes.Buffer, configFiles ...string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() configs.Loader {
			return configs.NewLoader(configFiles, "")
		},
	)
}

func TestModuleOptions(t *testing.T) {
	testScope(t, new(bytes.Buffer)).Call(func(
		options Options,
	) {
		if options != DefaultOptions() {
			t.Fatalf("got %+v", options)
		}
	})

	testScope(t, new(bytes.Buffer), "testdata/strict.cue").Call(func(
		options Options,
	) {
		if options.MaxDepth != 3 {
			t.Fatalf("got %+v", options)
		}
		if !options.Recover {
			t.Fatalf("got %+v", options)
		}
	})
}

func TestModuleParseSource(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t, buf).Call(func(
		parse ParseSource,
	) {
		root, err := parse(t.Context(), NewSource("test.zen", "a: 1 b: 2"))
		if err != nil {
			t.Fatal(err)
		}
		if len(root.Exprs) != 2 {
			t.Fatalf("got %s", Dump(root))
		}

		_, err = parse(t.Context(), NewSource("bad.zen", "a: {"))
		if !errors.Is(err, ErrUnexpectedEOF) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
	})
	if !strings.Contains(buf.String(), "new span") {
		t.Fatalf("got %s", buf.String())
	}
}

func TestModuleRecover(t *testing.T) {
	testScope(t, new(bytes.Buffer), "testdata/strict.cue").Call(func(
		parse ParseSource,
	) {
		root, err := parse(t.Context(), NewSource("test.zen", "(a) b: 1"))
		if !errors.Is(err, ErrUnimplemented) {
			t.Fatalf("got %v", err)
		}
		if root == nil || len(root.Exprs) != 2 {
			t.Fatal()
		}

		_, err = parse(t.Context(), NewSource("deep.zen", "a: { b: { c: 1 } }"))
		if !errors.Is(err, ErrTooDeep) {
			t.Fatalf("got %v", err)
		}
	})
}
