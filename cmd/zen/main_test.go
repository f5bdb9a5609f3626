package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/logs"
	"github.com/reusee/zen/modes"
	"github.com/reusee/zen/zenlang"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() logs.Writer {
			return io.Discard
		},
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	)
}

func TestParseAll(t *testing.T) {
	testScope(t).Call(func(
		parse zenlang.ParseSource,
	) {
		sources := []*zenlang.Source{
			zenlang.NewSource("a", "a: 1"),
			zenlang.NewSource("b", "b: {"),
			zenlang.NewSource("c", "c.d"),
		}
		results := parseAll(t.Context(), parse, sources, 2)
		if len(results) != 3 {
			t.Fatal()
		}
		if results[0].err != nil || zenlang.Dump(results[0].root) != "(statements (assign (identifier a) (int 1)))" {
			t.Fatalf("got %+v", results[0])
		}
		if results[1].err == nil || results[1].root != nil {
			t.Fatalf("got %+v", results[1])
		}
		if results[2].err != nil || zenlang.Dump(results[2].root) != "(statements (access (identifier c) (identifier d)))" {
			t.Fatalf("got %+v", results[2])
		}
	})
}

func TestFormats(t *testing.T) {
	root, err := zenlang.Parse("test", "a: 1", zenlang.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}

	buf := new(bytes.Buffer)
	if err := formatDump(buf, root); err != nil {
		t.Fatal(err)
	}
	if str := buf.String(); str != "(statements\n  (assign\n    (identifier a)\n    (int 1)))\n" {
		t.Fatalf("got %q", str)
	}

	buf.Reset()
	if err := formatJSON(buf, root); err != nil {
		t.Fatal(err)
	}
	var v map[string]any
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatal(err)
	}
	if v["type"] != "group" {
		t.Fatalf("got %s", buf.Bytes())
	}

	buf.Reset()
	if err := printTokens(buf, zenlang.NewSource("t", "a: 1"), true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %q", buf.String())
	}
	if lines[0] != "t:1:1\tidentifier \"a\"" {
		t.Fatalf("got %q", lines[0])
	}
	if lines[4] != "t:1:5\tend of file" {
		t.Fatalf("got %q", lines[4])
	}
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	textPath := filepath.Join(dir, "a.zen")
	if err := os.WriteFile(textPath, []byte("a: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	source, err := readSource(textPath)
	if err != nil {
		t.Fatal(err)
	}
	if source.Content != "a: 1\n" || source.Name != textPath {
		t.Fatalf("got %+v", source)
	}

	binPath := filepath.Join(dir, "a.png")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	if err := os.WriteFile(binPath, png, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readSource(binPath); err == nil {
		t.Fatal("should error")
	}

	if err := addFile(dir); err == nil {
		t.Fatal("should error")
	}
}

func TestREPLSession(t *testing.T) {
	testScope(t).Call(func(
		parse zenlang.ParseSource,
	) {
		buf := new(bytes.Buffer)
		session := &replSession{
			parse: parse,
			out:   buf,
		}

		if session.feed(t.Context(), "a: 1") {
			t.Fatal("should be complete")
		}
		if !session.feed(t.Context(), "b: {") {
			t.Fatal("should need more")
		}
		if !session.feed(t.Context(), "  c: 2") {
			t.Fatal("should need more")
		}
		if session.feed(t.Context(), "}") {
			t.Fatal("should be complete")
		}
		if session.feed(t.Context(), "x: {") != true {
			t.Fatal("should need more")
		}
		if session.feed(t.Context(), "") {
			t.Fatal("empty line should force")
		}

		out := buf.String()
		if !strings.Contains(out, "(assign\n  (identifier a)\n  (int 1))") {
			t.Fatalf("got %s", out)
		}
		if !strings.Contains(out, "(identifier c)") {
			t.Fatalf("got %s", out)
		}
		if !strings.Contains(out, "error: unexpected end of file") {
			t.Fatalf("got %s", out)
		}
	})
}
