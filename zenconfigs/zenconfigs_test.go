package zenconfigs

import (
	"io"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/zen/cmds"
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/logs"
)

func TestDefaults(t *testing.T) {
	dscope.New(new(Module)).Fork(
		func() logs.Writer {
			return io.Discard
		},
		func() configs.Loader {
			return configs.NewLoader(nil, schema)
		},
	).Call(func(
		maxDepth MaxDepth,
		rec Recover,
		logical LogicalOperators,
	) {
		if maxDepth != 0 {
			t.Fatalf("got %v", maxDepth)
		}
		if rec {
			t.Fatal()
		}
		if !logical {
			t.Fatal()
		}
	})
}

func TestPrecedence(t *testing.T) {
	newScope := func() dscope.Scope {
		return dscope.New(new(Module)).Fork(
			func() logs.Writer {
				return io.Discard
			},
			func() configs.Loader {
				return configs.NewLoader([]string{"testdata/zen.cue"}, schema)
			},
		)
	}

	// config file
	newScope().Call(func(
		maxDepth MaxDepth,
		rec Recover,
		logical LogicalOperators,
	) {
		if maxDepth != 32 {
			t.Fatalf("got %v", maxDepth)
		}
		if !rec {
			t.Fatal()
		}
		if logical {
			t.Fatal()
		}
	})

	// flags win
	cmds.GlobalExecutor.MustExecute([]string{
		"-max-depth", "8",
		"-no-recover",
		"-logical-operators",
	})
	defer cmds.GlobalExecutor.MustExecute([]string{
		"-max-depth.",
	})
	newScope().Call(func(
		maxDepth MaxDepth,
		rec Recover,
		logical LogicalOperators,
	) {
		if maxDepth != 8 {
			t.Fatalf("got %v", maxDepth)
		}
		if rec {
			t.Fatal()
		}
		if !logical {
			t.Fatal()
		}
	})
}

func TestSchema(t *testing.T) {
	loader := configs.NewLoader([]string{"testdata/bad.cue"}, schema)
	var depth int
	if err := loader.AssignFirst("max_depth", &depth); err == nil {
		t.Fatal("should error")
	}
}

func TestConfigExpr(t *testing.T) {
	lines := configs.Describe(MaxDepth(3), Recover(true), LogicalOperators(false))
	expected := []string{
		"max_depth: 3",
		"recover: true",
		"logical_operators: false",
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %v", lines)
		}
	}
}

func TestLayers(t *testing.T) {
	loader := configs.NewLoader([]string{
		"testdata/zen.cue",
		"testdata/zen2.cue",
	}, schema)
	lines, err := Layers(loader)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{
		"max_depth: 32",
		"max_depth: 64",
		"recover: true",
		"recover: false",
		"logical_operators: false",
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %v", lines)
	}
	for i, line := range lines {
		if line != expected[i] {
			t.Fatalf("got %v", lines)
		}
	}

	_, err = Layers(configs.NewLoader([]string{"testdata/bad.cue"}, schema))
	if err == nil {
		t.Fatal("should error")
	}
}
