package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/reusee/dscope"
	"github.com/reusee/zen/cmds"
	"github.com/reusee/zen/configs"
	"github.com/reusee/zen/debugs"
	"github.com/reusee/zen/logs"
	"github.com/reusee/zen/modes"
	"github.com/reusee/zen/syncs"
	"github.com/reusee/zen/vars"
	"github.com/reusee/zen/zenconfigs"
	"github.com/reusee/zen/zenlang"
	"golang.org/x/term"
)

var (
	jsonOutput  = cmds.Switch("-json")
	tokenOutput = cmds.Switch("-tokens")
	tapTree     = cmds.Switch("-tap")
	showConfig  = cmds.Switch("-show-config")
	jobs        = cmds.Var[int]("-jobs")
	inline      = cmds.Collect[string]("-e")
	startREPL   bool
)

func init() {
	cmds.Define("repl", cmds.Func(func() {
		startREPL = true
	}).Desc("read and parse lines interactively"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		parse zenlang.ParseSource,
		options zenlang.Options,
		tap debugs.TapTree,
		maxDepth zenconfigs.MaxDepth,
		rec zenconfigs.Recover,
		logicalOperators zenconfigs.LogicalOperators,
		loader configs.Loader,
	) {

		if *showConfig {
			for _, line := range configs.Describe(maxDepth, rec, logicalOperators) {
				fmt.Println(line)
			}
			layers, err := zenconfigs.Layers(loader)
			ce(err)
			for _, line := range layers {
				fmt.Println("// config file: " + line)
			}
			return
		}

		if startREPL {
			runREPL(ctx, parse, os.Stdout)
			return
		}

		var sources []*zenlang.Source
		for _, path := range files {
			source, err := readSource(path)
			ce(err)
			sources = append(sources, source)
		}
		for i, content := range *inline {
			sources = append(sources, zenlang.NewSource(fmt.Sprintf("-e#%d", i+1), content))
		}
		if len(sources) == 0 {
			stdin := getStdinContent()
			if stdin == nil {
				cmds.GlobalExecutor.PrintUsage()
				return
			}
			sources = append(sources, zenlang.NewSource("<stdin>", string(stdin)))
		}
		logger.InfoContext(ctx, "sources", "n", len(sources))

		var format formatFunc = formatDump
		if *jsonOutput {
			format = formatJSON
		}

		if *tokenOutput {
			failed := false
			for _, source := range sources {
				if err := printTokens(os.Stdout, source, options.LogicalOperators); err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					failed = true
				}
			}
			if failed {
				os.Exit(-1)
			}
			return
		}

		results := parseAll(ctx, parse, sources, vars.FirstNonZero(*jobs, runtime.NumCPU()))

		failed := false
		for i, result := range results {
			if result.err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", result.err)
				failed = true
			}
			if result.root == nil {
				continue
			}
			ce(format(os.Stdout, result.root))
			if *tapTree {
				tap(ctx, sources[i], result.root)
			}
		}
		if failed {
			os.Exit(-1)
		}

	})

}

type parseResult struct {
	root *zenlang.Group
	err  error
}

// parseAll parses sources concurrently, at most jobs at a time. Results are
// in input order.
func parseAll(ctx context.Context, parse zenlang.ParseSource, sources []*zenlang.Source, jobs int) []parseResult {
	results := make([]parseResult, len(sources))
	sem := syncs.NewSemaphore(max(jobs, 1))
	done := make(chan struct{})
	for i, source := range sources {
		sem.Acquire()
		go func() {
			defer func() {
				sem.Release()
				done <- struct{}{}
			}()
			root, err := parse(ctx, source)
			results[i] = parseResult{
				root: root,
				err:  err,
			}
		}()
	}
	for range sources {
		<-done
	}
	return results
}

type formatFunc func(w io.Writer, root *zenlang.Group) error

func formatDump(w io.Writer, root *zenlang.Group) error {
	_, err := fmt.Fprintln(w, zenlang.DumpIndent(root))
	return err
}

func formatJSON(w io.Writer, root *zenlang.Group) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(root)
}

func printTokens(w io.Writer, source *zenlang.Source, logicalOperators bool) error {
	lexer := zenlang.NewLexer(source)
	lexer.LogicalOperators = logicalOperators
	for tok, err := range lexer.All() {
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s:%s\t%s\n", source.Name, tok.Pos, tok); err != nil {
			return err
		}
	}
	return nil
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}

func ce(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(-1)
	}
}
