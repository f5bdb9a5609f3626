package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/zen/zenlang"
)

const (
	prompt             = "> "
	continuationPrompt = ". "
)

func runREPL(ctx context.Context, parse zenlang.ParseSource, out io.Writer) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".zen_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	session := &replSession{
		parse: parse,
		out:   out,
	}
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if session.feed(ctx, line) {
			rl.SetPrompt(continuationPrompt)
		} else {
			rl.SetPrompt(prompt)
		}
	}
}

// replSession joins lines until they form complete input.
type replSession struct {
	parse   zenlang.ParseSource
	out     io.Writer
	pending []string
	n       int
}

// feed reports whether more lines are needed.
func (r *replSession) feed(ctx context.Context, line string) bool {
	if len(r.pending) == 0 && strings.TrimSpace(line) == "" {
		return false
	}
	r.pending = append(r.pending, line)

	r.n++
	source := zenlang.NewSource(fmt.Sprintf("<repl#%d>", r.n), strings.Join(r.pending, "\n"))
	root, err := r.parse(ctx, source)
	if errors.Is(err, zenlang.ErrUnexpectedEOF) && line != "" {
		// an empty line forces evaluation
		return true
	}
	r.pending = r.pending[:0]

	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
	}
	if root != nil {
		for _, expr := range root.Exprs {
			fmt.Fprintln(r.out, zenlang.DumpIndent(expr))
		}
	}
	return false
}
