package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Fallback sets the handler of arguments that name no command.
func Fallback(fn func(arg string) error) {
	GlobalExecutor.Fallback(fn)
}

// Execute runs args against GlobalExecutor and exits the process on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		GlobalExecutor.WriteUsage(os.Stderr)
		os.Exit(-1)
	}
}
