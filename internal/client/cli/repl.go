package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/mattn/go-shellwords"
)

// printlnFn and printFn are test seams for user-facing output.
var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

var errBadLine = errors.New("cannot parse command line")

// execIface is the command surface the REPL needs. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	execute(ctx context.Context, args []string) error
	hasCommand(name string) bool
	usage() string
}

// runREPL reads lines from reader and dispatches them to a until EOF, "exit"
// or "quit", or until ctx is done.
//
// Lines are split like a shell would split them (quotes group words). The
// prompt shows statusFn. Besides the command tree the REPL knows:
//
//	help         list commands
//	exit | quit  leave the program
//
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printFn(fmt.Sprintf("jp %s> ", statusFn()))

		line, readErr := reader.ReadString('\n')
		if readErr != nil && line == "" {
			printlnFn()
			return
		}

		parts, err := splitArgs(line)
		switch {
		case err != nil:
			printlnFn("Error:", err)
		case len(parts) == 0:
		case parts[0] == "help":
			printlnFn(a.usage())
		case parts[0] == "exit" || parts[0] == "quit":
			printlnFn("Bye!")
			return
		case !a.hasCommand(parts[0]):
			printlnFn("Unknown command:", parts[0])
		default:
			if err := a.execute(ctx, parts); err != nil {
				printlnFn("Error:", err)
			}
		}

		if readErr != nil {
			return
		}
	}
}

// splitArgs splits line the way a POSIX shell would: quotes group words and
// backslash escapes a character. Shell operators (; & | < >) are rejected.
func splitArgs(line string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadLine, err)
	}
	if p.Position >= 0 {
		return nil, fmt.Errorf("%w: unexpected %q", errBadLine, line[p.Position])
	}
	return args, nil
}
