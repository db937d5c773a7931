package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

type evalCmd struct {
	full  bool
	exact bool
}

func (*evalCmd) Name() string { return "eval" }
func (*evalCmd) Synopsis() string {
	return "evaluates an infix expression over amount literals"
}
func (*evalCmd) Usage() string {
	return `cval eval [-full] [-exact] [expression]

  Evaluates an infix expression over amount literals, with the operators
  + - * / and parentheses, and prints the resulting value. Adding amounts
  of different commodities yields a balance, printed one amount per line.

  Without an expression, expressions are read one per line: from an
  interactive prompt when stdin is a terminal, from stdin otherwise.

  Between tokens the minus sign is always the operator: write a negative
  amount as -$5.25, not $-5.25.

Usage Examples:
# one shot
$ cval eval '$100.00 + 200'
# piped, one expression per line
$ echo '$2.00 / 3' | cval eval

`
}

func (p *evalCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.full, "full", false, "Print results with their full internal precision.")
	f.BoolVar(&p.exact, "exact", false, "Parse operands in keep-precision mode.")
}

func (p *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		v, err := evalExpression(strings.Join(f.Args(), " "), p.exact)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Println(valueString(v, p.full))
		return subcommands.ExitSuccess
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return p.repl()
	}
	return p.evalLines(os.Stdin)
}

// evalLines evaluates every non-empty line of r as one expression.
// A line that fails to evaluate is reported and does not stop the others.
func (p *evalCmd) evalLines(r io.Reader) subcommands.ExitStatus {
	status := subcommands.ExitSuccess
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := evalExpression(line, p.exact)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Println(valueString(v, p.full))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return status
}

// repl prompts for expressions until Ctrl-D. Ctrl-C aborts the current line.
func (p *evalCmd) repl() subcommands.ExitStatus {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("cval> ")
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Println()
			return subcommands.ExitSuccess
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cli.AppendHistory(line)

		v, err := evalExpression(line, p.exact)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(valueString(v, p.full))
	}
}
