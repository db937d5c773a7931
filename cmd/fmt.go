package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/commodity"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	full   bool
	asJSON bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "reparses amount literals and prints them in canonical form"
}
func (*fmtCmd) Usage() string {
	return `cval fmt [-full] [-json] [amount...]

  Parses each amount literal and prints it back in canonical display form:
  rounded to the commodity's display precision, sign before the digits,
  thousand marks where the commodity uses them. -full prints the literal's
  own precision instead, -json its JSON encoding. Literals are read from
  the arguments, or one per line from stdin.

Usage Examples:
# canonical display form
$ cval fmt '1234.5 EUR'

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.full, "full", false, "Print each amount with its own full precision.")
	f.BoolVar(&p.asJSON, "json", false, "Print each amount as JSON.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	literals := f.Args()
	if len(literals) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				literals = append(literals, line)
			}
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	status := subcommands.ExitSuccess
	for _, lit := range literals {
		out, err := p.reprint(lit)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Println(out)
	}
	return status
}

// reprint parses one literal and renders it in the selected form.
func (p *fmtCmd) reprint(lit string) (string, error) {
	a, err := commodity.ParseAmount(lit)
	if err != nil {
		return "", err
	}
	switch {
	case p.asJSON:
		data, err := json.Marshal(a)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case p.full:
		return a.FullString(), nil
	default:
		return a.String(), nil
	}
}
