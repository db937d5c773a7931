package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/commodity"
	"github.com/google/subcommands"
)

type commoditiesCmd struct {
	iso string
}

func (*commoditiesCmd) Name() string { return "commodities" }
func (*commoditiesCmd) Synopsis() string {
	return "lists the registered commodities and their display conventions"
}
func (*commoditiesCmd) Usage() string {
	return `cval commodities [-iso <codes>] [amount...]

  Parses the given amount literals, so their commodities and decimal
  precisions are observed, then lists every commodity in the registry with
  its placement convention, tracked display precision and thousand marks.

  -iso seeds a comma-separated list of ISO 4217 currency codes with their
  official minor unit, before listing.

Usage Examples:
$ cval commodities -iso USD,JPY '1.5h' '$12.99'

`
}

func (p *commoditiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.iso, "iso", "", "Comma-separated ISO 4217 codes to seed before listing.")
}

func (p *commoditiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for code := range strings.SplitSeq(p.iso, ",") {
		if code = strings.TrimSpace(code); code != "" {
			commodity.InternCurrency(code)
		}
	}

	for _, lit := range f.Args() {
		if _, err := commodity.ParseAmount(lit); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	commodities := commodity.DefaultRegistry.Commodities()
	if len(commodities) == 0 {
		fmt.Println("The registry is empty.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| commodity | placement | precision | 1000s marks |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, c := range commodities {
		fmt.Fprintf(&b, "| %s | %s | %d | %s |\n",
			displayName(c.Symbol()), placement(c.Symbol()), c.DisplayPrecision(), marks(c.ThousandMarks()))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

func displayName(sym commodity.Symbol) string {
	if sym.NeedsQuoting {
		return strconv.Quote(sym.Name)
	}
	return sym.Name
}

func placement(sym commodity.Symbol) string {
	side := "suffix"
	if sym.Prefixed {
		side = "prefix"
	}
	if !sym.Connected {
		side += ", spaced"
	}
	return side
}

func marks(on bool) string {
	if on {
		return "yes"
	}
	return "no"
}
