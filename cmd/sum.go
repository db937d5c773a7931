package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/commodity"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type sumCmd struct {
	path  string
	full  bool
	exact bool
}

func (*sumCmd) Name() string { return "sum" }
func (*sumCmd) Synopsis() string {
	return "sums amounts extracted from a JSON document"
}
func (*sumCmd) Usage() string {
	return `cval sum [-p <jsonpath>] [-full] [-exact] [file]

  Extracts values from a JSON document with a JSONPath expression, parses
  each one as an amount, and adds them all up. Strings are parsed as amount
  literals; bare JSON numbers become bare amounts. The document is read
  from the file argument, or from stdin.

Usage Examples:
# total of all "amount" fields anywhere in the document
$ cval sum -p '$..amount' trades.json
# total of one column
$ curl -s https://api.example.com/positions | cval sum -p '$.positions[*].value'

`
}

func (p *sumCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.path, "p", "$..amount", "JSONPath expression selecting the values to sum.")
	f.BoolVar(&p.full, "full", false, "Print the total with its full internal precision.")
	f.BoolVar(&p.exact, "exact", false, "Parse extracted values in keep-precision mode.")
}

func (p *sumCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := io.Reader(os.Stdin)
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	total, err := sumDocument(in, p.path, p.exact)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(valueString(total, p.full))
	return subcommands.ExitSuccess
}

// sumDocument decodes one JSON document from r, extracts the values selected
// by path, parses each as an amount and folds them with Add. With no match
// the total is the bare zero.
func sumDocument(r io.Reader, path string, exact bool) (commodity.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("extracting %q: %w", path, err)
	}
	// A wildcard or recursive path yields a list; a plain path a single value.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	var total commodity.Value = commodity.Amount{}
	for _, jv := range jlist {
		a, err := parseExtracted(jv, exact)
		if err != nil {
			return nil, err
		}
		total = commodity.Add(total, a)
	}
	return total, nil
}

// parseExtracted turns one JSONPath result into an amount.
func parseExtracted(jv any, exact bool) (commodity.Amount, error) {
	switch t := jv.(type) {
	case string:
		if exact {
			return commodity.ParseAmountExact(t)
		}
		return commodity.ParseAmount(t)
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return commodity.Amount{}, fmt.Errorf("format error in %q: %w", t.String(), err)
		}
		if exact {
			return commodity.DefaultRegistry.AmountExact(d, ""), nil
		}
		return commodity.Q(d), nil
	default:
		return commodity.Amount{}, fmt.Errorf("cannot sum %T value %v", jv, jv)
	}
}
