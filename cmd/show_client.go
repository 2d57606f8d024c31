package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer/renderer"
)

type showClientCmd struct{}

func (*showClientCmd) Name() string     { return "show-client" }
func (*showClientCmd) Synopsis() string { return "show the full record of one client" }
func (*showClientCmd) Usage() string {
	return `show-client <client-id>

  Prints the full record of a single client, including contact details
  and invoicing statistics.
`
}
func (*showClientCmd) SetFlags(*flag.FlagSet) {}

func (c *showClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one client id argument.")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening client store: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := store.Get(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ClientMarkdown(rec))
	return subcommands.ExitSuccess
}
