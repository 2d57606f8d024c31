package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer/renderer"
)

type searchClientsCmd struct{}

func (*searchClientsCmd) Name() string     { return "search-clients" }
func (*searchClientsCmd) Synopsis() string { return "search clients by name, email or company" }
func (*searchClientsCmd) Usage() string {
	return `search-clients <query>

  Case-insensitive substring search over client names, email addresses
  and company names.
`
}
func (*searchClientsCmd) SetFlags(*flag.FlagSet) {}

func (c *searchClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one query argument.")
		return subcommands.ExitUsageError
	}
	query := f.Arg(0)

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

	matches, err := store.Search(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching clients: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(matches) == 0 {
		fmt.Printf("No clients matching %q.\n", query)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SearchResultsMarkdown(query, matches))
	return subcommands.ExitSuccess
}
