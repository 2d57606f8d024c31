package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer/renderer"
)

type listClientsCmd struct{}

func (*listClientsCmd) Name() string     { return "list-clients" }
func (*listClientsCmd) Synopsis() string { return "list all clients in the directory" }
func (*listClientsCmd) Usage() string {
	return `list-clients

  Prints a table of all known clients, ordered by id, with their
  invoice count and total invoiced amount.
`
}
func (*listClientsCmd) SetFlags(*flag.FlagSet) {}

func (c *listClientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	summaries, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing clients: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(summaries) == 0 {
		fmt.Println("No clients found. Use 'add-client' to create one.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ClientListMarkdown(summaries))
	return subcommands.ExitSuccess
}
