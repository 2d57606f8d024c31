package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer"
)

type samplesCmd struct{}

func (*samplesCmd) Name() string     { return "samples" }
func (*samplesCmd) Synopsis() string { return "create a few demo clients" }
func (*samplesCmd) Usage() string {
	return `samples

  Creates a handful of demo clients to try the invoicing commands
  with. Clients that already exist are skipped.
`
}
func (*samplesCmd) SetFlags(*flag.FlagSet) {}

func (c *samplesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	return createSamples(store)
}

func createSamples(store *invoicer.Store) subcommands.ExitStatus {
	for _, fields := range invoicer.SampleClients() {
		rec, err := store.Create(fields)
		if err != nil {
			var dup *invoicer.DuplicateClientError
			if errors.As(err, &dup) {
				fmt.Printf("Client %s already exists, skipping.\n", dup.ID)
				continue
			}
			fmt.Fprintf(os.Stderr, "Error creating sample client %q: %v\n", fields.Name, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Sample client %q created with ID: %s\n", rec.Name, rec.ID)
	}
	return subcommands.ExitSuccess
}
