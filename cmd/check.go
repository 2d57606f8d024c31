package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the client store consistency" }
func (*checkCmd) Usage() string {
	return `check

  Compares the client index against the individual client record files
  and reports missing, drifted or unindexed entries.
`
}
func (*checkCmd) SetFlags(*flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	problems, err := store.Verify()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error verifying client store: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(problems) == 0 {
		fmt.Println("✅ Client store is consistent.")
		return subcommands.ExitSuccess
	}

	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", p.ID, p.Desc)
	}
	fmt.Fprintf(os.Stderr, "Error: %d problem(s) found in the client store.\n", len(problems))
	return subcommands.ExitFailure
}
