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

type initCmd struct {
	samples bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "set up a new invoicing workspace" }
func (*initCmd) Usage() string {
	return `init [-samples]

  Creates the clients and invoices directories and writes a .env
  template with placeholder settings. Existing files are never
  overwritten. With -samples, a few demo clients are added too.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.samples, "samples", false, "also create sample clients")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, dir := range []string{cfg.ClientsDir, cfg.InvoicesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", dir, err)
			return subcommands.ExitFailure
		}
	}

	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(".env", []byte(invoicer.SampleEnv), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing .env: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("✅ .env template written, edit it with your company details.")
	} else {
		fmt.Println(".env already exists, leaving it untouched.")
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening client store: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.samples {
		if status := createSamples(store); status != subcommands.ExitSuccess {
			return status
		}
	}

	fmt.Printf("✅ Workspace ready: clients in %s/, invoices in %s/\n", cfg.ClientsDir, cfg.InvoicesDir)
	return subcommands.ExitSuccess
}
