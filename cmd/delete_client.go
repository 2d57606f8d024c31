package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type deleteClientCmd struct {
	force bool
}

func (*deleteClientCmd) Name() string     { return "delete-client" }
func (*deleteClientCmd) Synopsis() string { return "delete a client from the directory" }
func (*deleteClientCmd) Usage() string {
	return `delete-client [-force] <client-id>

  Deletes a client record and removes it from the index. Previously
  generated invoice files are left untouched. Asks for confirmation
  unless -force is given.
`
}

func (c *deleteClientCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "delete without asking for confirmation")
}

func (c *deleteClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one client id argument.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

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

	rec, err := store.Get(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.force && !confirm(fmt.Sprintf("Delete client %q (%s)?", rec.Name, rec.ID)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	if err := store.Delete(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting client: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Client %s deleted.\n", id)
	return subcommands.ExitSuccess
}
