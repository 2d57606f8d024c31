package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer"
)

type editClientCmd struct {
	name    stringFlag
	email   stringFlag
	company stringFlag
	code    stringFlag
	address stringFlag
	phone   stringFlag
	notes   stringFlag
}

// stringFlag tells an unset flag apart from one explicitly set to "".
type stringFlag struct {
	value string
	set   bool
}

func (s *stringFlag) String() string { return s.value }
func (s *stringFlag) Set(v string) error {
	s.value = v
	s.set = true
	return nil
}

func (s *stringFlag) ptr() *string {
	if !s.set {
		return nil
	}
	return &s.value
}

func (*editClientCmd) Name() string     { return "edit-client" }
func (*editClientCmd) Synopsis() string { return "update fields of an existing client" }
func (*editClientCmd) Usage() string {
	return `edit-client [-name <name>] [-email <email>] [-company <company>] [-code <code>] [-address <address>] [-phone <phone>] [-notes <notes>] <client-id>

  Updates the given fields of an existing client. Fields not passed on
  the command line keep their current value. The client id and its
  invoicing statistics never change.
`
}

func (c *editClientCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.name, "name", "new client name")
	f.Var(&c.email, "email", "new billing email address")
	f.Var(&c.company, "company", "new company name")
	f.Var(&c.code, "code", "new client code")
	f.Var(&c.address, "address", "new postal address")
	f.Var(&c.phone, "phone", "new phone number")
	f.Var(&c.notes, "notes", "new notes")
}

func (c *editClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one client id argument.")
		return subcommands.ExitUsageError
	}

	update := invoicer.ClientUpdate{
		Name:       c.name.ptr(),
		Email:      c.email.ptr(),
		Company:    c.company.ptr(),
		ClientCode: c.code.ptr(),
		Address:    c.address.ptr(),
		Phone:      c.phone.ptr(),
		Notes:      c.notes.ptr(),
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

	rec, err := store.Update(f.Arg(0), update)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error updating client: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Client %s updated.\n", rec.ID)
	return subcommands.ExitSuccess
}
