package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/baskervilski/invoicer"
)

type addClientCmd struct {
	name    string
	email   string
	company string
	code    string
	address string
	phone   string
	notes   string
}

func (*addClientCmd) Name() string     { return "add-client" }
func (*addClientCmd) Synopsis() string { return "add a new client to the directory" }
func (*addClientCmd) Usage() string {
	return `add-client -name <name> -email <email> [-company <company>] [-code <code>] [-address <address>] [-phone <phone>] [-notes <notes>]

  Adds a new client:
  - name: The client or company name (required).
  - email: The billing email address (required).
  - company: Company name, defaults to the client name.
  - code: Short client code used in invoice numbers and paths (e.g. "ACM"),
    defaults to the first 3 letters of the name.

  The client id is derived from the company name; adding a client whose id
  already exists is an error.
`
}

func (c *addClientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Client/Company name (required)")
	f.StringVar(&c.email, "email", "", "Billing email address (required)")
	f.StringVar(&c.company, "company", "", "Company name (defaults to the client name)")
	f.StringVar(&c.code, "code", "", "Client code, e.g. ACM (defaults to the first 3 letters of the name)")
	f.StringVar(&c.address, "address", "", "Postal address")
	f.StringVar(&c.phone, "phone", "", "Phone number")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
}

func (c *addClientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.email == "" {
		fmt.Fprintln(os.Stderr, "Error: -name and -email flags are required.")
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

	rec, err := store.Create(invoicer.NewClientFields{
		Name:       c.name,
		Email:      c.email,
		Company:    c.company,
		ClientCode: c.code,
		Address:    c.address,
		Phone:      c.phone,
		Notes:      c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating client: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Client %q created with ID: %s (code %s)\n", rec.Name, rec.ID, rec.ClientCode)
	return subcommands.ExitSuccess
}
