// Package invoicer provides the core types and logic for generating day-rate
// PDF invoices from a local, file-backed client directory. It is designed to
// be local-first and human-readable: every client is one JSON document, and a
// single index file keeps the listing cheap.
//
// The core functionalities include:
//   - Client Record Store: create, read, update, delete and search clients,
//     plus the running invoice statistics (count, amount, last invoice date)
//     maintained on each record.
//   - Invoice Numbering: a closed-set template language ({year}, {month:02d},
//     {client_code}, {invoice_number}, ...) producing per-client monotonic
//     invoice numbers and deterministic output paths.
//   - Invoice Assembly: combining a client record with work parameters (days,
//     hours per day, hourly rate) into an invoice document, with all money
//     arithmetic done in exact decimals.
//   - Configuration: an explicit value object built once from the environment
//     and passed by parameter; the core never reads ambient state.
//
// Rendering the PDF page and dispatching mail are delegated to the pdf and
// mail packages through narrow interfaces. This package serves as the
// foundational logic for the `inv` command-line tool.
package invoicer
