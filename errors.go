package invoicer

import "fmt"

// NotFoundError reports an unknown client id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("client %q not found", e.ID) }

// DuplicateClientError reports an id collision on create.
type DuplicateClientError struct {
	ID string
}

func (e *DuplicateClientError) Error() string {
	return fmt.Sprintf("client %q already exists", e.ID)
}

// InvalidInvoiceInputError reports a non-positive numeric invoice input.
// It is returned before any file is created or any client statistic is mutated.
type InvalidInvoiceInputError struct {
	Field string
	Value string
}

func (e *InvalidInvoiceInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be greater than 0", e.Field, e.Value)
}

// InvalidTemplateError reports an unrecognized placeholder in an invoice
// number template. Unknown placeholders are rejected rather than silently
// ignored: partial formatting would produce misleading filenames.
type InvalidTemplateError struct {
	Placeholder string
}

func (e *InvalidTemplateError) Error() string {
	return fmt.Sprintf("invoice number template: unrecognized placeholder {%s}", e.Placeholder)
}

// DuplicateInvoiceError reports that the output file for a generated invoice
// already exists on disk. Generation refuses to overwrite unless forced.
type DuplicateInvoiceError struct {
	Path string
}

func (e *DuplicateInvoiceError) Error() string {
	return fmt.Sprintf("invoice file already exists: %s", e.Path)
}

// StoreIOError reports an underlying file read/write failure in the client store.
type StoreIOError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreIOError) Error() string {
	return fmt.Sprintf("client store: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StoreIOError) Unwrap() error { return e.Err }
