package invoicer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "clients"))
	require.NoError(t, err)
	return s
}

func acmeFields() NewClientFields {
	return NewClientFields{
		Name:    "Acme Corporation",
		Email:   "billing@acme.example",
		Company: "Acme Corporation",
	}
}

func TestStoreCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(acmeFields())
	require.NoError(t, err)
	assert.Equal(t, "acme_corporation", rec.ID)
	assert.Equal(t, "ACM", rec.ClientCode)
	assert.Equal(t, 0, rec.TotalInvoices)
	assert.False(t, rec.CreatedDate.IsZero())
	assert.True(t, rec.LastInvoiceDate.IsZero())

	got, err := s.Get("acme_corporation")
	require.NoError(t, err)
	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.Email, got.Email)

	// The record file and the index both exist on disk.
	assert.FileExists(t, filepath.Join(s.Dir(), "acme_corporation.json"))
	assert.FileExists(t, filepath.Join(s.Dir(), "clients_index.json"))
}

func TestStoreCreateValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(NewClientFields{Email: "x@y.example"})
	assert.Error(t, err)
	_, err = s.Create(NewClientFields{Name: "No Email"})
	assert.Error(t, err)

	// A failed create leaves no record file behind.
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	for _, e := range entries {
		assert.Equal(t, "clients_index.json", e.Name())
	}
}

func TestStoreCreateDuplicate(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(acmeFields())
	require.NoError(t, err)

	_, err = s.Create(acmeFields())
	var dup *DuplicateClientError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "acme_corporation", dup.ID)
}

func TestStoreGetUnknown(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get("nobody")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "nobody", nf.ID)
}

func TestStoreListOrderedByID(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Zulu Ltd", "Acme Corporation", "Midway Inc"} {
		_, err := s.Create(NewClientFields{Name: name, Email: "x@y.example"})
		require.NoError(t, err)
	}

	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "acme_corporation", summaries[0].ID)
	assert.Equal(t, "midway_inc", summaries[1].ID)
	assert.Equal(t, "zulu_ltd", summaries[2].ID)
}

func TestStoreSearch(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(NewClientFields{Name: "Acme Corporation", Email: "billing@acme.example"})
	require.NoError(t, err)
	_, err = s.Create(NewClientFields{Name: "TechStart Solutions", Email: "invoices@techstart.example"})
	require.NoError(t, err)

	// Case-insensitive, matches name, email and company.
	for _, query := range []string{"ACME", "acme", "billing@"} {
		matches, err := s.Search(query)
		require.NoError(t, err)
		require.Len(t, matches, 1, "query %q", query)
		assert.Equal(t, "acme_corporation", matches[0].ID)
	}

	matches, err := s.Search("example")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = s.Search("no-such-client")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestStoreUpdate(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(acmeFields())
	require.NoError(t, err)
	_, err = s.RecordInvoice(rec.ID, M(1000, "EUR"), NewDate(2024, time.October, 5))
	require.NoError(t, err)

	email := "accounts@acme.example"
	code := "acx"
	got, err := s.Update(rec.ID, ClientUpdate{Email: &email, ClientCode: &code})
	require.NoError(t, err)
	assert.Equal(t, "accounts@acme.example", got.Email)
	assert.Equal(t, "ACX", got.ClientCode, "client codes are stored uppercased")
	assert.Equal(t, "Acme Corporation", got.Name, "untouched fields keep their value")

	// The id and the invoicing statistics never change on update.
	assert.Equal(t, "acme_corporation", got.ID)
	assert.Equal(t, 1, got.TotalInvoices)
	assert.True(t, got.TotalAmount.Equal(M(1000, "EUR")))
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(acmeFields())
	require.NoError(t, err)
	require.NoError(t, s.Delete(rec.ID))

	_, err = s.Get(rec.ID)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)

	var del *NotFoundError
	assert.ErrorAs(t, s.Delete(rec.ID), &del)

	// Deleting frees the id: a fresh create starts with zeroed statistics.
	again, err := s.Create(acmeFields())
	require.NoError(t, err)
	assert.Equal(t, "acme_corporation", again.ID)
	assert.Equal(t, 0, again.TotalInvoices)
}

func TestStoreRecordInvoice(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(acmeFields())
	require.NoError(t, err)

	on := NewDate(2024, time.October, 5)
	got, err := s.RecordInvoice(rec.ID, M(9000, "EUR"), on)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalInvoices)
	assert.True(t, got.TotalAmount.Equal(M(9000, "EUR")))
	assert.Equal(t, on, got.LastInvoiceDate)

	later := NewDate(2024, time.November, 30)
	got, err = s.RecordInvoice(rec.ID, M(1000.505, "EUR"), later)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalInvoices)
	assert.True(t, got.TotalAmount.Equal(M(10000.51, "EUR")), "amounts are rounded to cents when recorded")
	assert.Equal(t, later, got.LastInvoiceDate)

	// The index summary reflects the new statistics.
	summaries, err := s.List()
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].TotalInvoices)
}

func TestStoreNextSequence(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(acmeFields())
	require.NoError(t, err)

	seq, err := s.NextSequence(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	_, err = s.RecordInvoice(rec.ID, M(100, "EUR"), Today())
	require.NoError(t, err)

	seq, err = s.NextSequence(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}

func TestStoreVerify(t *testing.T) {
	s := newTestStore(t)

	rec, err := s.Create(acmeFields())
	require.NoError(t, err)

	problems, err := s.Verify()
	require.NoError(t, err)
	assert.Empty(t, problems)

	// A record file without an index entry is reported.
	orphan := filepath.Join(s.Dir(), "orphan_client.json")
	require.NoError(t, os.WriteFile(orphan, []byte(`{"id":"orphan_client","name":"Orphan","email":"o@o.example"}`), 0o644))

	// A missing record file behind an index entry is reported too.
	require.NoError(t, os.Remove(filepath.Join(s.Dir(), rec.ID+".json")))

	problems, err = s.Verify()
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "acme_corporation", problems[0].ID)
	assert.Equal(t, "orphan_client", problems[1].ID)
}

func TestStoreReopens(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "clients")
	s, err := NewStore(dir)
	require.NoError(t, err)
	_, err = s.Create(acmeFields())
	require.NoError(t, err)

	// A second store over the same directory sees the same data.
	s2, err := NewStore(dir)
	require.NoError(t, err)
	rec, err := s2.Get("acme_corporation")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", rec.Name)
}
