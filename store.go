package invoicer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const indexFilename = "clients_index.json"
const indexVersion = "1.0"

// Store owns the per-client JSON documents and their index file. It is the
// only component that mutates them. Single process, single writer: no file
// locking, two concurrent invocations against the same directory are
// undefined.
type Store struct {
	dir string
}

// clientIndex is the on-disk layout of the index file. It is a denormalized
// view of the individual client documents, rewritten in full on every
// mutation, and verified against them by Verify.
type clientIndex struct {
	Version     string                   `json:"version"`
	LastUpdated string                   `json:"last_updated"`
	Clients     map[string]ClientSummary `json:"clients"`
}

// NewStore opens (or initializes) a client store in dir.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StoreIOError{Op: "create", Path: dir, Err: err}
	}
	s := &Store{dir: dir}
	if _, err := os.Stat(s.indexPath()); errors.Is(err, fs.ErrNotExist) {
		if err := s.saveIndex(&clientIndex{Clients: map[string]ClientSummary{}}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dir returns the directory the store persists into.
func (s *Store) Dir() string { return s.dir }

func (s *Store) indexPath() string { return filepath.Join(s.dir, indexFilename) }

func (s *Store) clientPath(id string) string { return filepath.Join(s.dir, id+".json") }

func (s *Store) loadIndex() (*clientIndex, error) {
	data, err := os.ReadFile(s.indexPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &clientIndex{Clients: map[string]ClientSummary{}}, nil
		}
		return nil, &StoreIOError{Op: "read", Path: s.indexPath(), Err: err}
	}
	var idx clientIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		// An unreadable index is recoverable: it is a derived view, the
		// client documents remain authoritative. Start from an empty one and
		// let a Verify pass report the drift.
		slog.Warn("client index unreadable, starting empty", "path", s.indexPath(), "err", err)
		return &clientIndex{Clients: map[string]ClientSummary{}}, nil
	}
	if idx.Clients == nil {
		idx.Clients = map[string]ClientSummary{}
	}
	return &idx, nil
}

func (s *Store) saveIndex(idx *clientIndex) error {
	idx.Version = indexVersion
	idx.LastUpdated = time.Now().Format(time.RFC3339)
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode client index: %w", err)
	}
	if err := os.WriteFile(s.indexPath(), data, 0o644); err != nil {
		return &StoreIOError{Op: "write", Path: s.indexPath(), Err: err}
	}
	return nil
}

func (s *Store) writeRecord(rec *ClientRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode client %q: %w", rec.ID, err)
	}
	if err := os.WriteFile(s.clientPath(rec.ID), data, 0o644); err != nil {
		return &StoreIOError{Op: "write", Path: s.clientPath(rec.ID), Err: err}
	}
	return nil
}

// Create validates the fields, derives the client id and persists a new
// record. It fails with DuplicateClientError when the derived id is taken.
func (s *Store) Create(fields NewClientFields) (*ClientRecord, error) {
	if err := fields.validate(); err != nil {
		return nil, err
	}

	rec := &ClientRecord{
		ID:          SlugID(fields.Company, fields.Name),
		Name:        strings.TrimSpace(fields.Name),
		Email:       strings.TrimSpace(fields.Email),
		Company:     strings.TrimSpace(fields.Company),
		ClientCode:  strings.ToUpper(strings.TrimSpace(fields.ClientCode)),
		Address:     fields.Address,
		Phone:       strings.TrimSpace(fields.Phone),
		Notes:       fields.Notes,
		CreatedDate: Today(),
	}
	if rec.Company == "" {
		rec.Company = rec.Name
	}
	if rec.ClientCode == "" {
		rec.ClientCode = DefaultClientCode(rec.Name)
	}

	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	if _, taken := idx.Clients[rec.ID]; taken {
		return nil, &DuplicateClientError{ID: rec.ID}
	}
	if _, err := os.Stat(s.clientPath(rec.ID)); err == nil {
		// record file without an index entry: the slot is still taken
		return nil, &DuplicateClientError{ID: rec.ID}
	}

	// best effort, not crash-transactional: record file first, then the index
	if err := s.writeRecord(rec); err != nil {
		return nil, err
	}
	idx.Clients[rec.ID] = rec.Summary()
	if err := s.saveIndex(idx); err != nil {
		return nil, err
	}
	slog.Debug("client created", "id", rec.ID, "code", rec.ClientCode)
	return rec, nil
}

// Get returns the client record for id, or NotFoundError.
func (s *Store) Get(id string) (*ClientRecord, error) {
	data, err := os.ReadFile(s.clientPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, &StoreIOError{Op: "read", Path: s.clientPath(id), Err: err}
	}
	var rec ClientRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &StoreIOError{Op: "decode", Path: s.clientPath(id), Err: err}
	}
	return &rec, nil
}

// List returns the summaries of all clients, ordered by id ascending.
func (s *Store) List() ([]ClientSummary, error) {
	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	summaries := make([]ClientSummary, 0, len(idx.Clients))
	for id, sum := range idx.Clients {
		sum.ID = id
		summaries = append(summaries, sum)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ID < summaries[j].ID })
	return summaries, nil
}

// Search returns the clients whose name, email or company contains the query
// (case-insensitive), ordered by id ascending. No match is an empty result,
// not an error.
func (s *Store) Search(query string) ([]*ClientRecord, error) {
	q := strings.ToLower(query)
	summaries, err := s.List()
	if err != nil {
		return nil, err
	}
	matches := []*ClientRecord{}
	for _, sum := range summaries {
		if strings.Contains(strings.ToLower(sum.Name), q) ||
			strings.Contains(strings.ToLower(sum.Email), q) ||
			strings.Contains(strings.ToLower(sum.Company), q) {
			rec, err := s.Get(sum.ID)
			if err != nil {
				return nil, err
			}
			matches = append(matches, rec)
		}
	}
	return matches, nil
}

// Update applies a plain field edit to a client record. The invoice
// statistics are untouched by design: RecordInvoice is their only mutation
// path.
func (s *Store) Update(id string, u ClientUpdate) (*ClientRecord, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&rec.Name, u.Name)
	apply(&rec.Email, u.Email)
	apply(&rec.Company, u.Company)
	apply(&rec.Address, u.Address)
	apply(&rec.Phone, u.Phone)
	apply(&rec.Notes, u.Notes)
	if u.ClientCode != nil {
		rec.ClientCode = strings.ToUpper(strings.TrimSpace(*u.ClientCode))
	}

	if err := s.writeRecord(rec); err != nil {
		return nil, err
	}
	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	idx.Clients[id] = rec.Summary()
	if err := s.saveIndex(idx); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes the client record and its index entry. Deleting an unknown
// id fails with NotFoundError, also on a second delete of the same id.
func (s *Store) Delete(id string) error {
	if _, err := os.Stat(s.clientPath(id)); errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{ID: id}
	}
	if err := os.Remove(s.clientPath(id)); err != nil {
		return &StoreIOError{Op: "remove", Path: s.clientPath(id), Err: err}
	}
	idx, err := s.loadIndex()
	if err != nil {
		return err
	}
	delete(idx.Clients, id)
	if err := s.saveIndex(idx); err != nil {
		return err
	}
	slog.Debug("client deleted", "id", id)
	return nil
}

// RecordInvoice records one invoice against the client: total_invoices is
// incremented, the amount (rounded to the currency's minor unit) is added to
// total_amount, and last_invoice_date is set. This is the only operation that
// changes these three fields.
func (s *Store) RecordInvoice(id string, amount Money, on Date) (*ClientRecord, error) {
	rec, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	rec.TotalInvoices++
	rec.TotalAmount = rec.TotalAmount.Add(amount.Round())
	rec.LastInvoiceDate = on

	if err := s.writeRecord(rec); err != nil {
		return nil, err
	}
	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}
	idx.Clients[id] = rec.Summary()
	if err := s.saveIndex(idx); err != nil {
		return nil, err
	}
	slog.Debug("invoice recorded", "id", id, "total_invoices", rec.TotalInvoices)
	return rec, nil
}

// NextSequence returns the sequence value for the client's next invoice
// number. It reads the record from disk so the count is never stale.
func (s *Store) NextSequence(id string) (int, error) {
	rec, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return rec.TotalInvoices + 1, nil
}

// Problem is one finding of a Verify pass.
type Problem struct {
	ID   string
	Desc string
}

func (p Problem) String() string { return fmt.Sprintf("%s: %s", p.ID, p.Desc) }

// Verify checks the index against the authoritative client documents: index
// entries whose record file is missing or unreadable, record files absent
// from the index, and summary fields that drifted from the record. Store
// mutations are not crash-transactional across the two files, so a crash can
// leave this kind of inconsistency behind.
func (s *Store) Verify() ([]Problem, error) {
	idx, err := s.loadIndex()
	if err != nil {
		return nil, err
	}

	var problems []Problem
	for id, sum := range idx.Clients {
		rec, err := s.Get(id)
		if err != nil {
			problems = append(problems, Problem{ID: id, Desc: "indexed but record file is missing or unreadable"})
			continue
		}
		want := rec.Summary()
		sum.ID = id
		if sum != want {
			problems = append(problems, Problem{ID: id, Desc: "index entry drifted from the record file"})
		}
	}

	files, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, &StoreIOError{Op: "scan", Path: s.dir, Err: err}
	}
	for _, f := range files {
		name := filepath.Base(f)
		if name == indexFilename {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if _, ok := idx.Clients[id]; !ok {
			problems = append(problems, Problem{ID: id, Desc: "record file exists but is not indexed"})
		}
	}

	sort.Slice(problems, func(i, j int) bool { return problems[i].ID < problems[j].ID })
	return problems, nil
}
