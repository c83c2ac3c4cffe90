// Package memory holds the ledger in process memory. It backs tests and
// local development where no spreadsheet is available.
package memory

import (
	"context"
	"sync"

	"gastos/internal/core"
	"gastos/internal/ledger"
)

type Store struct {
	mu       sync.Mutex
	rows     []core.Row
	archived map[string][]core.Row
}

var (
	_ ledger.Store    = (*Store)(nil)
	_ ledger.Archiver = (*Store)(nil)
)

func New() *Store {
	return &Store{archived: make(map[string][]core.Row)}
}

func (s *Store) Rows(_ context.Context) ([]core.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Row(nil), s.rows...), nil
}

func (s *Store) Append(_ context.Context, row core.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, row)
	return nil
}

// ArchivePeriod snapshots the current rows under the label and resets the
// active window.
func (s *Store) ArchivePeriod(_ context.Context, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archived[label] = s.rows
	s.rows = nil
	return nil
}

// Archived returns the snapshot stored under label, if any.
func (s *Store) Archived(label string) []core.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Row(nil), s.archived[label]...)
}
