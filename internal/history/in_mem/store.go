package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/pkg/pagination"
	"github.com/google/uuid"
)

// Store keeps records in memory, newest last in insertion order.
type Store struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]history.Record
	order       []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		storage: make(map[uuid.UUID]history.Record),
	}
}

func (s *Store) Save(ctx context.Context, rec history.Record) (uuid.UUID, error) {
	rec.Prepare()

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.storage[rec.ID]; !exists {
		s.order = append(s.order, rec.ID)
	}
	s.storage[rec.ID] = rec
	slog.Debug("Saved evaluation to in-memory history", "id", rec.ID, "expression", rec.Expression)

	return rec.ID, nil
}

func (s *Store) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	req.Normalize()

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	total := len(s.order)
	items := make([]history.Record, 0, req.Size)
	for i := total - 1 - req.Offset(); i >= 0 && len(items) < req.Size; i-- {
		items = append(items, s.storage[s.order[i]])
	}

	return pagination.NewOffsetResult(items, int64(total), req.Page, req.Size), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close() {}
