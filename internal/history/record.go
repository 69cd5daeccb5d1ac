package history

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/rpncalc/internal/calc"
	"github.com/DjordjeVuckovic/rpncalc/pkg/pagination"
	"github.com/google/uuid"
)

// Record is one stored calculation. Result is nil when evaluation failed,
// in which case Error holds the reason.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     *int64    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewRecord builds a record from a calculator run.
func NewRecord(res *calc.Result, evalErr error) Record {
	rec := Record{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
	if res != nil {
		rec.Expression = res.Expression
		rec.Postfix = res.Rendered
	}
	if evalErr != nil {
		rec.Error = evalErr.Error()
		return rec
	}
	if res != nil {
		v := res.Value
		rec.Result = &v
	}
	return rec
}

// Prepare fills the ID and timestamp when they are missing.
func (r *Record) Prepare() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}

type Store interface {
	Save(ctx context.Context, rec Record) (uuid.UUID, error)
	List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[Record], error)
	Ping(ctx context.Context) error
	Close()
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported history store type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}
