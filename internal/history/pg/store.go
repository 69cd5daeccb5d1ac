package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	ConnStr string
}

// Store owns the pgx pool backing the evaluations table.
type Store struct {
	db *pgxpool.Pool
}

// NewStore opens a pool and fails unless the database answers a ping.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	db, err := pgxpool.New(ctx, cfg.ConnStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open evaluations pool: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach evaluations database: %w", err)
	}

	slog.Info("Connected to evaluations database", "maxConns", db.Config().MaxConns)
	return &Store{db: db}, nil
}

func (s *Store) Save(ctx context.Context, rec history.Record) (uuid.UUID, error) {
	rec.Prepare()

	cmd := `
        INSERT INTO evaluations (id, expression, postfix, result, error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		rec.ID,
		rec.Expression,
		rec.Postfix,
		rec.Result,
		rec.Error,
		rec.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	slog.Debug("Saved evaluation to postgres", "id", id)
	return id, nil
}

func (s *Store) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	req.Normalize()

	var total int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM evaluations`).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count evaluations: %w", err)
	}

	rows, err := s.db.Query(ctx, `
        SELECT id, expression, postfix, result, error, created_at
        FROM evaluations
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `, req.Size, req.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}
	defer rows.Close()

	items := make([]history.Record, 0, req.Size)
	for rows.Next() {
		var rec history.Record
		if err := rows.Scan(&rec.ID, &rec.Expression, &rec.Postfix, &rec.Result, &rec.Error, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan evaluation: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate evaluations: %w", err)
	}

	return pagination.NewOffsetResult(items, total, req.Page, req.Size), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close() {
	s.db.Close()
}
