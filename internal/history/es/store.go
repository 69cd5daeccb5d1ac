package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Store struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// NewStore connects to Elasticsearch and creates the history index when
// it does not exist yet.
func NewStore(ctx context.Context, config ClientConfig) (*Store, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	s := &Store{
		client:    client,
		indexName: config.IndexName,
	}

	if err := s.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return s, nil
}

func (s *Store) EnsureIndex(ctx context.Context) error {
	exists, err := s.client.Indices.Exists(s.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", s.indexName)
		return nil
	}

	mappings := buildMapping()
	createRes, err := s.client.Indices.Create(s.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", s.indexName)
	return nil
}

func (s *Store) Save(ctx context.Context, rec history.Record) (uuid.UUID, error) {
	rec.Prepare()
	doc := toDocument(rec)

	res, err := s.client.Index(s.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	slog.Debug("evaluation indexed", "id", doc.ID, "index", s.indexName, "result", res.Result)
	return rec.ID, nil
}

func (s *Store) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	req.Normalize()

	desc := sortorder.Desc
	res, err := s.client.Search().
		Index(s.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		From(req.Offset()).
		Size(req.Size).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &desc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &desc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search evaluations: %w", err)
	}

	items := make([]history.Record, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc EvaluationDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal evaluation: %w", err)
		}
		rec, err := doc.toRecord()
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return pagination.NewOffsetResult(items, total, req.Page, req.Size), nil
}

func (s *Store) Ping(ctx context.Context) error {
	ok, err := s.client.Ping().Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping elasticsearch: %w", err)
	}
	if !ok {
		return fmt.Errorf("elasticsearch ping was not successful")
	}
	return nil
}

func (s *Store) Close() {}
