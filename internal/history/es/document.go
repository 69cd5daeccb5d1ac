package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// EvaluationDocument is the indexed form of a history.Record.
type EvaluationDocument struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Postfix    string    `json:"postfix"`
	Result     *int64    `json:"result,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(rec history.Record) EvaluationDocument {
	return EvaluationDocument{
		ID:         rec.ID.String(),
		Expression: rec.Expression,
		Postfix:    rec.Postfix,
		Result:     rec.Result,
		Error:      rec.Error,
		CreatedAt:  rec.CreatedAt,
	}
}

func (d EvaluationDocument) toRecord() (history.Record, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return history.Record{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}
	return history.Record{
		ID:         id,
		Expression: d.Expression,
		Postfix:    d.Postfix,
		Result:     d.Result,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func buildMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": types.NewKeywordProperty(),
			"postfix":    types.NewTextProperty(),
			"result":     types.NewLongNumberProperty(),
			"error":      types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
		},
	}
}
