package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/rpncalc/internal/apperr"
	"github.com/DjordjeVuckovic/rpncalc/internal/calc"
	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/in_mem"
	"github.com/DjordjeVuckovic/rpncalc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(store history.Store) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewCalcRouter(e, calc.New(), store).Bind()
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestEvaluateHandler(t *testing.T) {
	store := in_mem.NewStore()
	e := newTestEcho(store)

	rec := do(e, http.MethodPost, "/api/v1/evaluate", `{"expression":"2^3^2"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		ID       uuid.UUID `json:"id"`
		Rendered string    `json:"rendered"`
		Value    int64     `json:"value"`
		Postfix  []struct {
			Type  string `json:"type"`
			Value any    `json:"value"`
		} `json:"postfix"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(512), resp.Value)
	assert.Equal(t, "2 3 2 ^ ^", resp.Rendered)
	assert.Len(t, resp.Postfix, 5)
	assert.Equal(t, "OPERATOR", resp.Postfix[4].Type)
	assert.NotEqual(t, uuid.Nil, resp.ID)

	page, err := store.List(context.Background(), pagination.OffsetRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, resp.ID, page.Items[0].ID)
}

func TestEvaluateHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{name: "missing expression", body: `{}`, wantCode: http.StatusBadRequest, wantMsg: "expression is required"},
		{name: "blank expression", body: `{"expression":"  "}`, wantCode: http.StatusBadRequest, wantMsg: "expression is required"},
		{name: "bad json", body: `{"expression":`, wantCode: http.StatusBadRequest, wantMsg: "invalid request body"},
		{name: "division by zero", body: `{"expression":"5/0"}`, wantCode: http.StatusUnprocessableEntity, wantMsg: "division by zero"},
		{name: "malformed", body: `{"expression":"3+"}`, wantCode: http.StatusUnprocessableEntity, wantMsg: "malformed expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(in_mem.NewStore())
			rec := do(e, http.MethodPost, "/api/v1/evaluate", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestEvaluateHandler_RecordsFailures(t *testing.T) {
	store := in_mem.NewStore()
	e := newTestEcho(store)

	rec := do(e, http.MethodPost, "/api/v1/evaluate", `{"expression":"1%0"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	page, err := store.List(context.Background(), pagination.OffsetRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Nil(t, page.Items[0].Result)
	assert.Contains(t, page.Items[0].Error, "division by zero")
}

type failingStore struct{ history.Store }

func (failingStore) Save(ctx context.Context, rec history.Record) (uuid.UUID, error) {
	return uuid.Nil, errors.New("disk full")
}

func (failingStore) List(ctx context.Context, req pagination.OffsetRequest) (*pagination.OffsetResult[history.Record], error) {
	return nil, errors.New("disk full")
}

func TestEvaluateHandler_StoreFailureStillAnswers(t *testing.T) {
	e := newTestEcho(failingStore{})

	rec := do(e, http.MethodPost, "/api/v1/evaluate", `{"expression":"1+1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":2`)

	rec = do(e, http.MethodGet, "/api/v1/history", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestConvertHandler(t *testing.T) {
	e := newTestEcho(in_mem.NewStore())

	rec := do(e, http.MethodGet, "/api/v1/convert?expr=(3%2B4)*2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rendered":"3 4 + 2 *"`)

	rec = do(e, http.MethodGet, "/api/v1/convert", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryHandler(t *testing.T) {
	store := in_mem.NewStore()
	e := newTestEcho(store)

	for _, expr := range []string{"1+1", "2+2", "3+3"} {
		require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/v1/evaluate", `{"expression":"`+expr+`"}`).Code)
	}

	rec := do(e, http.MethodGet, "/api/v1/history?page=1&size=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var page pagination.OffsetResult[history.Record]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(3), page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "3+3", page.Items[0].Expression)

	rec = do(e, http.MethodGet, "/api/v1/history?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
