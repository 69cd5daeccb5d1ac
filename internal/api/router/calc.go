package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/DjordjeVuckovic/rpncalc/internal/apperr"
	"github.com/DjordjeVuckovic/rpncalc/internal/calc"
	"github.com/DjordjeVuckovic/rpncalc/internal/history"
	"github.com/DjordjeVuckovic/rpncalc/internal/token"
	"github.com/DjordjeVuckovic/rpncalc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type EvaluateRequest struct {
	Expression string `json:"expression"`
}

type EvaluateResponse struct {
	ID         uuid.UUID     `json:"id"`
	Expression string        `json:"expression"`
	Postfix    []token.Token `json:"postfix"`
	Rendered   string        `json:"rendered"`
	Value      int64         `json:"value"`
}

type CalcRouter struct {
	e     *echo.Echo
	calc  *calc.Calculator
	store history.Store
}

func NewCalcRouter(e *echo.Echo, c *calc.Calculator, store history.Store) *CalcRouter {
	return &CalcRouter{
		e:     e,
		calc:  c,
		store: store,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/api/v1")
	g.GET("/convert", r.convertHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.GET("/history", r.historyHandler)
}

func (r *CalcRouter) convertHandler(c echo.Context) error {
	expr := c.QueryParam("expr")
	if strings.TrimSpace(expr) == "" {
		return apperr.NewValidation("expr query parameter is required")
	}

	return c.JSON(http.StatusOK, r.calc.ConvertOnly(expr))
}

// evaluateHandler records every attempt, including failed ones, before
// answering.
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if strings.TrimSpace(req.Expression) == "" {
		return apperr.NewValidation("expression is required")
	}

	res, evalErr := r.calc.Run(req.Expression)

	id, err := r.store.Save(c.Request().Context(), history.NewRecord(res, evalErr))
	if err != nil {
		slog.Error("Failed to save evaluation", "expression", req.Expression, "error", err)
	}

	if evalErr != nil {
		return evalErr
	}

	return c.JSON(http.StatusOK, EvaluateResponse{
		ID:         id,
		Expression: res.Expression,
		Postfix:    res.Postfix,
		Rendered:   res.Rendered,
		Value:      res.Value,
	})
}

func (r *CalcRouter) historyHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("size", &req.Size).
		BindError()
	if err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	page, err := r.store.List(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}
