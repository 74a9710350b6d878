package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gridimpact-org/gridimpact/engine"
	"github.com/gridimpact-org/gridimpact/factorset"
	"github.com/gridimpact-org/gridimpact/helpers"
	"github.com/gridimpact-org/gridimpact/schema"
)

// ServiceVersion is the gridimpact service version.
const ServiceVersion = "0.1.0"

// maxUploadBytes caps plan CSV uploads. Plans are two-to-three-digit row
// counts; 4 MiB is already generous.
const maxUploadBytes = 4 << 20

// Handlers contains the HTTP handlers for the impact calculator.
type Handlers struct {
	store   *Store
	factors *factorset.Set
}

// NewHandlers creates handlers over a plan store and factor set.
func NewHandlers(store *Store, factors *factorset.Set) *Handlers {
	if factors == nil {
		factors = factorset.Default()
	}
	return &Handlers{store: store, factors: factors}
}

// NewRouter builds the gin router with all routes registered.
func NewRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/v1")
	{
		v1.GET("/healthz", h.HandleHealthz)
		v1.GET("/factors", h.HandleFactors)
		v1.POST("/plans", h.HandleCreatePlan)
		v1.GET("/plans/:id", h.HandleGetPlan)
		v1.POST("/plans/:id/calculate", h.HandleCalculate)
		v1.GET("/plans/:id/chart", h.HandleChart)
		v1.GET("/plans/:id/groups", h.HandleGroups)
	}
	return r
}

// ============================================================================
// REQUEST/RESPONSE TYPES
// ============================================================================

// CreatePlanRequest submits plan rows as JSON. CSV upload uses multipart
// form field "file" instead.
type CreatePlanRequest struct {
	Rows []engine.PlanRow `json:"rows"`
}

// CreatePlanResponse returns the registered plan.
type CreatePlanResponse struct {
	ID       string           `json:"id"`
	RowCount int              `json:"rowCount"`
	Preview  []engine.PlanRow `json:"preview"`
}

// CalculateRequest selects the factor table for a calculation.
type CalculateRequest struct {
	Category string `json:"category"`
	Scenario string `json:"scenario"`
}

// CalculateResponse summarizes a finished calculation.
type CalculateResponse struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Scenario string  `json:"scenario"`
	Unit     string  `json:"unit"`
	Total    float64 `json:"total"`
	RowCount int     `json:"rowCount"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ============================================================================
// HANDLERS
// ============================================================================

// HandleHealthz handles GET /v1/healthz.
func (h *Handlers) HandleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": ServiceVersion})
}

// HandleFactors handles GET /v1/factors?category=&scenario=.
// Returns the factor table a calculation with those selectors would use.
func (h *Handlers) HandleFactors(c *gin.Context) {
	category := c.Query("category")
	scenario := c.Query("scenario")

	table, unit, err := h.factors.Resolve(category, scenario)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entries := make([]gin.H, 0, len(table))
	for _, key := range table.Keys() {
		entries = append(entries, gin.H{
			"component_type":    key.ComponentType,
			"component_subtype": key.ComponentSubtype,
			"value":             table.Factor(key.ComponentType, key.ComponentSubtype),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"unit":       unit,
		"factors":    entries,
		"categories": h.factors.CategoryNames(),
		"scenarios":  h.factors.Scenarios,
	})
}

// HandleCreatePlan handles POST /v1/plans.
//
// Accepts either a JSON body with plan rows or a multipart CSV upload in
// field "file". Shape violations are 400s; the plan never enters the store.
func (h *Handlers) HandleCreatePlan(c *gin.Context) {
	logger := requestLogger(c, "HandleCreatePlan")

	rows, err := h.readPlan(c)
	if err != nil {
		logger.Warn("Plan rejected", "error", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	state := h.store.Put(rows)
	logger.Info("Plan registered", "plan_id", state.ID, "rows", len(rows))

	preview := rows
	if len(preview) > 5 {
		preview = preview[:5]
	}
	c.JSON(http.StatusCreated, CreatePlanResponse{
		ID:       state.ID,
		RowCount: len(rows),
		Preview:  preview,
	})
}

func (h *Handlers) readPlan(c *gin.Context) ([]engine.PlanRow, error) {
	if file, err := c.FormFile("file"); err == nil {
		if file.Size > maxUploadBytes {
			return nil, errors.New("upload too large")
		}
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			return nil, err
		}
		return helpers.ParsePlanCSV(data)
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	if len(req.Rows) == 0 {
		return nil, errors.New("plan has no rows")
	}
	for _, r := range req.Rows {
		if r.ComponentType == "" {
			return nil, schema.ErrMissingColumn
		}
	}
	return req.Rows, nil
}

// HandleGetPlan handles GET /v1/plans/:id.
func (h *Handlers) HandleGetPlan(c *gin.Context) {
	state := h.store.Get(c.Param("id"))
	if state == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "plan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         state.ID,
		"rows":       state.Plan,
		"calculated": state.Calculated(),
		"category":   state.Category,
		"scenario":   state.Scenario,
	})
}

// HandleCalculate handles POST /v1/plans/:id/calculate.
//
// Runs enrichment and impact computation with the selected factor table and
// caches the result table, replacing any previous one.
func (h *Handlers) HandleCalculate(c *gin.Context) {
	logger := requestLogger(c, "HandleCalculate")

	state := h.store.Get(c.Param("id"))
	if state == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "plan not found"})
		return
	}

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	table, unit, err := h.factors.Resolve(req.Category, req.Scenario)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	category, scenario := req.Category, req.Scenario
	if category == "" {
		category = factorset.DefaultCategory
	}
	if scenario == "" {
		scenario = factorset.DefaultScenario
	}

	rows := engine.Calculate(state.Plan, table)
	state = h.store.SetResult(state.ID, rows, category, scenario, unit)
	if state == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "plan not found"})
		return
	}

	logger.Info("Calculation cached",
		"plan_id", state.ID, "category", category, "scenario", scenario, "rows", len(rows))

	c.JSON(http.StatusOK, CalculateResponse{
		ID:       state.ID,
		Category: category,
		Scenario: scenario,
		Unit:     unit,
		Total:    engine.TotalImpact(rows),
		RowCount: len(rows),
	})
}

// HandleChart handles GET /v1/plans/:id/chart?group=&cumulative=.
//
// Re-aggregates the cached impact table for the requested controls — no
// impact recomputation. 409 before the first calculate call.
func (h *Handlers) HandleChart(c *gin.Context) {
	state := h.store.Get(c.Param("id"))
	if state == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "plan not found"})
		return
	}
	if !state.Calculated() {
		c.JSON(http.StatusConflict, errorResponse{Error: "plan not calculated yet"})
		return
	}

	cumulative, err := parseBool(c.Query("cumulative"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "cumulative must be a boolean"})
		return
	}
	ctrl := engine.Controls{
		Group:      c.DefaultQuery("group", engine.AllGroups),
		Cumulative: cumulative,
	}

	result := engine.Reslice(state.Rows, ctrl,
		engine.WithImpactCategory(state.Category, state.Unit),
		engine.WithScenario(state.Scenario),
	)
	c.JSON(http.StatusOK, result)
}

// HandleGroups handles GET /v1/plans/:id/groups.
func (h *Handlers) HandleGroups(c *gin.Context) {
	state := h.store.Get(c.Param("id"))
	if state == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "plan not found"})
		return
	}
	if !state.Calculated() {
		c.JSON(http.StatusConflict, errorResponse{Error: "plan not calculated yet"})
		return
	}
	groups := append([]string{engine.AllGroups}, engine.ComponentTypes(state.Rows)...)
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// ============================================================================
// HELPERS
// ============================================================================

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func requestLogger(c *gin.Context, handler string) *slog.Logger {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header("X-Request-ID", requestID)
	return slog.With("request_id", requestID, "handler", handler)
}
