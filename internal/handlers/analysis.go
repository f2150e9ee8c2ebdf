package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/internal/repositories/analysis"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/engine"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/events"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/metrics"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/redis"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/tracing"
)

var validate = validator.New()

// AnalysisHandler handles document analysis requests
type AnalysisHandler struct {
	engine  *engine.Engine
	repo    analysis.Repo
	cache   *redis.ResultCache
	emitter *events.Emitter
	logger  ectologger.Logger
}

// NewAnalysisHandler creates a new analysis handler. The cache and emitter
// may be nil when Redis or Kafka are not configured.
func NewAnalysisHandler(eng *engine.Engine, repo analysis.Repo, cache *redis.ResultCache, emitter *events.Emitter, logger ectologger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		engine:  eng,
		repo:    repo,
		cache:   cache,
		emitter: emitter,
		logger:  logger,
	}
}

// Register registers the analysis routes
func (h *AnalysisHandler) Register(g *echo.Group) {
	g.POST("", h.Analyze)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
}

// Analyze runs the compliance engine on a document and persists the result
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "handlers.AnalysisHandler.Analyze")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))

	tenantID, err := GetTenantID(c)
	if err != nil {
		return err
	}

	var req models.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return BadRequest("invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return BadRequest(err.Error())
	}

	lang := req.Language
	if lang == "" {
		lang = engine.LanguagePortuguese
	}

	hash := documentHash(req.DocumentText)
	existing, err := h.repo.GetByDocumentHash(ctx, tenantID, hash)
	if err != nil {
		return err
	}
	if existing != nil && existing.Language == lang {
		h.logger.WithContext(ctx).WithField("analysis_id", existing.ID).Debug("returning stored analysis for document hash")
		return SuccessResponse(c, existing)
	}

	start := time.Now()
	assessment := h.cachedAssessment(c, req.DocumentText, lang)
	if assessment == nil {
		assessment, err = h.engine.Analyze(ctx, req.DocumentText, lang)
		if err != nil {
			metrics.AnalysesTotal.WithLabelValues(tenantID, "unknown", "error").Inc()
			h.emitFailure(c, tenantID, req.DocumentRef, err)
			return err
		}
		if h.cache != nil {
			h.cache.Put(ctx, req.DocumentText, lang, assessment)
		}
	}
	metrics.AnalysisDuration.WithLabelValues(tenantID).Observe(time.Since(start).Seconds())

	result, err := json.Marshal(assessment)
	if err != nil {
		return httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to serialize assessment: %s", err.Error())
	}

	record := &models.Analysis{
		TenantID:       tenantID,
		DocumentRef:    req.DocumentRef,
		DocumentHash:   hash,
		Language:       lang,
		RiskScore:      assessment.OverallRiskScore,
		ViabilityScore: assessment.InvestmentViabilityScore,
		Confidence:     assessment.ConfidenceLevel,
		Result:         result,
	}
	created, err := h.repo.Create(ctx, record)
	if err != nil {
		return err
	}

	if h.emitter != nil {
		if err := h.emitter.EmitAnalysisCompleted(ctx, created, assessment); err != nil {
			h.logger.WithContext(ctx).WithError(err).Warn("failed to publish analysis event")
		}
	}

	metrics.AnalysesTotal.WithLabelValues(tenantID, string(assessment.AuctionType), "success").Inc()
	metrics.RiskScore.Observe(assessment.OverallRiskScore)
	metrics.ComplianceIssuesTotal.WithLabelValues(tenantID).Add(float64(len(assessment.ComplianceIssues)))

	return CreatedResponse(c, created)
}

// Get returns a stored analysis by ID
func (h *AnalysisHandler) Get(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "handlers.AnalysisHandler.Get")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))

	tenantID, err := GetTenantID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return BadRequest("id is required")
	}

	record, err := h.repo.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}

	return SuccessResponse(c, record)
}

// List returns the tenant's stored analyses, newest first
func (h *AnalysisHandler) List(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "handlers.AnalysisHandler.List")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))

	tenantID, err := GetTenantID(c)
	if err != nil {
		return err
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return BadRequest("limit must be an integer")
		}
	}

	records, err := h.repo.List(ctx, tenantID, limit)
	if err != nil {
		return err
	}

	return SuccessResponse(c, records)
}

// Delete removes a stored analysis
func (h *AnalysisHandler) Delete(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "handlers.AnalysisHandler.Delete")
	defer span.End()
	c.SetRequest(c.Request().WithContext(ctx))

	tenantID, err := GetTenantID(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return BadRequest("id is required")
	}

	if err := h.repo.Delete(ctx, tenantID, id); err != nil {
		return err
	}

	return NoContentResponse(c)
}

func (h *AnalysisHandler) cachedAssessment(c echo.Context, text, lang string) *models.RiskAssessment {
	if h.cache == nil {
		return nil
	}
	return h.cache.Get(c.Request().Context(), text, lang)
}

func (h *AnalysisHandler) emitFailure(c echo.Context, tenantID string, documentRef *string, cause error) {
	if h.emitter == nil {
		return
	}
	ref := ""
	if documentRef != nil {
		ref = *documentRef
	}
	if err := h.emitter.EmitAnalysisFailed(c.Request().Context(), tenantID, ref, cause.Error()); err != nil {
		h.logger.WithContext(c.Request().Context()).WithError(err).Warn("failed to publish analysis failure event")
	}
}

func documentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
