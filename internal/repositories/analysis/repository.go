// Package analysis persists finished assessments so callers can retrieve
// and list past analyses per tenant.
package analysis

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/database"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/tracing"
)

const columns = "id, tenant_id, document_ref, document_hash, language, risk_score, viability_score, confidence, result, created_at"

// Repository handles analysis persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new analysis repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new analysis record
func (r *Repository) Create(ctx context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	ctx, span := tracing.StartSpan(ctx, "analysis.Repository.Create")
	defer span.End()

	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	analysis.CreatedAt = time.Now().UTC()

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("analyses")
	sb.Cols("id", "tenant_id", "document_ref", "document_hash", "language", "risk_score", "viability_score", "confidence", "result", "created_at")
	sb.Values(analysis.ID, analysis.TenantID, analysis.DocumentRef, analysis.DocumentHash, analysis.Language, analysis.RiskScore, analysis.ViabilityScore, analysis.Confidence, analysis.Result, analysis.CreatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"analysis_id": analysis.ID}).Error("Failed to create analysis")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create analysis")
	}

	return analysis, nil
}

// Get retrieves an analysis by ID
func (r *Repository) Get(ctx context.Context, tenantID, id string) (*models.Analysis, error) {
	ctx, span := tracing.StartSpan(ctx, "analysis.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("analyses")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var analysis models.Analysis
	if err := r.db.GetContext(ctx, &analysis, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("analysis %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get analysis")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get analysis")
	}

	return &analysis, nil
}

// GetByDocumentHash returns the most recent analysis of a document, or nil
// when the document was never analyzed.
func (r *Repository) GetByDocumentHash(ctx context.Context, tenantID, documentHash string) (*models.Analysis, error) {
	ctx, span := tracing.StartSpan(ctx, "analysis.Repository.GetByDocumentHash")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("analyses")
	sb.Where(
		sb.Equal("tenant_id", tenantID),
		sb.Equal("document_hash", documentHash),
	)
	sb.OrderBy("created_at DESC")
	sb.Limit(1)

	query, args := sb.Build()
	var analysis models.Analysis
	if err := r.db.GetContext(ctx, &analysis, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get analysis by document hash")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get analysis")
	}

	return &analysis, nil
}

// List retrieves the most recent analyses for a tenant
func (r *Repository) List(ctx context.Context, tenantID string, limit int) ([]models.Analysis, error) {
	ctx, span := tracing.StartSpan(ctx, "analysis.Repository.List")
	defer span.End()

	if limit < 1 || limit > 500 {
		limit = 100
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(columns)
	sb.From("analyses")
	sb.Where(sb.Equal("tenant_id", tenantID))
	sb.OrderBy("created_at DESC")
	sb.Limit(limit)

	query, args := sb.Build()
	var analyses []models.Analysis
	if err := r.db.SelectContext(ctx, &analyses, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list analyses")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list analyses")
	}

	return analyses, nil
}

// Delete removes an analysis record
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	ctx, span := tracing.StartSpan(ctx, "analysis.Repository.Delete")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	sb.DeleteFrom("analyses")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete analysis")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete analysis")
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("analysis %s not found", id))
	}

	return nil
}
