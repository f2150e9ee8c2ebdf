package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/engine"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/middleware"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

const sampleEdital = `EDITAL DE LEILÃO JUDICIAL
O Exmo. Juiz de Direito da 2ª Vara Cível, nos autos da execução, FAZ SABER que levará a leilão o imóvel penhorado.
Edital publicado no Diário Oficial em 01/09/2025.
O leilão será realizado em 10/09/2025.
Valor de avaliação: R$ 500.000,00. Lance mínimo: R$ 300.000,00.
O executado foi devidamente intimado. Imóvel desocupado.`

type stubRepo struct {
	created []*models.Analysis
	byHash  *models.Analysis
	byID    map[string]*models.Analysis
	deleted []string
}

func (s *stubRepo) Create(_ context.Context, analysis *models.Analysis) (*models.Analysis, error) {
	stored := *analysis
	if stored.ID == "" {
		stored.ID = "11111111-1111-1111-1111-111111111111"
	}
	stored.CreatedAt = time.Now().UTC()
	s.created = append(s.created, &stored)
	return &stored, nil
}

func (s *stubRepo) Get(_ context.Context, tenantID, id string) (*models.Analysis, error) {
	record, ok := s.byID[id]
	if !ok || record.TenantID != tenantID {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "analysis not found")
	}
	return record, nil
}

func (s *stubRepo) GetByDocumentHash(_ context.Context, tenantID, documentHash string) (*models.Analysis, error) {
	if s.byHash != nil && s.byHash.TenantID == tenantID && s.byHash.DocumentHash == documentHash {
		return s.byHash, nil
	}
	return nil, nil
}

func (s *stubRepo) List(_ context.Context, tenantID string, limit int) ([]models.Analysis, error) {
	records := make([]models.Analysis, 0, len(s.created))
	for _, record := range s.created {
		if record.TenantID == tenantID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (s *stubRepo) Delete(_ context.Context, tenantID, id string) error {
	if _, ok := s.byID[id]; !ok {
		return httperror.NewHTTPError(http.StatusNotFound, "analysis not found")
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newTestServer(repo *stubRepo) *echo.Echo {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})

	e := echo.New()
	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(middleware.Context())

	handler := NewAnalysisHandler(engine.New(logger), repo, nil, nil, logger)
	handler.Register(e.Group("/api/v1/analyses"))
	return e
}

func makeRequest(t *testing.T, e *echo.Echo, method, path, tenantID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if tenantID != "" {
		req.Header.Set(middleware.HeaderTenantID, tenantID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalysisHandler_Analyze(t *testing.T) {
	t.Run("missing tenant returns 401", func(t *testing.T) {
		e := newTestServer(&stubRepo{})

		rec := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "", models.AnalyzeRequest{DocumentText: sampleEdital})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing document text returns 400", func(t *testing.T) {
		e := newTestServer(&stubRepo{})

		rec := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "tenant-a", models.AnalyzeRequest{})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unsupported language returns 400", func(t *testing.T) {
		e := newTestServer(&stubRepo{})

		rec := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "tenant-a", models.AnalyzeRequest{
			DocumentText: sampleEdital,
			Language:     "deu",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("analyzes and persists the document", func(t *testing.T) {
		repo := &stubRepo{}
		e := newTestServer(repo)

		rec := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "tenant-a", models.AnalyzeRequest{DocumentText: sampleEdital})

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, repo.created, 1)

		var created models.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, "tenant-a", created.TenantID)
		assert.Equal(t, "por", created.Language)
		assert.NotEmpty(t, created.DocumentHash)
		assert.NotEmpty(t, created.Result)

		var assessment models.RiskAssessment
		require.NoError(t, json.Unmarshal(created.Result, &assessment))
		assert.Equal(t, models.AuctionTypeJudicial, assessment.AuctionType)
	})

	t.Run("returns the stored analysis for a repeated document", func(t *testing.T) {
		repo := &stubRepo{}
		e := newTestServer(repo)

		first := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "tenant-a", models.AnalyzeRequest{DocumentText: sampleEdital})
		require.Equal(t, http.StatusCreated, first.Code)
		repo.byHash = repo.created[0]

		second := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "tenant-a", models.AnalyzeRequest{DocumentText: sampleEdital})
		require.Equal(t, http.StatusOK, second.Code)
		assert.Len(t, repo.created, 1)

		var returned models.Analysis
		require.NoError(t, json.Unmarshal(second.Body.Bytes(), &returned))
		assert.Equal(t, repo.created[0].ID, returned.ID)
	})
}

func TestAnalysisHandler_Get(t *testing.T) {
	record := &models.Analysis{
		ID:       "22222222-2222-2222-2222-222222222222",
		TenantID: "tenant-a",
		Language: "por",
		Result:   json.RawMessage(`{}`),
	}
	repo := &stubRepo{byID: map[string]*models.Analysis{record.ID: record}}
	e := newTestServer(repo)

	t.Run("returns the stored analysis", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodGet, "/api/v1/analyses/"+record.ID, "tenant-a", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var returned models.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &returned))
		assert.Equal(t, record.ID, returned.ID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodGet, "/api/v1/analyses/33333333-3333-3333-3333-333333333333", "tenant-a", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("other tenant cannot read the analysis", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodGet, "/api/v1/analyses/"+record.ID, "tenant-b", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAnalysisHandler_List(t *testing.T) {
	repo := &stubRepo{}
	e := newTestServer(repo)

	first := makeRequest(t, e, http.MethodPost, "/api/v1/analyses", "tenant-a", models.AnalyzeRequest{DocumentText: sampleEdital})
	require.Equal(t, http.StatusCreated, first.Code)

	t.Run("returns the tenant's analyses", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodGet, "/api/v1/analyses", "tenant-a", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var records []models.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Len(t, records, 1)
	})

	t.Run("rejects a non-numeric limit", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodGet, "/api/v1/analyses?limit=abc", "tenant-a", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("other tenant sees no analyses", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodGet, "/api/v1/analyses", "tenant-b", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var records []models.Analysis
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		assert.Empty(t, records)
	})
}

func TestAnalysisHandler_Delete(t *testing.T) {
	record := &models.Analysis{
		ID:       "44444444-4444-4444-4444-444444444444",
		TenantID: "tenant-a",
	}
	repo := &stubRepo{byID: map[string]*models.Analysis{record.ID: record}}
	e := newTestServer(repo)

	t.Run("deletes the analysis", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodDelete, "/api/v1/analyses/"+record.ID, "tenant-a", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, repo.deleted, record.ID)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		rec := makeRequest(t, e, http.MethodDelete, "/api/v1/analyses/55555555-5555-5555-5555-555555555555", "tenant-a", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
