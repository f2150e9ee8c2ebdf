// Package engine wires the analysis stages into one pipeline. An analysis is
// a pure function of the document text: extraction feeds five independent
// stages that fan out concurrently, and the scorer is the single join point.
// The engine holds no mutable state and is safe for concurrent calls.
package engine

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/classifier"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/compliance"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/debts"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/extractor"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/occupancy"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/restrictions"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/scoring"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/tracing"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/valuation"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

// Supported language hints. The hint only steers ambiguous numeric dates.
const (
	LanguagePortuguese = "por"
	LanguageEnglish    = "eng"
)

// Engine runs the full edital analysis pipeline
type Engine struct {
	extractor    *extractor.Extractor
	classifier   *classifier.Classifier
	compliance   *compliance.Checker
	valuation    *valuation.Analyzer
	debts        *debts.Aggregator
	occupancy    *occupancy.Classifier
	restrictions *restrictions.Detector
	scorer       *scoring.Scorer
	logger       ectologger.Logger
}

// New creates a new Engine
func New(logger ectologger.Logger) *Engine {
	return &Engine{
		extractor:    extractor.New(),
		classifier:   classifier.New(),
		compliance:   compliance.New(),
		valuation:    valuation.New(),
		debts:        debts.New(),
		occupancy:    occupancy.New(),
		restrictions: restrictions.New(),
		scorer:       scoring.New(),
		logger:       logger,
	}
}

// VocabVersion reports the vocabulary revision the engine analyzes with
func (e *Engine) VocabVersion() string {
	return vocab.Version
}

// Analyze turns one document text into a RiskAssessment. lang is an optional
// hint, Portuguese when empty. Blank text and unsupported hints are input
// errors; everything past validation always produces an assessment.
func (e *Engine) Analyze(ctx context.Context, text, lang string) (*models.RiskAssessment, error) {
	ctx, span := tracing.StartSpan(ctx, "engine.Engine.Analyze")
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return nil, httperror.NewHTTPError(http.StatusBadRequest, "document text is required")
	}
	switch lang {
	case "":
		lang = LanguagePortuguese
	case LanguagePortuguese, LanguageEnglish:
	default:
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "unsupported language hint %q", lang)
	}

	entities := e.extractor.Extract(text, lang)

	var results scoring.StageResults
	fanOut(
		func() { results.Classification = e.classifier.Classify(entities) },
		func() { results.Compliance = e.compliance.Check(text, entities) },
		func() { results.Valuation = e.valuation.Analyze(text, entities) },
		func() { results.Debts = e.debts.Aggregate(text, entities) },
		func() { results.Property = e.occupancy.Classify(entities) },
		func() { results.Restrictions = e.restrictions.Detect(entities) },
	)

	assessment := e.scorer.Score(results)

	e.logger.WithContext(ctx).WithFields(map[string]any{
		"auction_type":    assessment.AuctionType,
		"risk_score":      assessment.OverallRiskScore,
		"viability_score": assessment.InvestmentViabilityScore,
		"confidence":      assessment.ConfidenceLevel,
		"entity_count":    len(entities),
	}).Debug("Document analyzed")

	return &assessment, nil
}

// fanOut runs the stage closures concurrently and joins them. Each closure
// writes a distinct StageResults field, so no synchronization beyond the
// join is needed.
func fanOut(stages ...func()) {
	var wg sync.WaitGroup
	wg.Add(len(stages))
	for _, stage := range stages {
		go func(run func()) {
			defer wg.Done()
			run()
		}(stage)
	}
	wg.Wait()
}
