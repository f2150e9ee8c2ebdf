// Package events handles event emission for analysis lifecycle changes
package events

import (
	"context"
	"encoding/json"

	"github.com/Gobusters/ectologger"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/kafka"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/metrics"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/tracing"
)

// SchemaVersion is the current event schema version
const SchemaVersion = "1.0"

// Emitter publishes analysis lifecycle events
type Emitter struct {
	producer *kafka.Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *kafka.Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitAnalysisCompleted emits an analysis.completed event carrying the full
// assessment so downstream consumers need no read-back.
func (e *Emitter) EmitAnalysisCompleted(ctx context.Context, analysis *models.Analysis, assessment *models.RiskAssessment) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitAnalysisCompleted")
	defer span.End()

	data, err := json.Marshal(map[string]any{
		"schema_version": SchemaVersion,
		"assessment":     assessment,
	})
	if err != nil {
		return err
	}

	documentRef := ""
	if analysis.DocumentRef != nil {
		documentRef = *analysis.DocumentRef
	}

	event := &kafka.AnalysisEvent{
		EventType:      "analysis.completed",
		TenantID:       analysis.TenantID,
		AnalysisID:     analysis.ID,
		DocumentRef:    documentRef,
		AuctionType:    string(assessment.AuctionType),
		RiskScore:      assessment.OverallRiskScore,
		ViabilityScore: assessment.InvestmentViabilityScore,
		Assessment:     data,
	}

	if err := e.producer.PublishAnalysisEvent(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(event.EventType, "error").Inc()
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit analysis.completed event")
		return err
	}

	metrics.EventsPublishedTotal.WithLabelValues(event.EventType, "ok").Inc()
	return nil
}

// EmitAnalysisFailed emits an analysis.failed event
func (e *Emitter) EmitAnalysisFailed(ctx context.Context, tenantID, documentRef, reason string) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitAnalysisFailed")
	defer span.End()

	data, err := json.Marshal(map[string]any{
		"schema_version": SchemaVersion,
		"reason":         reason,
	})
	if err != nil {
		return err
	}

	event := &kafka.AnalysisEvent{
		EventType:   "analysis.failed",
		TenantID:    tenantID,
		DocumentRef: documentRef,
		Assessment:  data,
	}

	if err := e.producer.PublishAnalysisEvent(ctx, event); err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(event.EventType, "error").Inc()
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit analysis.failed event")
		return err
	}

	metrics.EventsPublishedTotal.WithLabelValues(event.EventType, "ok").Inc()
	return nil
}
