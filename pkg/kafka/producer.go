// Package kafka handles event emission for finished analyses.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/tracing"
)

// Producer handles Kafka event emission
type Producer struct {
	writer *kafka.Writer
	logger ectologger.Logger
	topic  string
}

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
	Compression  string
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg ProducerConfig, logger ectologger.Logger) *Producer {
	compression := kafka.Snappy
	switch cfg.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	case "none":
		compression = 0
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		Compression:            compression,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		topic:  cfg.Topic,
	}
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// AnalysisEvent is the wire shape of an analysis lifecycle event
type AnalysisEvent struct {
	EventType      string          `json:"event_type"` // analysis.completed, analysis.failed
	TenantID       string          `json:"tenant_id"`
	AnalysisID     string          `json:"analysis_id"`
	DocumentRef    string          `json:"document_ref,omitempty"`
	AuctionType    string          `json:"auction_type,omitempty"`
	RiskScore      float64         `json:"risk_score"`
	ViabilityScore float64         `json:"viability_score"`
	Assessment     json.RawMessage `json:"assessment,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// PublishAnalysisEvent publishes an analysis event to Kafka
func (p *Producer) PublishAnalysisEvent(ctx context.Context, event *AnalysisEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishAnalysisEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.AnalysisID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "tenant_id", Value: []byte(event.TenantID)},
			{Key: "traceparent", Value: []byte(tracing.GetTraceParent(ctx))},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish analysis event")
		return err
	}

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type":  event.EventType,
		"analysis_id": event.AnalysisID,
	}).Debug("Published analysis event")

	return nil
}
