package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/metrics"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/tracing"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

// ResultCache stores finished assessments keyed by document content. The
// pipeline is deterministic, so the same text under the same vocabulary
// version always reproduces the cached assessment. A vocabulary bump changes
// every key and retires stale entries via TTL.
type ResultCache struct {
	client *Client
	ttl    time.Duration
	logger ectologger.Logger
}

// NewResultCache creates a new ResultCache
func NewResultCache(client *Client, ttl time.Duration, logger ectologger.Logger) *ResultCache {
	return &ResultCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached assessment for the document, or nil on a miss.
// Cache failures degrade to a miss; the caller re-analyzes.
func (rc *ResultCache) Get(ctx context.Context, text, lang string) *models.RiskAssessment {
	ctx, span := tracing.StartSpan(ctx, "redis.ResultCache.Get")
	defer span.End()

	raw, err := rc.client.Get(ctx, cacheKey(text, lang))
	if err != nil {
		if !IsNil(err) {
			rc.logger.WithContext(ctx).WithError(err).Warn("Result cache lookup failed")
		}
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}

	var assessment models.RiskAssessment
	if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
		rc.logger.WithContext(ctx).WithError(err).Warn("Discarding undecodable cached assessment")
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return nil
	}

	metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
	return &assessment
}

// Put stores an assessment. Failures are logged and swallowed; caching is
// best effort.
func (rc *ResultCache) Put(ctx context.Context, text, lang string, assessment *models.RiskAssessment) {
	ctx, span := tracing.StartSpan(ctx, "redis.ResultCache.Put")
	defer span.End()

	data, err := json.Marshal(assessment)
	if err != nil {
		rc.logger.WithContext(ctx).WithError(err).Warn("Failed to encode assessment for cache")
		return
	}

	if err := rc.client.Set(ctx, cacheKey(text, lang), data, rc.ttl); err != nil {
		rc.logger.WithContext(ctx).WithError(err).Warn("Failed to store assessment in cache")
	}
}

func cacheKey(text, lang string) string {
	sum := sha256.Sum256([]byte(vocab.Version + "|" + lang + "|" + text))
	return fmt.Sprintf("edital:analysis:%s", hex.EncodeToString(sum[:]))
}
