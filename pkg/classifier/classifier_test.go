package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

func keywordHit(category, value string) models.ExtractedEntity {
	return models.ExtractedEntity{
		Kind:     models.EntityKindKeywordHit,
		Category: category,
		Value:    value,
	}
}

func TestClassify(t *testing.T) {
	t.Run("judicial indicators win", func(t *testing.T) {
		out := New().Classify([]models.ExtractedEntity{
			keywordHit("judicial", "leilão judicial"),
			keywordHit("judicial", "vara cível"),
			keywordHit("extrajudicial", "leilão particular"),
		})

		assert.Equal(t, models.AuctionTypeJudicial, out.Type)
		assert.InDelta(t, (3.5-1.0)/4.5, out.Confidence, 1e-9)
		assert.Equal(t, []string{"leilão judicial", "vara cível", "leilão particular"}, out.Indicators)
	})

	t.Run("extrajudicial indicators win", func(t *testing.T) {
		out := New().Classify([]models.ExtractedEntity{
			keywordHit("extrajudicial", "alienação fiduciária"),
			keywordHit("extrajudicial", "credor fiduciário"),
		})

		assert.Equal(t, models.AuctionTypeExtrajudicial, out.Type)
		assert.Equal(t, 1.0, out.Confidence)
	})

	t.Run("no indicators classify as unknown", func(t *testing.T) {
		out := New().Classify([]models.ExtractedEntity{
			keywordHit("occupancy.vacant", "desocupado"),
			{Kind: models.EntityKindDate, Value: "2025-09-10"},
		})

		assert.Equal(t, models.AuctionTypeUnknown, out.Type)
		assert.Zero(t, out.Confidence)
		assert.Empty(t, out.Indicators)
	})

	t.Run("tied weights classify as unknown", func(t *testing.T) {
		out := New().Classify([]models.ExtractedEntity{
			keywordHit("judicial", "leilão judicial"),
			keywordHit("extrajudicial", "alienação fiduciária"),
		})

		assert.Equal(t, models.AuctionTypeUnknown, out.Type)
		assert.Zero(t, out.Confidence)
	})

	t.Run("repeated hits strengthen the score but report once", func(t *testing.T) {
		out := New().Classify([]models.ExtractedEntity{
			keywordHit("judicial", "hasta pública"),
			keywordHit("judicial", "hasta pública"),
			keywordHit("extrajudicial", "lei 9.514"),
		})

		assert.Equal(t, models.AuctionTypeJudicial, out.Type)
		assert.Equal(t, []string{"hasta pública", "lei 9.514"}, out.Indicators)
	})

	t.Run("indicator list caps at ten", func(t *testing.T) {
		var entities []models.ExtractedEntity
		terms := []string{
			"leilão judicial", "hasta pública", "alienação judicial", "vara cível",
			"vara de execuções", "processo de execução", "execução fiscal", "expropriação",
			"leilão extrajudicial", "alienação fiduciária", "credor fiduciário", "leilão particular",
		}
		for i, term := range terms {
			category := "judicial"
			if i >= 8 {
				category = "extrajudicial"
			}
			entities = append(entities, keywordHit(category, term))
		}

		out := New().Classify(entities)
		assert.Len(t, out.Indicators, MaxIndicators)
	})
}
