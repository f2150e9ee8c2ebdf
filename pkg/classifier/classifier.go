// Package classifier determines whether an edital announces a judicial or
// extrajudicial auction from weighted indicator hits.
package classifier

import (
	"math"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

// MaxIndicators caps the reported indicator list to bound output size
const MaxIndicators = 10

// Classifier weighs judicial vs extrajudicial keyword hits
type Classifier struct{}

// New creates a new Classifier
func New() *Classifier {
	return &Classifier{}
}

// Classify weighs judicial vs extrajudicial keyword hits. A tie (including
// zero hits on both sides) classifies as unknown with confidence 0.
// Indicators are reported in first-seen order.
func (c *Classifier) Classify(entities []models.ExtractedEntity) models.AuctionClassification {
	judicialWeight := termWeights(vocab.JudicialIndicators)
	extrajudicialWeight := termWeights(vocab.ExtrajudicialIndicators)

	var judicialScore, extrajudicialScore float64
	indicators := make([]string, 0, MaxIndicators)
	seen := make(map[string]bool)

	for _, entity := range entities {
		if entity.Kind != models.EntityKindKeywordHit {
			continue
		}
		switch entity.Category {
		case "judicial":
			judicialScore += judicialWeight[entity.Value]
		case "extrajudicial":
			extrajudicialScore += extrajudicialWeight[entity.Value]
		default:
			continue
		}
		if !seen[entity.Value] && len(indicators) < MaxIndicators {
			seen[entity.Value] = true
			indicators = append(indicators, entity.Value)
		}
	}

	classification := models.AuctionClassification{
		Type:       models.AuctionTypeUnknown,
		Indicators: indicators,
	}

	total := judicialScore + extrajudicialScore
	if total == 0 || judicialScore == extrajudicialScore {
		return classification
	}

	if judicialScore > extrajudicialScore {
		classification.Type = models.AuctionTypeJudicial
	} else {
		classification.Type = models.AuctionTypeExtrajudicial
	}

	// Confidence is the normalized margin between the two vocabularies,
	// clamped to [0,1].
	margin := math.Abs(judicialScore-extrajudicialScore) / total
	classification.Confidence = math.Min(1.0, math.Max(0.0, margin))

	return classification
}

func termWeights(terms []vocab.Term) map[string]float64 {
	weights := make(map[string]float64, len(terms))
	for _, t := range terms {
		weights[t.Text] = t.Weight
	}
	return weights
}
