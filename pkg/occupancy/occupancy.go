// Package occupancy classifies who holds the property from the occupancy
// keyword hits and derives the possession-transfer risk.
package occupancy

import (
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

// precedence orders occupancy categories most-risk-relevant first. Editais
// often carry conflicting signals (a vacancy clause next to a pending
// possessory action) and the riskiest one must dominate.
var precedence = []struct {
	category string
	status   models.OccupancyStatus
	risk     models.TransferRisk
}{
	{"disputed", models.OccupancyDisputed, models.TransferRiskHigh},
	{"squatter", models.OccupancySquatter, models.TransferRiskHigh},
	{"tenant", models.OccupancyTenant, models.TransferRiskMedium},
	{"owner_occupied", models.OccupancyOwner, models.TransferRiskMedium},
	{"vacant", models.OccupancyVacant, models.TransferRiskLow},
}

// Classifier derives the property status of one document
type Classifier struct{}

// New creates a new Classifier
func New() *Classifier {
	return &Classifier{}
}

// Classify picks the highest-precedence occupancy category with any hit and
// reports the phrases behind the decision. No hits at all yields unknown.
func (c *Classifier) Classify(entities []models.ExtractedEntity) models.PropertyStatus {
	hits := map[string][]string{}
	seen := map[string]map[string]bool{}
	for _, ent := range entities {
		if ent.Kind != models.EntityKindKeywordHit {
			continue
		}
		category, ok := occupancyCategory(ent.Category)
		if !ok {
			continue
		}
		if seen[category] == nil {
			seen[category] = map[string]bool{}
		}
		if !seen[category][ent.Value] {
			seen[category][ent.Value] = true
			hits[category] = append(hits[category], ent.Value)
		}
	}

	status := models.PropertyStatus{
		Occupancy:    models.OccupancyUnknown,
		TransferRisk: models.TransferRiskUnknown,
		RiskFactors:  []string{},
		HasTenants:   len(hits["tenant"]) > 0,
		HasSquatters: len(hits["squatter"]) > 0,
		HasDisputes:  len(hits["disputed"]) > 0,
	}

	for _, level := range precedence {
		if phrases := hits[level.category]; len(phrases) > 0 {
			status.Occupancy = level.status
			status.TransferRisk = level.risk
			status.RiskFactors = phrases
			break
		}
	}
	return status
}

func occupancyCategory(entityCategory string) (string, bool) {
	const prefix = "occupancy."
	if len(entityCategory) > len(prefix) && entityCategory[:len(prefix)] == prefix {
		return entityCategory[len(prefix):], true
	}
	return "", false
}
