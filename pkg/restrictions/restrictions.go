// Package restrictions detects title encumbrances and grades how viable the
// ownership transfer is.
package restrictions

import (
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

// detectionOrder fixes the order labels appear in restrictions_found
var detectionOrder = []string{"judicial_unavailability", "lien", "mortgage", "seizure"}

// Detector derives the legal restrictions of one document
type Detector struct{}

// New creates a new Detector
func New() *Detector {
	return &Detector{}
}

// Detect flags each restriction category with any keyword hit and grades the
// transfer viability from the worst restriction present. A mortgage alone
// stays viable because it sub-rogates into the sale price; a lien needs the
// executing court's release; a seizure usually belongs to another case and
// must be litigated; a judicial unavailability blocks registration outright.
func (d *Detector) Detect(entities []models.ExtractedEntity) models.LegalRestrictions {
	found := map[string]bool{}
	for _, ent := range entities {
		if ent.Kind != models.EntityKindKeywordHit {
			continue
		}
		if category, ok := restrictionCategory(ent.Category); ok {
			found[category] = true
		}
	}

	result := models.LegalRestrictions{
		JudicialUnavailability: found["judicial_unavailability"],
		HasLiens:               found["lien"],
		HasMortgages:           found["mortgage"],
		HasSeizures:            found["seizure"],
		RestrictionsFound:      []string{},
	}
	for _, category := range detectionOrder {
		if found[category] {
			result.RestrictionsFound = append(result.RestrictionsFound, category)
		}
	}

	switch {
	case result.JudicialUnavailability:
		result.TransferViability = models.TransferViabilityBlocked
	case result.HasSeizures:
		result.TransferViability = models.TransferViabilityRisky
	case result.HasLiens:
		result.TransferViability = models.TransferViabilityConditions
	case result.HasMortgages:
		result.TransferViability = models.TransferViabilityViable
	default:
		result.TransferViability = models.TransferViabilityClear
	}
	return result
}

func restrictionCategory(entityCategory string) (string, bool) {
	const prefix = "restriction."
	if len(entityCategory) > len(prefix) && entityCategory[:len(prefix)] == prefix {
		return entityCategory[len(prefix):], true
	}
	return "", false
}
