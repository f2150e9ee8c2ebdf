// Package debts aggregates the outstanding-debt amounts stated in an edital
// by category and resolves who settles them after the arrematação.
package debts

import (
	"strings"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

// labelWindow is how far back from a currency amount the aggregator looks
// for a debt-category term, in bytes.
const labelWindow = 60

// categories fixes the lookup order for windows holding two debt terms
var categories = []models.DebtCategory{
	models.DebtCategoryTax,
	models.DebtCategoryCondominium,
	models.DebtCategoryMortgage,
	models.DebtCategoryOther,
}

// Aggregator sums the stated debts of one document
type Aggregator struct{}

// New creates a new Aggregator
func New() *Aggregator {
	return &Aggregator{}
}

// Aggregate assigns each debt-labeled currency amount to its category. When
// a category is stated more than once the largest amount is kept, since
// editais restate the same debt as it accrues rather than listing distinct
// debts under one heading. Total sums the per-category amounts.
func (a *Aggregator) Aggregate(text string, entities []models.ExtractedEntity) models.DebtSummary {
	lower := vocab.Fold(text)

	summary := models.DebtSummary{
		Amounts:        map[models.DebtCategory]float64{},
		Responsibility: responsibility(lower),
	}

	for _, ent := range entities {
		if ent.Kind != models.EntityKindCurrency {
			continue
		}
		category, ok := categoryFor(lower, ent.Offset)
		if !ok {
			continue
		}
		if ent.Amount > summary.Amounts[category] {
			summary.Amounts[category] = ent.Amount
		}
	}

	for _, amount := range summary.Amounts {
		summary.Total += amount
	}
	return summary
}

// categoryFor returns the debt category whose term sits nearest before
// offset, or false when no debt term is in reach.
func categoryFor(lower string, offset int) (models.DebtCategory, bool) {
	lo := offset - labelWindow
	if lo < 0 {
		lo = 0
	}
	window := lower[lo:offset]

	var best models.DebtCategory
	bestDist := -1
	for _, category := range categories {
		for _, term := range vocab.DebtTerms[category] {
			idx := strings.LastIndex(window, term)
			if idx < 0 {
				continue
			}
			d := len(window) - (idx + len(term))
			if bestDist < 0 || d < bestDist {
				best = category
				bestDist = d
			}
		}
	}
	return best, bestDist >= 0
}

// responsibility reads the settlement clause. A proceeds clause wins over a
// buyer-pays clause because editais that carry both state the buyer-pays
// rule as the fallback for the remainder.
func responsibility(lower string) models.DebtResponsibility {
	for _, term := range vocab.ProceedsTerms {
		if strings.Contains(lower, term) {
			return models.DebtResponsibilityFromProceeds
		}
	}
	for _, term := range vocab.BuyerPaysTerms {
		if strings.Contains(lower, term) {
			return models.DebtResponsibilityBuyerPays
		}
	}
	return models.DebtResponsibilityCannotDetermine
}
