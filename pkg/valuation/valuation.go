// Package valuation pairs the currency amounts found in an edital with the
// valuation label that precedes them and derives the auction-price ratios,
// including the below-50% annulment presumption.
package valuation

import (
	"strings"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/vocab"
)

// labelWindow is how far back from a currency amount the analyzer looks for
// its valuation label, in bytes.
const labelWindow = 60

// below50Threshold is the fraction of the market value under which a sale
// price is presumed vile and annullable absent judicial authorization.
const below50Threshold = 0.5

// categories fixes the label lookup order so a window holding two labels
// resolves the same way on every run.
var categories = []string{"market", "first_auction", "second_auction", "minimum_bid"}

// Analyzer derives the valuation picture of one document
type Analyzer struct{}

// New creates a new Analyzer
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze assigns each labeled currency amount to its valuation category,
// keeping the first amount per category in document order, then computes the
// percentage ratios against the market value. Amounts never labeled stay nil.
// Below50Percent compares only a stated minimum bid against the market
// value; without one the flag stays false.
func (a *Analyzer) Analyze(text string, entities []models.ExtractedEntity) models.ValuationResult {
	lower := vocab.Fold(text)

	var result models.ValuationResult
	slots := map[string]**float64{
		"market":         &result.MarketValue,
		"first_auction":  &result.FirstAuctionValue,
		"second_auction": &result.SecondAuctionValue,
		"minimum_bid":    &result.MinimumBidValue,
	}

	for _, ent := range entities {
		if ent.Kind != models.EntityKindCurrency {
			continue
		}
		category := labelFor(lower, ent.Offset)
		if category == "" {
			continue
		}
		slot := slots[category]
		if *slot == nil {
			amount := ent.Amount
			*slot = &amount
		}
	}

	if result.MarketValue != nil && *result.MarketValue > 0 {
		market := *result.MarketValue
		result.FirstAuctionPercent = percentOf(result.FirstAuctionValue, market)
		result.SecondAuctionPercent = percentOf(result.SecondAuctionValue, market)
		result.MinimumBidPercent = percentOf(result.MinimumBidValue, market)

		if result.MinimumBidValue != nil {
			result.Below50Percent = *result.MinimumBidValue/market < below50Threshold
		}
	}
	result.AnnulmentRisk = result.Below50Percent && !authorized(lower)
	return result
}

// labelFor returns the valuation category whose label sits nearest before
// offset, or "" when no label is in reach.
func labelFor(lower string, offset int) string {
	lo := offset - labelWindow
	if lo < 0 {
		lo = 0
	}
	window := lower[lo:offset]

	best := ""
	bestDist := -1
	for _, category := range categories {
		for _, label := range vocab.ValuationLabels[category] {
			idx := strings.LastIndex(window, label)
			if idx < 0 {
				continue
			}
			d := len(window) - (idx + len(label))
			if bestDist < 0 || d < bestDist {
				best = category
				bestDist = d
			}
		}
	}
	return best
}

func authorized(lower string) bool {
	for _, term := range vocab.AuthorizationTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func percentOf(value *float64, market float64) *float64 {
	if value == nil {
		return nil
	}
	pct := *value / market * 100
	return &pct
}
