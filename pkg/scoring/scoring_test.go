package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

func cleanResults() StageResults {
	days := 7
	meets := true
	market := 500000.0
	minBid := 300000.0
	pct := 60.0
	return StageResults{
		Classification: models.AuctionClassification{
			Type:       models.AuctionTypeJudicial,
			Confidence: 0.9,
			Indicators: []string{"leilão judicial"},
		},
		Compliance: models.ComplianceResult{
			Publication: models.PublicationCompliance{
				DiarioOficialMentioned: true,
				PublicationDates:       []string{"2025-09-01"},
				AuctionDates:           []string{"2025-09-10"},
				DaysBetween:            &days,
				MeetsDeadline:          &meets,
				Status:                 models.ComplianceStatusCompliant,
			},
			Notifications: map[models.NotificationRole]models.NotificationCheck{
				models.RoleExecutado: {Mentioned: true, Status: models.ComplianceStatusCompliant},
			},
			Art889Status: models.ComplianceStatusCompliant,
		},
		Valuation: models.ValuationResult{
			MarketValue:       &market,
			MinimumBidValue:   &minBid,
			MinimumBidPercent: &pct,
		},
		Debts: models.DebtSummary{
			Amounts:        map[models.DebtCategory]float64{},
			Responsibility: models.DebtResponsibilityFromProceeds,
		},
		Property: models.PropertyStatus{
			Occupancy:    models.OccupancyVacant,
			TransferRisk: models.TransferRiskLow,
			RiskFactors:  []string{"desocupado"},
		},
		Restrictions: models.LegalRestrictions{
			RestrictionsFound: []string{},
			TransferViability: models.TransferViabilityClear,
		},
	}
}

func riskyResults() StageResults {
	return StageResults{
		Classification: models.AuctionClassification{Type: models.AuctionTypeUnknown},
		Compliance: models.ComplianceResult{
			Publication: models.PublicationCompliance{
				Status: models.ComplianceStatusNonCompliant,
			},
			Notifications: map[models.NotificationRole]models.NotificationCheck{
				models.RoleExecutado: {Mentioned: true, Status: models.ComplianceStatusCannotDetermine},
			},
			Art889Status: models.ComplianceStatusCannotDetermine,
		},
		Valuation: models.ValuationResult{Below50Percent: true, AnnulmentRisk: true},
		Debts: models.DebtSummary{
			Amounts:        map[models.DebtCategory]float64{},
			Responsibility: models.DebtResponsibilityBuyerPays,
		},
		Property: models.PropertyStatus{
			Occupancy:    models.OccupancySquatter,
			HasSquatters: true,
			TransferRisk: models.TransferRiskHigh,
			RiskFactors:  []string{"invadido"},
		},
		Restrictions: models.LegalRestrictions{
			JudicialUnavailability: true,
			RestrictionsFound:      []string{"judicial_unavailability"},
			TransferViability:      models.TransferViabilityBlocked,
		},
	}
}

func TestScore(t *testing.T) {
	scorer := New()

	t.Run("scores stay inside their bounds", func(t *testing.T) {
		for _, in := range []StageResults{cleanResults(), riskyResults(), {}} {
			out := scorer.Score(in)
			assert.GreaterOrEqual(t, out.OverallRiskScore, 0.0)
			assert.LessOrEqual(t, out.OverallRiskScore, 100.0)
			assert.GreaterOrEqual(t, out.InvestmentViabilityScore, 0.0)
			assert.LessOrEqual(t, out.InvestmentViabilityScore, 100.0)
			assert.GreaterOrEqual(t, out.ConfidenceLevel, 0.0)
			assert.LessOrEqual(t, out.ConfidenceLevel, 1.0)
		}
	})

	t.Run("clean auction scores low risk and high viability", func(t *testing.T) {
		clean := scorer.Score(cleanResults())
		risky := scorer.Score(riskyResults())

		assert.Less(t, clean.OverallRiskScore, risky.OverallRiskScore)
		assert.Greater(t, clean.InvestmentViabilityScore, risky.InvestmentViabilityScore)
		assert.Greater(t, clean.ConfidenceLevel, risky.ConfidenceLevel)
		assert.Empty(t, clean.ComplianceIssues)
	})

	t.Run("risky auction collects issues in stage order", func(t *testing.T) {
		out := scorer.Score(riskyResults())

		assert.Equal(t, []string{
			"auction type could not be determined from the notice",
			"publication-to-auction gap is under the statutory 5 business days",
			"no evidence the executado was notified (CPC art. 889)",
			"sale floor below 50% of appraisal without judicial authorization",
			"outstanding debts transfer to the winning bidder",
			"possession transfer is high risk (invadido)",
			"title restrictions found: judicial_unavailability",
		}, out.ComplianceIssues)
	})

	t.Run("warnings precede positive notes", func(t *testing.T) {
		out := scorer.Score(cleanResults())

		assert.Equal(t, []string{
			"Vacant property with compliant publication; favorable for quick possession.",
			"Sale floor carries a meaningful discount to appraisal within the legal limit.",
			"No title restrictions surfaced in the notice.",
		}, out.Recommendations)

		risky := scorer.Score(riskyResults())
		assert.Equal(t,
			"Do not bid before the judicial unavailability is lifted and struck from the registry.",
			risky.Recommendations[0])
	})

	t.Run("executado check is split from the other roles", func(t *testing.T) {
		out := scorer.Score(cleanResults())

		assert.True(t, out.ExecutadoNotification.Mentioned)
		assert.NotContains(t, out.OtherNotifications, models.RoleExecutado)
	})

	t.Run("empty input still yields non-nil lists", func(t *testing.T) {
		out := scorer.Score(StageResults{})

		assert.NotNil(t, out.ComplianceIssues)
		assert.NotNil(t, out.Recommendations)
	})
}
