// Package scoring is the join point of the pipeline: it folds the stage
// results into the final risk and viability scores, the confidence level,
// the ordered compliance issues and the recommendation list.
package scoring

import (
	"fmt"
	"strings"

	"github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"
)

// StageResults bundles the outputs the scorer consumes
type StageResults struct {
	Classification models.AuctionClassification
	Compliance     models.ComplianceResult
	Valuation      models.ValuationResult
	Debts          models.DebtSummary
	Property       models.PropertyStatus
	Restrictions   models.LegalRestrictions
}

// Scorer folds stage results into a RiskAssessment
type Scorer struct{}

// New creates a new Scorer
func New() *Scorer {
	return &Scorer{}
}

// Score computes both scores from the fixed weight tables, clamped to
// [0,100], and assembles the terminal assessment.
func (s *Scorer) Score(in StageResults) models.RiskAssessment {
	notifications := otherNotifications(in.Compliance.Notifications)

	return models.RiskAssessment{
		AuctionType:           in.Classification.Type,
		AuctionTypeConfidence: in.Classification.Confidence,
		AuctionTypeIndicators: in.Classification.Indicators,
		PublicationCompliance: in.Compliance.Publication,
		ExecutadoNotification: in.Compliance.Notifications[models.RoleExecutado],
		OtherNotifications:    notifications,
		CPC889Compliance:      in.Compliance.Art889Status,
		Valuation:             in.Valuation,
		Debts:                 in.Debts,
		PropertyStatus:        in.Property,
		LegalRestrictions:     in.Restrictions,

		OverallRiskScore:         clamp(riskScore(in)),
		InvestmentViabilityScore: clamp(viabilityScore(in)),
		ConfidenceLevel:          confidence(in),
		ComplianceIssues:         complianceIssues(in),
		Recommendations:          recommendations(in),
	}
}

func riskScore(in StageResults) float64 {
	score := riskBaseline
	if in.Classification.Type == models.AuctionTypeUnknown {
		score += unknownTypeRisk
	}
	score += publicationRisk[in.Compliance.Publication.Status]
	score += art889Risk[in.Compliance.Art889Status]
	switch {
	case in.Valuation.AnnulmentRisk:
		score += annulmentRiskPoints
	case in.Valuation.Below50Percent:
		score += authorizedBelow50Risk
	}
	score += responsibilityRisk[in.Debts.Responsibility]
	score += transferRiskPoints[in.Property.TransferRisk]
	score += viabilityRiskPoints[in.Restrictions.TransferViability]
	return score
}

func viabilityScore(in StageResults) float64 {
	score := viabilityBaseline
	score += publicationViability[in.Compliance.Publication.Status]
	if in.Compliance.Art889Status == models.ComplianceStatusCompliant {
		score += art889GoodViability
	}
	if in.Valuation.Below50Percent {
		score += below50Viability
	} else if discounted(in.Valuation) {
		score += discountViability
	}
	score += responsibilityViability[in.Debts.Responsibility]
	score += occupancyViability[in.Property.Occupancy]
	score += restrictionViability[in.Restrictions.TransferViability]
	return score
}

// discounted reports a legitimate discount: the sale floor sits at or under
// the discount ceiling without tripping the below-50% presumption.
func discounted(v models.ValuationResult) bool {
	pct := v.MinimumBidPercent
	if pct == nil {
		pct = v.SecondAuctionPercent
	}
	return pct != nil && *pct <= discountPercentCeiling
}

// confidence is the weighted average of each stage's determinability, not a
// fixed constant. A stage that resolved everything contributes 1, a stage
// that resolved nothing contributes 0.
func confidence(in StageResults) float64 {
	determinability := map[string]float64{
		"classification": in.Classification.Confidence,
		"publication":    publicationDeterminability(in.Compliance.Publication),
		"notification":   notificationDeterminability(in.Compliance.Notifications),
		"valuation":      valuationDeterminability(in.Valuation),
		"debts":          debtsDeterminability(in.Debts),
		"occupancy":      occupancyDeterminability(in.Property),
		"restrictions":   restrictionsDeterminability(in.Restrictions),
	}

	total := 0.0
	weightSum := 0.0
	for _, w := range confidenceWeights {
		total += determinability[w.stage] * w.weight
		weightSum += w.weight
	}
	return total / weightSum
}

func publicationDeterminability(p models.PublicationCompliance) float64 {
	switch {
	case p.DaysBetween != nil:
		return 1
	case p.DiarioOficialMentioned || p.NewspaperMentioned:
		return 0.4
	default:
		return 0
	}
}

// notificationDeterminability is the resolved fraction of the mentioned
// roles. A document mentioning no role at all resolved nothing.
func notificationDeterminability(checks map[models.NotificationRole]models.NotificationCheck) float64 {
	mentioned, resolved := 0, 0
	for _, check := range checks {
		if !check.Mentioned {
			continue
		}
		mentioned++
		if check.Status != models.ComplianceStatusCannotDetermine {
			resolved++
		}
	}
	if mentioned == 0 {
		return 0
	}
	return float64(resolved) / float64(mentioned)
}

// valuationDeterminability is the filled fraction of the four value slots
func valuationDeterminability(v models.ValuationResult) float64 {
	filled := 0
	for _, slot := range []*float64{v.MarketValue, v.FirstAuctionValue, v.SecondAuctionValue, v.MinimumBidValue} {
		if slot != nil {
			filled++
		}
	}
	return float64(filled) / 4
}

func debtsDeterminability(d models.DebtSummary) float64 {
	score := 0.0
	if len(d.Amounts) > 0 {
		score += 0.5
	}
	if d.Responsibility != models.DebtResponsibilityCannotDetermine {
		score += 0.5
	}
	return score
}

func occupancyDeterminability(p models.PropertyStatus) float64 {
	if p.Occupancy == models.OccupancyUnknown {
		return 0
	}
	return 1
}

// restrictionsDeterminability grades found restrictions as certain and a
// silent document as half-certain, since an edital may simply omit them.
func restrictionsDeterminability(r models.LegalRestrictions) float64 {
	if len(r.RestrictionsFound) > 0 {
		return 1
	}
	return 0.5
}

// complianceIssues collects every flagged sub-result in stage order
func complianceIssues(in StageResults) []string {
	issues := []string{}

	if in.Classification.Type == models.AuctionTypeUnknown {
		issues = append(issues, "auction type could not be determined from the notice")
	}

	switch in.Compliance.Publication.Status {
	case models.ComplianceStatusNonCompliant:
		issues = append(issues, "publication-to-auction gap is under the statutory 5 business days")
	case models.ComplianceStatusPartiallyCompliant:
		issues = append(issues, "no official gazette publication found for the notice")
	case models.ComplianceStatusCannotDetermine:
		issues = append(issues, "publication and auction dates could not be established")
	}

	switch in.Compliance.Art889Status {
	case models.ComplianceStatusCannotDetermine:
		issues = append(issues, "no evidence the executado was notified (CPC art. 889)")
	case models.ComplianceStatusPartiallyCompliant, models.ComplianceStatusNonCompliant:
		issues = append(issues, "mentioned parties lack notification evidence (CPC art. 889)")
	}

	if in.Valuation.AnnulmentRisk {
		issues = append(issues, "sale floor below 50% of appraisal without judicial authorization")
	}

	if in.Debts.Responsibility == models.DebtResponsibilityBuyerPays {
		issues = append(issues, "outstanding debts transfer to the winning bidder")
	}

	if in.Property.TransferRisk == models.TransferRiskHigh {
		issues = append(issues, fmt.Sprintf("possession transfer is high risk (%s)",
			strings.Join(in.Property.RiskFactors, ", ")))
	}

	switch in.Restrictions.TransferViability {
	case models.TransferViabilityBlocked, models.TransferViabilityRisky:
		issues = append(issues, fmt.Sprintf("title restrictions found: %s",
			strings.Join(in.Restrictions.RestrictionsFound, ", ")))
	}

	return issues
}

// recommendations emits the templated guidance in a stable priority order,
// warnings before positive notes.
func recommendations(in StageResults) []string {
	recs := []string{}

	if in.Restrictions.TransferViability == models.TransferViabilityBlocked {
		recs = append(recs, "Do not bid before the judicial unavailability is lifted and struck from the registry.")
	}
	if in.Valuation.AnnulmentRisk {
		recs = append(recs, "Verify judicial authorization for the sale below 50% of appraisal; the arrematação may be annulled.")
	}
	if in.Compliance.Art889Status != models.ComplianceStatusCompliant {
		recs = append(recs, "Request the execution records to confirm every required party was notified under CPC art. 889.")
	}
	if in.Compliance.Publication.Status == models.ComplianceStatusNonCompliant {
		recs = append(recs, "Confirm the notice was republished; the statutory publication gap was not met.")
	}
	if in.Debts.Responsibility == models.DebtResponsibilityBuyerPays {
		recs = append(recs, "Budget for the outstanding debts; the winning bidder assumes them.")
	}
	if in.Property.HasSquatters || in.Property.HasDisputes {
		recs = append(recs, "Account for eviction or possessory litigation costs before bidding.")
	}

	if in.Property.Occupancy == models.OccupancyVacant &&
		in.Compliance.Publication.Status == models.ComplianceStatusCompliant {
		recs = append(recs, "Vacant property with compliant publication; favorable for quick possession.")
	}
	if discounted(in.Valuation) && !in.Valuation.Below50Percent {
		recs = append(recs, "Sale floor carries a meaningful discount to appraisal within the legal limit.")
	}
	if in.Restrictions.TransferViability == models.TransferViabilityClear {
		recs = append(recs, "No title restrictions surfaced in the notice.")
	}

	return recs
}

func otherNotifications(checks map[models.NotificationRole]models.NotificationCheck) map[models.NotificationRole]models.NotificationCheck {
	out := make(map[models.NotificationRole]models.NotificationCheck, len(checks))
	for role, check := range checks {
		if role == models.RoleExecutado {
			continue
		}
		out[role] = check
	}
	return out
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
