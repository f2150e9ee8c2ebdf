package scoring

import "github.com/gabrielrondon/pdf-industrial-pipeline-sub000/pkg/models"

// Risk points are added to a 0 baseline, viability points to the 50
// baseline. Both scores clamp to [0,100] after all contributions.
const (
	riskBaseline      = 0.0
	viabilityBaseline = 50.0
)

// publicationRisk weighs the publication sub-check outcome
var publicationRisk = map[models.ComplianceStatus]float64{
	models.ComplianceStatusNonCompliant:       20,
	models.ComplianceStatusPartiallyCompliant: 10,
	models.ComplianceStatusCannotDetermine:    5,
}

// art889Risk weighs the aggregate notification outcome
var art889Risk = map[models.ComplianceStatus]float64{
	models.ComplianceStatusNonCompliant:       15,
	models.ComplianceStatusPartiallyCompliant: 10,
	models.ComplianceStatusCannotDetermine:    10,
}

// transferRiskPoints weighs the occupancy-derived transfer risk
var transferRiskPoints = map[models.TransferRisk]float64{
	models.TransferRiskHigh:    15,
	models.TransferRiskMedium:  8,
	models.TransferRiskUnknown: 5,
}

// viabilityRiskPoints weighs the title-transfer viability grade
var viabilityRiskPoints = map[models.TransferViability]float64{
	models.TransferViabilityBlocked:    25,
	models.TransferViabilityRisky:      15,
	models.TransferViabilityConditions: 8,
	models.TransferViabilityViable:     3,
}

// responsibilityRisk weighs who settles the outstanding debts
var responsibilityRisk = map[models.DebtResponsibility]float64{
	models.DebtResponsibilityBuyerPays:       10,
	models.DebtResponsibilityCannotDetermine: 5,
}

const (
	annulmentRiskPoints   = 25
	authorizedBelow50Risk = 10
	unknownTypeRisk       = 5
)

// viabilityPoints are signed adjustments to the viability baseline
var (
	publicationViability = map[models.ComplianceStatus]float64{
		models.ComplianceStatusCompliant:    10,
		models.ComplianceStatusNonCompliant: -10,
	}
	occupancyViability = map[models.OccupancyStatus]float64{
		models.OccupancyVacant:   15,
		models.OccupancySquatter: -10,
		models.OccupancyDisputed: -10,
	}
	restrictionViability = map[models.TransferViability]float64{
		models.TransferViabilityClear:      10,
		models.TransferViabilityConditions: -5,
		models.TransferViabilityRisky:      -10,
		models.TransferViabilityBlocked:    -25,
	}
	responsibilityViability = map[models.DebtResponsibility]float64{
		models.DebtResponsibilityFromProceeds: 10,
		models.DebtResponsibilityBuyerPays:    -10,
	}
)

const (
	below50Viability       = -20
	art889GoodViability    = 5
	discountViability      = 10
	discountPercentCeiling = 60.0
)

// confidenceWeights splits the confidence level across the stages by how
// much each contributes to the final verdict.
var confidenceWeights = []struct {
	stage  string
	weight float64
}{
	{"classification", 0.10},
	{"publication", 0.20},
	{"notification", 0.20},
	{"valuation", 0.20},
	{"debts", 0.10},
	{"occupancy", 0.10},
	{"restrictions", 0.10},
}
