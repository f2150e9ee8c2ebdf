package models

// AuctionType is the classified nature of the auction
type AuctionType string

const (
	AuctionTypeJudicial      AuctionType = "judicial"
	AuctionTypeExtrajudicial AuctionType = "extrajudicial"
	AuctionTypeUnknown       AuctionType = "unknown"
)

// ComplianceStatus is the closed set of compliance outcomes. Every check that
// cannot be decided from the document text reports cannot_determine rather
// than a null, so consumers can tell "absent in source" from "not analyzed".
type ComplianceStatus string

const (
	ComplianceStatusCompliant          ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant       ComplianceStatus = "non_compliant"
	ComplianceStatusPartiallyCompliant ComplianceStatus = "partially_compliant"
	ComplianceStatusCannotDetermine    ComplianceStatus = "cannot_determine"
)

// OccupancyStatus describes who holds the property at auction time
type OccupancyStatus string

const (
	OccupancyVacant   OccupancyStatus = "vacant"
	OccupancyTenant   OccupancyStatus = "occupied_tenant"
	OccupancyOwner    OccupancyStatus = "occupied_owner"
	OccupancySquatter OccupancyStatus = "occupied_squatter"
	OccupancyDisputed OccupancyStatus = "disputed"
	OccupancyUnknown  OccupancyStatus = "unknown"
)

// TransferRisk is the possession-transfer risk band derived from occupancy
type TransferRisk string

const (
	TransferRiskLow     TransferRisk = "low"
	TransferRiskMedium  TransferRisk = "medium"
	TransferRiskHigh    TransferRisk = "high"
	TransferRiskUnknown TransferRisk = "unknown"
)

// TransferViability describes how encumbered the title transfer is
type TransferViability string

const (
	TransferViabilityClear      TransferViability = "clear"
	TransferViabilityViable     TransferViability = "viable"
	TransferViabilityConditions TransferViability = "viable_with_conditions"
	TransferViabilityRisky      TransferViability = "risky"
	TransferViabilityBlocked    TransferViability = "blocked"
)

// DebtResponsibility says who settles outstanding debts after arrematação
type DebtResponsibility string

const (
	DebtResponsibilityBuyerPays       DebtResponsibility = "buyer_pays"
	DebtResponsibilityFromProceeds    DebtResponsibility = "settled_from_proceeds"
	DebtResponsibilityCannotDetermine DebtResponsibility = "cannot_determine"
)

// NotificationRole identifies a party the CPC Art. 889 checklist tracks
type NotificationRole string

const (
	RoleExecutado         NotificationRole = "executado"
	RoleSpouse            NotificationRole = "spouse"
	RoleCoOwners          NotificationRole = "co_owners"
	RoleUsufructHolders   NotificationRole = "usufruct_holders"
	RoleMortgageCreditors NotificationRole = "mortgage_creditors"
	RolePromissoryBuyers  NotificationRole = "promissory_buyers"
	RoleTaxAuthorities    NotificationRole = "tax_authorities"
	RoleOtherInterested   NotificationRole = "other_interested"
)

// NotificationRoles lists every tracked role in checklist order. RoleExecutado
// is reported separately in the output; the rest land in other_notifications.
var NotificationRoles = []NotificationRole{
	RoleExecutado,
	RoleSpouse,
	RoleCoOwners,
	RoleUsufructHolders,
	RoleMortgageCreditors,
	RolePromissoryBuyers,
	RoleTaxAuthorities,
	RoleOtherInterested,
}

// PublicationCompliance is the publication-deadline sub-check result
type PublicationCompliance struct {
	DiarioOficialMentioned bool             `json:"diario_oficial_mentioned"`
	NewspaperMentioned     bool             `json:"newspaper_mentioned"`
	PublicationDates       []string         `json:"publication_dates"`
	AuctionDates           []string         `json:"auction_dates"`
	DaysBetween            *int             `json:"days_between,omitempty"`
	MeetsDeadline          *bool            `json:"meets_deadline_requirement,omitempty"`
	Status                 ComplianceStatus `json:"compliance_status"`
}

// NotificationCheck is the per-role notification result. Mentioned says the
// role appears in the document at all; Status is compliant only when the
// mention sits near a notification verb.
type NotificationCheck struct {
	Mentioned bool             `json:"mentioned"`
	Status    ComplianceStatus `json:"compliance_status"`
}

// ValuationResult carries the amounts found for each valuation category.
// Absent amounts are nil, never zero.
type ValuationResult struct {
	MarketValue          *float64 `json:"market_value,omitempty"`
	FirstAuctionValue    *float64 `json:"first_auction_value,omitempty"`
	SecondAuctionValue   *float64 `json:"second_auction_value,omitempty"`
	MinimumBidValue      *float64 `json:"minimum_bid_value,omitempty"`
	FirstAuctionPercent  *float64 `json:"first_auction_percent,omitempty"`
	SecondAuctionPercent *float64 `json:"second_auction_percent,omitempty"`
	MinimumBidPercent    *float64 `json:"minimum_bid_percent,omitempty"`
	Below50Percent       bool     `json:"below_50_percent"`
	AnnulmentRisk        bool     `json:"annulment_risk"`
}

// DebtCategory keys the DebtSummary amounts map
type DebtCategory string

const (
	DebtCategoryTax         DebtCategory = "tax"
	DebtCategoryCondominium DebtCategory = "condominium_fee"
	DebtCategoryMortgage    DebtCategory = "mortgage"
	DebtCategoryOther       DebtCategory = "other"
)

// DebtSummary aggregates debt amounts found in the document
type DebtSummary struct {
	Amounts        map[DebtCategory]float64 `json:"amounts"`
	Total          float64                  `json:"total"`
	Responsibility DebtResponsibility       `json:"responsibility"`
}

// PropertyStatus is the occupancy/transfer-risk classification
type PropertyStatus struct {
	Occupancy    OccupancyStatus `json:"occupancy_status"`
	HasTenants   bool            `json:"has_tenants"`
	HasSquatters bool            `json:"has_squatters"`
	HasDisputes  bool            `json:"has_disputes"`
	TransferRisk TransferRisk    `json:"transfer_risk"`
	RiskFactors  []string        `json:"risk_factors"`
}

// LegalRestrictions flags encumbrances that may block title transfer
type LegalRestrictions struct {
	JudicialUnavailability bool              `json:"judicial_unavailability"`
	HasLiens               bool              `json:"has_liens"`
	HasMortgages           bool              `json:"has_mortgages"`
	HasSeizures            bool              `json:"has_seizures"`
	RestrictionsFound      []string          `json:"restrictions_found"`
	TransferViability      TransferViability `json:"transfer_viability"`
}

// RiskAssessment is the terminal artifact returned to the caller. Field
// names and enum values are part of the API contract and must not change.
type RiskAssessment struct {
	AuctionType           AuctionType                            `json:"auction_type"`
	AuctionTypeConfidence float64                                `json:"auction_type_confidence"`
	AuctionTypeIndicators []string                               `json:"auction_type_indicators"`
	PublicationCompliance PublicationCompliance                  `json:"publication_compliance"`
	ExecutadoNotification NotificationCheck                      `json:"executado_notification"`
	OtherNotifications    map[NotificationRole]NotificationCheck `json:"other_notifications"`
	CPC889Compliance      ComplianceStatus                       `json:"cpc_889_compliance"`
	Valuation             ValuationResult                        `json:"valuation"`
	Debts                 DebtSummary                            `json:"debts"`
	PropertyStatus        PropertyStatus                         `json:"property_status"`
	LegalRestrictions     LegalRestrictions                      `json:"legal_restrictions"`

	OverallRiskScore         float64  `json:"overall_risk_score"`
	InvestmentViabilityScore float64  `json:"investment_viability_score"`
	ConfidenceLevel          float64  `json:"confidence_level"`
	ComplianceIssues         []string `json:"compliance_issues"`
	Recommendations          []string `json:"recommendations"`
}

// AuctionClassification is the intermediate result of the auction classifier
type AuctionClassification struct {
	Type       AuctionType `json:"type"`
	Confidence float64     `json:"confidence"`
	Indicators []string    `json:"indicators"`
}

// ComplianceResult bundles both compliance sub-checks
type ComplianceResult struct {
	Publication   PublicationCompliance                  `json:"publication"`
	Notifications map[NotificationRole]NotificationCheck `json:"notifications"`
	Art889Status  ComplianceStatus                       `json:"art_889_status"`
}
