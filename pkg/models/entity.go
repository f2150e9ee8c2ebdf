package models

// EntityKind tags an extracted span
type EntityKind string

const (
	EntityKindDate       EntityKind = "date"
	EntityKindCurrency   EntityKind = "currency_amount"
	EntityKindPercentage EntityKind = "percentage"
	EntityKindTaxID      EntityKind = "tax_id"
	EntityKindPartyRole  EntityKind = "party_role"
	EntityKindKeywordHit EntityKind = "keyword_hit"
)

// ExtractedEntity is a tagged span found in the document text. Entities are
// ordered by Offset and duplicates are allowed; deduplication is a
// downstream concern.
type ExtractedEntity struct {
	Kind EntityKind `json:"kind"`
	// Value is the normalized form: ISO date for dates, canonical decimal
	// string for amounts and percentages, digits-only for tax IDs, and the
	// vocabulary term for keyword hits.
	Value string `json:"value"`
	// Amount is the parsed numeric value for currency_amount and percentage
	// entities, zero otherwise.
	Amount float64 `json:"amount,omitempty"`
	// Category names the vocabulary that produced a keyword_hit or
	// party_role entity (e.g. "judicial", "occupancy.vacant",
	// "role.mortgage_creditors"). Empty for other kinds.
	Category string `json:"category,omitempty"`
	Raw      string `json:"raw"`
	Offset   int    `json:"offset"`
}
