package models

import (
	"encoding/json"
	"time"
)

// Analysis is the stored record of one engine run
type Analysis struct {
	ID             string          `json:"id" db:"id"`
	TenantID       string          `json:"tenant_id" db:"tenant_id"`
	DocumentRef    *string         `json:"document_ref,omitempty" db:"document_ref"`
	DocumentHash   string          `json:"document_hash" db:"document_hash"`
	Language       string          `json:"language" db:"language"`
	RiskScore      float64         `json:"risk_score" db:"risk_score"`
	ViabilityScore float64         `json:"viability_score" db:"viability_score"`
	Confidence     float64         `json:"confidence" db:"confidence"`
	Result         json.RawMessage `json:"result" db:"result"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// AnalyzeRequest is the API request to analyze one document
type AnalyzeRequest struct {
	DocumentText string  `json:"document_text" validate:"required"`
	Language     string  `json:"language" validate:"omitempty,oneof=por eng"`
	DocumentRef  *string `json:"document_ref,omitempty"`
}
