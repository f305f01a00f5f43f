package models

import (
	"time"

	"github.com/lib/pq"
)

const (
	AlertStatusPending = "PENDING"
)

// StoredTransaction is the immutable record written once per ingested
// message: the transaction fields plus the computed assessment.
type StoredTransaction struct {
	ID              uint           `gorm:"primaryKey" json:"-"`
	TransactionID   string         `gorm:"index" json:"transactionId"`
	AccountID       string         `json:"accountId,omitempty"`
	Amount          float64        `json:"amount"`
	Merchant        string         `json:"merchant,omitempty"`
	Category        string         `json:"category,omitempty"`
	LocationRisk    string         `json:"locationRisk,omitempty"`
	LocationCountry string         `json:"locationCountry,omitempty"`
	Device          string         `json:"device,omitempty"`
	MLScore         float64        `json:"mlScore"`
	RiskLevel       RiskLevel      `json:"riskLevel"`
	FraudIndicators pq.StringArray `gorm:"type:text[]" json:"fraudIndicators"`
	RawPayload      string         `gorm:"type:jsonb" json:"-"`
	Timestamp       time.Time      `json:"timestamp"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// Alert is the reviewable record raised when a transaction's score crosses
// the alerting threshold. Review fields are written exactly once per
// reviewer action; later reviews overwrite earlier ones.
type Alert struct {
	ID            uint          `gorm:"primaryKey" json:"-"`
	AlertID       string        `gorm:"uniqueIndex" json:"alertId"`
	TransactionID string        `gorm:"index" json:"transactionId"`
	Transaction   string        `gorm:"type:jsonb" json:"transaction"`
	MLScore       float64       `json:"mlScore"`
	RiskLevel     RiskLevel     `json:"riskLevel"`
	Reasons       IndicatorList `gorm:"type:jsonb" json:"reasons"`
	Status        string        `json:"status"`
	AssignedTo    string        `json:"assignedTo,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewedAt,omitempty"`
	Action        string        `json:"action,omitempty"`
	Comments      string        `json:"comments,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
