package models

import "time"

const (
	TopicTransactions = "transactions"
)

// Location carries the geo attributes attached to a transaction event.
type Location struct {
	Risk    string `json:"risk"`
	Country string `json:"country"`
}

// TransactionEvent is the payload consumed from the transactions topic.
// Every field except the identifier is optional; pointer fields distinguish
// an absent value from a zero value, which matters for the verification
// flags (cvvMatch=false is a signal, cvvMatch missing is not).
type TransactionEvent struct {
	ID               string    `json:"id,omitempty"`
	TransactionID    string    `json:"transactionId,omitempty"`
	AccountID        string    `json:"accountId,omitempty"`
	Amount           *float64  `json:"amount,omitempty"`
	Merchant         string    `json:"merchant,omitempty"`
	Category         string    `json:"category,omitempty"`
	Location         *Location `json:"location,omitempty"`
	CVVMatch         *bool     `json:"cvvMatch,omitempty"`
	AVSMatch         *bool     `json:"avsMatch,omitempty"`
	Device           string    `json:"device,omitempty"`
	IsVPN            *bool     `json:"isVPN,omitempty"`
	IsTor            *bool     `json:"isTor,omitempty"`
	PreviousDeclines *int      `json:"previousDeclines,omitempty"`
	AccountAge       *float64  `json:"accountAge,omitempty"`
	Timestamp        string    `json:"timestamp,omitempty"`
}

// Identifier returns the business identifier of the event, preferring `id`
// over `transactionId`. An empty result marks the event as invalid.
func (e TransactionEvent) Identifier() string {
	if e.ID != "" {
		return e.ID
	}
	return e.TransactionID
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// EffectiveTime resolves the evaluation timestamp: the payload timestamp when
// present and parseable, otherwise the provided processing time.
func (e TransactionEvent) EffectiveTime(fallback time.Time) time.Time {
	if e.Timestamp == "" {
		return fallback
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, e.Timestamp); err == nil {
			return ts
		}
	}
	return fallback
}
