package service

import "github.com/Shiva2212/fraud-detection-project/internal/models"

type OutcomeStatus string

const (
	OutcomeProcessed OutcomeStatus = "PROCESSED"
	OutcomeDiscarded OutcomeStatus = "DISCARDED"
	OutcomeFailed    OutcomeStatus = "FAILED"

	ReasonMalformedPayload  = "malformed_payload"
	ReasonMissingIdentifier = "missing_identifier"
)

// Outcome is the per-message result of the ingestion pipeline. The consume
// loop decides what to log and which counters to bump; the pipeline itself
// only reports what happened. Every outcome means the message was consumed —
// there is no retry path.
type Outcome struct {
	Status      OutcomeStatus
	Reason      string
	Transaction *models.StoredTransaction
	Alert       *models.Alert
}

func discarded(reason string) Outcome {
	return Outcome{Status: OutcomeDiscarded, Reason: reason}
}

func failed(reason string) Outcome {
	return Outcome{Status: OutcomeFailed, Reason: reason}
}
