package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shiva2212/fraud-detection-project/internal/models"
	"github.com/Shiva2212/fraud-detection-project/internal/repository/posgrest"
	"github.com/Shiva2212/fraud-detection-project/internal/risk"
)

// ErrAlertNotFound is returned by ReviewAlert when no alert matches the
// given business identifier.
var ErrAlertNotFound = errors.New("alert not found")

// TransactionRepo defines the persistence operations for stored transactions.
type TransactionRepo interface {
	Create(ctx context.Context, transaction *models.StoredTransaction) error
	ListSorted(ctx context.Context, orderBy string, limit int) (*[]models.StoredTransaction, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountBy(ctx context.Context, query string, value interface{}) (int64, error)
	Average(ctx context.Context, column string) (float64, error)
}

// AlertRepo defines the persistence operations for alerts.
type AlertRepo interface {
	Create(ctx context.Context, alert *models.Alert) error
	ListSorted(ctx context.Context, orderBy string, limit int) (*[]models.Alert, error)
	FindOneAndUpdate(ctx context.Context, query string, value interface{}, updates map[string]interface{}) (*models.Alert, error)
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// IDGenerator produces collision-resistant alert identifiers.
type IDGenerator interface {
	NewAlertID() string
}

// RiskService drives the ingestion pipeline: rule evaluation, risk
// classification, transaction recording and conditional alert creation. It
// also owns the single allowed alert mutation (reviewer actions) and the
// read/aggregate paths used by the HTTP surface.
//
// The service keeps no mutable state of its own, so concurrent message
// handling needs no locking: evaluation is pure and each message's writes
// are independent.
type RiskService struct {
	Transactions TransactionRepo
	Alerts       AlertRepo
	IDs          IDGenerator
}

func NewRiskService(transactions TransactionRepo, alerts AlertRepo, ids IDGenerator) *RiskService {
	return &RiskService{
		Transactions: transactions,
		Alerts:       alerts,
		IDs:          ids,
	}
}

// ProcessMessage runs the full pipeline for one consumed payload:
// parse → evaluate → classify → record → maybe alert.
//
// Malformed payloads and payloads without an identifier are discarded; the
// message still counts as consumed. Persistence failures are reported as
// failed outcomes, also without redelivery — at-most-once semantics, with
// the possible silent loss that implies. Duplicate submissions of the same
// transactionId produce independent records; no deduplication happens here.
func (s *RiskService) ProcessMessage(ctx context.Context, raw []byte) Outcome {
	var event models.TransactionEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return discarded(ReasonMalformedPayload)
	}

	id := event.Identifier()
	if id == "" {
		return discarded(ReasonMissingIdentifier)
	}

	effectiveTime := event.EffectiveTime(time.Now())
	assessment := risk.Evaluate(event, effectiveTime)

	stored := buildStoredTransaction(id, event, raw, assessment, effectiveTime)
	if err := s.Transactions.Create(ctx, stored); err != nil {
		return failed(fmt.Sprintf("storing transaction %s: %v", id, err))
	}

	if assessment.Score < risk.AlertThreshold {
		return Outcome{Status: OutcomeProcessed, Transaction: stored}
	}

	alert := &models.Alert{
		AlertID:       s.IDs.NewAlertID(),
		TransactionID: id,
		Transaction:   string(raw),
		MLScore:       assessment.Score,
		RiskLevel:     assessment.RiskLevel,
		Reasons:       models.IndicatorList(assessment.Indicators),
		Status:        models.AlertStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := s.Alerts.Create(ctx, alert); err != nil {
		// The stored transaction stands; only the alert was lost.
		return Outcome{
			Status:      OutcomeFailed,
			Reason:      fmt.Sprintf("storing alert for transaction %s: %v", id, err),
			Transaction: stored,
		}
	}

	return Outcome{Status: OutcomeProcessed, Transaction: stored, Alert: alert}
}

func buildStoredTransaction(id string, event models.TransactionEvent, raw []byte, assessment models.RiskAssessment, effectiveTime time.Time) *models.StoredTransaction {
	stored := &models.StoredTransaction{
		TransactionID:   id,
		AccountID:       event.AccountID,
		Merchant:        event.Merchant,
		Category:        event.Category,
		Device:          event.Device,
		MLScore:         assessment.Score,
		RiskLevel:       assessment.RiskLevel,
		FraudIndicators: make([]string, 0, len(assessment.Indicators)),
		RawPayload:      string(raw),
		Timestamp:       effectiveTime,
	}
	if event.Amount != nil {
		stored.Amount = *event.Amount
	}
	if event.Location != nil {
		stored.LocationRisk = event.Location.Risk
		stored.LocationCountry = event.Location.Country
	}
	for _, indicator := range assessment.Indicators {
		stored.FraudIndicators = append(stored.FraudIndicators, indicator.Message)
	}
	return stored
}

// ReviewAlert applies a reviewer action to an alert looked up by its
// business alertId. Status, action, comments, assignee and review time are
// set together; repeated reviews overwrite previous ones. Any string is
// accepted as the new status.
func (s *RiskService) ReviewAlert(ctx context.Context, alertID, action, comments, assignedTo string) (*models.Alert, error) {
	updates := map[string]interface{}{
		"status":      action,
		"action":      action,
		"comments":    comments,
		"assigned_to": assignedTo,
		"reviewed_at": time.Now(),
	}

	alert, err := s.Alerts.FindOneAndUpdate(ctx, "alert_id = ?", alertID, updates)
	if err != nil {
		if errors.Is(err, posgrest.ErrNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, fmt.Errorf("updating alert %s: %w", alertID, err)
	}
	return alert, nil
}

// ListTransactions returns stored transactions, newest first.
func (s *RiskService) ListTransactions(ctx context.Context, limit int) (*[]models.StoredTransaction, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Transactions.ListSorted(ctx, "timestamp desc", limit)
}

// ListAlerts returns alerts, newest first.
func (s *RiskService) ListAlerts(ctx context.Context, limit int) (*[]models.Alert, error) {
	if limit <= 0 {
		limit = 100
	}
	return s.Alerts.ListSorted(ctx, "created_at desc", limit)
}

// Stats aggregates stored transactions and alerts for the stats endpoint.
type Stats struct {
	TotalTransactions int64            `json:"totalTransactions"`
	TotalAlerts       int64            `json:"totalAlerts"`
	AverageScore      float64          `json:"averageScore"`
	ByRiskLevel       map[string]int64 `json:"byRiskLevel"`
}

func (s *RiskService) ComputeStats(ctx context.Context) (*Stats, error) {
	total, err := s.Transactions.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting transactions: %w", err)
	}
	alerts, err := s.Alerts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting alerts: %w", err)
	}
	avg, err := s.Transactions.Average(ctx, "ml_score")
	if err != nil {
		return nil, fmt.Errorf("averaging scores: %w", err)
	}

	byLevel := make(map[string]int64)
	for _, level := range []models.RiskLevel{models.RiskLevelLow, models.RiskLevelMedium, models.RiskLevelHigh, models.RiskLevelCritical} {
		count, err := s.Transactions.CountBy(ctx, "risk_level = ?", string(level))
		if err != nil {
			return nil, fmt.Errorf("counting %s transactions: %w", level, err)
		}
		byLevel[string(level)] = count
	}

	return &Stats{
		TotalTransactions: total,
		TotalAlerts:       alerts,
		AverageScore:      avg,
		ByRiskLevel:       byLevel,
	}, nil
}

// PurgeAll deletes every stored transaction and alert. This is the bulk
// maintenance escape hatch behind the admin secret; nothing in the normal
// pipeline lifecycle calls it.
func (s *RiskService) PurgeAll(ctx context.Context) (int64, int64, error) {
	transactionsDeleted, err := s.Transactions.DeleteAll(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("deleting transactions: %w", err)
	}
	alertsDeleted, err := s.Alerts.DeleteAll(ctx)
	if err != nil {
		return transactionsDeleted, 0, fmt.Errorf("deleting alerts: %w", err)
	}
	return transactionsDeleted, alertsDeleted, nil
}
