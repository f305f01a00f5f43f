package risk_test

import (
	"testing"
	"time"

	"github.com/Shiva2212/fraud-detection-project/internal/models"
	"github.com/Shiva2212/fraud-detection-project/internal/risk"
	"github.com/stretchr/testify/assert"
)

var midday = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }
func intPtr(v int) *int           { return &v }

func TestEvaluate_CleanTransaction(t *testing.T) {
	event := models.TransactionEvent{
		ID:     "txn-1",
		Amount: floatPtr(120.0),
	}

	assessment := risk.Evaluate(event, midday)

	assert.Equal(t, 0.0, assessment.Score)
	assert.Equal(t, models.RiskLevelLow, assessment.RiskLevel)
	assert.Empty(t, assessment.Indicators)
}

func TestEvaluate_HighRiskGeographyCVVAndAmount(t *testing.T) {
	event := models.TransactionEvent{
		ID:       "txn-2",
		Amount:   floatPtr(150000),
		Location: &models.Location{Risk: "high", Country: "XX"},
		CVVMatch: boolPtr(false),
	}

	assessment := risk.Evaluate(event, midday)

	assert.InDelta(t, 1.00, assessment.Score, 1e-9)
	assert.Equal(t, models.RiskLevelCritical, assessment.RiskLevel)

	codes := indicatorCodes(assessment)
	assert.Equal(t, []string{
		"HIGH_RISK_GEOGRAPHY",
		"CVV_VERIFICATION_FAILED",
		"UNUSUAL_TRANSACTION_AMOUNT",
	}, codes)
}

func TestEvaluate_AmountBandsAreMutuallyExclusive(t *testing.T) {
	event := models.TransactionEvent{
		ID:     "txn-3",
		Amount: floatPtr(75000),
	}

	assessment := risk.Evaluate(event, midday)

	assert.InDelta(t, 0.10, assessment.Score, 1e-9)
	assert.Len(t, assessment.Indicators, 1)
	assert.Equal(t, "UNUSUAL_TRANSACTION_AMOUNT", assessment.Indicators[0].Code)
}

func TestEvaluate_AmountBandBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		score  float64
	}{
		{"below medium band", 50000, 0.0},
		{"just inside medium band", 50000.01, 0.10},
		{"top of medium band", 100000, 0.10},
		{"inside high band", 100000.01, 0.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := models.TransactionEvent{ID: "txn", Amount: floatPtr(tt.amount)}
			assessment := risk.Evaluate(event, midday)
			assert.InDelta(t, tt.score, assessment.Score, 1e-9)
		})
	}
}

func TestEvaluate_VerificationFlags(t *testing.T) {
	// A missing flag is not a failed verification.
	noFlags := risk.Evaluate(models.TransactionEvent{ID: "txn"}, midday)
	assert.Equal(t, 0.0, noFlags.Score)

	passed := risk.Evaluate(models.TransactionEvent{
		ID:       "txn",
		CVVMatch: boolPtr(true),
		AVSMatch: boolPtr(true),
	}, midday)
	assert.Equal(t, 0.0, passed.Score)

	failed := risk.Evaluate(models.TransactionEvent{
		ID:       "txn",
		CVVMatch: boolPtr(false),
		AVSMatch: boolPtr(false),
	}, midday)
	assert.InDelta(t, 0.45, failed.Score, 1e-9)
	assert.Equal(t, []string{"CVV_VERIFICATION_FAILED", "ADDRESS_VERIFICATION_FAILED"}, indicatorCodes(failed))
}

func TestEvaluate_HighRiskMerchant(t *testing.T) {
	event := models.TransactionEvent{
		ID:       "txn",
		Merchant: "ACME CRYPTO_EXCHANGE LTD",
	}

	assessment := risk.Evaluate(event, midday)

	assert.InDelta(t, 0.30, assessment.Score, 1e-9)
	assert.Equal(t, "HIGH_RISK_MERCHANT", assessment.Indicators[0].Code)

	// Only one indicator even when several tokens match.
	multi := risk.Evaluate(models.TransactionEvent{
		ID:       "txn",
		Merchant: "UNKNOWN_MERCHANT OFFSHORE_CASINO",
	}, midday)
	assert.Len(t, multi.Indicators, 1)
}

func TestEvaluate_HighRiskCategory(t *testing.T) {
	for _, category := range []string{"GAMBLING", "CRYPTO", "WIRE_TRANSFER", "GIFT_CARDS"} {
		assessment := risk.Evaluate(models.TransactionEvent{ID: "txn", Category: category}, midday)
		assert.InDelta(t, 0.25, assessment.Score, 1e-9, "category %s", category)
	}

	clean := risk.Evaluate(models.TransactionEvent{ID: "txn", Category: "GROCERIES"}, midday)
	assert.Equal(t, 0.0, clean.Score)
}

func TestEvaluate_SuspiciousDevice(t *testing.T) {
	for _, device := range []string{"Emulator", "Unknown Device", "Rooted Android", "Jailbroken iPhone"} {
		assessment := risk.Evaluate(models.TransactionEvent{ID: "txn", Device: device}, midday)
		assert.InDelta(t, 0.20, assessment.Score, 1e-9, "device %s", device)
	}

	clean := risk.Evaluate(models.TransactionEvent{ID: "txn", Device: "iPhone 15"}, midday)
	assert.Equal(t, 0.0, clean.Score)
}

func TestEvaluate_VPNAndTor(t *testing.T) {
	vpn := risk.Evaluate(models.TransactionEvent{ID: "txn", IsVPN: boolPtr(true)}, midday)
	assert.InDelta(t, 0.15, vpn.Score, 1e-9)
	assert.Contains(t, vpn.Indicators[0].Message, "VPN")

	tor := risk.Evaluate(models.TransactionEvent{ID: "txn", IsTor: boolPtr(true)}, midday)
	assert.InDelta(t, 0.15, tor.Score, 1e-9)
	assert.Contains(t, tor.Indicators[0].Message, "Tor")

	// Both flags still contribute the weight once.
	both := risk.Evaluate(models.TransactionEvent{ID: "txn", IsVPN: boolPtr(true), IsTor: boolPtr(true)}, midday)
	assert.InDelta(t, 0.15, both.Score, 1e-9)
	assert.Len(t, both.Indicators, 1)
}

func TestEvaluate_CardTestingPattern(t *testing.T) {
	below := risk.Evaluate(models.TransactionEvent{ID: "txn", PreviousDeclines: intPtr(2)}, midday)
	assert.Equal(t, 0.0, below.Score)

	at := risk.Evaluate(models.TransactionEvent{ID: "txn", PreviousDeclines: intPtr(3)}, midday)
	assert.InDelta(t, 0.30, at.Score, 1e-9)
	assert.Equal(t, "CARD_TESTING_PATTERN", at.Indicators[0].Code)
}

func TestEvaluate_NewAccountRisk(t *testing.T) {
	young := risk.Evaluate(models.TransactionEvent{ID: "txn", AccountAge: floatPtr(29.5)}, midday)
	assert.InDelta(t, 0.10, young.Score, 1e-9)

	old := risk.Evaluate(models.TransactionEvent{ID: "txn", AccountAge: floatPtr(30)}, midday)
	assert.Equal(t, 0.0, old.Score)
}

func TestEvaluate_UnusualTransactionTime(t *testing.T) {
	tests := []struct {
		hour      int
		triggered bool
	}{
		{23, true},
		{0, true},
		{3, true},
		{5, true},
		{6, false},
		{12, false},
		{22, false},
	}

	for _, tt := range tests {
		at := time.Date(2024, 5, 15, tt.hour, 30, 0, 0, time.UTC)
		assessment := risk.Evaluate(models.TransactionEvent{ID: "txn"}, at)
		if tt.triggered {
			assert.InDelta(t, 0.08, assessment.Score, 1e-9, "hour %d", tt.hour)
			assert.Equal(t, "UNUSUAL_TRANSACTION_TIME", assessment.Indicators[0].Code)
		} else {
			assert.Equal(t, 0.0, assessment.Score, "hour %d", tt.hour)
		}
	}
}

func TestEvaluate_AllRulesFireInFixedOrder(t *testing.T) {
	event := models.TransactionEvent{
		ID:               "txn-all",
		Amount:           floatPtr(200000),
		Merchant:         "HIGH_RISK_VENDOR",
		Category:         "CRYPTO",
		Location:         &models.Location{Risk: "high"},
		CVVMatch:         boolPtr(false),
		AVSMatch:         boolPtr(false),
		Device:           "Emulator",
		IsTor:            boolPtr(true),
		PreviousDeclines: intPtr(5),
		AccountAge:       floatPtr(3),
	}
	lateNight := time.Date(2024, 5, 15, 23, 45, 0, 0, time.UTC)

	assessment := risk.Evaluate(event, lateNight)

	assert.Equal(t, []string{
		"HIGH_RISK_GEOGRAPHY",
		"CVV_VERIFICATION_FAILED",
		"ADDRESS_VERIFICATION_FAILED",
		"UNUSUAL_TRANSACTION_AMOUNT",
		"HIGH_RISK_MERCHANT",
		"HIGH_RISK_MERCHANT_CATEGORY",
		"SUSPICIOUS_DEVICE",
		"VPN_OR_PROXY_DETECTED",
		"CARD_TESTING_PATTERN",
		"NEW_ACCOUNT_RISK",
		"UNUSUAL_TRANSACTION_TIME",
	}, indicatorCodes(assessment))
	assert.InDelta(t, 2.53, assessment.Score, 1e-9)
	assert.Equal(t, models.RiskLevelCritical, assessment.RiskLevel)
}

func TestEvaluate_Deterministic(t *testing.T) {
	event := models.TransactionEvent{
		ID:       "txn-det",
		Amount:   floatPtr(60000),
		CVVMatch: boolPtr(false),
		Category: "GAMBLING",
	}

	first := risk.Evaluate(event, midday)
	second := risk.Evaluate(event, midday)

	assert.Equal(t, first, second)
}

func TestClassifyScore_Boundaries(t *testing.T) {
	tests := []struct {
		score float64
		level models.RiskLevel
	}{
		{0.70, models.RiskLevelCritical},
		{0.6999, models.RiskLevelHigh},
		{0.50, models.RiskLevelHigh},
		{0.4999, models.RiskLevelMedium},
		{0.30, models.RiskLevelMedium},
		{0.2999, models.RiskLevelLow},
		{0.0, models.RiskLevelLow},
		{3.5, models.RiskLevelCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, risk.ClassifyScore(tt.score), "score %v", tt.score)
	}
}

func indicatorCodes(assessment models.RiskAssessment) []string {
	codes := make([]string, 0, len(assessment.Indicators))
	for _, indicator := range assessment.Indicators {
		codes = append(codes, indicator.Code)
	}
	return codes
}
