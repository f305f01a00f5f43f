package risk

import (
	"fmt"
	"strings"
	"time"

	"github.com/Shiva2212/fraud-detection-project/internal/models"
)

const (
	// AlertThreshold is the score at and above which an alert is raised.
	AlertThreshold = 0.40

	thresholdCritical = 0.70
	thresholdHigh     = 0.50
	thresholdMedium   = 0.30
)

var highRiskMerchantTokens = []string{
	"UNKNOWN_MERCHANT",
	"CRYPTO_EXCHANGE",
	"OFFSHORE_CASINO",
	"HIGH_RISK_VENDOR",
}

var highRiskCategories = map[string]bool{
	"GAMBLING":      true,
	"CRYPTO":        true,
	"WIRE_TRANSFER": true,
	"GIFT_CARDS":    true,
}

var suspiciousDevices = map[string]bool{
	"Emulator":          true,
	"Unknown Device":    true,
	"Rooted Android":    true,
	"Jailbroken iPhone": true,
}

// Evaluate runs every rule against the event and returns the additive risk
// score with the ordered list of triggered indicators. It is a pure
// function: deterministic for the same event and evaluation time, with no
// side effects. Weights sum independently and the score has no upper cap.
func Evaluate(event models.TransactionEvent, evaluatedAt time.Time) models.RiskAssessment {
	var score float64
	var indicators []models.RiskIndicator

	addIndicator := func(weight float64, code, message string) {
		score += weight
		indicators = append(indicators, models.RiskIndicator{Code: code, Message: message})
	}

	if event.Location != nil && event.Location.Risk == "high" {
		addIndicator(0.50, "HIGH_RISK_GEOGRAPHY", "Transaction originates from a high-risk location")
	}

	if event.CVVMatch != nil && !*event.CVVMatch {
		addIndicator(0.30, "CVV_VERIFICATION_FAILED", "CVV verification failed")
	}

	if event.AVSMatch != nil && !*event.AVSMatch {
		addIndicator(0.15, "ADDRESS_VERIFICATION_FAILED", "Address verification (AVS) failed")
	}

	// The two amount bands are mutually exclusive.
	if event.Amount != nil {
		switch amount := *event.Amount; {
		case amount > 100000:
			addIndicator(0.20, "UNUSUAL_TRANSACTION_AMOUNT", fmt.Sprintf("Transaction amount %.2f is unusually high", amount))
		case amount > 50000:
			addIndicator(0.10, "UNUSUAL_TRANSACTION_AMOUNT", fmt.Sprintf("Transaction amount %.2f is above the normal range", amount))
		}
	}

	for _, token := range highRiskMerchantTokens {
		if event.Merchant != "" && strings.Contains(event.Merchant, token) {
			addIndicator(0.30, "HIGH_RISK_MERCHANT", "Merchant is flagged as high risk")
			break
		}
	}

	if highRiskCategories[event.Category] {
		addIndicator(0.25, "HIGH_RISK_MERCHANT_CATEGORY", fmt.Sprintf("Merchant category %s is high risk", event.Category))
	}

	if suspiciousDevices[event.Device] {
		addIndicator(0.20, "SUSPICIOUS_DEVICE", fmt.Sprintf("Transaction from a suspicious device: %s", event.Device))
	}

	if event.IsTor != nil && *event.IsTor {
		addIndicator(0.15, "VPN_OR_PROXY_DETECTED", "Transaction routed through the Tor network")
	} else if event.IsVPN != nil && *event.IsVPN {
		addIndicator(0.15, "VPN_OR_PROXY_DETECTED", "Transaction routed through a VPN or proxy")
	}

	if event.PreviousDeclines != nil && *event.PreviousDeclines >= 3 {
		addIndicator(0.30, "CARD_TESTING_PATTERN", fmt.Sprintf("%d previous declines suggest card testing", *event.PreviousDeclines))
	}

	if event.AccountAge != nil && *event.AccountAge < 30 {
		addIndicator(0.10, "NEW_ACCOUNT_RISK", "Account is less than 30 days old")
	}

	if hour := evaluatedAt.Hour(); hour >= 23 || hour <= 5 {
		addIndicator(0.08, "UNUSUAL_TRANSACTION_TIME", "Transaction at an unusual hour")
	}

	return models.RiskAssessment{
		Score:      score,
		RiskLevel:  ClassifyScore(score),
		Indicators: indicators,
	}
}

// ClassifyScore maps a risk score to its discrete level. Thresholds are
// closed on the lower bound and checked highest first.
func ClassifyScore(score float64) models.RiskLevel {
	switch {
	case score >= thresholdCritical:
		return models.RiskLevelCritical
	case score >= thresholdHigh:
		return models.RiskLevelHigh
	case score >= thresholdMedium:
		return models.RiskLevelMedium
	default:
		return models.RiskLevelLow
	}
}
