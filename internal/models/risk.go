package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelCritical RiskLevel = "CRITICAL"
)

// RiskIndicator is a single triggered rule: a machine code and a
// human-readable message.
type RiskIndicator struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RiskAssessment is the outcome of evaluating one transaction. Indicators
// keep rule evaluation order, not severity order.
type RiskAssessment struct {
	Score      float64         `json:"score"`
	RiskLevel  RiskLevel       `json:"riskLevel"`
	Indicators []RiskIndicator `json:"indicators"`
}

// IndicatorList stores an ordered indicator sequence in a jsonb column.
type IndicatorList []RiskIndicator

func (l IndicatorList) Value() (driver.Value, error) {
	if l == nil {
		l = IndicatorList{}
	}
	return json.Marshal(l)
}

func (l *IndicatorList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = IndicatorList{}
		return nil
	default:
		return fmt.Errorf("unsupported type for IndicatorList: %T", value)
	}
}
