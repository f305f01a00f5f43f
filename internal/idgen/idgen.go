package idgen

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generator produces collision-resistant business identifiers for alerts.
// It is injected into the pipeline so tests can fix the IDs it returns.
type Generator interface {
	NewAlertID() string
}

type AlertIDGenerator struct{}

func New() *AlertIDGenerator {
	return &AlertIDGenerator{}
}

// NewAlertID combines a millisecond timestamp with a UUID. The time prefix
// keeps IDs roughly sortable in review tooling; the UUID makes collisions
// under concurrent creation a non-issue.
func (g *AlertIDGenerator) NewAlertID() string {
	return fmt.Sprintf("ALERT-%d-%s", time.Now().UnixMilli(), uuid.New().String())
}
