package handler

import (
	"context"

	"github.com/Shiva2212/fraud-detection-project/internal/metrics"
	"github.com/Shiva2212/fraud-detection-project/internal/service"
	"github.com/sirupsen/logrus"
)

// Pipeline processes one consumed payload and reports what happened.
type Pipeline interface {
	ProcessMessage(ctx context.Context, raw []byte) service.Outcome
}

// MessageHandler is the consume-loop entrypoint. It owns the logging and
// metrics for pipeline outcomes so the pipeline itself stays testable
// without capturing log output. It never returns an error: every outcome
// means the message was consumed.
type MessageHandler struct {
	Pipeline Pipeline
}

func NewMessageHandler(p Pipeline) *MessageHandler {
	return &MessageHandler{
		Pipeline: p,
	}
}

func (h *MessageHandler) Handle(ctx context.Context, raw []byte) {
	outcome := h.Pipeline.ProcessMessage(ctx, raw)

	switch outcome.Status {
	case service.OutcomeDiscarded:
		metrics.MessagesDiscarded.WithLabelValues(outcome.Reason).Inc()
		logrus.Warnf("Message discarded: %s", outcome.Reason)
	case service.OutcomeFailed:
		metrics.ProcessingFailures.Inc()
		logrus.Errorf("Message processing failed: %s", outcome.Reason)
	case service.OutcomeProcessed:
		metrics.TransactionsProcessed.WithLabelValues(string(outcome.Transaction.RiskLevel)).Inc()
		metrics.RiskScores.Observe(outcome.Transaction.MLScore)
		if outcome.Alert != nil {
			metrics.AlertsCreated.Inc()
			logrus.Infof("Alert %s raised for transaction %s (score=%.2f, level=%s)",
				outcome.Alert.AlertID, outcome.Transaction.TransactionID,
				outcome.Transaction.MLScore, outcome.Transaction.RiskLevel)
		} else {
			logrus.Infof("Transaction %s scored %.2f (%s)",
				outcome.Transaction.TransactionID, outcome.Transaction.MLScore,
				outcome.Transaction.RiskLevel)
		}
	}
}
