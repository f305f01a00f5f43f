package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Shiva2212/fraud-detection-project/internal/models"
	"github.com/Shiva2212/fraud-detection-project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RiskService is the read/review surface the HTTP layer consumes.
type RiskService interface {
	ListTransactions(ctx context.Context, limit int) (*[]models.StoredTransaction, error)
	ListAlerts(ctx context.Context, limit int) (*[]models.Alert, error)
	ReviewAlert(ctx context.Context, alertID, action, comments, assignedTo string) (*models.Alert, error)
	ComputeStats(ctx context.Context) (*service.Stats, error)
	PurgeAll(ctx context.Context) (int64, int64, error)
}

// Publisher publishes a raw payload to a topic.
type Publisher interface {
	PublishRaw(ctx context.Context, topic string, payload []byte) error
}

type RiskHandler struct {
	Service     RiskService
	Publisher   Publisher
	AdminSecret string
}

func NewRiskHandler(s RiskService, p Publisher, adminSecret string) *RiskHandler {
	return &RiskHandler{
		Service:     s,
		Publisher:   p,
		AdminSecret: adminSecret,
	}
}

// POST /transactions
//
// Submission gateway: the body is published to the transactions topic
// verbatim and acknowledged immediately. The caller gets no visibility into
// downstream scoring or persistence.
func (h *RiskHandler) SubmitTransaction(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !json.Valid(payload) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body is not valid JSON"})
		return
	}

	if err := h.Publisher.PublishRaw(c.Request.Context(), models.TopicTransactions, payload); err != nil {
		logrus.Errorf("Error publishing submitted transaction: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit transaction"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// GET /transactions
func (h *RiskHandler) ListTransactions(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	transactions, err := h.Service.ListTransactions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GET /alerts
func (h *RiskHandler) ListAlerts(c *gin.Context) {
	limit := parseLimit(c.Query("limit"))
	alerts, err := h.Service.ListAlerts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

type reviewRequest struct {
	Action     string `json:"action"`
	Comments   string `json:"comments"`
	AssignedTo string `json:"assignedTo"`
}

// PUT /alerts/:alertId/review
func (h *RiskHandler) ReviewAlert(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Action == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
		return
	}

	alert, err := h.Service.ReviewAlert(c.Request.Context(), c.Param("alertId"), req.Action, req.Comments, req.AssignedTo)
	if err != nil {
		if errors.Is(err, service.ErrAlertNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, alert)
}

// GET /stats
func (h *RiskHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.ComputeStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// DELETE /admin/data
//
// Maintenance escape hatch: purges both tables. Guarded by an out-of-band
// shared secret, with distinct responses for a missing credential and an
// invalid one.
func (h *RiskHandler) PurgeData(c *gin.Context) {
	secret := c.GetHeader("X-Admin-Secret")
	if secret == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing admin secret"})
		return
	}
	if secret != h.AdminSecret {
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid admin secret"})
		return
	}

	transactionsDeleted, alertsDeleted, err := h.Service.PurgeAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactionsDeleted": transactionsDeleted,
		"alertsDeleted":       alertsDeleted,
	})
}

// GET /health
func (h *RiskHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
