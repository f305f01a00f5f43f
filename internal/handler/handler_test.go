package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shiva2212/fraud-detection-project/internal/handler"
	"github.com/Shiva2212/fraud-detection-project/internal/handler/mocks"
	"github.com/Shiva2212/fraud-detection-project/internal/models"
	"github.com/Shiva2212/fraud-detection-project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAdminSecret = "test-secret"

func newRouter(h *handler.RiskHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/transactions", h.SubmitTransaction)
	router.GET("/transactions", h.ListTransactions)
	router.GET("/alerts", h.ListAlerts)
	router.PUT("/alerts/:alertId/review", h.ReviewAlert)
	router.GET("/stats", h.GetStats)
	router.DELETE("/admin/data", h.PurgeData)
	router.GET("/health", h.Health)
	return router
}

func TestSubmitTransaction_PublishesPayloadVerbatim(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	body := `{"id":"txn-1","amount":120.5,"merchant":"Corner Shop"}`

	mockPublisher.EXPECT().
		PublishRaw(mock.Anything, models.TopicTransactions, []byte(body)).
		Return(nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), "accepted")
}

func TestSubmitTransaction_InvalidJSON(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"id":`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPublisher.AssertNotCalled(t, "PublishRaw", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitTransaction_PublishFailure(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	mockPublisher.EXPECT().
		PublishRaw(mock.Anything, models.TopicTransactions, mock.Anything).
		Return(errors.New("broker unreachable")).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"id":"txn-1"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to submit")
}

func TestListTransactions(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	mockService.EXPECT().
		ListTransactions(mock.Anything, 5).
		Return(&[]models.StoredTransaction{{TransactionID: "txn-1"}}, nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/transactions?limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "txn-1")
}

func TestListAlerts_DefaultLimit(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	mockService.EXPECT().
		ListAlerts(mock.Anything, 0).
		Return(&[]models.Alert{}, nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/alerts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviewAlert_Success(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	reviewed := &models.Alert{AlertID: "ALERT-1", Status: "DISMISSED"}

	mockService.EXPECT().
		ReviewAlert(mock.Anything, "ALERT-1", "DISMISSED", "false positive", "analyst-7").
		Return(reviewed, nil).
		Once()

	body, _ := json.Marshal(map[string]string{
		"action":     "DISMISSED",
		"comments":   "false positive",
		"assignedTo": "analyst-7",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/alerts/ALERT-1/review", strings.NewReader(string(body)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DISMISSED")
}

func TestReviewAlert_MissingAction(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/alerts/ALERT-1/review", strings.NewReader(`{"comments":"no action"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ReviewAlert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewAlert_NotFound(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	mockService.EXPECT().
		ReviewAlert(mock.Anything, "ALERT-missing", "DISMISSED", "", "").
		Return(nil, service.ErrAlertNotFound).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/alerts/ALERT-missing/review", strings.NewReader(`{"action":"DISMISSED"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	mockService.EXPECT().
		ComputeStats(mock.Anything).
		Return(&service.Stats{
			TotalTransactions: 42,
			TotalAlerts:       7,
			AverageScore:      0.31,
			ByRiskLevel:       map[string]int64{"LOW": 20},
		}, nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "totalTransactions")
}

func TestPurgeData_MissingSecret(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/data", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing admin secret")
	mockService.AssertNotCalled(t, "PurgeAll", mock.Anything)
}

func TestPurgeData_InvalidSecret(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/data", nil)
	req.Header.Set("X-Admin-Secret", "wrong")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid admin secret")
	mockService.AssertNotCalled(t, "PurgeAll", mock.Anything)
}

func TestPurgeData_Success(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	mockService.EXPECT().
		PurgeAll(mock.Anything).
		Return(int64(42), int64(7), nil).
		Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/data", nil)
	req.Header.Set("X-Admin-Secret", testAdminSecret)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transactionsDeleted")
}

func TestHealth(t *testing.T) {
	mockService := mocks.NewMockRiskService(t)
	mockPublisher := mocks.NewMockPublisher(t)
	router := newRouter(handler.NewRiskHandler(mockService, mockPublisher, testAdminSecret))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMessageHandler_DelegatesEveryOutcome(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	h := handler.NewMessageHandler(mockPipeline)
	ctx := context.Background()

	raw := []byte(`{"id":"txn-1","timestamp":"2024-05-15T12:00:00Z"}`)

	mockPipeline.EXPECT().
		ProcessMessage(ctx, raw).
		Return(service.Outcome{
			Status:      service.OutcomeProcessed,
			Transaction: &models.StoredTransaction{TransactionID: "txn-1", RiskLevel: models.RiskLevelLow},
		}).
		Once()

	h.Handle(ctx, raw)
}

func TestMessageHandler_DiscardedAndFailedOutcomes(t *testing.T) {
	mockPipeline := mocks.NewMockPipeline(t)
	h := handler.NewMessageHandler(mockPipeline)
	ctx := context.Background()

	discardedRaw := []byte(`not json`)
	mockPipeline.EXPECT().
		ProcessMessage(ctx, discardedRaw).
		Return(service.Outcome{Status: service.OutcomeDiscarded, Reason: service.ReasonMalformedPayload}).
		Once()
	h.Handle(ctx, discardedRaw)

	failedRaw := []byte(`{"id":"txn-2"}`)
	mockPipeline.EXPECT().
		ProcessMessage(ctx, failedRaw).
		Return(service.Outcome{Status: service.OutcomeFailed, Reason: "storing transaction txn-2: connection refused"}).
		Once()
	h.Handle(ctx, failedRaw)
}
