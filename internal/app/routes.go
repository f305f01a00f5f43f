package app

import (
	"github.com/Shiva2212/fraud-detection-project/internal/handler"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handler.RiskHandler) {
	a.Router.POST("/transactions", h.SubmitTransaction)
	a.Router.GET("/transactions", h.ListTransactions)
	a.Router.GET("/alerts", h.ListAlerts)
	a.Router.PUT("/alerts/:alertId/review", h.ReviewAlert)
	a.Router.GET("/stats", h.GetStats)
	a.Router.DELETE("/admin/data", h.PurgeData)
	a.Router.GET("/health", h.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
