package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Shiva2212/fraud-detection-project/config"
	"github.com/Shiva2212/fraud-detection-project/internal/handler"
	"github.com/Shiva2212/fraud-detection-project/internal/idgen"
	"github.com/Shiva2212/fraud-detection-project/internal/metrics"
	"github.com/Shiva2212/fraud-detection-project/internal/models"
	"github.com/Shiva2212/fraud-detection-project/internal/publisher"
	"github.com/Shiva2212/fraud-detection-project/internal/repository/posgrest"
	"github.com/Shiva2212/fraud-detection-project/internal/service"
	"github.com/Shiva2212/fraud-detection-project/internal/subscriber"
	"github.com/gin-gonic/gin"
	kafka "github.com/segmentio/kafka-go"
)

type App struct {
	config   *config.Config
	Router   *gin.Engine
	Consumer *subscriber.KafkaConsumer
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) {
	a.config = cfg

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.StoredTransaction{}, &models.Alert{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	a.checkBrokers(ctx, brokers)

	transactionRepo := posgrest.New[models.StoredTransaction](db)
	alertRepo := posgrest.New[models.Alert](db)
	riskService := service.NewRiskService(transactionRepo, alertRepo, idgen.New())

	kafkaPublisher := publisher.NewKafkaPublisher(brokers[0], []string{cfg.Kafka.TransactionsTopic}, cfg.Kafka.GetRetryConfig())
	riskHandler := handler.NewRiskHandler(riskService, kafkaPublisher, cfg.Admin.Secret)

	metrics.RegisterMetrics()

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(riskHandler)

	a.initSubscriber(ctx, riskService, brokers)
}

// checkBrokers validates the transport connection up front. A transport that
// cannot be reached at startup is fatal; everything after this point is
// handled per message.
func (a *App) checkBrokers(ctx context.Context, brokers []string) {
	conn, err := kafka.DialContext(ctx, "tcp", brokers[0])
	if err != nil {
		log.Fatalf("failed to connect to kafka broker %s: %v", brokers[0], err)
	}
	if err := conn.Close(); err != nil {
		log.Println("Error closing kafka probe connection:", err)
	}
}

func (a *App) initSubscriber(ctx context.Context, riskService *service.RiskService, brokers []string) {
	messageHandler := handler.NewMessageHandler(riskService)

	a.Consumer = subscriber.NewConsumer(brokers, a.config.Kafka.TransactionsTopic, a.config.Kafka.ConsumerGroup)
	a.Consumer.Listen(ctx, func(value []byte) {
		messageHandler.Handle(ctx, value)
	})
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
