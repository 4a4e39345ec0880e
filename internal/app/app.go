package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/soudiegorodrigues/furionpay-sub006/config"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/acquirer"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/database"
	handlers "github.com/soudiegorodrigues/furionpay-sub006/internal/handlers"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/models"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/publisher"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/repository/posgrest"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/service"
	"github.com/soudiegorodrigues/furionpay-sub006/internal/webhook"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Transaction{},
		&models.AcquirerConfig{},
		&models.ApiClient{},
		&models.WebhookDelivery{},
	); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.APP.ENV == "development" {
		if err := database.SeedAcquirerConfigs(db); err != nil {
			log.Fatalf("failed to seed acquirer configs: %v", err)
		}
	}

	txRepo := posgrest.NewTransactionRepository(db)
	configRepo := posgrest.NewAcquirerConfigRepository(db)
	clientRepo := posgrest.NewApiClientRepository(db)
	deliveryRepo := posgrest.New[models.WebhookDelivery](db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	publisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	registry := a.buildAcquirerRegistry(cfg)

	dispatcher := webhook.NewDispatcher(deliveryRepo, clientRepo, cfg.Charges.DispatchTimeout)
	chargeService := service.NewChargeService(txRepo, configRepo, registry, publisher, cfg.Charges.MaxAmount, cfg.Acquirers.RequestTimeout)
	settlementService := service.NewSettlementService(txRepo, registry, publisher, dispatcher, cfg.Acquirers.RequestTimeout)

	chargeHandler := handlers.NewChargeHandler(chargeService, settlementService, dispatcher)
	webhookHandler := handlers.NewWebhookHandler(settlementService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(chargeHandler, webhookHandler, clientRepo)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

// buildAcquirerRegistry registers every adapter whose credential bundle
// is present. A provider without credentials simply stays unregistered;
// the orchestrator records it as a failed candidate if configuration
// still points at it.
func (a *App) buildAcquirerRegistry(cfg *config.Config) *acquirer.Registry {
	registry := acquirer.NewRegistry()
	timeout := cfg.Acquirers.RequestTimeout

	if cfg.Acquirers.PixiumToken != "" {
		registry.Register(acquirer.NewPixiumAdapter(cfg.Acquirers.PixiumBaseURL, cfg.Acquirers.PixiumToken, timeout))
	}
	if cfg.Acquirers.ZendryClientKey != "" || cfg.Acquirers.ZendryClientSecret != "" {
		registry.Register(acquirer.NewZendryAdapter(cfg.Acquirers.ZendryBaseURL, cfg.Acquirers.ZendryClientKey, cfg.Acquirers.ZendryClientSecret, timeout))
	}
	if cfg.Acquirers.EfipayCertPEM != "" && cfg.Acquirers.EfipayKeyPEM != "" {
		efipay, err := acquirer.NewEfipayAdapter(cfg.Acquirers.EfipayBaseURL, cfg.Acquirers.EfipayCertPEM, cfg.Acquirers.EfipayKeyPEM, cfg.Acquirers.EfipayClientID, timeout)
		if err != nil {
			logrus.Errorf("efipay adapter unavailable: %s", err.Error())
		} else {
			registry.Register(efipay)
		}
	}
	if cfg.Acquirers.BravapayToken != "" {
		registry.Register(acquirer.NewBravapayAdapter(cfg.Acquirers.BravapayBaseURL, cfg.Acquirers.BravapayToken, timeout))
	}

	return registry
}
