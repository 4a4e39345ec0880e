package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Acquirers
	Charges
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
	ENV  string `env:"APP_ENV" envDefault:"development"`
}

type Kafka struct {
	Brokers       string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	PublishTopics string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"acquirers.failures,attribution.events,payments.settled,payments.dlq"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Acquirers carries the credential bundle for every supported provider.
// Secrets are opaque here; each adapter decides how its bundle is used
// (bearer token, basic pair, or certificate material).
type Acquirers struct {
	PixiumBaseURL string `env:"PIXIUM_BASE_URL" envDefault:"https://api.pixium.com.br"`
	PixiumToken   string `env:"PIXIUM_API_TOKEN"`

	ZendryBaseURL      string `env:"ZENDRY_BASE_URL" envDefault:"https://api.zendry.com.br"`
	ZendryClientKey    string `env:"ZENDRY_CLIENT_KEY"`
	ZendryClientSecret string `env:"ZENDRY_CLIENT_SECRET"`

	EfipayBaseURL  string `env:"EFIPAY_BASE_URL" envDefault:"https://pix.api.efipay.com.br"`
	EfipayCertPEM  string `env:"EFIPAY_CERT_PEM"`
	EfipayKeyPEM   string `env:"EFIPAY_KEY_PEM"`
	EfipayClientID string `env:"EFIPAY_CLIENT_ID"`

	BravapayBaseURL string `env:"BRAVAPAY_BASE_URL" envDefault:"https://api.bravapay.io"`
	BravapayToken   string `env:"BRAVAPAY_API_TOKEN"`

	RequestTimeout time.Duration `env:"ACQUIRER_REQUEST_TIMEOUT" envDefault:"15s"`
}

type Charges struct {
	MaxAmount       float64       `env:"CHARGE_MAX_AMOUNT" envDefault:"1000000"`
	DispatchTimeout time.Duration `env:"WEBHOOK_DISPATCH_TIMEOUT" envDefault:"10s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
