package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
)

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// Config is the resolved runtime configuration. Values come from defaults, then an optional
// config file, then environment variables.
type Config struct {
	Port string

	StorageDriver string
	DatabaseURL   string

	AWSRegion            string
	DynamoDBEndpoint     string
	EstimationsTable     string
	ApprovalHistoryTable string
	ProjectsTable        string
	PaymentsTable        string

	RedisURL     string
	LockTTL      time.Duration
	KafkaBrokers []string
	Topic        string

	QueueSize      int
	DelayThreshold time.Duration
	JWTSecret      string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool
	TestPayerEmail         string
	TestPayerUserID        string

	TracingEnabled bool
}

// Load reads configuration. path may be empty, in which case only defaults and environment
// variables apply.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		log.Printf("[config] loaded file=%s", v.ConfigFileUsed())
	}

	cfg := Config{
		Port:                   v.GetString("PORT"),
		StorageDriver:          strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		DatabaseURL:            v.GetString("DATABASE_URL"),
		AWSRegion:              v.GetString("AWS_REGION"),
		DynamoDBEndpoint:       v.GetString("DYNAMODB_ENDPOINT"),
		EstimationsTable:       v.GetString("ESTIMATIONS_TABLE"),
		ApprovalHistoryTable:   v.GetString("APPROVAL_HISTORY_TABLE"),
		ProjectsTable:          v.GetString("PROJECTS_TABLE"),
		PaymentsTable:          v.GetString("PAYMENTS_TABLE"),
		RedisURL:               v.GetString("REDIS_URL"),
		LockTTL:                v.GetDuration("LOCK_TTL"),
		KafkaBrokers:           splitList(v.GetString("KAFKA_BROKERS")),
		Topic:                  v.GetString("NOTIFICATIONS_TOPIC"),
		QueueSize:              v.GetInt("NOTIFICATION_QUEUE_SIZE"),
		DelayThreshold:         v.GetDuration("DELAY_THRESHOLD"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		MercadoPagoAccessToken: strings.TrimSpace(v.GetString("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentGatewayMock:     flagEnabled(v.GetString("PAYMENT_GATEWAY_MOCK")) || flagEnabled(v.GetString("MERCADOPAGO_MOCK")),
		TestPayerEmail:         strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL")),
		TestPayerUserID:        strings.TrimSpace(v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID")),
		TracingEnabled:         flagEnabled(v.GetString("TRACING_ENABLED")),
	}

	switch cfg.StorageDriver {
	case StorageDynamoDB, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.StorageDriver)
	}
	if cfg.StorageDriver == StoragePostgres && cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required for the postgres storage driver")
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("ESTIMATIONS_TABLE", "estimations")
	v.SetDefault("APPROVAL_HISTORY_TABLE", "approval_history")
	v.SetDefault("PROJECTS_TABLE", "projects")
	v.SetDefault("PAYMENTS_TABLE", "payments")
	v.SetDefault("LOCK_TTL", "10s")
	v.SetDefault("NOTIFICATIONS_TOPIC", "estimation.notifications")
	v.SetDefault("NOTIFICATION_QUEUE_SIZE", 256)
	v.SetDefault("DELAY_THRESHOLD", "24h")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
	v.SetDefault("MERCADOPAGO_MOCK", false)
	v.SetDefault("TRACING_ENABLED", false)
}

// SandboxMode reports whether the Mercado Pago token is a test credential.
func (c Config) SandboxMode() bool {
	return strings.HasPrefix(c.MercadoPagoAccessToken, "TEST-")
}

func flagEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
