package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Event brokers the service can announce order changes to.
const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	DefaultCurrency        kernel.Currency
	StaleOrderAfter        time.Duration
	EventBroker            string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RabbitMQURL            string
	RabbitMQExchange       string
}

// LoadConfig reads the configuration from the environment. Variables in envFile, when it
// exists, are loaded first without overriding variables that are already set.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	staleMinutes, err := strconv.Atoi(envOr("STALE_ORDER_MINUTES", "30"))
	if err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("STALE_ORDER_MINUTES", err)
	}

	cfg := Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 envOr("DB_HOST", "localhost"),
		DBPort:                 envOr("DB_PORT", "5432"),
		DBUser:                 envOr("DB_USER", "postgres"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 envOr("DB_NAME", "dinner"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		DefaultCurrency:        kernel.Currency(strings.ToUpper(envOr("DEFAULT_CURRENCY", "USD"))),
		StaleOrderAfter:        time.Duration(staleMinutes) * time.Minute,
		EventBroker:            strings.ToLower(envOr("EVENT_BROKER", BrokerNone)),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: envOr("KAFKA_ORDER_CHANGED_TOPIC", "dinner.order-changed"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       envOr("RABBITMQ_EXCHANGE", "dinner.orders"),
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var brokerErr error
	switch c.EventBroker {
	case BrokerNone:
	case BrokerKafka:
		if c.KafkaHost == "" {
			brokerErr = errs.NewValueIsRequiredError("KAFKA_HOST")
		}
	case BrokerRabbitMQ:
		if c.RabbitMQURL == "" {
			brokerErr = errs.NewValueIsRequiredError("RABBITMQ_URL")
		}
	default:
		brokerErr = errs.NewValueIsInvalidErrorWithCause("EVENT_BROKER",
			fmt.Errorf("%q is not one of none, kafka, rabbitmq", c.EventBroker))
	}

	var staleErr error
	if c.StaleOrderAfter <= 0 {
		staleErr = errs.NewValueIsOutOfRangeError("STALE_ORDER_MINUTES", c.StaleOrderAfter.Minutes(), 1, "unbounded")
	}

	return errors.Join(
		c.DefaultCurrency.Validate(),
		staleErr,
		brokerErr,
	)
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
