package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	awspkg "github.com/yaksha-ameet-khemani/e-mall-pro-connect/pkg/aws"
)

const (
	EventsBackendNone  = "none"
	EventsBackendSNS   = "sns"
	EventsBackendKafka = "kafka"
)

// Config holds all runtime configuration.
type Config struct {
	Port   string
	AppEnv string

	MongoURI       string
	MongoDB        string
	MongoURISecret string

	RedisURL        string
	ProductCacheTTL time.Duration

	EventsBackend    string
	SNSOrderTopicARN string
	KafkaBrokers     []string
	KafkaOrderTopic  string

	S3Bucket string
	S3Prefix string

	CloudWatchEnabled   bool
	CloudWatchNamespace string

	AllowedOrigins string
	RateLimitRPM   int
	RequestTimeout time.Duration
}

// secretGetter is satisfied by awspkg.SecretsClient.
type secretGetter interface {
	GetSecret(ctx context.Context, name string) (string, error)
}

// LoadConfig reads configuration from an optional .env file and the environment,
// with an optional Secrets Manager override for the Mongo URI.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := configFromEnv()

	if cfg.MongoURISecret != "" {
		awsCfg, err := awspkg.LoadAWSConfig(context.Background())
		if err != nil {
			return nil, err
		}
		if err := applyMongoSecret(context.Background(), cfg, awspkg.NewSecretsClient(awsCfg)); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configFromEnv() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		AppEnv:              getEnv("APP_ENV", "development"),
		MongoURI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "appdb"),
		MongoURISecret:      os.Getenv("AWS_SECRETS_MONGO_URI"),
		RedisURL:            os.Getenv("REDIS_URL"),
		ProductCacheTTL:     getEnvDuration("PRODUCT_CACHE_TTL", 10*time.Minute),
		EventsBackend:       strings.ToLower(getEnv("EVENTS_BACKEND", EventsBackendNone)),
		SNSOrderTopicARN:    os.Getenv("SNS_ORDER_TOPIC_ARN"),
		KafkaBrokers:        splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderTopic:     getEnv("KAFKA_ORDER_TOPIC", "order-events"),
		S3Bucket:            os.Getenv("AWS_S3_BUCKET"),
		S3Prefix:            getEnv("AWS_S3_PREFIX", "products/"),
		CloudWatchEnabled:   getEnvBool("CLOUDWATCH_ENABLED", false),
		CloudWatchNamespace: getEnv("CLOUDWATCH_NAMESPACE", "EMallProConnect"),
		AllowedOrigins:      getEnv("ALLOWED_ORIGINS", "*"),
		RateLimitRPM:        getEnvInt("RATE_LIMIT_RPM", 100),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
	}
}

// applyMongoSecret replaces the Mongo URI with the named secret's value.
func applyMongoSecret(ctx context.Context, cfg *Config, secrets secretGetter) error {
	uri, err := secrets.GetSecret(ctx, cfg.MongoURISecret)
	if err != nil {
		return fmt.Errorf("failed to load mongo uri secret: %w", err)
	}
	if strings.TrimSpace(uri) == "" {
		return fmt.Errorf("mongo uri secret %s is empty", cfg.MongoURISecret)
	}
	cfg.MongoURI = strings.TrimSpace(uri)
	return nil
}

func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.MongoURI == "" || c.MongoDB == "" {
		return fmt.Errorf("database config incomplete")
	}
	switch c.EventsBackend {
	case EventsBackendNone:
	case EventsBackendSNS:
		if c.SNSOrderTopicARN == "" {
			return fmt.Errorf("EVENTS_BACKEND=sns requires SNS_ORDER_TOPIC_ARN")
		}
	case EventsBackendKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("EVENTS_BACKEND=kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unknown EVENTS_BACKEND %q", c.EventsBackend)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
