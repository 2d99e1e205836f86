package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Reddit    RedditConfig
	Services  ServicesConfig
	Messaging MessagingConfig
	Collector CollectorConfig
	Worker    WorkerConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// MongoConfig holds the conversation log database settings
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig holds the progress store settings
type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	ProgressTTL time.Duration
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret string
}

// RedditConfig holds the script-app credentials used for every Reddit call
type RedditConfig struct {
	ClientID          string
	ClientSecret      string
	Username          string
	Password          string
	UserAgent         string
	RequestsPerMinute int
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	StripeSecretKey     string
	StripeWebhookSecret string
	ResendAPIKey        string
	DefaultEmailSender  string
	GoogleAIAPIKey      string // optional, enables reply sentiment classification
	WebAppURI           string
}

// MessagingConfig tunes the dispatcher
type MessagingConfig struct {
	BatchSize    int
	MessageDelay time.Duration
}

// CollectorConfig tunes username collection
type CollectorConfig struct {
	BoundedPostLimit int
	CourtesyDelay    time.Duration
}

// WorkerConfig holds the background dispatch sweep settings
type WorkerConfig struct {
	DispatchInterval time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
	// RequestsPerMinute caps Reddit-backed API calls per account; 0 disables the limit
	RequestsPerMinute int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Mongo configuration
	if cfg.Mongo.URI, err = requireEnv("MONGO_URI"); err != nil {
		return nil, err
	}
	cfg.Mongo.Database = getEnvWithDefault("MONGO_DATABASE", "redditleads")

	// Redis configuration
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = intEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = intEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.Redis.ProgressTTL, err = durationEnv("PROGRESS_TTL", "24h"); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}

	// Reddit configuration
	if cfg.Reddit.ClientID, err = requireEnv("REDDIT_CLIENT_ID"); err != nil {
		return nil, err
	}
	if cfg.Reddit.ClientSecret, err = requireEnv("REDDIT_CLIENT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Reddit.Username, err = requireEnv("REDDIT_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Reddit.Password, err = requireEnv("REDDIT_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Reddit.UserAgent, err = requireEnv("REDDIT_USER_AGENT"); err != nil {
		return nil, err
	}
	if cfg.Reddit.RequestsPerMinute, err = intEnv("REDDIT_REQUESTS_PER_MINUTE", "60"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.StripeSecretKey, err = requireEnv("STRIPE_SECRET_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.StripeWebhookSecret, err = requireEnv("STRIPE_WEBHOOK_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	cfg.Services.GoogleAIAPIKey = os.Getenv("GOOGLE_AI_API_KEY")
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// Messaging configuration
	if cfg.Messaging.BatchSize, err = intEnv("MESSAGE_BATCH_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.Messaging.BatchSize < 1 {
		return nil, fmt.Errorf("MESSAGE_BATCH_SIZE must be positive, got %d", cfg.Messaging.BatchSize)
	}
	if cfg.Messaging.MessageDelay, err = durationEnv("MESSAGE_DELAY", "1200ms"); err != nil {
		return nil, err
	}

	// Collector configuration
	if cfg.Collector.BoundedPostLimit, err = intEnv("COLLECTOR_BOUNDED_POST_LIMIT", "1000"); err != nil {
		return nil, err
	}
	if cfg.Collector.CourtesyDelay, err = durationEnv("COLLECTOR_COURTESY_DELAY", "1s"); err != nil {
		return nil, err
	}

	// Worker configuration
	if cfg.Worker.DispatchInterval, err = durationEnv("DISPATCH_INTERVAL", "1h"); err != nil {
		return nil, err
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}
	if cfg.Server.RequestsPerMinute, err = intEnv("API_REQUESTS_PER_MINUTE", "30"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func intEnv(key, defaultValue string) (int, error) {
	value, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}
