package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DataSourceMemory   = "memory"
	DataSourcePostgres = "postgres"
	DataSourceEncore   = "encore"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Encore    EncoreConfig
	SMTP      SMTPConfig
	Payments  PaymentsConfig
	Scheduler SchedulerConfig
	RateLimit RateLimitConfig
	Uploads   UploadsConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	NotificationLog    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	DataSource         string
	MockLatency        time.Duration
	ShutdownTimeout    time.Duration
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type EncoreConfig struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type PaymentsConfig struct {
	MidtransServerKey string
	Production        bool
	FinishURL         string
}

type SchedulerConfig struct {
	Enabled bool
	Spec    string
	Timeout time.Duration
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type UploadsConfig struct {
	Dir       string
	TicketTTL time.Duration
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	baseURL := getEnv("APP_BASE_URL", "http://localhost:3000")
	clientURL := getEnv("CLIENT_URL", "http://localhost:5173")

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            baseURL,
			ClientURL:          clientURL,
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			NotificationLog:    getEnv("NOTIFICATION_LOG_PATH", "logs/notification.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", clientURL),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			DataSource:         dataSource(),
			MockLatency:        time.Duration(getEnvAsInt("MOCK_LATENCY_MS", 0)) * time.Millisecond,
			ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		Encore: EncoreConfig{
			BaseURL:       getEnv("ENCORE_API_URL", "http://localhost:4000"),
			APIKey:        getEnv("ENCORE_API_KEY", ""),
			Timeout:       getEnvAsDuration("ENCORE_TIMEOUT", 10*time.Second),
			RatePerSecond: getEnvAsFloat("ENCORE_RATE_PER_SECOND", 20),
			Burst:         getEnvAsInt("ENCORE_BURST", 10),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Brand Dashboard"),
		},
		Payments: PaymentsConfig{
			MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
			Production:        getEnvAsBool("MIDTRANS_PRODUCTION", false),
			FinishURL:         getEnv("PAYMENT_FINISH_URL", strings.TrimRight(clientURL, "/")+"/wallet"),
		},
		Scheduler: SchedulerConfig{
			Enabled: getEnvAsBool("SCHEDULER_ENABLED", true),
			Spec:    getEnv("SCHEDULER_SPEC", "@every 1m"),
			Timeout: getEnvAsDuration("SCHEDULER_JOB_TIMEOUT", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 120),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Uploads: UploadsConfig{
			Dir:       getEnv("UPLOAD_DIR", "./uploads"),
			TicketTTL: getEnvAsDuration("UPLOAD_TICKET_TTL", 15*time.Minute),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getEnvAsBool("OTEL_ENABLED", false),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "brand-dashboard-be"),
		},
	}
}

// dataSource resolves DATA_SOURCE, honouring the older USE_ENCORE_BACKEND flag.
func dataSource() string {
	switch strings.ToLower(getEnv("DATA_SOURCE", "")) {
	case DataSourcePostgres:
		return DataSourcePostgres
	case DataSourceEncore:
		return DataSourceEncore
	case DataSourceMemory:
		return DataSourceMemory
	}
	if getEnvAsBool("USE_ENCORE_BACKEND", false) {
		return DataSourceEncore
	}
	return DataSourceMemory
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
