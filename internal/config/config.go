package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Worker    WorkerConfig
	Logging   LoggingConfig
	EventBus  EventBusConfig
	Vault     VaultConfig
	Bank      BankConfig
	Fiscal    FiscalConfig
	Retry     RetryConfig
	Breaker   BreakerConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

type VaultConfig struct {
	EncryptionKey string
}

type BankConfig struct {
	BaseURL     string
	PageLimit   int
	MaxPages    int
	Timezone    string
	HTTPTimeout time.Duration
	RateLimit   LimitClass
}

type FiscalConfig struct {
	BaseURL        string
	ReceiptBaseURL string
	HTTPTimeout    time.Duration
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
}

type BreakerConfig struct {
	Threshold int
	Timeout   time.Duration
}

type LimitClass struct {
	Window      time.Duration
	MaxRequests int
}

type RateLimitConfig struct {
	SweepInterval time.Duration
	API           LimitClass
	External      LimitClass
	Read          LimitClass
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 1000),
		},
		Vault: VaultConfig{
			EncryptionKey: os.Getenv("ENCRYPTION_KEY"),
		},
		Bank: BankConfig{
			BaseURL:     getEnv("BANK_API_BASE_URL", "https://acp.privatbank.ua/api"),
			PageLimit:   getIntEnv("BANK_PAGE_LIMIT", 100),
			MaxPages:    getIntEnv("BANK_MAX_PAGES", 100),
			Timezone:    getEnv("BANK_TIMEZONE", "Europe/Kyiv"),
			HTTPTimeout: getDurationEnv("BANK_HTTP_TIMEOUT", 30*time.Second),
			RateLimit: LimitClass{
				Window:      getDurationEnv("BANK_RATE_LIMIT_WINDOW", time.Minute),
				MaxRequests: getIntEnv("BANK_RATE_LIMIT_MAX", 60),
			},
		},
		Fiscal: FiscalConfig{
			BaseURL:        getEnv("FISCAL_API_BASE_URL", "https://api.checkbox.ua/api/v1"),
			ReceiptBaseURL: getEnv("FISCAL_RECEIPT_API_BASE_URL", "https://api.checkbox.in.ua/api/v1"),
			HTTPTimeout:    getDurationEnv("FISCAL_HTTP_TIMEOUT", 30*time.Second),
		},
		Retry: RetryConfig{
			MaxAttempts: getIntEnv("RETRY_MAX_ATTEMPTS", 3),
			BaseDelay:   getDurationEnv("RETRY_BASE_DELAY", 1*time.Second),
			MaxDelay:    getDurationEnv("RETRY_MAX_DELAY", 10*time.Second),
			Multiplier:  getFloatEnv("RETRY_MULTIPLIER", 2),
		},
		Breaker: BreakerConfig{
			Threshold: getIntEnv("BREAKER_THRESHOLD", 5),
			Timeout:   getDurationEnv("BREAKER_TIMEOUT", 60*time.Second),
		},
		RateLimit: RateLimitConfig{
			SweepInterval: getDurationEnv("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
			API:           LimitClass{Window: time.Minute, MaxRequests: getIntEnv("RATE_LIMIT_API_MAX", 60)},
			External:      LimitClass{Window: time.Minute, MaxRequests: getIntEnv("RATE_LIMIT_EXTERNAL_MAX", 10)},
			Read:          LimitClass{Window: time.Minute, MaxRequests: getIntEnv("RATE_LIMIT_READ_MAX", 120)},
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
