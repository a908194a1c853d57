package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/bibbank/mortgage-service/pkg/auth"
	pkgkafka "github.com/bibbank/mortgage-service/pkg/kafka"
	"github.com/bibbank/mortgage-service/pkg/money"
	pkgpostgres "github.com/bibbank/mortgage-service/pkg/postgres"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Brokers       []string
	Topic         string
	TLS           bool
	SASLEnabled   bool
	SASLMechanism string
	SASLUsername  string
	SASLPassword  string
}

type LogConfig struct {
	Level  string
	Format string
}

// EngineConfig controls ledger arithmetic and its iteration bounds.
type EngineConfig struct {
	Rounding          string
	MoneyPlaces       int
	RatePlaces        int
	MaxMonthsFactor   int
	WhatIfConcurrency int
}

// AuthConfig holds the token validation keys. A public key is preferred and
// the shared secret is the fallback.
type AuthConfig struct {
	Secret        string
	PublicKey     string
	PublicKeyFile string
	Issuer        string
	Expiration    time.Duration
}

type GRPCConfig struct {
	TLSCertFile string
	TLSKeyFile  string
	Reflection  bool
}

type Config struct {
	GRPCPort       int
	HTTPPort       int
	DB             DatabaseConfig
	Kafka          KafkaConfig
	Log            LogConfig
	Engine         EngineConfig
	Auth           AuthConfig
	GRPC           GRPCConfig
	MigrationsPath string
	ServiceName    string
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.DB.Password == "" {
		errs = append(errs, errors.New("DB_PASSWORD environment variable is required"))
	}
	if c.Auth.Secret == "" && c.Auth.PublicKey == "" && c.Auth.PublicKeyFile == "" {
		errs = append(errs, errors.New("one of JWT_PUBLIC_KEY, JWT_PUBLIC_KEY_FILE or JWT_SECRET is required"))
	}
	if len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("KAFKA_BROKERS must list at least one broker"))
	}
	if _, err := c.Rounding(); err != nil {
		errs = append(errs, err)
	}
	if c.Engine.MaxMonthsFactor <= 0 {
		errs = append(errs, fmt.Errorf("LEDGER_MAX_MONTHS_FACTOR must be positive, got %d", c.Engine.MaxMonthsFactor))
	}
	if c.Engine.WhatIfConcurrency <= 0 {
		errs = append(errs, fmt.Errorf("WHATIF_CONCURRENCY must be positive, got %d", c.Engine.WhatIfConcurrency))
	}
	if (c.GRPC.TLSCertFile == "") != (c.GRPC.TLSKeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	return errors.Join(errs...)
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment take precedence over it.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9093),
		HTTPPort: getEnvInt("HTTP_PORT", 8093),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "bib"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "bib_mortgage"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Brokers:       splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
			Topic:         getEnv("KAFKA_TOPIC", "mortgage.events"),
			TLS:           getEnvBool("KAFKA_TLS", false),
			SASLEnabled:   getEnvBool("KAFKA_SASL_ENABLED", false),
			SASLMechanism: getEnv("KAFKA_SASL_MECHANISM", "SCRAM-SHA-512"),
			SASLUsername:  getEnv("KAFKA_SASL_USERNAME", ""),
			SASLPassword:  getEnv("KAFKA_SASL_PASSWORD", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Engine: EngineConfig{
			Rounding:          getEnv("MONEY_ROUNDING", "bankers"),
			MoneyPlaces:       getEnvInt("MONEY_PLACES", money.DefaultMoneyPlaces),
			RatePlaces:        getEnvInt("RATE_PLACES", money.DefaultRatePlaces),
			MaxMonthsFactor:   getEnvInt("LEDGER_MAX_MONTHS_FACTOR", 10),
			WhatIfConcurrency: getEnvInt("WHATIF_CONCURRENCY", 4),
		},
		Auth: AuthConfig{
			Secret:        getEnv("JWT_SECRET", ""),
			PublicKey:     getEnv("JWT_PUBLIC_KEY", ""),
			PublicKeyFile: getEnv("JWT_PUBLIC_KEY_FILE", ""),
			Issuer:        getEnv("JWT_ISSUER", "bib-identity"),
			Expiration:    time.Duration(getEnvInt("JWT_EXPIRATION_MINUTES", 60)) * time.Minute,
		},
		GRPC: GRPCConfig{
			TLSCertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
			TLSKeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
			Reflection:  getEnvBool("GRPC_REFLECTION", false),
		},
		MigrationsPath: getEnv("MIGRATIONS_PATH", ""),
		ServiceName:    "mortgage-service",
	}
}

// Rounding builds the precision context from the engine settings.
func (c Config) Rounding() (money.Rounding, error) {
	mode, err := money.ParseMode(c.Engine.Rounding)
	if err != nil {
		return money.Rounding{}, fmt.Errorf("MONEY_ROUNDING: %w", err)
	}
	r, err := money.NewRounding(mode, int32(c.Engine.MoneyPlaces), int32(c.Engine.RatePlaces))
	if err != nil {
		return money.Rounding{}, fmt.Errorf("MONEY_PLACES/RATE_PLACES: %w", err)
	}
	return r, nil
}

// Postgres returns the connection settings for the shared pool.
func (c Config) Postgres() pkgpostgres.Config {
	return pkgpostgres.Config{
		Host:     c.DB.Host,
		Port:     c.DB.Port,
		User:     c.DB.User,
		Password: c.DB.Password,
		Database: c.DB.Name,
		SSLMode:  c.DB.SSLMode,
	}
}

func (c Config) Producer() pkgkafka.Config {
	return pkgkafka.Config{
		Brokers:       c.Kafka.Brokers,
		ClientID:      c.ServiceName,
		TLS:           c.Kafka.TLS,
		SASLEnabled:   c.Kafka.SASLEnabled,
		SASLMechanism: c.Kafka.SASLMechanism,
		SASLUsername:  c.Kafka.SASLUsername,
		SASLPassword:  c.Kafka.SASLPassword,
	}
}

// JWT resolves the token validation key: JWT_PUBLIC_KEY, then the file named
// by JWT_PUBLIC_KEY_FILE, then the shared secret.
func (c Config) JWT() (auth.JWTConfig, error) {
	cfg := auth.JWTConfig{
		Issuer:     c.Auth.Issuer,
		Expiration: c.Auth.Expiration,
	}
	switch {
	case c.Auth.PublicKey != "":
		cfg.PublicKeyPEM = c.Auth.PublicKey
	case c.Auth.PublicKeyFile != "":
		pem, err := auth.LoadKeyFromFile(c.Auth.PublicKeyFile)
		if err != nil {
			return auth.JWTConfig{}, fmt.Errorf("load JWT public key: %w", err)
		}
		cfg.PublicKeyPEM = string(pem)
	default:
		cfg.Secret = c.Auth.Secret
	}
	return cfg, nil
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
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
