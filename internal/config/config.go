// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the HTTP server listens on (e.g. :3000).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// PublicDir is the directory of static site assets served at /.
	PublicDir string `mapstructure:"PUBLIC_DIR"`
	// FilesDir is the directory of gated documents, listed by /api/documents and served at /files/. Created at startup if absent.
	FilesDir string `mapstructure:"FILES_DIR"`
	// AccessLogPath is the newline-delimited JSON access log file.
	AccessLogPath string `mapstructure:"ACCESS_LOG_PATH"`
	// VerificationLogPath is the dedicated log of email verification attempts.
	VerificationLogPath string `mapstructure:"VERIFICATION_LOG_PATH"`
	// SessionTTL is the session lifetime (e.g. "24h").
	SessionTTL string `mapstructure:"SESSION_TTL"`
	// CORSOrigin is the single allowed cross-origin origin; credentials are allowed for it.
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`
	// Env is the application environment (e.g. "development", "production"). Production sets the Secure cookie flag and hides error detail.
	Env string `mapstructure:"APP_ENV"`

	// OTLPEndpoint enables OTel export of operational telemetry when set (e.g. http://localhost:4317).
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext OTLP export for https endpoints.
	OTLPInsecure bool `mapstructure:"OTLP_INSECURE"`

	// Telemetry (optional). When Kafka brokers are set, telemetry events go to Kafka instead of OTel logs.
	// TelemetryKafkaBrokers is a comma-separated list of Kafka broker addresses (e.g. "localhost:9092").
	TelemetryKafkaBrokers string `mapstructure:"KAFKA_BROKERS"`
	// TelemetryKafkaTopic is the Kafka topic for telemetry events (default portfolio-telemetry).
	TelemetryKafkaTopic string `mapstructure:"TELEMETRY_KAFKA_TOPIC"`

	// Worker-only: Loki URL for the telemetry worker to push logs (e.g. http://localhost:3100).
	LokiURL string `mapstructure:"LOKI_URL"`
	// KafkaGroupID is the consumer group ID for the telemetry worker.
	KafkaGroupID string `mapstructure:"KAFKA_GROUP_ID"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":3000")
	v.SetDefault("PUBLIC_DIR", "public")
	v.SetDefault("FILES_DIR", "files")
	v.SetDefault("ACCESS_LOG_PATH", "logs/access.log")
	v.SetDefault("VERIFICATION_LOG_PATH", "logs/verification.log")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("CORS_ORIGIN", "http://localhost:3000")
	v.SetDefault("APP_ENV", "")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTLP_INSECURE", false)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("TELEMETRY_KAFKA_TOPIC", "portfolio-telemetry")
	v.SetDefault("LOKI_URL", "")
	v.SetDefault("KAFKA_GROUP_ID", "portfolio-telemetry-worker")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}
	if cfg.FilesDir == "" {
		return nil, errors.New("config: FILES_DIR must be set")
	}
	if cfg.AccessLogPath == "" {
		return nil, errors.New("config: ACCESS_LOG_PATH must be set")
	}

	return &cfg, nil
}

// SessionTTLDuration parses SessionTTL as a time.Duration. Returns 24h if unset or invalid.
func (c *Config) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// IsProduction reports whether APP_ENV is "production". Controls the Secure
// cookie flag and whether error responses carry detail.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}

// TelemetryKafkaBrokersList returns Kafka broker addresses from the comma-separated config.
// Used to decide if Kafka telemetry is enabled (non-empty list) and to create the producer.
func (c *Config) TelemetryKafkaBrokersList() []string {
	if c == nil || c.TelemetryKafkaBrokers == "" {
		return nil
	}
	parts := strings.Split(c.TelemetryKafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
