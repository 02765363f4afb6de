package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	pkgstrings "kycsim/pkg/platform/strings"
)

// Config captures everything the server needs from the environment so main
// stays lean. All values have sandbox-friendly defaults; nothing is required.
type Config struct {
	Addr string

	// SandboxOTP is the single OTP the Aadhaar simulator accepts.
	SandboxOTP string

	// CertSigningKey signs the demo certificate JWTs. Sandbox only.
	CertSigningKey string

	// SimulatedLatency scales the per-step latency of the simulator.
	// 0 disables artificial delays (useful for demos wired to fast UIs).
	SimulatedLatency time.Duration

	// CKYCHitRate is the probability that a CKYC registry lookup reports an
	// existing record.
	CKYCHitRate float64

	Redis RedisConfig

	Kafka KafkaConfig

	RateLimit RateLimitConfig
}

// RedisConfig configures the optional Redis-backed rate limit store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional audit event publisher. Empty brokers
// keep audit events in memory only.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// RateLimitConfig bounds how hard demo clients may hammer the simulator.
type RateLimitConfig struct {
	Disabled bool
	Limit    int
	Window   time.Duration
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		Addr:             envOr("KYCSIM_ADDR", ":8080"),
		SandboxOTP:       envOr("KYCSIM_SANDBOX_OTP", "123456"),
		CertSigningKey:   envOr("KYCSIM_CERT_SIGNING_KEY", "sandbox-cert-key-not-for-production"),
		SimulatedLatency: envDuration("KYCSIM_STEP_LATENCY", time.Second),
		CKYCHitRate:      envFloat("KYCSIM_CKYC_HIT_RATE", 0.4),
		Redis: RedisConfig{
			URL:          os.Getenv("KYCSIM_REDIS_URL"),
			PoolSize:     envInt("KYCSIM_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("KYCSIM_REDIS_MIN_IDLE", 2),
			DialTimeout:  envDuration("KYCSIM_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("KYCSIM_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("KYCSIM_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(os.Getenv("KYCSIM_KAFKA_BROKERS")),
			AuditTopic: envOr("KYCSIM_AUDIT_TOPIC", "kycsim.audit"),
		},
		RateLimit: RateLimitConfig{
			Disabled: os.Getenv("KYCSIM_RATELIMIT_DISABLED") == "true",
			Limit:    envInt("KYCSIM_RATELIMIT_LIMIT", 60),
			Window:   envDuration("KYCSIM_RATELIMIT_WINDOW", time.Minute),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return pkgstrings.DedupeAndTrim(strings.Split(s, ","))
}
