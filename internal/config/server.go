package config

import (
	"fmt"
	"time"

	envconfig "text-summarizer/pkg/config"

	"github.com/robfig/cron/v3"
)

// ServerConfig holds HTTP server and input handling settings.
type ServerConfig struct {
	Port string

	// MaxUploadBytes caps request bodies, uploads included. Default: 10 MiB
	MaxUploadBytes int64

	// DownloadTTL is how long a summary stays downloadable. Default: 1h
	DownloadTTL time.Duration

	// PurgeSchedule is a standard 5-field cron spec for expiring downloads.
	PurgeSchedule string

	// JWTSecret enables bearer token auth on POST /api/summaries when set. The
	// form then asks for a token issued by "summarize token".
	JWTSecret string

	// RateLimitRPM is the per-IP request budget per minute. Zero disables it.
	RateLimitRPM int

	// CORSAllowedOrigins lists origins allowed to call the API from a browser.
	CORSAllowedOrigins []string

	// TrustProxyHeaders makes the rate limiter honour X-Forwarded-For.
	TrustProxyHeaders bool

	Fetch FetchConfig

	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// FetchConfig controls fetching of article URLs.
type FetchConfig struct {
	Timeout        time.Duration
	MaxBodySize    int64
	MaxRedirects   int
	DenyPrivateIPs bool
}

// LoadFetchConfig loads article fetch settings from environment variables.
// The CLI uses it on its own; the server embeds it in ServerConfig.
func LoadFetchConfig() FetchConfig {
	return FetchConfig{
		Timeout:        envconfig.GetEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		MaxBodySize:    envconfig.GetEnvInt64("FETCH_MAX_BODY_BYTES", 10<<20),
		MaxRedirects:   envconfig.GetEnvInt("FETCH_MAX_REDIRECTS", 5),
		DenyPrivateIPs: envconfig.GetEnvBool("FETCH_DENY_PRIVATE_IPS", true),
	}
}

// Validate checks fetch settings.
func (c FetchConfig) Validate() error {
	if err := envconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		return fmt.Errorf("FETCH_TIMEOUT: %w", err)
	}
	if c.MaxBodySize < 1024 {
		return fmt.Errorf("FETCH_MAX_BODY_BYTES must be at least 1024")
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("FETCH_MAX_REDIRECTS must not be negative")
	}
	return nil
}

// LoadServerConfig loads server configuration from environment variables.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Port:               envconfig.GetEnvString("PORT", "8080"),
		MaxUploadBytes:     envconfig.GetEnvInt64("MAX_UPLOAD_BYTES", 10<<20),
		DownloadTTL:        envconfig.GetEnvDuration("DOWNLOAD_TTL", time.Hour),
		PurgeSchedule:      envconfig.GetEnvString("DOWNLOAD_PURGE_SCHEDULE", "*/5 * * * *"),
		JWTSecret:          envconfig.GetEnvString("JWT_SECRET", ""),
		RateLimitRPM:       envconfig.GetEnvInt("RATE_LIMIT_RPM", 60),
		CORSAllowedOrigins: envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		TrustProxyHeaders:  envconfig.GetEnvBool("TRUST_PROXY_HEADERS", false),
		Fetch:              LoadFetchConfig(),
		ReadHeaderTimeout:  envconfig.GetEnvDuration("READ_HEADER_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    envconfig.GetEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.MaxUploadBytes < 1024 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be at least 1024, got %d", c.MaxUploadBytes)
	}
	if err := envconfig.ValidatePositiveDuration(c.DownloadTTL); err != nil {
		return fmt.Errorf("DOWNLOAD_TTL: %w", err)
	}
	if _, err := cron.ParseStandard(c.PurgeSchedule); err != nil {
		return fmt.Errorf("DOWNLOAD_PURGE_SCHEDULE %q: %w", c.PurgeSchedule, err)
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.RateLimitRPM < 0 {
		return fmt.Errorf("RATE_LIMIT_RPM must not be negative")
	}
	if err := c.Fetch.Validate(); err != nil {
		return err
	}
	if err := envconfig.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}
	return nil
}

// AuthEnabled reports whether bearer token auth is configured.
func (c *ServerConfig) AuthEnabled() bool {
	return c.JWTSecret != ""
}
