package config

import (
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress           string
	DatabaseURI          string
	LogisticsBaseURL     string
	ShopifyAPIVersion    string
	ShopifyAdminBaseURL  string
	ShopifyAPIKey        string
	ShopifyAPISecret     string
	SessionSecret        string
	CredentialKey        string
	AdminKey             string
	LogLevel             string
	FlatDefaultCurrency  string
	GraphDefaultCurrency string
	BatchWorkers         int
	ShopifyRateLimit     int
	ShopifyTimeout       time.Duration
	LogisticsTimeout     time.Duration
	SessionTTL           time.Duration
	ShutdownTimeout      time.Duration
}

const (
	defaultRunAddress           = ":8080"
	defaultLogisticsBaseURL     = "https://backend.rushr-admin.com"
	defaultShopifyAPIVersion    = "2024-01"
	defaultSessionSecret        = "change-me-in-production"
	defaultLogLevel             = "info"
	defaultFlatDefaultCurrency  = "PKR"
	defaultGraphDefaultCurrency = "USD"
	defaultBatchWorkers         = 1
	defaultShopifyRateLimit     = 2
	defaultShopifyTimeout       = 10 * time.Second
	defaultLogisticsTimeout     = 15 * time.Second
	defaultSessionTTL           = 24 * time.Hour
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		LogisticsBaseURL:     getString(lookup, "LOGISTICS_BASE_URL", defaultLogisticsBaseURL),
		ShopifyAPIVersion:    getString(lookup, "SHOPIFY_API_VERSION", defaultShopifyAPIVersion),
		ShopifyAdminBaseURL:  getString(lookup, "SHOPIFY_ADMIN_BASE_URL", ""),
		ShopifyAPIKey:        getString(lookup, "SHOPIFY_API_KEY", ""),
		ShopifyAPISecret:     getString(lookup, "SHOPIFY_API_SECRET", ""),
		SessionSecret:        getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		CredentialKey:        getString(lookup, "CREDENTIAL_KEY", ""),
		AdminKey:             getString(lookup, "ADMIN_KEY", ""),
		LogLevel:             getString(lookup, "LOG_LEVEL", defaultLogLevel),
		FlatDefaultCurrency:  getString(lookup, "FLAT_DEFAULT_CURRENCY", defaultFlatDefaultCurrency),
		GraphDefaultCurrency: getString(lookup, "GRAPH_DEFAULT_CURRENCY", defaultGraphDefaultCurrency),
		BatchWorkers:         getInt(lookup, "BATCH_WORKERS", defaultBatchWorkers),
		ShopifyRateLimit:     getInt(lookup, "SHOPIFY_RATE_LIMIT", defaultShopifyRateLimit),
		ShopifyTimeout:       getDuration(lookup, "SHOPIFY_TIMEOUT", defaultShopifyTimeout),
		LogisticsTimeout:     getDuration(lookup, "LOGISTICS_TIMEOUT", defaultLogisticsTimeout),
		SessionTTL:           getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("courier", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shopifyTimeoutStr   = cfg.ShopifyTimeout.String()
		logisticsTimeoutStr = cfg.LogisticsTimeout.String()
		sessionTTLStr       = cfg.SessionTTL.String()
		shutdownTimeoutStr  = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.LogisticsBaseURL, "l", cfg.LogisticsBaseURL, "Logistics backend base URL")
	fs.StringVar(&cfg.ShopifyAPIVersion, "shopify-api-version", cfg.ShopifyAPIVersion, "Shopify admin API version")
	fs.StringVar(&cfg.ShopifyAdminBaseURL, "shopify-admin-url", cfg.ShopifyAdminBaseURL, "Override for https://{shop} admin API base")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing service session tokens")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.FlatDefaultCurrency, "flat-currency", cfg.FlatDefaultCurrency, "Default currency for REST orders")
	fs.StringVar(&cfg.GraphDefaultCurrency, "graph-currency", cfg.GraphDefaultCurrency, "Default currency for GraphQL orders")
	fs.IntVar(&cfg.BatchWorkers, "batch-workers", cfg.BatchWorkers, "Concurrent orders per batch")
	fs.IntVar(&cfg.ShopifyRateLimit, "shopify-rate", cfg.ShopifyRateLimit, "Shopify admin API requests per second")
	fs.StringVar(&shopifyTimeoutStr, "shopify-timeout", shopifyTimeoutStr, "Shopify request timeout")
	fs.StringVar(&logisticsTimeoutStr, "logistics-timeout", logisticsTimeoutStr, "Logistics request timeout")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Lifetime of service session tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShopifyTimeout, err = time.ParseDuration(shopifyTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shopify timeout: %w", err)
	}

	if cfg.LogisticsTimeout, err = time.ParseDuration(logisticsTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid logistics timeout: %w", err)
	}

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ShopifyAPISecret, err = readSecretFile(lookup, "SHOPIFY_API_SECRET_FILE", cfg.ShopifyAPISecret); err != nil {
		return nil, err
	}

	if cfg.CredentialKey, err = readSecretFile(lookup, "CREDENTIAL_KEY_FILE", cfg.CredentialKey); err != nil {
		return nil, err
	}

	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = defaultBatchWorkers
	}

	if cfg.ShopifyRateLimit <= 0 {
		cfg.ShopifyRateLimit = defaultShopifyRateLimit
	}

	if cfg.ShopifyTimeout <= 0 {
		cfg.ShopifyTimeout = defaultShopifyTimeout
	}

	if cfg.LogisticsTimeout <= 0 {
		cfg.LogisticsTimeout = defaultLogisticsTimeout
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	cfg.FlatDefaultCurrency = strings.ToUpper(strings.TrimSpace(cfg.FlatDefaultCurrency))
	cfg.GraphDefaultCurrency = strings.ToUpper(strings.TrimSpace(cfg.GraphDefaultCurrency))

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CredentialKey == "" {
		return nil, fmt.Errorf("credential key must be provided")
	}

	if parsed, err := url.Parse(cfg.LogisticsBaseURL); err != nil || !parsed.IsAbs() {
		return nil, fmt.Errorf("logistics base URL must be absolute")
	}

	return cfg, nil
}

func readSecretFile(lookup envLookup, key, current string) (string, error) {
	path, ok := lookup(key)
	if !ok || path == "" {
		return current, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(key), err)
	}
	return strings.TrimSpace(string(content)), nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
