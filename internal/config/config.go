package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendSupabase = "supabase"

	CategoryModeUncategorized = "uncategorized"
	CategoryModeNull          = "null"

	// UncategorizedCategoryID is the sentinel category given to freshly synced transactions.
	UncategorizedCategoryID = "uncategorized"

	DefaultMpesaAPIURL = "https://sandbox.safaricom.co.ke/mpesa/c2b/v1/simulate"

	// DefaultMpesaTimezone is the zone Daraja reports zone-less timestamps in.
	DefaultMpesaTimezone = "Africa/Nairobi"
)

type Config struct {
	Port     string
	LogLevel string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
	PostgresSSLMode  string

	// Supabase values are passed through as-is; empty means unset.
	SupabaseURL            string
	SupabaseServiceRoleKey string
	StorageBackend         string

	MpesaAPIURL   string
	MpesaTimeout  time.Duration
	MpesaLocation *time.Location

	DefaultCategoryMode string
}

// ProcessEnvironmentVariables builds the Config from the environment. A .env file in the
// working directory is loaded first when present; real environment variables win over it.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:                "9446",
		LogLevel:            "info",
		PostgresAddress:     "localhost",
		PostgresPort:        "5433",
		PostgresDB:          "postgres",
		PostgresUsername:    "postgres",
		PostgresPassword:    "testpassword",
		PostgresSSLMode:     "disable",
		MpesaAPIURL:         DefaultMpesaAPIURL,
		MpesaTimeout:        20 * time.Second,
		DefaultCategoryMode: CategoryModeUncategorized,
	}

	overrideFromEnv(&env.Port, "PORT")
	overrideFromEnv(&env.LogLevel, "LOG_LEVEL")
	overrideFromEnv(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideFromEnv(&env.PostgresPort, "POSTGRES_PORT")
	overrideFromEnv(&env.PostgresDB, "POSTGRES_DB")
	overrideFromEnv(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideFromEnv(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideFromEnv(&env.PostgresSSLMode, "POSTGRES_SSLMODE")
	overrideFromEnv(&env.MpesaAPIURL, "MPESA_API_URL")

	env.SupabaseURL = os.Getenv("SUPABASE_URL")
	env.SupabaseServiceRoleKey = os.Getenv("SUPABASE_SERVICE_ROLE_KEY")

	env.StorageBackend = StorageBackendPostgres
	if len(env.SupabaseURL) != 0 {
		env.StorageBackend = StorageBackendSupabase
	}
	if backend := strings.ToLower(os.Getenv("STORAGE_BACKEND")); len(backend) != 0 {
		if backend != StorageBackendPostgres && backend != StorageBackendSupabase {
			return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: expected %q or %q", backend, StorageBackendPostgres, StorageBackendSupabase)
		}
		env.StorageBackend = backend
	}

	if timeout := os.Getenv("MPESA_TIMEOUT"); len(timeout) != 0 {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid MPESA_TIMEOUT: %w", err)
		}
		env.MpesaTimeout = parsed
	}

	timezone := DefaultMpesaTimezone
	overrideFromEnv(&timezone, "MPESA_TIMEZONE")
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid MPESA_TIMEZONE: %w", err)
	}
	env.MpesaLocation = loc

	if mode := strings.ToLower(os.Getenv("SYNC_DEFAULT_CATEGORY")); len(mode) != 0 {
		if mode != CategoryModeUncategorized && mode != CategoryModeNull {
			return nil, fmt.Errorf("invalid SYNC_DEFAULT_CATEGORY %q: expected %q or %q", mode, CategoryModeUncategorized, CategoryModeNull)
		}
		env.DefaultCategoryMode = mode
	}

	return &env, nil
}

// PostgresConnectionString returns the lib/pq URL for the configured database.
func (c *Config) PostgresConnectionString() string {
	connURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: url.Values{"sslmode": {c.PostgresSSLMode}}.Encode(),
	}
	return connURL.String()
}

// DefaultCategoryID returns the category stamped on new transactions, or nil for NULL.
func (c *Config) DefaultCategoryID() *string {
	if c.DefaultCategoryMode == CategoryModeNull {
		return nil
	}
	category := UncategorizedCategoryID
	return &category
}

func overrideFromEnv(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}
