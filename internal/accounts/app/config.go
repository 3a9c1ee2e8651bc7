package app

import (
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/service"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

type Config struct {
	BaseURL       string        // Externally visible base URL embedded in emailed links (default: http://localhost:8080)
	Issuer        string        // Issuer claim for session tokens (default: accounts-service)
	SessionSecret string        // HMAC secret for session tokens; a random ephemeral secret is generated when unset
	SessionTTL    time.Duration // Session token lifetime (default: 24h)

	DatabaseFile string // Path to SQLite database file (default: ./accounts.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	SMTPHost     string // SMTP relay host; mail delivery is disabled when unset
	SMTPPort     int    // SMTP relay port (default: 587)
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password
	SMTPFrom     string // From address for outgoing mail
	SMTPFromName string // Optional: display name for the From address
	SMTPUseTLS   bool   // Use implicit TLS instead of STARTTLS (default: false)

	BreachBaseURL        string // Pwned Passwords range endpoint (default: public API)
	DeliverabilityURL    string // Deliverability verifier base URL; the remote check is skipped when unset
	DeliverabilityAPIKey string // Optional: bearer token for the deliverability verifier

	VerifyEmailTTL        time.Duration // Verification PIN validity (default: 15m)
	MagicLinkTTL          time.Duration // Magic link validity (default: 30m)
	ResetPasswordTTL      time.Duration // Password reset link validity (default: 2h)
	VerifiedRenewalWindow time.Duration // How long a mailbox proof stays fresh (default: 90 days)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired token sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		BaseURL:       getEnvOrDefault("ACCOUNTS_BASE_URL", "http://localhost:8080"),
		Issuer:        getEnvOrDefault("ACCOUNTS_ISSUER", "accounts-service"),
		SessionSecret: os.Getenv("ACCOUNTS_SESSION_SECRET"),
		SessionTTL:    getEnvDurationOrDefault("ACCOUNTS_SESSION_TTL", jwtx.DefaultSessionTTL),

		DatabaseFile: getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		PepperFile:   getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
		SMTPFromName: os.Getenv("SMTP_FROM_NAME"),
		SMTPUseTLS:   getEnvBoolOrDefault("SMTP_USE_TLS", false),

		BreachBaseURL:        os.Getenv("BREACH_BASE_URL"), // Empty uses the public Pwned Passwords API
		DeliverabilityURL:    os.Getenv("DELIVERABILITY_BASE_URL"),
		DeliverabilityAPIKey: os.Getenv("DELIVERABILITY_API_KEY"),

		VerifyEmailTTL:        getEnvDurationOrDefault("VERIFY_EMAIL_TTL", service.DefaultVerifyEmailTTL),
		MagicLinkTTL:          getEnvDurationOrDefault("MAGIC_LINK_TTL", service.DefaultMagicLinkTTL),
		ResetPasswordTTL:      getEnvDurationOrDefault("RESET_PASSWORD_TTL", service.DefaultResetPasswordTTL),
		VerifiedRenewalWindow: getEnvDurationOrDefault("VERIFIED_RENEWAL_WINDOW", service.DefaultVerifiedRenewalWindow),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
