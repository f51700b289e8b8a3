package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Set environment variables to override config
	v.SetEnvPrefix("DP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, covers a gateway round trip
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 15)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenTTL", 0) // hours
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.signupCredits", 5)

	v.SetDefault("payment.currency", "INR")
	v.SetDefault("payment.baseUrl", "https://api.razorpay.com/v1")
	v.SetDefault("payment.timeout", 10) // seconds

	v.SetDefault("reconciler.enabled", true)
	v.SetDefault("reconciler.schedule", "@every 5m")
	v.SetDefault("reconciler.minAge", 5)  // minutes
	v.SetDefault("reconciler.maxAge", 72) // hours
	v.SetDefault("reconciler.batchSize", 100)
	v.SetDefault("reconciler.workers", 4)
}

// getEnvironment determines the environment to use based on DP_ENV environment variable
func getEnvironment() string {
	env := os.Getenv("DP_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// firstEnv returns the first non-empty environment variable among names
func firstEnv(names ...string) string {
	for _, name := range names {
		if value := os.Getenv(name); value != "" {
			return value
		}
	}
	return ""
}

// processEnvOverrides ensures environment variables override config values.
// The unprefixed names are the ones the storefront has always been deployed with.
func processEnvOverrides(v *viper.Viper) {
	// Database
	if dbURL := firstEnv("DP_DB_URL", "DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}
	if dbDriver := os.Getenv("DP_DB_DRIVER"); dbDriver != "" {
		v.Set("database.driver", dbDriver)
	}
	if dbHost := os.Getenv("DP_DB_HOST"); dbHost != "" {
		v.Set("database.host", dbHost)
	}
	if dbPort := os.Getenv("DP_DB_PORT"); dbPort != "" {
		v.Set("database.port", dbPort)
	}
	if dbUser := os.Getenv("DP_DB_USERNAME"); dbUser != "" {
		v.Set("database.username", dbUser)
	}
	if dbPass := os.Getenv("DP_DB_PASSWORD"); dbPass != "" {
		v.Set("database.password", dbPass)
	}
	if dbName := os.Getenv("DP_DB_NAME"); dbName != "" {
		v.Set("database.database", dbName)
	}
	if sslMode := os.Getenv("DP_DB_SSL_MODE"); sslMode != "" {
		v.Set("database.sslMode", sslMode)
	}
	if maxOpenConns := getEnvInt("DP_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if queryTimeout := getEnvInt("DP_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}

	// Server settings
	if serverHost := os.Getenv("DP_SERVER_HOST"); serverHost != "" {
		v.Set("server.host", serverHost)
	}
	if serverPort := firstEnv("DP_SERVER_PORT", "PORT"); serverPort != "" {
		v.Set("server.port", serverPort)
	}

	// Logger settings
	if logLevel := os.Getenv("DP_LOGGER_LEVEL"); logLevel != "" {
		v.Set("logger.level", logLevel)
	}

	// Auth
	if secret := firstEnv("DP_AUTH_JWT_SECRET", "JWT_SECRET"); secret != "" {
		v.Set("auth.jwtSecret", secret)
	}
	if ttl := getEnvInt("DP_AUTH_TOKEN_TTL_HOURS", -1); ttl >= 0 {
		v.Set("auth.tokenTTL", ttl)
	}

	// Payment gateway
	if keyID := firstEnv("DP_PAYMENT_KEY_ID", "RAZORPAY_KEY_ID"); keyID != "" {
		v.Set("payment.keyId", keyID)
	}
	if keySecret := firstEnv("DP_PAYMENT_KEY_SECRET", "RAZORPAY_KEY_SECRET"); keySecret != "" {
		v.Set("payment.keySecret", keySecret)
	}
	if currency := firstEnv("DP_PAYMENT_CURRENCY", "CURRENCY"); currency != "" {
		v.Set("payment.currency", currency)
	}
	if timeout := getEnvInt("DP_PAYMENT_TIMEOUT_SECONDS", 0); timeout > 0 {
		v.Set("payment.timeout", timeout)
	}

	// Reconciler
	if enabled := os.Getenv("DP_RECONCILER_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("reconciler.enabled", b)
		}
	}
	if schedule := os.Getenv("DP_RECONCILER_SCHEDULE"); schedule != "" {
		v.Set("reconciler.schedule", schedule)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	// seconds
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
	config.Payment.Timeout = time.Duration(config.Payment.Timeout) * time.Second

	// minutes
	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Reconciler.MinAge = time.Duration(config.Reconciler.MinAge) * time.Minute

	// hours
	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour
	config.Reconciler.MaxAge = time.Duration(config.Reconciler.MaxAge) * time.Hour
}

// Validate checks the settings the service cannot start without
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Driver != "postgres" && c.Database.Driver != "memory" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.URL == "" && c.Database.Host == "" {
		return fmt.Errorf("database url or host is required")
	}
	if c.Environment == Test {
		return nil
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("jwt secret is required")
	}
	if c.Payment.KeyID == "" || c.Payment.KeySecret == "" {
		return fmt.Errorf("payment gateway key id and secret are required")
	}
	return nil
}
