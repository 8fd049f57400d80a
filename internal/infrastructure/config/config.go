package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Credits     CreditsConfig  `mapstructure:"credits"`
	Provider    ProviderConfig `mapstructure:"provider"`
	Stripe      StripeConfig   `mapstructure:"stripe"`
	Admin       AdminConfig    `mapstructure:"admin"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// CreditsConfig contains credit economy settings
type CreditsConfig struct {
	VideoCreationCost   int64 `mapstructure:"videoCreationCost"`
	SignupBonus         int64 `mapstructure:"signupBonus"`
	CheckInBonus        int64 `mapstructure:"checkInBonus"`
	ReferralSignupBonus int64 `mapstructure:"referralSignupBonus"` // paid to the referrer at signup
	RefereeSignupBonus  int64 `mapstructure:"refereeSignupBonus"`  // paid to the new user at signup
	FirstVideoBonus     int64 `mapstructure:"firstVideoBonus"`     // paid to the referrer on first completed video
	MaxRetries          int   `mapstructure:"maxRetries"`
	RetryBaseDelayMs    int   `mapstructure:"retryBaseDelayMs"`
}

// ProviderConfig contains video generation provider settings
type ProviderConfig struct {
	BaseURL          string        `mapstructure:"baseUrl"`
	APIToken         string        `mapstructure:"apiToken"`
	RequestTimeout   time.Duration `mapstructure:"requestTimeout"` // seconds
	MaxRetries       int           `mapstructure:"maxRetries"`
	RetryBaseDelayMs int           `mapstructure:"retryBaseDelayMs"`
	PollIntervalMs   int           `mapstructure:"pollIntervalMs"`
	PollMaxAttempts  int           `mapstructure:"pollMaxAttempts"`
}

// StripeConfig contains payment provider settings
type StripeConfig struct {
	SecretKey     string `mapstructure:"secretKey"`
	WebhookSecret string `mapstructure:"webhookSecret"`
	SuccessURL    string `mapstructure:"successUrl"`
	CancelURL     string `mapstructure:"cancelUrl"`
}

// AdminConfig contains settings for the admin credit endpoints
type AdminConfig struct {
	Token string `mapstructure:"token"`
}
