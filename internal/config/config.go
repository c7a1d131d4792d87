// Package config loads and validates application configuration from
// environment variables and optional config files.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Client   ClientConfig   `mapstructure:"client"`
	Quiz     QuizConfig     `mapstructure:"quiz"     validate:"required"`
}

// ServerConfig contains the reference backend's server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the backend's database settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// AuthConfig contains authentication settings for the backend.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"omitempty,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BcryptCost           int    `mapstructure:"bcrypt_cost"            validate:"required,gte=4,lte=31"`
}

// ClientConfig contains the app-core client's settings.
type ClientConfig struct {
	BaseURL               string `mapstructure:"base_url"                validate:"required,url"`
	CredentialFile        string `mapstructure:"credential_file"         validate:"required"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// QuizConfig selects the reward policy. The same policy shape is used on both
// sides: the server applies it authoritatively on submission, the client uses
// it for the immediate display estimate.
type QuizConfig struct {
	RewardPolicy           string `mapstructure:"reward_policy"            validate:"required,oneof=threshold proportional"`
	RewardThresholdPercent int    `mapstructure:"reward_threshold_percent" validate:"gte=0,lte=100"`
	RewardThresholdTokens  int64  `mapstructure:"reward_threshold_tokens"  validate:"gte=0"`
	TokensPerCorrect       int64  `mapstructure:"tokens_per_correct"       validate:"gte=0"`
}
