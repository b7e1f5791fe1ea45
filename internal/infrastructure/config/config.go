package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	DynamoDB DynamoDBConfig
	Store    StoreConfig
	Wizard   WizardConfig
	Logging  LoggingConfig
}

type HTTPConfig struct {
	Port    int
	GinMode string
}

// DynamoDBConfig is local-friendly: credentials default to "local" because DynamoDB Local
// does not validate them while the SDK still requires some.
type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	ProfilesTable   string
}

// StoreConfig configures the YAML profile store used by the terminal host.
type StoreConfig struct {
	Dir string
}

type WizardConfig struct {
	SessionTTL time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string // json|console
}

const (
	defaultPort          = 8080
	defaultRegion        = "us-east-1"
	defaultProfilesTable = "profiles"
	defaultStoreDir      = ".profiles"
	defaultSessionTTL    = 2 * time.Hour
	defaultLogLevel      = "info"
	defaultLogFormat     = "json"
)

// Load reads configuration from the environment, applying defaults.
func Load() (Config, error) {
	return LoadFrom(viper.New())
}

func LoadFrom(v *viper.Viper) (Config, error) {
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("AWS_REGION", defaultRegion)
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("PROFILES_TABLE", defaultProfilesTable)
	v.SetDefault("PROFILE_STORE_DIR", defaultStoreDir)
	v.SetDefault("SESSION_TTL", defaultSessionTTL)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", defaultLogFormat)
	v.AutomaticEnv()

	cfg := Config{
		HTTP: HTTPConfig{
			Port:    v.GetInt("PORT"),
			GinMode: v.GetString("GIN_MODE"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			ProfilesTable:   v.GetString("PROFILES_TABLE"),
		},
		Store: StoreConfig{
			Dir: v.GetString("PROFILE_STORE_DIR"),
		},
		Wizard: WizardConfig{
			SessionTTL: v.GetDuration("SESSION_TTL"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return Config{}, fmt.Errorf("port %d is out of range", cfg.HTTP.Port)
	}
	if cfg.Wizard.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("invalid SESSION_TTL %q", v.GetString("SESSION_TTL"))
	}
	return cfg, nil
}
