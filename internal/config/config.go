package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Gating    GatingConfig    `yaml:"gating"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects and configures the contract store backend
type StoreConfig struct {
	Driver   string         `yaml:"driver"`   // "file" or "postgres"
	DataDir  string         `yaml:"data_dir"` // for the file driver
	Database DatabaseConfig `yaml:"database"` // for the postgres driver
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AuthConfig contains API token settings. An empty secret disables auth.
type AuthConfig struct {
	Secret             string `yaml:"secret"`
	TokenExpiryMinutes int    `yaml:"token_expiry_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings (with seconds field)
type SchedulerConfig struct {
	DispatchDueReminders  string `yaml:"dispatch_due_reminders"`
	AutoCreatePrefilled   string `yaml:"auto_create_prefilled"`
	SweepExpiredContracts string `yaml:"sweep_expired_contracts"`
}

// GatingConfig selects the subscription plan enforced by the service
type GatingConfig struct {
	Plan string `yaml:"plan"` // "free" or "premium"
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("STORE_DRIVER"); val != "" {
		c.Store.Driver = val
	}
	if val := os.Getenv("STORE_DATA_DIR"); val != "" {
		c.Store.DataDir = val
	}

	if val := os.Getenv("DB_HOST"); val != "" {
		c.Store.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Store.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Store.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Store.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Store.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Store.Database.SSLMode = val
	}

	if val := os.Getenv("AUTH_SECRET"); val != "" {
		c.Auth.Secret = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if val := os.Getenv("GATING_PLAN"); val != "" {
		c.Gating.Plan = val
	}
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case "", "file":
		c.Store.Driver = "file"
		if c.Store.DataDir == "" {
			c.Store.DataDir = "data"
		}
	case "postgres":
		if c.Store.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if c.Store.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if c.Store.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if c.Store.Database.SSLMode == "" {
			c.Store.Database.SSLMode = "disable"
		}
	default:
		return fmt.Errorf("unsupported store driver: %s", c.Store.Driver)
	}

	if c.Auth.Secret != "" && len(c.Auth.Secret) < 32 {
		return fmt.Errorf("auth secret must be at least 32 characters")
	}
	if c.Auth.TokenExpiryMinutes <= 0 {
		c.Auth.TokenExpiryMinutes = 60
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.DispatchDueReminders == "" {
		c.Scheduler.DispatchDueReminders = "0 * * * * *" // every minute
	}
	if c.Scheduler.AutoCreatePrefilled == "" {
		c.Scheduler.AutoCreatePrefilled = "0 0 * * * *" // hourly
	}
	if c.Scheduler.SweepExpiredContracts == "" {
		c.Scheduler.SweepExpiredContracts = "0 0 2 * * *" // 2 AM
	}

	switch c.Gating.Plan {
	case "":
		c.Gating.Plan = "free"
	case "free", "premium":
	default:
		return fmt.Errorf("unsupported gating plan: %s", c.Gating.Plan)
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Store.Database.User,
		c.Store.Database.Password,
		c.Store.Database.Host,
		c.Store.Database.Port,
		c.Store.Database.Database,
		c.Store.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
