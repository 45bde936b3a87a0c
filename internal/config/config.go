package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config keys. Each is also read from the upper-cased environment variable.
const (
	KeyDatabaseURI     = "database_uri"
	KeyPort            = "port"
	KeyGRPCAddr        = "grpc_addr"
	KeyPublicDir       = "public_dir"
	KeyStrictNotFound  = "strict_not_found"
	KeyAutoMigrate     = "auto_migrate"
	KeyShutdownTimeout = "shutdown_timeout"
)

const (
	DefaultPort            = 3000
	DefaultPublicDir       = "public"
	DefaultShutdownTimeout = 5 * time.Second
)

var ErrDatabaseURIMissing = errors.New("DATABASE_URI not set")

type Config struct {
	DatabaseURI     string        `mapstructure:"database_uri"`
	Port            int           `mapstructure:"port"`
	GRPCAddr        string        `mapstructure:"grpc_addr"`
	PublicDir       string        `mapstructure:"public_dir"`
	StrictNotFound  bool          `mapstructure:"strict_not_found"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Load reads an optional YAML file, applies environment overrides and
// validates the result. An empty configFile means environment and defaults only.
func Load(configFile string) (*Config, error) {
	v := New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return FromViper(v)
}

// New returns a viper instance with defaults and environment bindings set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyPublicDir, DefaultPublicDir)
	v.SetDefault(KeyStrictNotFound, false)
	v.SetDefault(KeyAutoMigrate, true)
	v.SetDefault(KeyShutdownTimeout, DefaultShutdownTimeout)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only covers keys viper already knows about.
	_ = v.BindEnv(KeyDatabaseURI, "DATABASE_URI", "MONGO_URI")
	_ = v.BindEnv(KeyGRPCAddr, "GRPC_ADDR")

	return v
}

func FromViper(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	c.DatabaseURI = strings.TrimSpace(c.DatabaseURI)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURI == "" {
		return ErrDatabaseURIMissing
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// ListenAddr is the HTTP listen address for the configured port.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
