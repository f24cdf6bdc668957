package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// EnvPrefix is the prefix of all environment variables read by fintrack,
// e.g. FINTRACK_DATABASE_DSN.
const EnvPrefix = "FINTRACK"

var (
	ErrSecretMissing  = errors.New("auth.secret must be set when the server runs in release mode")
	ErrInvalidDriver  = errors.New("database.driver must be one of sqlite, postgres, mysql")
	ErrInvalidMode    = errors.New("server.mode must be one of debug, release, test")
	ErrInvalidBaseURL = errors.New("server.base_url must be an absolute URL")
)

type ServerConfig struct {
	Address          string `mapstructure:"address"`
	Mode             string `mapstructure:"mode"`
	BaseURL          string `mapstructure:"base_url"`
	CORSAllowOrigins string `mapstructure:"cors_allow_origins"`
	EnablePprof      bool   `mapstructure:"enable_pprof"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type AuthConfig struct {
	Secret       string        `mapstructure:"secret"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
	CookieName   string        `mapstructure:"cookie_name"`
	SecureCookie bool          `mapstructure:"secure_cookie"`
	BcryptCost   int           `mapstructure:"bcrypt_cost"`
}

type LogConfig struct {
	Format string `mapstructure:"format"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// SetDefaults registers the default value of every key. Keys unknown to
// viper are not picked up from the environment, so every key needs one.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", gin.ReleaseMode)
	v.SetDefault("server.base_url", "http://localhost:8080")
	v.SetDefault("server.cors_allow_origins", "")
	v.SetDefault("server.enable_pprof", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "data/fintrack.db")

	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.session_ttl", 7*24*time.Hour)
	v.SetDefault("auth.cookie_name", "fintrack_session")
	v.SetDefault("auth.secure_cookie", false)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost+2)

	v.SetDefault("log.format", "")
}

// Load reads the configuration into v and returns it.
//
// Values are taken, in increasing order of precedence, from the defaults,
// the config file, a .env file in the working directory and the environment.
// An empty path looks for config.yaml in the working directory, a missing
// file is not an error in that case.
func Load(v *viper.Viper, path string) (*Config, error) {
	// A missing .env file is fine, the variables can come from anywhere
	_ = godotenv.Load()

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	if !slices.Contains([]string{gin.DebugMode, gin.ReleaseMode, gin.TestMode}, c.Server.Mode) {
		return ErrInvalidMode
	}

	if !slices.Contains([]string{"sqlite", "postgres", "mysql"}, c.Database.Driver) {
		return ErrInvalidDriver
	}

	if c.Server.Mode == gin.ReleaseMode && c.Auth.Secret == "" {
		return ErrSecretMissing
	}

	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.session_ttl must be positive")
	}

	if _, err := c.URL(); err != nil {
		return err
	}
	return nil
}

// URL parses the public base URL of the server.
func (c *Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || !u.IsAbs() {
		return nil, ErrInvalidBaseURL
	}
	return u, nil
}

// Human reports whether logs are written for humans instead of as JSON.
// Without an explicit format, debug mode logs for humans.
func (c *Config) Human() bool {
	if c.Log.Format != "" {
		return c.Log.Format == "human"
	}
	return c.Server.Mode == gin.DebugMode
}
