package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"wallet-backend/pkg/apperror"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Stellar      StellarConfig      `mapstructure:"stellar"`
	AA           AAConfig           `mapstructure:"aa"`
	Reputation   ReputationConfig   `mapstructure:"reputation"`
	ExternalAPIs ExternalAPIsConfig `mapstructure:"external_apis"`
	Admin        AdminConfig        `mapstructure:"admin"`
	Log          LogConfig          `mapstructure:"log"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug, release, test
	FrontendURL  string        `mapstructure:"frontend_url"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects and configures storage. Driver "memory" keeps
// everything in process and ignores the connection fields.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return d.url("postgres")
}

// MigrationURL returns the connection string understood by the pgx/v5
// golang-migrate driver.
func (d DatabaseConfig) MigrationURL() string {
	return d.url("pgx5")
}

func (d DatabaseConfig) url(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type StellarConfig struct {
	Network           string        `mapstructure:"network"` // testnet, public
	HorizonURL        string        `mapstructure:"horizon_url"`
	FriendbotURL      string        `mapstructure:"friendbot_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"` // 0 disables pacing
}

// AAConfig covers the account-abstraction relay.
type AAConfig struct {
	BundlerURL   string `mapstructure:"bundler_url"`
	SignerMemory bool   `mapstructure:"signer_memory"`
}

type ReputationConfig struct {
	Threshold int `mapstructure:"threshold"`
}

type ExternalAPIsConfig struct {
	CoinGeckoURL string        `mapstructure:"coingecko_api_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// AdminConfig protects /api/admin. An empty secret leaves it open.
type AdminConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	JWTIssuer string        `mapstructure:"jwt_issuer"`
	JWTExpiry time.Duration `mapstructure:"jwt_expiry"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: WB_.
// Nested keys use underscore: WB_DATABASE_HOST, WB_REPUTATION_THRESHOLD, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.frontend_url", "http://localhost:3000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.min_conns", 1)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("stellar.network", "testnet")
	v.SetDefault("stellar.horizon_url", "https://horizon-testnet.stellar.org")
	v.SetDefault("stellar.friendbot_url", "https://friendbot.stellar.org")
	v.SetDefault("stellar.timeout", "15s")
	v.SetDefault("stellar.requests_per_second", 10)
	v.SetDefault("aa.bundler_url", "http://localhost:4100")
	v.SetDefault("aa.signer_memory", true)
	v.SetDefault("reputation.threshold", 50)
	v.SetDefault("external_apis.coingecko_api_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("external_apis.timeout", "10s")
	v.SetDefault("admin.jwt_secret", "")
	v.SetDefault("admin.jwt_issuer", "wallet-backend")
	v.SetDefault("admin.jwt_expiry", "12h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// WB_STELLAR_HORIZON_URL -> stellar.horizon_url
	v.SetEnvPrefix("WB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return apperror.ErrConfigInvalid(fmt.Sprintf("server.port must be in 1..65535, got %d", c.Server.Port))
	case strings.TrimSpace(c.Stellar.HorizonURL) == "":
		return apperror.ErrConfigInvalid("stellar.horizon_url cannot be empty")
	case strings.TrimSpace(c.Stellar.FriendbotURL) == "":
		return apperror.ErrConfigInvalid("stellar.friendbot_url cannot be empty")
	case strings.TrimSpace(c.ExternalAPIs.CoinGeckoURL) == "":
		return apperror.ErrConfigInvalid("external_apis.coingecko_api_url cannot be empty")
	case c.Reputation.Threshold < 0 || c.Reputation.Threshold > 100:
		return apperror.ErrConfigInvalid(fmt.Sprintf("reputation.threshold must be in 0..100, got %d", c.Reputation.Threshold))
	case c.Database.Driver != "postgres" && c.Database.Driver != "memory":
		return apperror.ErrConfigInvalid(fmt.Sprintf("database.driver must be postgres or memory, got %q", c.Database.Driver))
	case c.Database.Driver == "postgres" && c.Database.MaxConns <= 0:
		return apperror.ErrConfigInvalid("database.max_conns must be positive")
	case c.Database.Driver == "postgres" && (c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns):
		return apperror.ErrConfigInvalid(fmt.Sprintf("database.min_conns must be in 0..%d, got %d", c.Database.MaxConns, c.Database.MinConns))
	case c.Stellar.RequestsPerSecond < 0:
		return apperror.ErrConfigInvalid("stellar.requests_per_second cannot be negative")
	}
	return nil
}
