package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"nc-news-api/internal/database"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Logger   LoggerConfig   `yaml:"logger"`
	CORS     CORSConfig     `yaml:"cors"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Comments CommentsConfig `yaml:"comments"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	Debug           bool          `yaml:"debug"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MetricsConfig struct {
	Enabled           bool   `yaml:"enabled"`
	CollectorSchedule string `yaml:"collector_schedule"`
}

type CommentsConfig struct {
	SanitizeHTML bool `yaml:"sanitize_html"`
}

// Default returns the configuration used when no file or environment overrides exist
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "9090",
			Mode:            "debug",
			BasePath:        "/api",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver:          "postgres",
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "nc_news",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Logger: LoggerConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Metrics: MetricsConfig{
			Enabled:           true,
			CollectorSchedule: "@every 1m",
		},
		Comments: CommentsConfig{
			SanitizeHTML: true,
		},
	}
}

// Load reads defaults, then the yaml file at path if it exists, then
// .env files, then environment variables. Later sources win.
func Load(path string) (*Config, error) {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	loadEnvFiles()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEnvFiles loads .env.<APP_ENV> and then .env. Existing variables are never overwritten.
func loadEnvFiles() {
	if env := os.Getenv("APP_ENV"); env != "" {
		_ = godotenv.Load(".env." + env)
	}
	_ = godotenv.Load()
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}

	if driver := os.Getenv("DB_DRIVER"); driver != "" {
		cfg.Database.Driver = driver
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Database.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}
	if name := os.Getenv("PGDATABASE"); name != "" {
		cfg.Database.Name = name
	}
	if sslMode := os.Getenv("DB_SSLMODE"); sslMode != "" {
		cfg.Database.SSLMode = sslMode
	}
	if debug := os.Getenv("DB_DEBUG"); debug != "" {
		cfg.Database.Debug = parseBool(debug, cfg.Database.Debug)
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if file := os.Getenv("LOG_FILE"); file != "" {
		cfg.Logger.File = file
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}

	if enabled := os.Getenv("METRICS_ENABLED"); enabled != "" {
		cfg.Metrics.Enabled = parseBool(enabled, cfg.Metrics.Enabled)
	}
	if schedule := os.Getenv("METRICS_COLLECTOR_SCHEDULE"); schedule != "" {
		cfg.Metrics.CollectorSchedule = schedule
	}

	if sanitize := os.Getenv("COMMENTS_SANITIZE_HTML"); sanitize != "" {
		cfg.Comments.SanitizeHTML = parseBool(sanitize, cfg.Comments.SanitizeHTML)
	}
}

// Validate reports settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case database.DriverPostgres, database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Server.BasePath == "" || !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("server base_path must start with /, got %q", c.Server.BasePath)
	}
	return nil
}

// GetDSN returns the connection string for the configured driver.
// URL wins when set. For sqlite, Name is the database file.
func (d DatabaseConfig) GetDSN() string {
	if d.URL != "" {
		return d.URL
	}
	if d.Driver == database.DriverSQLite {
		return d.Name
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Options converts the section into the pool settings database.New expects
func (d DatabaseConfig) Options() database.Config {
	return database.Config{
		Driver:          d.Driver,
		DSN:             d.GetDSN(),
		MaxOpenConns:    d.MaxOpenConns,
		MaxIdleConns:    d.MaxIdleConns,
		ConnMaxLifetime: d.ConnMaxLifetime,
		Debug:           d.Debug,
	}
}

func parseBool(raw string, fallback bool) bool {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
