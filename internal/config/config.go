package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	BlobDisk = "disk"
	BlobS3   = "s3"
	BlobGCS  = "gcs"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// document store
	StoreBackend   string `toml:"store_backend"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	// redis: sessions, reminders, rate limits and store notifications
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// blobs
	BlobBackend      string `toml:"blob_backend"`
	BlobDiskRootPath string `toml:"blob_disk_root_path"`
	BlobBucket       string `toml:"blob_bucket"`
	BlobRegion       string `toml:"blob_region"`
	BlobPrefix       string `toml:"blob_prefix"`
	BlobBaseURL      string `toml:"blob_base_url"`
	// http
	AllowedOrigins               []string `toml:"allowed_origins"`
	LoginRateLimitAllowedPerMin  int      `toml:"login_rate_limit_allowed_per_min"`
	SubmitRateLimitAllowedPerMin int      `toml:"submit_rate_limit_allowed_per_min"`
	UploadRateLimitAllowedPerMin int      `toml:"upload_rate_limit_allowed_per_min"`
	// bootstrap coach account, password hash comes from the env
	CoachUsername string `toml:"coach_username"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the validated config of env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env %s in %s", env, path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.StoreBackend == "" {
		c.StoreBackend = StorePostgres
	}
	if c.BlobBackend == "" {
		c.BlobBackend = BlobDisk
	}
	if c.BlobPrefix == "" {
		c.BlobPrefix = "checkins"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.SubmitRateLimitAllowedPerMin == 0 {
		c.SubmitRateLimitAllowedPerMin = 20
	}
	if c.UploadRateLimitAllowedPerMin == 0 {
		c.UploadRateLimitAllowedPerMin = 30
	}
}

func (c *Config) Validate() error {
	var err error
	if c.Port <= 0 {
		err = multierr.Append(err, errors.New("port not set"))
	}

	switch c.StoreBackend {
	case StorePostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			err = multierr.Append(err, errors.New("postgres store needs postgres_host and postgres_db_name"))
		}
	case StoreMemory:
	default:
		err = multierr.Append(err, fmt.Errorf("unknown store backend: %s", c.StoreBackend))
	}

	switch c.BlobBackend {
	case BlobDisk:
		if c.BlobDiskRootPath == "" {
			err = multierr.Append(err, errors.New("disk blobs need blob_disk_root_path"))
		}
	case BlobS3:
		if c.BlobBucket == "" || c.BlobRegion == "" {
			err = multierr.Append(err, errors.New("s3 blobs need blob_bucket and blob_region"))
		}
	case BlobGCS:
		if c.BlobBucket == "" {
			err = multierr.Append(err, errors.New("gcs blobs need blob_bucket"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown blob backend: %s", c.BlobBackend))
	}

	return err
}
