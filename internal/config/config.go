package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"     envDefault:"localhost:8080"`
	Database       string        `env:"DATABASE_URI"`
	LogLvl         string        `env:"LOG_LVL"         envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"      envDefault:"console"`
	JWTSecret      string        `env:"JWT_SECRET"      envDefault:"change-me"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"       envDefault:"24h"`
	AMQPURL        string        `env:"AMQP_URL"`
	BackupDir      string        `env:"BACKUP_DIR"`
	BackupInterval time.Duration `env:"BACKUP_INTERVAL" envDefault:"1h"`
	BackupKeep     int           `env:"BACKUP_KEEP"     envDefault:"10"`
}

func New() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.Database, "d", cfg.Database, "database DSN, in-memory storage when empty")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format: console or json")
	flag.StringVar(&cfg.JWTSecret, "s", cfg.JWTSecret, "secret used to sign session tokens")
	flag.StringVar(&cfg.BackupDir, "b", cfg.BackupDir, "directory for periodic ledger backups, disabled when empty")
	flag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("jwt secret must not be empty")
	}
	if c.BackupDir != "" {
		if c.BackupInterval <= 0 {
			return errors.New("backup interval must be positive")
		}
		if c.BackupKeep < 1 {
			return errors.New("backup keep must be at least 1")
		}
	}
	return nil
}
