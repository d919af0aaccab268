package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Auth struct {
	Secret string `toml:"secret"`
}

type Storage struct {
	SqliteFile string `toml:"sqlite_file"`
}

type Search struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Timeout  string `toml:"timeout"`
	CacheTTL string `toml:"cache_ttl"`
}

type Redis struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Server  Server  `toml:"server"`
	Auth    Auth    `toml:"auth"`
	Storage Storage `toml:"db"`
	Search  Search  `toml:"search"`
	Redis   Redis   `toml:"redis"`
	Log     Log     `toml:"log"`
}

var ErrMissingSecret = errors.New("auth secret is not set (auth.secret or JWT_SECRET)")

func defaults() Config {
	return Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 5000,
		},
		Storage: Storage{
			SqliteFile: "foodlog.sqlite",
		},
		Search: Search{
			BaseURL:  "https://api.spoonacular.com",
			Timeout:  "10s",
			CacheTTL: "10m",
		},
		Redis: Redis{
			Addr: "localhost:6379",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// New reads the toml file at path (skipped when path is empty) and applies
// environment overrides on top of it.
func New(path string) (Config, error) {
	cfg := defaults()
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Auth.Secret == "" {
		return Config{}, ErrMissingSecret
	}
	if _, err := cfg.Search.TimeoutDuration(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Search.CacheTTLDuration(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return err
		}
		cfg.Server.Port = p
	}
	if debug := os.Getenv("DEBUG"); debug != "" {
		d, err := strconv.ParseBool(debug)
		if err != nil {
			return err
		}
		cfg.Server.Debug = d
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if file := os.Getenv("DB_FILE"); file != "" {
		cfg.Storage.SqliteFile = file
	}
	if key := os.Getenv("SPOONACULAR_API_KEY"); key != "" {
		cfg.Search.APIKey = key
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
		cfg.Redis.Enabled = true
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	return nil
}

func (s Search) TimeoutDuration() (time.Duration, error) {
	return time.ParseDuration(s.Timeout)
}

func (s Search) CacheTTLDuration() (time.Duration, error) {
	return time.ParseDuration(s.CacheTTL)
}
