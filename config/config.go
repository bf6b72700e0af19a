package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dilshat/zalo-sender/util"
)

type Config struct {
	HTTP    HTTPConfig    `toml:"http"`
	DB      DBConfig      `toml:"db"`
	Auth    AuthConfig    `toml:"auth"`
	Gateway GatewayConfig `toml:"gateway"`
	Sender  SenderConfig  `toml:"sender"`
	Redis   RedisConfig   `toml:"redis"`
	QR      QRConfig      `toml:"qr"`
	Log     LogConfig     `toml:"log"`
}

type HTTPConfig struct {
	Port      string `toml:"port"`
	BodyLimit string `toml:"body_limit"`
	Swagger   bool   `toml:"swagger"`
}

type DBConfig struct {
	Path         string `toml:"path"`
	LogStoreDays int    `toml:"log_store_days"`
}

type AuthConfig struct {
	JWTSecret  string        `toml:"jwt_secret"`
	AccessTTL  time.Duration `toml:"access_ttl"`
	RefreshTTL time.Duration `toml:"refresh_ttl"`
}

type GatewayConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
	TPS     int           `toml:"tps"`
}

type SenderConfig struct {
	DefaultDelay time.Duration `toml:"default_delay"`
	Tick         time.Duration `toml:"tick"`
	Grace        time.Duration `toml:"grace"`
	FlagTTL      time.Duration `toml:"flag_ttl"`
}

// RedisConfig is optional. With an empty Addr cancellation flags stay in process memory.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type QRConfig struct {
	SessionTTL   time.Duration `toml:"session_ttl"`
	PollInterval time.Duration `toml:"poll_interval"`
	UserAgent    string        `toml:"user_agent"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Port: "8080", BodyLimit: "2M", Swagger: true},
		DB:   DBConfig{Path: "zalo.db", LogStoreDays: 30},
		Auth: AuthConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 7 * 24 * time.Hour},
		Gateway: GatewayConfig{
			BaseURL: "http://localhost:3000",
			Timeout: 30 * time.Second,
			TPS:     5,
		},
		Sender: SenderConfig{
			DefaultDelay: 25 * time.Second,
			Tick:         time.Second,
			Grace:        3 * time.Second,
			FlagTTL:      24 * time.Hour,
		},
		QR: QRConfig{
			SessionTTL:   5 * time.Minute,
			PollInterval: 2 * time.Second,
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load starts from defaults, overlays the TOML file at path (if any) and then the
// environment. Environment always wins.
func Load(path string) (*Config, error) {
	cfg := Default()

	if !util.IsBlank(path) {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Port = util.GetEnv("HTTP_PORT", cfg.HTTP.Port)
	cfg.HTTP.BodyLimit = util.GetEnv("BODY_LIMIT", cfg.HTTP.BodyLimit)
	cfg.HTTP.Swagger = util.GetEnvAsBool("SWAGGER_ENABLED", cfg.HTTP.Swagger)

	cfg.DB.Path = util.GetEnv("DB_PATH", cfg.DB.Path)
	cfg.DB.LogStoreDays = util.GetEnvAsInt("SEND_LOG_STORE_DAYS", cfg.DB.LogStoreDays)

	cfg.Auth.JWTSecret = util.GetEnv("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Auth.AccessTTL = util.GetEnvAsDuration("ACCESS_TOKEN_TTL", cfg.Auth.AccessTTL)
	cfg.Auth.RefreshTTL = util.GetEnvAsDuration("REFRESH_TOKEN_TTL", cfg.Auth.RefreshTTL)

	cfg.Gateway.BaseURL = util.GetEnv("ZALO_GATEWAY_URL", cfg.Gateway.BaseURL)
	cfg.Gateway.Timeout = util.GetEnvAsDuration("ZALO_GATEWAY_TIMEOUT", cfg.Gateway.Timeout)
	cfg.Gateway.TPS = util.GetEnvAsInt("ZALO_TRX_PER_SEC", cfg.Gateway.TPS)

	cfg.Sender.DefaultDelay = util.GetEnvAsDuration("SEND_DELAY", cfg.Sender.DefaultDelay)
	cfg.Sender.Tick = util.GetEnvAsDuration("SEND_TICK", cfg.Sender.Tick)
	cfg.Sender.Grace = util.GetEnvAsDuration("SEND_GRACE", cfg.Sender.Grace)
	cfg.Sender.FlagTTL = util.GetEnvAsDuration("CANCEL_FLAG_TTL", cfg.Sender.FlagTTL)

	cfg.Redis.Addr = util.GetEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = util.GetEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = util.GetEnvAsInt("REDIS_DB", cfg.Redis.DB)

	cfg.QR.SessionTTL = util.GetEnvAsDuration("QR_SESSION_TTL", cfg.QR.SessionTTL)
	cfg.QR.PollInterval = util.GetEnvAsDuration("QR_POLL_INTERVAL", cfg.QR.PollInterval)
	cfg.QR.UserAgent = util.GetEnv("QR_USER_AGENT", cfg.QR.UserAgent)

	cfg.Log.Level = util.GetEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = util.GetEnv("LOG_FILE", cfg.Log.File)
}

func (c *Config) Validate() error {
	if util.IsBlank(c.Auth.JWTSecret) {
		return errors.New("JWT_SECRET is required")
	}
	if util.IsBlank(c.Gateway.BaseURL) {
		return errors.New("ZALO_GATEWAY_URL is required")
	}
	durations := map[string]time.Duration{
		"access token ttl":  c.Auth.AccessTTL,
		"refresh token ttl": c.Auth.RefreshTTL,
		"gateway timeout":   c.Gateway.Timeout,
		"send tick":         c.Sender.Tick,
		"cancel flag ttl":   c.Sender.FlagTTL,
		"qr session ttl":    c.QR.SessionTTL,
		"qr poll interval":  c.QR.PollInterval,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Sender.DefaultDelay < 0 || c.Sender.Grace < 0 {
		return errors.New("send delay and grace must not be negative")
	}
	if c.DB.LogStoreDays <= 0 {
		return errors.New("SEND_LOG_STORE_DAYS must be positive")
	}
	if c.Gateway.TPS <= 0 {
		return errors.New("ZALO_TRX_PER_SEC must be positive")
	}
	return nil
}
