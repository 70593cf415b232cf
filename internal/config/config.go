package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Загрузка конфигурации из config.yaml через cleanenv

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	Cache     CacheConfig     `yaml:"cache"`
	Warmer    WarmerConfig    `yaml:"warmer"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Logger    LoggerConfig    `yaml:"logger"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env-default:"12s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

type CoinGeckoConfig struct {
	BaseURL   string        `yaml:"base_url" env-default:"https://api.coingecko.com/api/v3"`
	Currency  string        `yaml:"currency" env-default:"eur"`
	PageSize  int           `yaml:"page_size" env-default:"100"`
	Page      int           `yaml:"page" env-default:"1"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env-default:"crypto-dashboard/1.0"`
}

// CacheConfig — TTL на каждую операцию рынка.
// Верхний список обновляется реже, поэтому живёт дольше.
type CacheConfig struct {
	MarketsTTL time.Duration `yaml:"markets_ttl" env-default:"10m"`
	HistoryTTL time.Duration `yaml:"history_ttl" env-default:"5m"`
	GlobalTTL  time.Duration `yaml:"global_ttl" env-default:"5m"`
}

type WarmerConfig struct {
	Enabled  bool          `yaml:"enabled" env-default:"false"`
	Interval time.Duration `yaml:"interval" env-default:"10m"`
}

type LoggerConfig struct {
	Level  string `yaml:"level"  env-default:"info"` // debug|info|warn|error
	Format string `yaml:"format" env-default:"text"` // text|json
}

type TelegramConfig struct {
	Enabled bool   `yaml:"enabled" env-default:"false"`
	Token   string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Try to read from config file if specified
	configPath := fetchConfigPath()
	if configPath != "" {
		if err := cleanenv.ReadConfig(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Read from environment variables
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fetchConfigPath() string {
	var res string
	flag.StringVar(&res, "c", "", "config file path")
	flag.Parse()
	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}
