package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Mode     string `mapstructure:"mode"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`
	Secret   string `mapstructure:"secret"`

	ReadLimit  int64         `mapstructure:"read_limit"`
	WriteWait  time.Duration `mapstructure:"write_wait"`
	PingPeriod time.Duration `mapstructure:"ping_period"`
	PongWait   time.Duration `mapstructure:"pong_wait"`
	SendBuffer int           `mapstructure:"send_buffer"`

	SlowConsumer   string        `mapstructure:"slow_consumer"`
	InviteLimit    int           `mapstructure:"invite_limit"`
	InviteInterval time.Duration `mapstructure:"invite_interval"`

	ICEServers []ICEServer `mapstructure:"ice_servers"`
}

func Load() (*Config, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	return LoadFile(fmt.Sprintf("config/config.%s.yaml", env))
}

// LoadFile reads fileName if it exists, falling back to defaults, and applies
// INTERCOM_* environment overrides on top.
func LoadFile(fileName string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(fileName)

	v.SetEnvPrefix("INTERCOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("mode", "release")
	v.SetDefault("port", 3000)
	v.SetDefault("log_level", "info")
	v.SetDefault("secret", "intercom-dev-secret")
	v.SetDefault("read_limit", 65536)
	v.SetDefault("write_wait", "5s")
	v.SetDefault("ping_period", "25s")
	v.SetDefault("pong_wait", "60s")
	v.SetDefault("send_buffer", 64)
	v.SetDefault("slow_consumer", "drop")
	v.SetDefault("invite_limit", 10)
	v.SetDefault("invite_interval", "10s")
	v.SetDefault("ice_servers", []map[string]any{
		{"urls": []string{"stun:stun.l.google.com:19302"}},
	})

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	log.Info().
		Str("module", "config").
		Str("mode", cfg.Mode).
		Int("port", cfg.Port).
		Dur("ping_period", cfg.PingPeriod).
		Int("ice_servers", len(cfg.ICEServers)).
		Msg("config ready")
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.SendBuffer <= 0 {
		return errors.New("send_buffer must be positive")
	}
	if c.ReadLimit <= 0 {
		return errors.New("read_limit must be positive")
	}
	if c.PingPeriod <= 0 || c.PongWait <= c.PingPeriod {
		return fmt.Errorf("ping_period (%s) must be positive and shorter than pong_wait (%s)", c.PingPeriod, c.PongWait)
	}
	if c.WriteWait <= 0 {
		return errors.New("write_wait must be positive")
	}
	if _, err := c.WebRTCICEServers(); err != nil {
		return err
	}
	return nil
}
