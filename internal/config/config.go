package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Billing BillingConfig `mapstructure:"billing"`
	Timer   TimerConfig   `mapstructure:"timer"`
	Session SessionConfig `mapstructure:"session"`
	Events  EventsConfig  `mapstructure:"events"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BillingConfig holds the labor rate. It is read once at startup and stays fixed for the
// lifetime of the process.
type BillingConfig struct {
	LaborRate float64 `mapstructure:"labor_rate"`
}

type TimerConfig struct {
	SampleInterval time.Duration `mapstructure:"sample_interval"`
}

type SessionConfig struct {
	IdleTTL      time.Duration `mapstructure:"idle_ttl"`
	ReapInterval time.Duration `mapstructure:"reap_interval"`
}

type EventsConfig struct {
	ClientBuffer int           `mapstructure:"client_buffer"`
	Heartbeat    time.Duration `mapstructure:"heartbeat"`
}

// Load reads config.yaml from ./configs or the working directory, then applies environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 0)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("billing.labor_rate", 85.0)
	v.SetDefault("timer.sample_interval", time.Second)

	v.SetDefault("session.idle_ttl", 12*time.Hour)
	v.SetDefault("session.reap_interval", time.Minute)

	v.SetDefault("events.client_buffer", 16)
	v.SetDefault("events.heartbeat", 30*time.Second)
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE", "GIN_MODE")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")

	// Work orders
	v.BindEnv("billing.labor_rate", "LABOR_RATE")
	v.BindEnv("timer.sample_interval", "TIMER_SAMPLE_INTERVAL")
	v.BindEnv("session.idle_ttl", "SESSION_IDLE_TTL")
}

func (c Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	case c.Server.Mode != "debug" && c.Server.Mode != "release" && c.Server.Mode != "test":
		return fmt.Errorf("invalid server.mode %q", c.Server.Mode)
	case c.Billing.LaborRate < 0:
		return fmt.Errorf("invalid billing.labor_rate %v", c.Billing.LaborRate)
	case c.Timer.SampleInterval <= 0:
		return fmt.Errorf("invalid timer.sample_interval %v", c.Timer.SampleInterval)
	case c.Session.IdleTTL <= 0:
		return fmt.Errorf("invalid session.idle_ttl %v", c.Session.IdleTTL)
	case c.Session.ReapInterval <= 0:
		return fmt.Errorf("invalid session.reap_interval %v", c.Session.ReapInterval)
	}
	return nil
}
