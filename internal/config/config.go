package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Mode         string        `mapstructure:"mode" validate:"oneof=release debug test"`
	Port         int           `mapstructure:"port" validate:"min=1,max=65535"`
	StaticPath   string        `mapstructure:"static_path" validate:"required"`
	ReadLimit    int64         `mapstructure:"read_limit" validate:"min=512"`
	PingPeriod   time.Duration `mapstructure:"ping_period" validate:"min=1s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=1ms"`
	SendBuffer   int           `mapstructure:"send_buffer" validate:"min=1"`
	Secret       string        `mapstructure:"secret"`
	TLSCert      string        `mapstructure:"tls_cert" validate:"required_with=TLSKey"`
	TLSKey       string        `mapstructure:"tls_key" validate:"required_with=TLSCert"`
	LogLevel     string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	ICEServers   []string      `mapstructure:"ice_servers"`
	ConnLimit    int           `mapstructure:"conn_limit" validate:"min=0"`
	ConnInterval time.Duration `mapstructure:"conn_interval" validate:"required_unless=ConnLimit 0"`
}

// TLSEnabled reports whether the server should listen with HTTPS.
func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads defaults, then the config file, then RELAY_* / PORT environment
// variables, then command line flags in args.
func Load(args []string) (*Config, error) {
	fsFlags := pflag.NewFlagSet("relay", pflag.ContinueOnError)
	configFile := fsFlags.String("config", "", "path to a YAML config file")
	fsFlags.Int("port", 0, "listen port")
	fsFlags.String("mode", "", "gin mode: release, debug or test")
	fsFlags.String("static", "", "directory with client assets")
	if err := fsFlags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("mode", "release")
	v.SetDefault("port", 10000)
	v.SetDefault("static_path", "./public")
	v.SetDefault("read_limit", 65536)
	v.SetDefault("ping_period", "54s")
	v.SetDefault("write_timeout", "5s")
	v.SetDefault("send_buffer", 64)
	v.SetDefault("log_level", "info")
	v.SetDefault("ice_servers", []string{"stun:stun.l.google.com:19302"})
	v.SetDefault("conn_limit", 10)
	v.SetDefault("conn_interval", "10s")

	v.SetEnvPrefix("relay")
	v.AutomaticEnv()
	// Hosting platforms hand out the listen port as plain PORT.
	if err := v.BindEnv("port", "RELAY_PORT", "PORT"); err != nil {
		return nil, err
	}

	for key, flag := range map[string]string{"port": "port", "mode": "mode", "static_path": "static"} {
		if err := v.BindPFlag(key, fsFlags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	fileName := *configFile
	explicit := fileName != ""
	if !explicit {
		env := os.Getenv("CONFIG_ENV")
		if env == "" {
			env = "dev"
		}
		fileName = fmt.Sprintf("config/config.%s.yaml", env)
	}
	v.SetConfigFile(fileName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)) {
			return nil, fmt.Errorf("read config %s: %w", fileName, err)
		}
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	log.Info().Str("module", "config").Str("mode", cfg.Mode).Int("port", cfg.Port).Str("static", cfg.StaticPath).Bool("tls", cfg.TLSEnabled()).Msg("config ready")
	return &cfg, nil
}
