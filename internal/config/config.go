// Package config resolves folio settings from defaults, an optional
// folio.yaml, .env, FOLIO_* environment variables and command flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"folio/internal/logging"
)

// EnvPrefix is the prefix for environment overrides (FOLIO_ADDR, ...).
const EnvPrefix = "FOLIO"

// Config holds resolved settings.
type Config struct {
	ContentDir string `mapstructure:"contentDir"`
	Addr       string `mapstructure:"addr"`
	LogLevel   string `mapstructure:"logLevel"`
	LogFile    string `mapstructure:"logFile"`
	Watch      bool   `mapstructure:"watch"`
	Out        string `mapstructure:"out"`
}

// Load resolves configuration. cfgFile names an explicit config file; when
// empty, folio.yaml in the working directory is used if present. flags, if
// non-nil, override file and environment values for flags the user set.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("contentDir", "")
	v.SetDefault("addr", ":8080")
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", logging.DefaultLogFile())
	v.SetDefault("watch", false)
	v.SetDefault("out", "public")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// AutomaticEnv upper-cases keys as-is; bind the camelCase ones explicitly.
	for key, env := range map[string]string{
		"contentDir": "FOLIO_CONTENT_DIR",
		"logLevel":   "FOLIO_LOG_LEVEL",
		"logFile":    "FOLIO_LOG_FILE",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"contentDir": "content",
			"addr":       "addr",
			"logLevel":   "log-level",
			"logFile":    "log-file",
			"watch":      "watch",
			"out":        "out",
		} {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
