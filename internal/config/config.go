// Package config loads CLI settings from defaults, an optional YAML file,
// PARAMLINK_* environment variables and command-line flags, in rising priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PARAMLINK_STORE_BACKEND.
const EnvPrefix = "PARAMLINK"

// Config holds CLI configuration.
type Config struct {
	Scene              string      `mapstructure:"scene"`
	Label              string      `mapstructure:"label"`
	ControlID          string      `mapstructure:"control_id"`
	PruneMissingTarget bool        `mapstructure:"prune_missing_target"`
	LogLevel           string      `mapstructure:"log_level"`
	Store              StoreConfig `mapstructure:"store"`
	HTTP               HTTPConfig  `mapstructure:"http"`
}

// StoreConfig selects the snapshot backend.
type StoreConfig struct {
	Backend     string `mapstructure:"backend"` // memory, file, redis or sqlite
	Dir         string `mapstructure:"dir"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisPrefix string `mapstructure:"redis_prefix"`
	SQLitePath  string `mapstructure:"sqlite_path"`

	// EncryptionKey is a base64 AES-256 key. When set, snapshots are sealed
	// before they reach the backend.
	EncryptionKey string `mapstructure:"encryption_key"`
}

// HTTPConfig holds the serve command settings.
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"scene":      "scene",
	"label":      "label",
	"control-id": "control_id",
	"log-level":  "log_level",
	"store":      "store.backend",
	"addr":       "http.addr",
}

// Load reads the configuration. path overrides $PARAMLINK_CONFIG; when both are
// empty, paramlink.yaml is looked up in the working directory and in
// $HOME/.config/paramlink, and a missing file is not an error.
// Flags in flags that were set on the command line win over everything else.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("scene", "")
	v.SetDefault("label", "My Slider")
	v.SetDefault("control_id", "default")
	v.SetDefault("prune_missing_target", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("store.backend", "memory")
	v.SetDefault("store.dir", filepath.Join(".paramlink", "controls"))
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_prefix", "paramlink:control:")
	v.SetDefault("store.sqlite_path", filepath.Join(".paramlink", "paramlink.db"))
	v.SetDefault("store.encryption_key", "")
	v.SetDefault("http.addr", ":8080")

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("paramlink")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "paramlink"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
