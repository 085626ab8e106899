package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	RulesetsDir  string `mapstructure:"rulesets_dir" yaml:"rulesets_dir"`
	Backup       bool   `mapstructure:"backup" yaml:"backup"`
	BackupSuffix string `mapstructure:"backup_suffix" yaml:"backup_suffix"`
	// Strict turns rules whose old text never occurs into errors
	// instead of silent no-ops.
	Strict       bool `mapstructure:"strict" yaml:"strict"`
	History      bool `mapstructure:"history" yaml:"history"`
	HistoryLimit int  `mapstructure:"history_limit" yaml:"history_limit"`

	// Watch mode
	WatchDebounceMs int `mapstructure:"watch_debounce_ms" yaml:"watch_debounce_ms"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.retouch/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Dir returns the configuration directory, ~/.retouch.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".retouch"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("RETOUCH")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("backup", true)
	v.SetDefault("backup_suffix", ".bak")
	v.SetDefault("strict", false)
	v.SetDefault("history", true)
	v.SetDefault("history_limit", 100)
	v.SetDefault("watch_debounce_ms", 250)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve rulesets_dir default: ~/.retouch/rulesets
	if c.RulesetsDir == "" {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		c.RulesetsDir = filepath.Join(dir, "rulesets")
	}
	return &c, nil
}
