package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cfgpkg "github.com/codewright/retouch-cli/internal/config"
	"github.com/codewright/retouch-cli/internal/rules"
	"github.com/codewright/retouch-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "retouch",
	Short: "Retouch CLI: ordered literal find-and-replace for source files",
	Long:  `Retouch applies ordered, literal substitution rulesets to a text file in place. Rules are plain substrings (never patterns) applied whole-buffer in listed order, the way a disposable fix-up script would, but with previews, backups and a run journal.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.retouch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// rulesetsDir returns the configured rulesets directory, creating it if
// necessary.
func rulesetsDir() (string, error) {
	if cfg != nil && cfg.RulesetsDir != "" {
		dir := cfg.RulesetsDir
		if strings.HasPrefix(dir, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dir = strings.TrimPrefix(dir, "~")
			dir = strings.TrimPrefix(dir, string(os.PathSeparator))
			dir = strings.TrimPrefix(dir, "/")
			dir = filepath.Join(home, dir)
		}
		dir = filepath.Clean(dir)
		if err := utils.EnsureDir(dir); err != nil {
			return "", err
		}
		return dir, nil
	}
	confDir, err := cfgpkg.Dir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(confDir, "rulesets")
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// resolveRuleset loads a ruleset by preset name, YAML path, or name of a
// YAML file in the rulesets directory, in that order.
func resolveRuleset(nameOrPath string) (*rules.Ruleset, error) {
	if nameOrPath == "" {
		return nil, fmt.Errorf("--ruleset is required")
	}
	if rs, err := rules.Preset(nameOrPath); err == nil {
		return rs, nil
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return rules.Load(nameOrPath)
	}
	dir, err := rulesetsDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, nameOrPath+".yaml")
	if _, err := os.Stat(path); err == nil {
		return rules.Load(path)
	}
	return nil, fmt.Errorf("no preset, file, or saved ruleset named %q (known presets: %s)", nameOrPath, strings.Join(rules.PresetNames(), ", "))
}
