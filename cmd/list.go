package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codewright/retouch-cli/internal/rules"
	"github.com/spf13/cobra"
)

var (
	listPresets  bool
	listRulesets bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in presets or saved rulesets",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listPresets == listRulesets { // either both true or both false
			return fmt.Errorf("specify exactly one of --presets or --rulesets")
		}
		if listPresets {
			for _, name := range rules.PresetNames() {
				rs, err := rules.Preset(name)
				if err != nil {
					return err
				}
				fmt.Printf("- %s: %s (%d rules)\n", rs.Name, rs.Description, rs.RuleCount())
			}
			return nil
		}
		return listSavedRulesets()
	},
}

func listSavedRulesets() error {
	dir, err := rulesetsDir()
	if err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	found := false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		rs, err := rules.Load(filepath.Join(dir, e.Name()))
		if err != nil {
			fmt.Printf("- %s (unreadable: %v)\n", e.Name(), err)
			found = true
			continue
		}
		fmt.Printf("- %s: %s (%d rules)\n", strings.TrimSuffix(e.Name(), ext), rs.Description, rs.RuleCount())
		found = true
	}
	if !found {
		fmt.Println("(no saved rulesets)")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listPresets, "presets", false, "list built-in presets")
	listCmd.Flags().BoolVar(&listRulesets, "rulesets", false, "list saved ruleset files")
}
