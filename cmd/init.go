package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codewright/retouch-cli/internal/rules"
	"github.com/spf13/cobra"
)

var initDescription string

var initCmd = &cobra.Command{
	Use:   "init <ruleset-name>",
	Short: "Scaffold a new ruleset YAML in the rulesets directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, err := rules.Preset(name); err == nil {
			return fmt.Errorf("%q is a built-in preset; pick another name", name)
		}
		dir, err := rulesetsDir()
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name+".yaml")
		// Refuse to overwrite an existing ruleset.
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("ruleset already exists at %s", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat ruleset: %w", err)
		}
		rs := &rules.Ruleset{
			Name:        name,
			Description: initDescription,
			Passes: []rules.Pass{
				{
					Name: "example",
					Rules: []rules.Rule{
						{Old: "h-4 w-4", New: "h-3 w-3"},
					},
				},
			},
		}
		if err := rs.Save(path); err != nil {
			return err
		}
		fmt.Printf("✓ Ruleset scaffolded: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initDescription, "desc", "d", "", "ruleset description")
}
