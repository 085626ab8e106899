package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <ruleset>",
	Short: "Check a ruleset for empty or no-op rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := resolveRuleset(args[0])
		if err != nil {
			return err
		}
		warnings, err := rs.Validate()
		if err != nil {
			return fmt.Errorf("invalid ruleset %s: %w", rs.Name, err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", w)
		}
		fmt.Printf("✓ Ruleset %s is valid: %d passes, %d rules, %d warnings\n", rs.Name, len(rs.Passes), rs.RuleCount(), len(warnings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
