package cmd

import (
	"github.com/spf13/cobra"
)

var previewRulesetName string

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Show the diff a ruleset would produce without touching the file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := resolveRuleset(previewRulesetName)
		if err != nil {
			return err
		}
		_, err = runRuleset(args[0], rs, true, true, strictEnabled(false))
		return err
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewRulesetName, "ruleset", "r", "", "preset name or ruleset YAML path")
}
