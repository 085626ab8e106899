package cmd

import (
	"fmt"

	cfgpkg "github.com/codewright/retouch-cli/internal/config"
	"github.com/codewright/retouch-cli/internal/history"
	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear the journal of past apply runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cfgpkg.Dir()
		if err != nil {
			return err
		}
		if historyClear {
			if err := history.Clear(dir); err != nil {
				return err
			}
			fmt.Println("✓ History cleared")
			return nil
		}
		entries, err := history.Load(dir)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("(no history)")
			return nil
		}
		for _, e := range entries {
			status := "no changes"
			if e.Changed {
				status = fmt.Sprintf("%d replacements", e.Replacements)
			}
			fmt.Printf("- %s %s %s (%s)\n", e.Time.Format("2006-01-02 15:04:05"), e.Ruleset, e.File, status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "truncate the journal")
}
