package cmd

import (
	"fmt"
	"os"
	"strings"

	cfgpkg "github.com/codewright/retouch-cli/internal/config"
	"github.com/codewright/retouch-cli/internal/diff"
	"github.com/codewright/retouch-cli/internal/history"
	"github.com/codewright/retouch-cli/internal/patch"
	"github.com/codewright/retouch-cli/internal/rules"
	"github.com/codewright/retouch-cli/internal/textfile"
	"github.com/spf13/cobra"
)

var (
	applyRulesetName string
	applyDryRun      bool
	applyNoBackup    bool
	applyStrict      bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <file>",
	Short: "Apply a substitution ruleset to a file in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := resolveRuleset(applyRulesetName)
		if err != nil {
			return err
		}
		res, err := runRuleset(args[0], rs, applyDryRun, applyNoBackup, strictEnabled(applyStrict))
		if err != nil {
			return err
		}
		if applyDryRun {
			return nil
		}
		if res.Changed {
			fmt.Printf("✓ Applied %s to %s (%d replacements)\n", rs.Name, args[0], res.Total())
		} else {
			fmt.Printf("✓ %s already matches %s; file left untouched\n", args[0], rs.Name)
		}
		return nil
	},
}

// runRuleset is the shared apply path used by apply and watch: read the
// whole target, run every pass over the buffer, then either preview or
// overwrite in place.
func runRuleset(target string, rs *rules.Ruleset, dryRun, noBackup, strict bool) (*patch.Result, error) {
	warnings, err := rs.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid ruleset %s: %w", rs.Name, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %s: %s\n", rs.Name, w)
	}

	content, err := textfile.Read(target)
	if err != nil {
		return nil, err
	}
	res := patch.Apply(content, rs)

	for _, rr := range res.Rules {
		debugf("rule %q -> %q: %d occurrence(s)\n", shorten(rr.Old), shorten(rr.New), rr.Count)
	}
	if strict {
		if um := res.Unmatched(); len(um) > 0 {
			var olds []string
			for _, rr := range um {
				olds = append(olds, fmt.Sprintf("%q", shorten(rr.Old)))
			}
			return nil, fmt.Errorf("%d rule(s) matched nothing: %s", len(um), strings.Join(olds, ", "))
		}
	}

	if dryRun {
		if !res.Changed {
			fmt.Println("(no changes)")
			return res, nil
		}
		fmt.Print(diff.Unified(content, res.Output))
		fmt.Printf("\n%d replacement(s) across %d rule(s); file not modified\n", res.Total(), len(res.Rules))
		return res, nil
	}

	if res.Changed {
		if backupEnabled(noBackup) {
			bak, err := textfile.Backup(target, backupSuffix())
			if err != nil {
				return nil, err
			}
			debugf("backup written to %s\n", bak)
		}
		if err := textfile.Write(target, res.Output); err != nil {
			return nil, err
		}
	}
	recordRun(target, rs.Name, res)
	return res, nil
}

// recordRun appends a journal entry. Journal failures never fail the
// run itself; the target file is already rewritten.
func recordRun(target, ruleset string, res *patch.Result) {
	if cfg != nil && !cfg.History {
		return
	}
	dir, err := cfgpkg.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: history not recorded: %v\n", err)
		return
	}
	limit := 100
	if cfg != nil && cfg.HistoryLimit > 0 {
		limit = cfg.HistoryLimit
	}
	e := history.NewEntry(target, ruleset, res.Total(), res.Changed)
	if err := history.Append(dir, e, limit); err != nil {
		fmt.Fprintf(os.Stderr, "⚠ Warning: history not recorded: %v\n", err)
	}
}

func backupEnabled(noBackup bool) bool {
	if noBackup {
		return false
	}
	if cfg != nil {
		return cfg.Backup
	}
	return true
}

func strictEnabled(flag bool) bool {
	if flag {
		return true
	}
	return cfg != nil && cfg.Strict
}

func backupSuffix() string {
	if cfg != nil && cfg.BackupSuffix != "" {
		return cfg.BackupSuffix
	}
	return ".bak"
}

func shorten(s string) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) > 48 {
		return s[:48] + "..."
	}
	return s
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyRulesetName, "ruleset", "r", "", "preset name or ruleset YAML path")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "show the diff without writing the file")
	applyCmd.Flags().BoolVar(&applyNoBackup, "no-backup", false, "skip the pre-rewrite backup copy")
	applyCmd.Flags().BoolVar(&applyStrict, "strict", false, "fail when any rule matches nothing")
}
