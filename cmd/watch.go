package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var (
	watchRulesetName string
	watchNoBackup    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-apply a ruleset whenever the file changes on disk",
	Long:  `Watch applies the ruleset once, then keeps watching the target and re-applies on every change until interrupted. Useful when a generator keeps rewriting the file you are patching.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := resolveRuleset(watchRulesetName)
		if err != nil {
			return err
		}
		target, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve target path: %w", err)
		}

		apply := func() {
			res, err := runRuleset(target, rs, false, watchNoBackup, false)
			if err != nil {
				fmt.Fprintf(os.Stderr, "⚠ Warning: apply failed: %v\n", err)
				return
			}
			if res.Changed {
				fmt.Printf("✓ Re-applied %s (%d replacements)\n", rs.Name, res.Total())
			}
		}
		apply()

		// Watch the parent directory: most editors and generators
		// replace the file via rename, which drops a watch placed on
		// the file itself.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		debounce := 250 * time.Millisecond
		if cfg != nil && cfg.WatchDebounceMs > 0 {
			debounce = time.Duration(cfg.WatchDebounceMs) * time.Millisecond
		}
		// Events burst during saves; collapse each burst into one
		// re-apply. Our own rewrite triggers one extra cycle, which
		// finds nothing left to replace and leaves the file alone.
		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}

		fmt.Printf("Watching %s (ctrl-c to stop)\n", target)
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\n✓ Watch stopped")
				return nil
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				debugf("event: %s\n", ev)
				timer.Reset(debounce)
			case <-timer.C:
				apply()
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(os.Stderr, "⚠ Warning: watch error: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchRulesetName, "ruleset", "r", "", "preset name or ruleset YAML path")
	watchCmd.Flags().BoolVar(&watchNoBackup, "no-backup", false, "skip the pre-rewrite backup copy")
}
