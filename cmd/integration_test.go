package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd executes the root command with args and fails the test on error.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	if err := runCmdErr(t, args...); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func runCmdErr(t *testing.T, args ...string) error {
	t.Helper()
	applyRulesetName = ""
	applyDryRun = false
	applyNoBackup = false
	applyStrict = false
	previewRulesetName = ""
	listPresets = false
	listRulesets = false
	historyClear = false
	initDescription = ""
	cfg = nil
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func writeTarget(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "quiz-tab.tsx")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCLI_ApplyPresetRewritesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tdir := t.TempDir()
	target := writeTarget(t, tdir, "<Icon className=\"h-4 w-4\" />\n<div className=\"p-4 sm:p-6\">\n")

	runCmd(t, "apply", target, "--ruleset", "compact-sizing")

	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	got := string(b)
	if !strings.Contains(got, "h-3 w-3") {
		t.Fatalf("icon size not shrunk: %q", got)
	}
	if !strings.Contains(got, "p-2 sm:p-3") {
		t.Fatalf("padding not shrunk: %q", got)
	}

	// Pristine copy survives next to the target.
	bak, err := os.ReadFile(target + ".bak")
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if !strings.Contains(string(bak), "h-4 w-4") {
		t.Fatalf("backup does not hold original content: %q", bak)
	}

	// The run is journaled under the config dir.
	home, _ := os.UserHomeDir()
	if _, err := os.Stat(filepath.Join(home, ".retouch", "history.json")); err != nil {
		t.Fatalf("history not written: %v", err)
	}
}

func TestCLI_ApplyIsIdempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tdir := t.TempDir()
	target := writeTarget(t, tdir, "<Icon className=\"h-4 w-4\" />\n")

	runCmd(t, "apply", target, "--ruleset", "compact-sizing", "--no-backup")
	first, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	runCmd(t, "apply", target, "--ruleset", "compact-sizing", "--no-backup")
	second, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Fatalf("second apply changed the file: %q vs %q", first, second)
	}
}

func TestCLI_PreviewLeavesFileUntouched(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tdir := t.TempDir()
	content := "<Icon className=\"h-4 w-4\" />\n"
	target := writeTarget(t, tdir, content)

	runCmd(t, "preview", target, "--ruleset", "compact-sizing")

	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != content {
		t.Fatalf("preview modified the file: %q", b)
	}
	if _, err := os.Stat(target + ".bak"); !os.IsNotExist(err) {
		t.Fatal("preview wrote a backup")
	}
}

func TestCLI_StrictFailsWhenNothingMatches(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tdir := t.TempDir()
	target := writeTarget(t, tdir, "nothing relevant here\n")

	if err := runCmdErr(t, "apply", target, "--ruleset", "compact-sizing", "--strict"); err == nil {
		t.Fatal("expected strict apply to fail")
	}
	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "nothing relevant here\n" {
		t.Fatalf("strict failure still modified the file: %q", b)
	}
}

func TestCLI_InitAndValidateRuleset(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	runCmd(t, "init", "myset", "--desc", "test set")

	path := filepath.Join(home, ".retouch", "rulesets", "myset.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("scaffold missing: %v", err)
	}
	// Re-running must refuse to overwrite.
	if err := runCmdErr(t, "init", "myset"); err == nil {
		t.Fatal("expected init to refuse overwriting")
	}

	runCmd(t, "validate", "myset")

	// The scaffolded ruleset is usable by name.
	tdir := t.TempDir()
	target := writeTarget(t, tdir, "<Icon className=\"h-4 w-4\" />\n")
	runCmd(t, "apply", target, "--ruleset", "myset", "--no-backup")
	b, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "h-3 w-3") {
		t.Fatalf("scaffolded ruleset not applied: %q", b)
	}
}

func TestCLI_UnknownRuleset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tdir := t.TempDir()
	target := writeTarget(t, tdir, "x\n")
	if err := runCmdErr(t, "apply", target, "--ruleset", "no-such-set"); err == nil {
		t.Fatal("expected error for unknown ruleset")
	}
}
