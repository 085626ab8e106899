package rules_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codewright/retouch-cli/internal/rules"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	tdir := t.TempDir()
	path := filepath.Join(tdir, "shrink.yaml")
	rs := &rules.Ruleset{
		Name:        "shrink",
		Description: "shrink icon sizes",
		Passes: []rules.Pass{
			{Name: "icons", Rules: []rules.Rule{{Old: "h-4 w-4", New: "h-3 w-3"}}},
		},
	}
	if err := rs.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := rules.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "shrink" || got.Description != "shrink icon sizes" {
		t.Fatalf("metadata mismatch: %+v", got)
	}
	if got.RuleCount() != 1 {
		t.Fatalf("expected 1 rule, got %d", got.RuleCount())
	}
	if got.Passes[0].Rules[0].Old != "h-4 w-4" {
		t.Fatalf("rule mismatch: %+v", got.Passes[0].Rules[0])
	}
}

func TestLoadPreservesMultilineRules(t *testing.T) {
	tdir := t.TempDir()
	path := filepath.Join(tdir, "multi.yaml")
	yaml := `name: multi
passes:
  - name: containers
    rules:
      - old: "  return (\n    <div>"
        new: "  return (\n    <section>"
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	rs, err := rules.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(rs.Passes[0].Rules[0].Old, "\n") {
		t.Fatalf("newline lost: %q", rs.Passes[0].Rules[0].Old)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := rules.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRequiresName(t *testing.T) {
	tdir := t.TempDir()
	path := filepath.Join(tdir, "anon.yaml")
	if err := os.WriteFile(path, []byte("passes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := rules.Load(path); err == nil {
		t.Fatal("expected error for nameless ruleset")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		rs        rules.Ruleset
		wantErr   bool
		wantWarns int
	}{
		{
			name: "valid",
			rs: rules.Ruleset{Name: "ok", Passes: []rules.Pass{
				{Rules: []rules.Rule{{Old: "a", New: "b"}}},
			}},
		},
		{
			name:    "no passes",
			rs:      rules.Ruleset{Name: "empty"},
			wantErr: true,
		},
		{
			name: "empty pass",
			rs: rules.Ruleset{Name: "empty-pass", Passes: []rules.Pass{
				{Name: "nothing"},
			}},
			wantErr: true,
		},
		{
			name: "empty old",
			rs: rules.Ruleset{Name: "bad", Passes: []rules.Pass{
				{Rules: []rules.Rule{{Old: "", New: "b"}}},
			}},
			wantErr: true,
		},
		{
			name: "identical pair warns",
			rs: rules.Ruleset{Name: "noop", Passes: []rules.Pass{
				{Rules: []rules.Rule{{Old: "same", New: "same"}}},
			}},
			wantWarns: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			warns, err := tc.rs.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(warns) != tc.wantWarns {
				t.Fatalf("expected %d warnings, got %v", tc.wantWarns, warns)
			}
		})
	}
}
