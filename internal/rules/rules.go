package rules

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/codewright/retouch-cli/internal/utils"
	"gopkg.in/yaml.v3"
)

// Rule is a single literal substitution pair. Old is matched as a plain
// substring, never as a pattern, and every occurrence is replaced.
type Rule struct {
	Old string `yaml:"old"`
	New string `yaml:"new"`
}

// Pass is an ordered group of rules. Passes run in listed order and each
// pass operates on the output of the previous one.
type Pass struct {
	Name  string `yaml:"name,omitempty"`
	Rules []Rule `yaml:"rules"`
}

// Ruleset is a named, ordered collection of substitution passes persisted
// as a YAML document.
type Ruleset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Passes      []Pass `yaml:"passes"`
}

// Load reads and parses a ruleset YAML file.
func Load(path string) (*Ruleset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("ruleset not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	var rs Ruleset
	if err := yaml.Unmarshal(b, &rs); err != nil {
		return nil, fmt.Errorf("parse ruleset: %w", err)
	}
	if rs.Name == "" {
		return nil, fmt.Errorf("ruleset %s has no name", path)
	}
	return &rs, nil
}

// Save writes the ruleset to path as YAML using atomic write.
func (rs *Ruleset) Save(path string) error {
	b, err := yaml.Marshal(rs)
	if err != nil {
		return fmt.Errorf("marshal ruleset: %w", err)
	}
	return utils.SafeWriteFile(path, b)
}

// RuleCount returns the total number of rules across all passes.
func (rs *Ruleset) RuleCount() int {
	n := 0
	for _, p := range rs.Passes {
		n += len(p.Rules)
	}
	return n
}

// Validate checks the ruleset for unusable rules. It returns a list of
// human-readable warnings for suspicious but legal rules, and an error for
// rules that cannot be applied at all. A rule whose old and new text are
// identical is legal (applying it never changes the buffer) but almost
// always a mistake, so it is surfaced as a warning.
func (rs *Ruleset) Validate() ([]string, error) {
	if len(rs.Passes) == 0 {
		return nil, errors.New("ruleset has no passes")
	}
	var warnings []string
	for pi, p := range rs.Passes {
		if len(p.Rules) == 0 {
			return nil, fmt.Errorf("pass %s has no rules", passLabel(pi, p))
		}
		for ri, r := range p.Rules {
			if r.Old == "" {
				return nil, fmt.Errorf("pass %s rule %d: old text is empty", passLabel(pi, p), ri+1)
			}
			if r.Old == r.New {
				warnings = append(warnings, fmt.Sprintf("pass %s rule %d: old and new text are identical (%q); rule is a no-op", passLabel(pi, p), ri+1, truncate(r.Old, 60)))
			}
		}
	}
	return warnings, nil
}

func passLabel(i int, p Pass) string {
	if p.Name != "" {
		return fmt.Sprintf("%d (%s)", i+1, p.Name)
	}
	return fmt.Sprintf("%d", i+1)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max]) + "..."
}
