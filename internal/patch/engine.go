// Package patch applies ordered literal substitutions to an in-memory
// text buffer. Rules are plain substrings, applied whole-buffer in
// listed order; each rule sees the output of the previous one.
package patch

import (
	"strings"

	"github.com/codewright/retouch-cli/internal/rules"
)

// RuleResult records the outcome of applying one rule.
type RuleResult struct {
	Pass  string
	Old   string
	New   string
	Count int // occurrences replaced; 0 means the rule was a no-op
}

// Result is the outcome of applying a ruleset to a buffer.
type Result struct {
	Output  string
	Changed bool
	Rules   []RuleResult
}

// Total returns the number of replacements made across all rules.
func (r *Result) Total() int {
	n := 0
	for _, rr := range r.Rules {
		n += rr.Count
	}
	return n
}

// Unmatched returns the rules whose old text never occurred in the
// buffer they ran against. An absent substring is silently a no-op; the
// caller decides whether that matters (strict mode treats it as an error).
func (r *Result) Unmatched() []RuleResult {
	var out []RuleResult
	for _, rr := range r.Rules {
		if rr.Count == 0 {
			out = append(out, rr)
		}
	}
	return out
}

// Apply runs every pass of the ruleset over content, in order. Within a
// pass, rules apply in listed order; later passes operate on the buffer
// produced by earlier ones. An identical old/new pair counts its
// occurrences but cannot change the buffer.
func Apply(content string, rs *rules.Ruleset) *Result {
	res := &Result{Output: content}
	for _, p := range rs.Passes {
		for _, rule := range p.Rules {
			if rule.Old == "" {
				// Validate rejects these; skip rather than let
				// ReplaceAll splice between every character.
				res.Rules = append(res.Rules, RuleResult{Pass: p.Name, Old: rule.Old, New: rule.New})
				continue
			}
			n := strings.Count(res.Output, rule.Old)
			if n > 0 && rule.Old != rule.New {
				res.Output = strings.ReplaceAll(res.Output, rule.Old, rule.New)
			}
			res.Rules = append(res.Rules, RuleResult{
				Pass:  p.Name,
				Old:   rule.Old,
				New:   rule.New,
				Count: n,
			})
		}
	}
	res.Changed = res.Output != content
	return res
}
