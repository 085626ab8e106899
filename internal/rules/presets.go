package rules

import (
	"fmt"
	"sort"
)

// Built-in rulesets for the quiz tab component. These carry the exact
// class and inline-style substitutions used to stabilise its layout;
// user-defined rulesets live as YAML files in the rulesets directory.
var presets = map[string]*Ruleset{
	"overflow-guard": {
		Name:        "overflow-guard",
		Description: "Pin quiz tab containers to 100% width so nothing overflows the viewport",
		Passes: []Pass{
			{
				Name: "containers",
				Rules: []Rule{
					{
						Old: "  return (\n    <div className=\"space-y-6 w-full max-w-full overflow-x-hidden box-border\">",
						New: "  return (\n    <div className=\"space-y-6 w-full max-w-full overflow-x-hidden box-border\" style={{ width: \"100%\", maxWidth: \"100%\" }}>",
					},
					// progress bar track and fill
					{
						Old: "        <div className=\"w-full bg-gray-200 rounded-full h-2 sm:h-3 overflow-hidden\">",
						New: "        <div className=\"w-full bg-gray-200 rounded-full h-2 sm:h-3 overflow-hidden\" style={{ width: \"100%\", maxWidth: \"100%\" }}>",
					},
					{
						Old: "            className=\"bg-emerald-600 h-2 sm:h-3 rounded-full transition-all duration-300 max-w-full\"",
						New: "            className=\"bg-emerald-600 h-2 sm:h-3 rounded-full transition-all duration-300\" style={{ maxWidth: \"100%\" }}",
					},
					// glass cards, both padding variants
					{
						Old: "      <div className=\"glass-card rounded-2xl p-4 sm:p-6 w-full max-w-full overflow-hidden\">",
						New: "      <div className=\"glass-card rounded-2xl p-4 sm:p-6 w-full max-w-full overflow-hidden box-border\" style={{ width: \"100%\", maxWidth: \"100%\", boxSizing: \"border-box\" }}>",
					},
					{
						Old: "      <div className=\"glass-card rounded-2xl p-4 sm:p-6 md:p-8 w-full max-w-full overflow-hidden\">",
						New: "      <div className=\"glass-card rounded-2xl p-4 sm:p-6 md:p-8 w-full max-w-full overflow-hidden box-border\" style={{ width: \"100%\", maxWidth: \"100%\", boxSizing: \"border-box\" }}>",
					},
					// navigation containers
					{
						Old: "      <div className=\"space-y-4 w-full max-w-full overflow-x-hidden\">",
						New: "      <div className=\"space-y-4 w-full max-w-full overflow-x-hidden box-border\" style={{ width: \"100%\", maxWidth: \"100%\" }}>",
					},
					{
						Old: "        <div className=\"flex items-center gap-2 w-full min-w-0\">",
						New: "        <div className=\"flex items-center gap-2 w-full min-w-0 box-border\" style={{ width: \"100%\", maxWidth: \"100%\" }}>",
					},
					// question scroll strip must be allowed to shrink
					{
						Old: "            className=\"flex-1 min-w-0 overflow-x-auto px-2 scrollbar-hide\"",
						New: "            className=\"flex-1 min-w-0 overflow-x-auto px-2 scrollbar-hide box-border\" style={{ minWidth: 0, maxWidth: \"100%\" }}>",
					},
					{
						Old: "        <div className=\"flex items-center justify-between gap-4 w-full min-w-0\">",
						New: "        <div className=\"flex items-center justify-between gap-4 w-full min-w-0 box-border\" style={{ width: \"100%\", maxWidth: \"100%\" }}>",
					},
				},
			},
		},
	},
	"compact-sizing": {
		Name:        "compact-sizing",
		Description: "Shrink quiz tab text, buttons, icons and padding one step",
		Passes: []Pass{
			{
				Name: "sizes",
				Rules: []Rule{
					// progress bar labels
					{Old: "text-sm sm:text-base font-medium", New: "text-xs font-medium"},
					{Old: "text-xs sm:text-sm", New: "text-xs"},
					// question number buttons
					{Old: "w-8 h-8 sm:w-10 sm:h-10", New: "w-6 h-6"},
					{Old: "text-xs sm:text-sm", New: "text-xs"},
					// icons
					{Old: "h-4 w-4", New: "h-3 w-3"},
					// progress bar height
					{Old: "h-2 sm:h-3", New: "h-1.5"},
				},
			},
			{
				Name: "padding",
				Rules: []Rule{
					{Old: "p-4 sm:p-6", New: "p-2 sm:p-3"},
					{Old: "p-4 sm:p-6 md:p-8", New: "p-2 sm:p-3"},
				},
			},
		},
	},
}

// Preset returns a built-in ruleset by name.
func Preset(name string) (*Ruleset, error) {
	rs, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	return rs, nil
}

// PresetNames returns the names of all built-in rulesets, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
