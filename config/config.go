// Package config provides the tunable policy for the Cleaner and Sibling
// Detector, loadable from a TOML file layered over built-in defaults,
// in a default-then-layer style.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Policy holds the knobs the Cleaner and Sibling Detector expose as tunable.
type Policy struct {
	// AllowedAttributes is the Cleaner's attribute allow-list.
	AllowedAttributes []string `toml:"allowed_attributes"`

	// JunkTags are recursively removed by the Cleaner.
	JunkTags []string `toml:"junk_tags"`

	// MaxPatternLength caps L in the multi-element sequence search.
	MaxPatternLength int `toml:"max_pattern_length"`
}

// DefaultPolicy returns the module's built-in tuning.
func DefaultPolicy() Policy {
	return Policy{
		AllowedAttributes: []string{
			"href", "src", "alt", "title", "rel", "type", "name",
			"content", "datetime", "value", "colspan", "rowspan",
		},
		JunkTags: []string{
			"script", "style", "noscript", "iframe", "svg", "nav",
			"header", "footer", "form", "input", "button", "select",
			"option", "aside", "link", "meta",
		},
		MaxPatternLength: 6,
	}
}

// Load reads a TOML file at path and layers any non-zero fields over
// DefaultPolicy. A missing file is not an error: the defaults are
// returned unchanged.
func Load(path string) (Policy, error) {
	policy := DefaultPolicy()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return policy, nil
	}

	var user Policy
	if _, err := toml.DecodeFile(path, &user); err != nil {
		return Policy{}, fmt.Errorf("parsing policy TOML from %s: %w", path, err)
	}

	return merge(policy, user), nil
}

// merge layers non-zero fields of user over defaults.
func merge(defaults, user Policy) Policy {
	result := defaults
	if len(user.AllowedAttributes) > 0 {
		result.AllowedAttributes = user.AllowedAttributes
	}
	if len(user.JunkTags) > 0 {
		result.JunkTags = user.JunkTags
	}
	if user.MaxPatternLength > 0 {
		result.MaxPatternLength = user.MaxPatternLength
	}
	return result
}

// DefaultTOML returns the default policy rendered as a TOML document,
// suitable for writing to a config path as a starting point for
// customization.
func DefaultTOML() string {
	return `# structhtml policy
# Save to ~/.config/structcli/policy.toml and customize.
# Only include the fields you want to change from the defaults.

allowed_attributes = [
  "href", "src", "alt", "title", "rel", "type", "name",
  "content", "datetime", "value", "colspan", "rowspan",
]

junk_tags = [
  "script", "style", "noscript", "iframe", "svg", "nav",
  "header", "footer", "form", "input", "button", "select",
  "option", "aside", "link", "meta",
]

max_pattern_length = 6
`
}
