// Package structure is the facade: the four public operations,
// composing domtree, clean, mainloc, siblings, and children.
package structure

import (
	"strings"

	"golang.org/x/net/html"

	"structhtml/children"
	"structhtml/clean"
	"structhtml/config"
	"structhtml/domtree"
	"structhtml/mainloc"
	"structhtml/siblings"
)

// DefaultPolicy returns the module's built-in tuning, for callers that
// don't need to customize the Cleaner's allow-list or the Sibling
// Detector's pattern-length cap.
func DefaultPolicy() config.Policy {
	return config.DefaultPolicy()
}

// Clean strips presentational attributes and junk elements from an HTML
// document and returns the cleaned body's HTML.
func Clean(policy config.Policy, htmlInput string) string {
	doc := domtree.Parse(htmlInput)
	return clean.Render(clean.Node(policy, domtree.Body(doc)))
}

// Main isolates the primary content region of an HTML document and
// returns its cleaned HTML. The locator runs before cleaning: its
// nav/header/footer/aside exclusion only makes sense pre-clean; clean
// is then applied to whichever region wins.
func Main(policy config.Policy, htmlInput string) string {
	doc := domtree.Parse(htmlInput)
	region := mainloc.Locate(doc)
	return clean.Render(clean.Node(policy, region))
}

// Siblings detects the dominant repeating-item pattern in an HTML
// document and returns one cleaned HTML fragment per item, in document
// order. Returns an empty slice if no candidate survives.
func Siblings(policy config.Policy, htmlInput string) []string {
	cleanedDoc := cleanedDocument(policy, htmlInput)

	groups := siblings.Detect(policy, cleanedDoc)
	out := make([]string, 0, len(groups))
	for _, item := range groups {
		out = append(out, clean.RenderAll(item))
	}
	return out
}

// Children is Siblings restricted to items containing at least one
// outbound link (<a href="...">), joined into a single HTML string
// (children is a single document, not a list).
// Returns "" if no item qualifies.
func Children(policy config.Policy, htmlInput string) string {
	cleanedDoc := cleanedDocument(policy, htmlInput)
	kept := children.Filter(policy, cleanedDoc)
	return strings.Join(kept, "")
}

// cleanedDocument parses htmlInput and returns the cleaned body, the
// tree the Sibling Detector's Phase 1 traversal walks: a depth-first
// walk of every element node in the cleaned DOM.
func cleanedDocument(policy config.Policy, htmlInput string) *html.Node {
	doc := domtree.Parse(htmlInput)
	return clean.Node(policy, domtree.Body(doc))
}
