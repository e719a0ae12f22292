// Package children implements the Children Filter: applying the
// Sibling Detector and keeping only items that contain at least one
// outbound link.
package children

import (
	"golang.org/x/net/html"

	"structhtml/clean"
	"structhtml/config"
	"structhtml/domtree"
	"structhtml/siblings"
)

// Filter runs the Sibling Detector over cleanedDoc and returns only the
// items (already-rendered HTML strings) containing at least one <a>
// with a non-empty href, in document order.
func Filter(policy config.Policy, cleanedDoc *html.Node) []string {
	items := siblings.Detect(policy, cleanedDoc)

	var kept []string
	for _, item := range items {
		if hasOutboundLink(item) {
			kept = append(kept, clean.RenderAll(item))
		}
	}
	return kept
}

// hasOutboundLink reports whether item (a sibling group item, i.e. a
// slice of one or more sibling elements) contains an <a> element with a
// non-empty href attribute anywhere in its subtree.
func hasOutboundLink(item []*html.Node) bool {
	for _, el := range item {
		found := false
		domtree.Walk(el, func(n *html.Node) {
			if found || n.Type != html.ElementNode || n.Data != "a" {
				return
			}
			if domtree.AttrValue(n, "href") != "" {
				found = true
			}
		})
		if found {
			return true
		}
	}
	return false
}
