// Package clean implements the Cleaner: attribute stripping, junk
// element removal, whitespace normalization, and stable serialization
// back to HTML.
package clean

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"structhtml/config"
	"structhtml/domtree"
)

var whitespaceRun = regexp.MustCompile(`[ \t\n\r\f]+`)

// voidTags serialize self-closed regardless of policy.
var voidTags = map[string]bool{
	"img": true, "br": true, "hr": true,
	"input": true, "meta": true, "link": true,
}

// Node returns a cleaned deep copy of n: junk elements and comments/
// doctypes removed recursively, attributes stripped to policy's
// allow-list, and text nodes whitespace-normalized. n itself is never
// mutated.
func Node(policy config.Policy, n *html.Node) *html.Node {
	clone := domtree.CloneSubtree(n)
	junk := toSet(policy.JunkTags)
	allowed := toSet(policy.AllowedAttributes)

	removeJunk(clone, junk)
	stripAttrs(clone, allowed)
	normalizeWhitespace(clone)

	return clone
}

// Nodes cleans each of ns independently and returns the cleaned copies,
// preserving order.
func Nodes(policy config.Policy, ns []*html.Node) []*html.Node {
	out := make([]*html.Node, len(ns))
	for i, n := range ns {
		out[i] = Node(policy, n)
	}
	return out
}

// HTML cleans an HTML document string and returns the cleaned body's
// serialized HTML. This is the `clean` operation applied to a whole
// document; callers that already have a subtree should use Node and
// Render directly.
func HTML(policy config.Policy, htmlInput string) string {
	doc := domtree.Parse(htmlInput)
	body := domtree.Body(doc)
	return Render(Node(policy, body))
}

func toSet(vals []string) map[string]bool {
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[strings.ToLower(v)] = true
	}
	return set
}

// removeJunk recursively deletes comment nodes, doctype nodes, and any
// element whose tag is in junk, along with their entire subtrees.
func removeJunk(n *html.Node, junk map[string]bool) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		switch c.Type {
		case html.CommentNode, html.DoctypeNode:
			n.RemoveChild(c)
		case html.ElementNode:
			if junk[c.Data] {
				n.RemoveChild(c)
			} else {
				removeJunk(c, junk)
			}
		}
		c = next
	}
}

// stripAttrs recursively filters every element's attribute list down to
// the allow-list.
func stripAttrs(n *html.Node, allowed map[string]bool) {
	if n.Type == html.ElementNode {
		domtree.RemoveAttrsExcept(n, allowed)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		stripAttrs(c, allowed)
	}
}

// normalizeWhitespace collapses runs of ASCII whitespace in text nodes to
// a single space, trims leading whitespace from a text node that is its
// parent's first child, trims trailing whitespace from one that is its
// parent's last child, and removes text nodes that become empty.
func normalizeWhitespace(n *html.Node) {
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type == html.TextNode {
			text := whitespaceRun.ReplaceAllString(c.Data, " ")
			if c.PrevSibling == nil {
				text = strings.TrimLeft(text, " ")
			}
			if c.NextSibling == nil {
				text = strings.TrimRight(text, " ")
			}
			if text == "" {
				n.RemoveChild(c)
			} else {
				c.Data = text
			}
		} else {
			normalizeWhitespace(c)
		}
		c = next
	}
}
