// Package domtree parses HTML into the DOM tree the rest of the module
// walks, and carries the small set of traversal helpers every other
// package shares.
//
// The tree is represented directly as *html.Node from golang.org/x/net/html
// rather than a hand-rolled node type: its ElementNode/TextNode/CommentNode/
// DoctypeNode constants already are the discriminated variant this module
// needs, its Attr slice is already an ordered attribute list, and its
// FirstChild/NextSibling chain is already an ordered child sequence.
package domtree

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses an HTML string into a DOM tree. It never fails: input that
// can't be tokenized as HTML at all still yields a minimal document via
// html.Parse's own leniency, and a zero-length input yields an empty
// <html><head></head><body></body></html> skeleton.
func Parse(htmlInput string) *html.Node {
	doc, err := html.Parse(strings.NewReader(htmlInput))
	if err != nil || doc == nil {
		doc, _ = html.Parse(strings.NewReader(""))
	}
	return doc
}

// ElementChildren returns n's direct children that are elements, in
// document order. Text, comment, and doctype children are skipped.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// PatternOf returns the ordered list of tag names of n's direct element
// children — its "pattern". A nil/empty result means "no element
// children".
func PatternOf(n *html.Node) []string {
	children := ElementChildren(n)
	if len(children) == 0 {
		return nil
	}
	pattern := make([]string, len(children))
	for i, c := range children {
		pattern[i] = c.Data
	}
	return pattern
}

// TagAtom is a convenience wrapper over golang.org/x/net/html/atom,
// letting callers compare against well-known tags without string literals
// scattered through the codebase.
func TagAtom(n *html.Node) atom.Atom {
	if n == nil {
		return 0
	}
	return n.DataAtom
}

// hasTag reports whether n is an element with the given tag name,
// comparing by atom when tag is one of the well-known HTML tags (the
// common case, and cheaper than a string compare) and falling back to
// n.Data for anything atom.Lookup doesn't recognize.
func hasTag(n *html.Node, tag string, tagAtom atom.Atom) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if tagAtom != 0 {
		return TagAtom(n) == tagAtom
	}
	return n.Data == tag
}

// FirstElementByTag returns the first element with the given tag name in
// document order under root (root included), or nil.
func FirstElementByTag(root *html.Node, tag string) *html.Node {
	if root == nil {
		return nil
	}
	tagAtom := atom.Lookup([]byte(tag))
	return firstElementByTag(root, tag, tagAtom)
}

func firstElementByTag(root *html.Node, tag string, tagAtom atom.Atom) *html.Node {
	if hasTag(root, tag, tagAtom) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElementByTag(c, tag, tagAtom); found != nil {
			return found
		}
	}
	return nil
}

// AllElementsByTag returns every element with the given tag name in
// document order under root (root included).
func AllElementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n == nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// HasAncestorTag reports whether n has an ancestor element (strictly above
// n) with the given tag name. It is used to compute the in_article flag;
// the only other upward walk in the module is siblings' depth count.
func HasAncestorTag(n *html.Node, tag string) bool {
	tagAtom := atom.Lookup([]byte(tag))
	for p := n.Parent; p != nil; p = p.Parent {
		if hasTag(p, tag, tagAtom) {
			return true
		}
	}
	return false
}

// AttrValue returns the value of attribute name on n, or "" if absent.
// Attribute names are matched case-insensitively since the tokenizer
// already lowercases them, but callers may pass either case.
func AttrValue(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	name = strings.ToLower(name)
	for _, a := range n.Attr {
		if strings.ToLower(a.Key) == name {
			return a.Val
		}
	}
	return ""
}

// TextContent returns the concatenated text of every TextNode descendant
// of n, in document order, without any whitespace normalization.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// ElementCount returns the number of element descendants of n (n itself
// excluded), used by the Main Locator to pick the largest <article>.
func ElementCount(n *html.Node) int {
	count := 0
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				count++
			}
			walk(c)
		}
	}
	walk(n)
	return count
}

// Body returns the document's <body> element, or the document root if no
// body is present (degenerate/non-HTML input).
func Body(doc *html.Node) *html.Node {
	if body := FirstElementByTag(doc, "body"); body != nil {
		return body
	}
	return doc
}

// Walk calls fn for every node in the subtree rooted at n, in document
// (pre-)order, including n itself.
func Walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// CloneSubtree returns a deep copy of n's subtree, detached from any
// parent. Used before destructive rewrites (the Cleaner) so a caller that
// wants the original tree undisturbed can keep it.
func CloneSubtree(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	clone := &html.Node{
		Type:     n.Type,
		DataAtom: n.DataAtom,
		Data:     n.Data,
		Attr:     append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		childClone := CloneSubtree(c)
		clone.AppendChild(childClone)
	}
	return clone
}

// RemoveAttrsExcept filters n's attribute list down to those whose key is
// in keep (a set, matched lowercase), preserving original order.
func RemoveAttrsExcept(n *html.Node, keep map[string]bool) {
	if n == nil || len(n.Attr) == 0 {
		return
	}
	out := make([]html.Attribute, 0, len(n.Attr))
	for _, a := range n.Attr {
		if keep[strings.ToLower(a.Key)] {
			out = append(out, a)
		}
	}
	n.Attr = out
}
