// Package mainloc implements the Main Locator: finding the HTML
// document's primary content region.
//
// The locator runs on the raw parsed document, before the Cleaner has
// run: excluding navigational subtrees rooted at nav, header, footer,
// aside only makes sense on a tree that still has them; the Cleaner
// removes those tags entirely, and is applied only to whichever region
// wins.
package mainloc

import (
	"golang.org/x/net/html"

	"structhtml/domtree"
)

var excludedAncestors = []string{"nav", "header", "footer", "aside"}

// fallbackTags deliberately omits "body": body is a superset container
// of every div/section on the page, so including it here would make it
// win the text-byte comparison on virtually every document and defeat
// the heuristic. Body remains the final fallback in Locate instead.
var fallbackTags = []string{"div", "section"}

// Locate returns the element holding doc's primary content region, in
// this order: first <main>, else the largest <article>, else the
// div/section with the most text bytes (excluding subtrees rooted at
// nav/header/footer/aside), else the body itself.
func Locate(doc *html.Node) *html.Node {
	if main := domtree.FirstElementByTag(doc, "main"); main != nil {
		return main
	}

	if article := largestArticle(doc); article != nil {
		return article
	}

	if candidate := mostTextFallback(doc); candidate != nil {
		return candidate
	}

	return domtree.Body(doc)
}

// largestArticle returns the <article> with the most descendant
// elements, earliest in document order on ties.
func largestArticle(doc *html.Node) *html.Node {
	articles := domtree.AllElementsByTag(doc, "article")
	var best *html.Node
	bestCount := -1
	for _, a := range articles {
		count := domtree.ElementCount(a)
		if count > bestCount {
			best = a
			bestCount = count
		}
	}
	return best
}

// mostTextFallback returns the div/section with the most text
// bytes in its subtree, excluding text under a nav/header/footer/aside
// descendant, earliest in document order on ties.
func mostTextFallback(doc *html.Node) *html.Node {
	var best *html.Node
	bestBytes := -1

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isFallbackTag(n.Data) {
			bytes := len(textExcludingNav(n))
			if bytes > bestBytes {
				best = n
				bestBytes = bytes
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return best
}

func isFallbackTag(tag string) bool {
	for _, t := range fallbackTags {
		if tag == t {
			return true
		}
	}
	return false
}

func isExcludedTag(tag string) bool {
	for _, t := range excludedAncestors {
		if tag == t {
			return true
		}
	}
	return false
}

// textExcludingNav returns n's text content, skipping subtrees rooted at
// nav/header/footer/aside.
func textExcludingNav(n *html.Node) string {
	var sb []byte
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isExcludedTag(n.Data) {
			return
		}
		if n.Type == html.TextNode {
			sb = append(sb, n.Data...)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return string(sb)
}
