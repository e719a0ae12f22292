package clean

import (
	"strings"

	"golang.org/x/net/html"
)

// Render serializes n (an element, text, or fragment root) to HTML
// with a stable output contract: lowercase tag/attribute names,
// attributes in original order, self-closed void elements, and
// HTML-escaped text/attribute values. Comments and doctypes are not
// expected to still be present (the Cleaner removes them) but are
// skipped defensively if found.
func Render(n *html.Node) string {
	var sb strings.Builder
	renderNode(&sb, n)
	return sb.String()
}

// RenderAll concatenates the serialized HTML of each node in ns, in
// order, with no separator — the concatenation a sibling group's item
// range requires.
func RenderAll(ns []*html.Node) string {
	var sb strings.Builder
	for _, n := range ns {
		renderNode(&sb, n)
	}
	return sb.String()
}

func renderNode(sb *strings.Builder, n *html.Node) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		sb.WriteString(escapeText(n.Data))
	case html.ElementNode:
		renderElement(sb, n)
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(sb, c)
		}
	default:
		// comments/doctypes: dropped by the Cleaner; ignored if still present.
	}
}

func renderElement(sb *strings.Builder, n *html.Node) {
	tag := strings.ToLower(n.Data)

	sb.WriteByte('<')
	sb.WriteString(tag)
	for _, a := range n.Attr {
		sb.WriteByte(' ')
		sb.WriteString(strings.ToLower(a.Key))
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(a.Val))
		sb.WriteByte('"')
	}

	if voidTags[tag] {
		sb.WriteString(" />")
		return
	}

	sb.WriteByte('>')
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(sb, c)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteByte('>')
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
