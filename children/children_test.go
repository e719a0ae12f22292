package children

import (
	"strings"
	"testing"

	"structhtml/clean"
	"structhtml/config"
	"structhtml/domtree"
)

func TestFilterKeepsOnlyItemsWithOutboundLinks(t *testing.T) {
	input := `<body><ul>
		<li><h2>One</h2><p>Has a link. <a href="/one">read more</a></p></li>
		<li><h2>Two</h2><p>No link in this one at all.</p></li>
		<li><h2>Three</h2><p>Also linked. <a href="/three">read more</a></p></li>
	</ul></body>`

	doc := domtree.Parse(input)
	cleanedDoc := clean.Node(config.DefaultPolicy(), domtree.Body(doc))

	kept := Filter(config.DefaultPolicy(), cleanedDoc)
	if len(kept) != 2 {
		t.Fatalf("expected 2 items with outbound links, got %d: %v", len(kept), kept)
	}
	for _, item := range kept {
		if !strings.Contains(item, "href=") {
			t.Errorf("kept item missing href: %s", item)
		}
	}
	if strings.Contains(strings.Join(kept, ""), "Two") {
		t.Error("expected the linkless item to be filtered out")
	}
}

func TestFilterRejectsEmptyHref(t *testing.T) {
	input := `<body><ul>
		<li><h2>One</h2><p>Anchor with no href. <a>click</a></p></li>
		<li><h2>Two</h2><p>Anchor with no href. <a>click</a></p></li>
		<li><h2>Three</h2><p>Anchor with no href. <a>click</a></p></li>
	</ul></body>`

	doc := domtree.Parse(input)
	cleanedDoc := clean.Node(config.DefaultPolicy(), domtree.Body(doc))

	kept := Filter(config.DefaultPolicy(), cleanedDoc)
	if len(kept) != 0 {
		t.Fatalf("expected no items to qualify without a non-empty href, got %d", len(kept))
	}
}

func TestFilterNoSiblingsYieldsNoItems(t *testing.T) {
	input := `<body><article><h1>Title</h1><p>Single paragraph, nothing repeats.</p></article></body>`

	doc := domtree.Parse(input)
	cleanedDoc := clean.Node(config.DefaultPolicy(), domtree.Body(doc))

	kept := Filter(config.DefaultPolicy(), cleanedDoc)
	if kept != nil {
		t.Fatalf("expected nil, got %v", kept)
	}
}
