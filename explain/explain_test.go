package explain

import (
	"strings"
	"testing"

	"structhtml/config"
)

func TestRowsMarksWinnerFirst(t *testing.T) {
	input := `<body><ul>
		<li><a href="/1">one</a><span>x</span></li>
		<li><a href="/2">two</a><span>y</span></li>
		<li><a href="/3">three</a><span>z</span></li>
	</ul></body>`

	rows := Rows(config.DefaultPolicy(), input)
	if len(rows) == 0 {
		t.Fatal("expected at least one candidate row")
	}
	if !rows[0].Winner {
		t.Error("expected the first row to be marked as winner")
	}
	for _, r := range rows[1:] {
		if r.Winner {
			t.Error("expected only the first row to be marked as winner")
		}
	}
}

func TestRowsGoqueryCrossCheckAgreesWithItemCount(t *testing.T) {
	input := `<body><ul>
		<li><a href="/1">one</a><span>x</span></li>
		<li><a href="/2">two</a><span>y</span></li>
		<li><a href="/3">three</a><span>z</span></li>
	</ul></body>`

	rows := Rows(config.DefaultPolicy(), input)
	if len(rows) == 0 {
		t.Fatal("expected at least one candidate row")
	}
	winner := rows[0]
	if winner.GoqueryChildren != winner.ItemCount {
		t.Errorf("goquery cross-check disagrees with traversal: goquery=%d items=%d", winner.GoqueryChildren, winner.ItemCount)
	}
}

func TestTableNoCandidates(t *testing.T) {
	input := `<body><article><h1>Title</h1><p>One paragraph, no repetition.</p></article></body>`
	out := Table(config.DefaultPolicy(), input)
	if !strings.Contains(out, "no surviving candidates") {
		t.Errorf("expected the no-candidates message, got: %s", out)
	}
}

func TestTableRendersHeaderAndWinnerMarker(t *testing.T) {
	input := `<body><ul>
		<li><a href="/1">one</a><span>x</span></li>
		<li><a href="/2">two</a><span>y</span></li>
		<li><a href="/3">three</a><span>z</span></li>
	</ul></body>`

	out := Table(config.DefaultPolicy(), input)
	if !strings.Contains(out, "parent") || !strings.Contains(out, "family") {
		t.Errorf("expected table headers in output:\n%s", out)
	}
	if !strings.Contains(out, "*") {
		t.Errorf("expected a winner marker in output:\n%s", out)
	}
}
