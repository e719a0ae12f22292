// Package explain is a read-only diagnostic over the Sibling Detector:
// it re-runs Phases 1-3 and renders every surviving candidate's Phase 4
// ranking tuple as a table, with the winner marked, so the deterministic
// tie-break can be audited without instrumenting the detector itself.
// It cannot influence siblings.Detect's output.
//
// Each row's item count is cross-checked against an independent goquery
// child count over the candidate's parent, built from an inspectable
// node tree, so a bug in the hand-rolled traversal would show up as a
// mismatched column rather than silently agreeing with itself.
package explain

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"structhtml/clean"
	"structhtml/config"
	"structhtml/domtree"
	"structhtml/siblings"
)

// Row is one candidate's diagnostic record.
type Row struct {
	Winner          bool
	Family          siblings.Family
	InArticle       bool
	ItemCount       int
	PatternLen      int
	Depth           int
	Pos             int
	ParentTag       string
	GoqueryChildren int // independent cross-check of ParentTag's element-child count
}

// Rows runs Phases 1-3 of the Sibling Detector over htmlInput and
// returns a diagnostic Row per surviving candidate, best-first, with
// Rows()[0].Winner == true when any candidate survives.
func Rows(policy config.Policy, htmlInput string) []Row {
	doc := domtree.Parse(htmlInput)
	cleanedDoc := clean.Node(policy, domtree.Body(doc))

	candidates := siblings.Candidates(policy, cleanedDoc)
	rows := make([]Row, len(candidates))
	for i, c := range candidates {
		rows[i] = Row{
			Winner:          i == 0,
			Family:          c.Family,
			InArticle:       c.InArticle,
			ItemCount:       c.ItemCount(),
			PatternLen:      c.PatternLen,
			Depth:           c.Depth,
			Pos:             c.Pos,
			ParentTag:       c.Parent.Data,
			GoqueryChildren: goqueryChildElementCount(c.Parent),
		}
	}
	return rows
}

func goqueryChildElementCount(parent *html.Node) int {
	sel := goquery.NewDocumentFromNode(parent).Selection
	return sel.Children().Length()
}

// Table renders Rows as a fixed-width ASCII table, one row per
// candidate, winner marked with "*".
func Table(policy config.Policy, htmlInput string) string {
	rows := Rows(policy, htmlInput)
	if len(rows) == 0 {
		return "(no surviving candidates)\n"
	}

	headers := []string{"", "parent", "family", "in_article", "items", "pattern_len", "depth", "pos", "goquery_children"}
	records := make([][]string, len(rows))
	for i, r := range rows {
		mark := ""
		if r.Winner {
			mark = "*"
		}
		records[i] = []string{
			mark,
			r.ParentTag,
			string(r.Family),
			fmt.Sprintf("%t", r.InArticle),
			fmt.Sprintf("%d", r.ItemCount),
			fmt.Sprintf("%d", r.PatternLen),
			fmt.Sprintf("%d", r.Depth),
			fmt.Sprintf("%d", r.Pos),
			fmt.Sprintf("%d", r.GoqueryChildren),
		}
	}

	return renderTable(headers, records)
}

// renderTable lays out headers and rows as left-aligned, space-padded
// columns.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString(padRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
