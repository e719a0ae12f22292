// Package siblings implements the Sibling Detector, the algorithmic
// heart of the module. It runs a depth-first traversal over
// an already-cleaned DOM, enumerates candidate sibling groups by two
// pattern families, filters semantically trivial candidates, and picks
// a single winner by a strict, deterministic tie-break.
package siblings

import (
	"golang.org/x/net/html"

	"structhtml/config"
	"structhtml/domtree"
)

// Family names the pattern family a Candidate was generated by.
type Family string

const (
	FamilyPrefix   Family = "prefix"   // single-element common-prefix (phase 2a)
	FamilySequence Family = "sequence" // multi-element sequence tiling (phase 2b)
)

// Candidate is one surviving sibling group, carrying everything Phase 4's
// selection and the explain package's diagnostics need.
type Candidate struct {
	Parent     *html.Node
	Family     Family
	InArticle  bool
	PatternLen int
	Items      [][]*html.Node // each item is one or more consecutive elements
	Depth      int            // parent's depth in the tree (deeper = more specific)
	Pos        int            // parent's document-order visitation index
}

// ItemCount is the len(Items) convenience used throughout Phase 4.
func (c Candidate) ItemCount() int { return len(c.Items) }

// Detect runs Phases 1-4 and returns the winning group's items, each as
// a slice of the elements making up that item (concatenate their
// rendered HTML to get the item's output). Returns nil if no candidate
// survives.
func Detect(policy config.Policy, cleanedDoc *html.Node) [][]*html.Node {
	candidates := Candidates(policy, cleanedDoc)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0].Items
}

// Candidates runs Phases 1-3 (traversal, enumeration, filtering) and
// returns every surviving candidate across the whole document, sorted
// best-first by Phase 4's tie-break. Candidates()[0] is the winner
// Detect returns; the rest are exposed for the explain package.
func Candidates(policy config.Policy, cleanedDoc *html.Node) []Candidate {
	var all []Candidate
	pos := 0

	domtree.Walk(cleanedDoc, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		pos++
		children := nonLeafChildren(n)
		if len(children) < 2 {
			return
		}

		depth := depthOf(n)
		inArticle := domtree.HasAncestorTag(n, "article") || n.Data == "article"

		for _, cand := range prefixCandidates(children) {
			cand.Parent = n
			cand.InArticle = inArticle
			cand.Depth = depth
			cand.Pos = pos
			if keep(cand) {
				all = append(all, cand)
			}
		}
		for _, cand := range sequenceCandidates(children, policy.MaxPatternLength) {
			cand.Parent = n
			cand.InArticle = inArticle
			cand.Depth = depth
			cand.Pos = pos
			if keep(cand) {
				all = append(all, cand)
			}
		}
	})

	rank(all)
	return all
}

// nonLeafChildren returns n's element children that themselves have at
// least one element child, dropping plain void/leaf spacers like <br>
// from the sequence entirely. A leaf element can never satisfy either
// family's pattern-length requirement on its own (its child pattern is
// empty), so leaving it in `C` only serves to break an otherwise
// contiguous run of real items around it, since phase 2(b)'s tiling
// search treats a single gap as breaking the run.
func nonLeafChildren(n *html.Node) []*html.Node {
	all := domtree.ElementChildren(n)
	out := make([]*html.Node, 0, len(all))
	for _, c := range all {
		if len(domtree.ElementChildren(c)) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func depthOf(n *html.Node) int {
	depth := 0
	for p := n.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// prefixCandidates implements phase 2(a): for every maximal run of
// >=2 consecutive same-tag elements, take the longest common prefix of
// their child patterns; accept iff that prefix has length >= 2.
func prefixCandidates(children []*html.Node) []Candidate {
	var out []Candidate

	i := 0
	for i < len(children) {
		j := i + 1
		for j < len(children) && children[j].Data == children[i].Data {
			j++
		}
		run := children[i:j]
		if len(run) >= 2 {
			prefix := commonPrefixLen(run)
			if prefix >= 2 {
				items := make([][]*html.Node, len(run))
				for k, el := range run {
					items[k] = []*html.Node{el}
				}
				out = append(out, Candidate{
					Family:     FamilyPrefix,
					PatternLen: prefix,
					Items:      items,
				})
			}
		}
		i = j
	}

	return out
}

// commonPrefixLen returns the length of the longest common prefix of the
// child patterns of every element in run.
func commonPrefixLen(run []*html.Node) int {
	patterns := make([][]string, len(run))
	for i, el := range run {
		patterns[i] = domtree.PatternOf(el)
	}

	minLen := len(patterns[0])
	for _, p := range patterns[1:] {
		if len(p) < minLen {
			minLen = len(p)
		}
	}

	for pos := 0; pos < minLen; pos++ {
		tag := patterns[0][pos]
		for _, p := range patterns[1:] {
			if p[pos] != tag {
				return pos
			}
		}
	}
	return minLen
}

// sequenceCandidates implements phase 2(b): for each pattern length
// L from 2 up to the policy cap, find the longest run of consecutive,
// non-overlapping repetitions of an L-gram of tag names, where
// corresponding elements across repetitions additionally agree on the
// first element of their own child-pattern common prefix.
func sequenceCandidates(children []*html.Node, maxL int) []Candidate {
	n := len(children)
	cap := n / 2
	if maxL > 0 && maxL < cap {
		cap = maxL
	}

	var out []Candidate
	for l := 2; l <= cap; l++ {
		start, reps := bestRun(children, l)
		if reps < 2 {
			continue
		}
		items := make([][]*html.Node, reps)
		for k := 0; k < reps; k++ {
			s := start + k*l
			items[k] = append([]*html.Node(nil), children[s:s+l]...)
		}
		out = append(out, Candidate{
			Family:     FamilySequence,
			PatternLen: l,
			Items:      items,
		})
	}
	return out
}

// bestRun finds, for a fixed gram length l, the start position whose
// repeating run is longest (most repetitions), earliest start breaking
// ties. k counts confirmed repetitions: it starts at 1 for the base
// window itself and is incremented once per additional window that
// matches, so it is already the total repetition count when the loop
// stops — it must not be off-by-one'd on return.
func bestRun(children []*html.Node, l int) (start, reps int) {
	n := len(children)
	bestReps := 0
	bestStart := -1

	for s := 0; s+2*l <= n; s++ {
		base := children[s : s+l]
		k := 1
		for s+(k+1)*l <= n {
			window := children[s+k*l : s+(k+1)*l]
			if !windowMatches(base, window) {
				break
			}
			k++
		}
		if k > bestReps {
			bestReps = k
			bestStart = s
		}
	}

	return bestStart, bestReps
}

// windowMatches checks base and window agree tag-by-tag, and that each
// corresponding element pair's child patterns share a common prefix of
// length >= 1.
func windowMatches(base, window []*html.Node) bool {
	for i := range base {
		if base[i].Data != window[i].Data {
			return false
		}
		p1 := domtree.PatternOf(base[i])
		p2 := domtree.PatternOf(window[i])
		if commonPrefixOf(p1, p2) < 1 {
			return false
		}
	}
	return true
}

func commonPrefixOf(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// keep implements phase 3: drop candidates with zero pattern length
// (already excluded by construction above, kept here for clarity/
// defense-in-depth), candidates whose items have no element
// grandchildren, and candidates whose items carry no text at all.
func keep(c Candidate) bool {
	if len(c.Items) < 2 || c.PatternLen == 0 {
		return false
	}
	if !allItemsHaveElementGrandchildren(c.Items) {
		return false
	}
	if allItemsTextless(c.Items) {
		return false
	}
	return true
}

// allItemsHaveElementGrandchildren reports whether every item has at
// least one element child of its own. Items are the candidate's
// parent's direct children, so an item's children are the parent's
// grandchildren in tree terms; a flat, childless repeater like <br/> or
// <i>text</i> has none and the whole candidate is dropped.
func allItemsHaveElementGrandchildren(items [][]*html.Node) bool {
	for _, item := range items {
		has := false
		for _, el := range item {
			if len(domtree.ElementChildren(el)) > 0 {
				has = true
				break
			}
		}
		if !has {
			return false
		}
	}
	return true
}

// allItemsTextless reports whether every item, rendered to text, is
// empty — the "all text-only" clause read as "contentless", since items
// are always elements (never bare text nodes) by construction.
func allItemsTextless(items [][]*html.Node) bool {
	for _, item := range items {
		for _, el := range item {
			if len(trimmedText(el)) > 0 {
				return false
			}
		}
	}
	return true
}

func trimmedText(n *html.Node) string {
	text := domtree.TextContent(n)
	start, end := 0, len(text)
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return text[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

// rank sorts candidates by phase 4's exact selection order, best
// first: in_article (true first), item_count (larger first), pattern_len
// (larger first), depth (deeper/larger first), then source position
// (earlier/smaller first).
func rank(all []Candidate) {
	less := func(i, j int) bool { return better(all[i], all[j]) }
	insertionSort(all, less)
}

func better(a, b Candidate) bool {
	if a.InArticle != b.InArticle {
		return a.InArticle
	}
	if a.ItemCount() != b.ItemCount() {
		return a.ItemCount() > b.ItemCount()
	}
	if a.PatternLen != b.PatternLen {
		return a.PatternLen > b.PatternLen
	}
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.Pos < b.Pos
}

// insertionSort is a small stable sort so candidate ordering depends
// only on `better`, never on sort.Slice's unspecified tie-breaking.
func insertionSort(all []Candidate, less func(i, j int) bool) {
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
}
