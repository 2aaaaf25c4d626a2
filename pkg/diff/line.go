package diff

import "strings"

// LineKind indicates the type of a line in a diff.
type LineKind int

const (
	// LineContext is an unchanged line present on both sides.
	LineContext LineKind = iota

	// LineAdd is a line present only in the new text.
	LineAdd

	// LineRemove is a line present only in the old text.
	LineRemove
)

// LineEntry is one added or removed line. LineNumber is 1-based within the
// sequence the entry belongs to: the old text for removes, the new text
// for adds.
type LineEntry struct {
	Kind       LineKind
	LineNumber int
	Content    string
}

// lookaheadWindow caps how far ahead the classification heuristic searches
// for a resynchronization point. Changing it changes emitted entry order.
const lookaheadWindow = 3

// lineOp is one step of the diff walk, including context lines. The op
// stream feeds both LineEntry extraction and unified hunk grouping.
type lineOp struct {
	kind    LineKind
	content string
	oldLine int // 1-based line in the old text, 0 for adds
	newLine int // 1-based line in the new text, 0 for removes
}

// DiffLines compares two line sequences and returns the added and removed
// lines in the order the two-cursor walk emits them.
//
// When the cursors disagree, the walk looks ahead for the current new line
// within the next lines of the old text, and for the current old line within
// the upcoming new text. The old line is classified as removed only when the
// first lookahead lands within lookaheadWindow lines and the second found
// nothing closer; otherwise the new line is classified as added. This
// bounded, first-found tie-break is deliberate: it reproduces the ordering
// existing consumers assert on, at the cost of non-minimal output on
// ambiguous inputs.
func DiffLines(oldLines, newLines []string) []LineEntry {
	ops := diffOps(oldLines, newLines)

	var entries []LineEntry
	for _, op := range ops {
		switch op.kind {
		case LineAdd:
			entries = append(entries, LineEntry{Kind: LineAdd, LineNumber: op.newLine, Content: op.content})
		case LineRemove:
			entries = append(entries, LineEntry{Kind: LineRemove, LineNumber: op.oldLine, Content: op.content})
		}
	}
	return entries
}

// diffOps runs the two-cursor walk and returns the full op stream,
// context lines included.
func diffOps(oldLines, newLines []string) []lineOp {
	var ops []lineOp
	i, j := 0, 0

	for i < len(oldLines) || j < len(newLines) {
		switch {
		case i >= len(oldLines):
			ops = append(ops, lineOp{kind: LineAdd, content: newLines[j], newLine: j + 1})
			j++

		case j >= len(newLines):
			ops = append(ops, lineOp{kind: LineRemove, content: oldLines[i], oldLine: i + 1})
			i++

		case oldLines[i] == newLines[j]:
			ops = append(ops, lineOp{kind: LineContext, content: oldLines[i], oldLine: i + 1, newLine: j + 1})
			i++
			j++

		default:
			// Distance to the current new line ahead in the old text, and
			// to the current old line ahead in the new text.
			distInOld := distanceAhead(oldLines, i+1, newLines[j])
			distInNew := distanceAhead(newLines, j+1, oldLines[i])

			if distInOld > 0 && distInOld <= lookaheadWindow &&
				(distInNew <= 0 || distInOld <= distInNew) {
				ops = append(ops, lineOp{kind: LineRemove, content: oldLines[i], oldLine: i + 1})
				i++
			} else {
				ops = append(ops, lineOp{kind: LineAdd, content: newLines[j], newLine: j + 1})
				j++
			}
		}
	}

	return ops
}

// distanceAhead returns how many lines past from-1 the target first occurs,
// where 1 means lines[from] itself. Returns 0 if the target does not occur.
func distanceAhead(lines []string, from int, target string) int {
	for idx := from; idx < len(lines); idx++ {
		if lines[idx] == target {
			return idx - from + 1
		}
	}
	return 0
}

// SplitLines splits text into lines for diffing, dropping the empty
// trailing element produced by a terminal newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
