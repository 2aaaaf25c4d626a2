package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of unchanged lines shown around changes.
const contextLines = 3

// Unified is a unified diff between old and new text: an ordered list of
// hunks plus add/remove totals.
type Unified struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks in order.
	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines removed.
	Deletions int
}

// Hunk is a contiguous group of context, add, and remove lines.
type Hunk struct {
	// OldStart is the 1-based line where the hunk starts in the old text.
	OldStart int

	// OldCount is the number of old-text lines in the hunk.
	OldCount int

	// NewStart is the 1-based line where the hunk starts in the new text.
	NewStart int

	// NewCount is the number of new-text lines in the hunk.
	NewCount int

	// Lines are the hunk lines, without diff prefixes.
	Lines []HunkLine
}

// HunkLine is a single line within a hunk.
type HunkLine struct {
	Kind    LineKind
	Content string
}

// GenerateUnified produces a unified diff between old and new text.
// Returns nil if the texts are line-identical.
//
// Hunks are built around the classification the line-mode walk produces;
// the grouping here only adds context and headers, it never reorders or
// reclassifies entries.
func GenerateUnified(path, oldText, newText string) *Unified {
	oldLines := SplitLines(oldText)
	newLines := SplitLines(newText)

	ops := diffOps(oldLines, newLines)

	hunks := groupIntoHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	unified := &Unified{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdd:
				unified.Additions++
			case LineRemove:
				unified.Deletions++
			}
		}
	}
	return unified
}

// HasChanges returns true if the diff contains any changes.
func (u *Unified) HasChanges() bool {
	return u != nil && len(u.Hunks) > 0
}

// String renders the diff in unified format with ---/+++ headers.
func (u *Unified) String() string {
	if u == nil || len(u.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(u.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range u.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')

		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineContext:
				fmt.Fprintf(&builder, " %s\n", line.Content)
			case LineAdd:
				fmt.Fprintf(&builder, "+%s\n", line.Content)
			case LineRemove:
				fmt.Fprintf(&builder, "-%s\n", line.Content)
			}
		}
	}

	return builder.String()
}

// Header returns the @@ header line for the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OldStart, h.OldCount, h.NewStart, h.NewCount)
}

// groupIntoHunks groups the op stream into hunks with context lines.
// Change runs separated by more than contextLines*2 unchanged lines go
// into separate hunks.
func groupIntoHunks(ops []lineOp) []Hunk {
	if len(ops) == 0 {
		return nil
	}

	type changeRange struct {
		start, end int // indices into ops
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for opIdx, op := range ops {
		isChange := op.kind != LineContext
		if isChange && !inChange {
			rangeStart = opIdx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, opIdx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	if len(ranges) == 0 {
		return nil
	}

	var hunks []Hunk

	for rangeIdx := 0; rangeIdx < len(ranges); {
		// Merge ranges whose context windows would overlap.
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) {
			gap := ranges[mergeEnd].start - ranges[mergeEnd-1].end
			if gap > contextLines*2 {
				break
			}
			mergeEnd++
		}

		hunk := buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end)
		if len(hunk.Lines) > 0 {
			hunks = append(hunks, hunk)
		}

		rangeIdx = mergeEnd
	}

	return hunks
}

// buildHunk builds a single hunk from ops[changeStart:changeEnd] expanded
// with surrounding context.
func buildHunk(ops []lineOp, changeStart, changeEnd int) Hunk {
	start := changeStart - contextLines
	if start < 0 {
		start = 0
	}
	end := changeEnd + contextLines
	if end > len(ops) {
		end = len(ops)
	}

	hunk := Hunk{}

	// Start positions: count how many lines each side consumed before the hunk.
	oldStart, newStart := 1, 1
	for opIdx := 0; opIdx < start; opIdx++ {
		if ops[opIdx].kind != LineAdd {
			oldStart++
		}
		if ops[opIdx].kind != LineRemove {
			newStart++
		}
	}
	hunk.OldStart = oldStart
	hunk.NewStart = newStart

	for i := start; i < end; i++ {
		op := ops[i]
		hunk.Lines = append(hunk.Lines, HunkLine{Kind: op.kind, Content: op.content})

		switch op.kind {
		case LineContext:
			hunk.OldCount++
			hunk.NewCount++
		case LineRemove:
			hunk.OldCount++
		case LineAdd:
			hunk.NewCount++
		}
	}

	return hunk
}
