// Package diff provides the two diff renderers used to describe edits: a
// character-mode prefix/suffix collapse for single-span changes, and a
// line-mode diff with unified output.
//
// Neither renderer computes a minimal edit script. The character diff is a
// structural description of what changed around shared edges; the line diff
// uses a bounded lookahead heuristic whose exact entry ordering downstream
// consumers depend on. Do not swap either for an LCS/Myers implementation.
package diff

// CharDiff describes the difference between two strings as the longest
// common prefix, the longest common suffix, and the removed/added middle
// spans between them. Prefix and suffix are computed independently, but the
// suffix scan never re-consumes bytes already claimed by the prefix.
type CharDiff struct {
	CommonPrefix string
	CommonSuffix string

	// Removed is the middle span present only in the old string.
	Removed string

	// Added is the middle span present only in the new string.
	Added string
}

// DiffChars computes the character diff between old and new.
//
// Round-trip invariant: CommonPrefix + Removed + CommonSuffix == old and
// CommonPrefix + Added + CommonSuffix == new.
func DiffChars(oldStr, newStr string) CharDiff {
	limit := len(oldStr)
	if len(newStr) < limit {
		limit = len(newStr)
	}

	// Longest common prefix.
	prefix := 0
	for prefix < limit && oldStr[prefix] == newStr[prefix] {
		prefix++
	}

	// Longest common suffix over the bytes the prefix did not claim.
	suffix := 0
	for suffix < limit-prefix && oldStr[len(oldStr)-1-suffix] == newStr[len(newStr)-1-suffix] {
		suffix++
	}

	return CharDiff{
		CommonPrefix: oldStr[:prefix],
		CommonSuffix: oldStr[len(oldStr)-suffix:],
		Removed:      oldStr[prefix : len(oldStr)-suffix],
		Added:        newStr[prefix : len(newStr)-suffix],
	}
}

// ChangeMagnitude returns the length of the larger middle span.
// A zero magnitude means the inputs were identical.
func (d CharDiff) ChangeMagnitude() int {
	if len(d.Removed) > len(d.Added) {
		return len(d.Removed)
	}
	return len(d.Added)
}

// Changed reports whether the inputs differed at all.
func (d CharDiff) Changed() bool {
	return len(d.Removed) > 0 || len(d.Added) > 0
}

// String renders the diff as prefix{-removed-}{+added+}suffix.
func (d CharDiff) String() string {
	return d.CommonPrefix + "{-" + d.Removed + "-}" + "{+" + d.Added + "+}" + d.CommonSuffix
}
