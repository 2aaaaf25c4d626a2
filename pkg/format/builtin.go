package format

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	gofmt "go/format"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// FormatGo formats Go source with the canonical gofmt rules.
func FormatGo(_ context.Context, content []byte, _ string) ([]byte, error) {
	out, err := gofmt.Source(content)
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w", err)
	}
	return out, nil
}

// FormatJSON validates and re-indents JSON with two-space indentation.
func FormatJSON(_ context.Context, content []byte, _ string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(content), "", "  "); err != nil {
		return nil, fmt.Errorf("indent json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// FormatYAML round-trips YAML through the parser, normalizing indentation
// and quoting while preserving comments.
func FormatYAML(_ context.Context, content []byte, _ string) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(content, &node); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if node.Kind == 0 {
		// Empty document.
		return content, nil
	}
	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("render yaml: %w", err)
	}
	return out, nil
}

// FormatMarkdown trims trailing whitespace outside code blocks and ensures
// a single trailing newline. Code block line ranges come from a goldmark
// parse so that content inside fences is never touched.
func FormatMarkdown(_ context.Context, content []byte, _ string) ([]byte, error) {
	protected := codeBlockRanges(content)

	lines := bytes.Split(content, []byte("\n"))
	out := make([][]byte, len(lines))

	offset := 0
	for i, line := range lines {
		if rangeOverlaps(protected, offset, offset+len(line)) {
			out[i] = line
		} else {
			out[i] = bytes.TrimRight(line, " \t")
		}
		offset += len(line) + 1
	}

	result := bytes.Join(out, []byte("\n"))
	result = bytes.TrimRight(result, "\n")
	if len(result) > 0 {
		result = append(result, '\n')
	}
	return result, nil
}

// codeBlockRanges returns the byte ranges of fenced and indented code
// block content.
func codeBlockRanges(content []byte) [][2]int {
	doc := goldmark.New().Parser().Parse(gmtext.NewReader(content))

	var ranges [][2]int
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			segments := n.Lines()
			for i := 0; i < segments.Len(); i++ {
				seg := segments.At(i)
				ranges = append(ranges, [2]int{seg.Start, seg.Stop})
			}
		}
		return ast.WalkContinue, nil
	})
	return ranges
}

// rangeOverlaps reports whether [start, end) intersects any range.
func rangeOverlaps(ranges [][2]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && end > r[0] {
			return true
		}
	}
	return false
}
