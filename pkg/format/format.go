// Package format provides the pluggable post-edit formatting capability.
// Formatters are selected by file extension and receive a language hint;
// a failing or missing formatter never blocks a write, it only means the
// content ships unformatted.
package format

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/surgedit/pkg/langdetect"
)

// Func formats content. languageHint names the detected language so one
// function can serve several extensions.
type Func func(ctx context.Context, content []byte, languageHint string) ([]byte, error)

// Registry selects formatters by lowercase file extension (with dot).
type Registry struct {
	byExt map[string]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Func)}
}

// DefaultRegistry returns a registry with the built-in formatters for Go,
// JSON, YAML, and Markdown.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(".go", FormatGo)
	r.Register(".json", FormatJSON)
	r.Register(".yaml", FormatYAML)
	r.Register(".yml", FormatYAML)
	r.Register(".md", FormatMarkdown)
	r.Register(".markdown", FormatMarkdown)
	return r
}

// Register binds a formatter to an extension, replacing any previous one.
func (r *Registry) Register(ext string, fn Func) {
	r.byExt[strings.ToLower(ext)] = fn
}

// langExt maps language hints to the extension a formatter is registered
// under, so files whose extension is unknown still pick up a formatter
// from content-based detection.
//
//nolint:gochecknoglobals // Read-only lookup table.
var langExt = map[string]string{
	"go":       ".go",
	"json":     ".json",
	"yaml":     ".yaml",
	"markdown": ".md",
	"bash":     ".sh",
}

// Format runs the formatter for the path. Selection is by extension
// first; when no formatter is registered for the extension, the
// content-based language hint is consulted instead. The bool reports
// whether a formatter ran and succeeded. A missing formatter is
// (content, false, nil); a failing formatter returns the original
// content with the error so the caller can degrade gracefully.
func (r *Registry) Format(ctx context.Context, path string, content []byte) ([]byte, bool, error) {
	hint := langdetect.Hint(path, content)

	fn, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		if ext, known := langExt[hint]; known {
			fn, ok = r.byExt[ext]
		}
	}
	if !ok {
		return content, false, nil
	}

	formatted, err := fn(ctx, content, hint)
	if err != nil {
		return content, false, fmt.Errorf("format %s: %w", path, err)
	}
	return formatted, true, nil
}
