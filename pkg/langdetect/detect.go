// Package langdetect maps file paths and content to a language hint for
// the formatter registry. It uses go-enry for shebang and content-based
// detection when the extension alone is not decisive.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// LangText is the hint returned when detection fails.
const LangText = "text"

// extHints maps the extensions surgedit most often edits to their hint.
// Checked before enry because some of these are ambiguous to it (".md" is
// also a GCC machine description).
//
//nolint:gochecknoglobals // Read-only lookup table.
var extHints = map[string]string{
	".go":       "go",
	".md":       "markdown",
	".markdown": "markdown",
	".json":     "json",
	".yaml":     "yaml",
	".yml":      "yaml",
	".js":       "javascript",
	".jsx":      "javascript",
	".ts":       "typescript",
	".tsx":      "typescript",
	".py":       "python",
	".rs":       "rust",
	".sh":       "bash",
	".sql":      "sql",
	".html":     "html",
	".css":      "css",
	".txt":      LangText,
}

// Hint returns a lowercase language hint for a file. Strategy order:
// known extension, shebang, then enry's combined detection. Returns
// LangText when nothing is decisive.
func Hint(path string, content []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extHints[ext]; ok {
		return lang
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" && lang != enry.OtherLanguage {
		return normalize(lang)
	}

	return LangText
}

// normalize converts enry language names to surgedit hints.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
