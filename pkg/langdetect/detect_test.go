package langdetect_test

import (
	"testing"

	"github.com/yaklabco/surgedit/pkg/langdetect"
)

func TestHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{name: "go extension", path: "main.go", content: "package main\n", want: "go"},
		{name: "markdown extension", path: "README.md", content: "# Title\n", want: "markdown"},
		{name: "json extension", path: "data.json", content: `{"a":1}`, want: "json"},
		{name: "yaml extension", path: "config.yml", content: "a: 1\n", want: "yaml"},
		{name: "extension wins over content", path: "notes.txt", content: "package main\n", want: "text"},
		{name: "shebang fallback", path: "runme", content: "#!/bin/bash\necho hi\n", want: "bash"},
		{name: "nothing decisive", path: "LICENSE.xyzzy", content: "all rights reserved", want: "text"},
		{name: "case-insensitive extension", path: "MAIN.GO", content: "", want: "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Hint(tt.path, []byte(tt.content))
			if got != tt.want {
				t.Errorf("Hint(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
