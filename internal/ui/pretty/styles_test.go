package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	colored := NewStyles(true)
	assert.NotNil(t, colored)

	plain := NewStyles(false)
	assert.NotNil(t, plain)
	// Plain styles must render text unchanged.
	assert.Equal(t, "hello", plain.Error.Render("hello"))
	assert.Equal(t, "hello", plain.DiffAdd.Render("hello"))
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a TTY.
	assert.False(t, IsColorEnabled("auto", &buf))
}
