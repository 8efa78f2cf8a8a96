package compilation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Defaults(t *testing.T) {
	format := NewFormat()
	assert.True(t, format.IsCommandAsArray())
}

func TestFormat_FluentSetter(t *testing.T) {
	format := NewFormat().SetCommandAsArray(false)
	assert.False(t, format.IsCommandAsArray())

	same := format.SetCommandAsArray(true)
	assert.Same(t, format, same, "setter returns the same format for chaining")
	assert.True(t, format.IsCommandAsArray())
}
