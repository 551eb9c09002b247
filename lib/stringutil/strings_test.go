package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	assert.False(t, Empty())
	assert.False(t, Empty("hello", "world"))
	assert.True(t, Empty("hello", ""))
	assert.True(t, Empty(""))
}
