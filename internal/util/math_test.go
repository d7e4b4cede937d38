package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(-5, 0, 100))
	assert.Equal(t, 100, Clamp(150, 0, 100))
	assert.Equal(t, 42, Clamp(42, 0, 100))
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 25, Round(24.7))
	assert.Equal(t, 1, Round(0.5))
	assert.Equal(t, 0, Round(0.49))
	assert.Equal(t, 100, Round(100))
}
