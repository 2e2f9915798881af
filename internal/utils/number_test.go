package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRideNumber(t *testing.T) {
	n := GenerateRideNumber()
	assert.GreaterOrEqual(t, len(n), 10)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[GenerateRideNumber()] = true
	}
	// Random suffix keeps same-millisecond collisions rare.
	assert.Greater(t, len(seen), 50)
}
