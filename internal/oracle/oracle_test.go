package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickStaysInRange(t *testing.T) {
	s := New(&Config{Max: 100, Seed: 42})

	for i := 0; i < 1000; i++ {
		n := s.Pick()
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 100)
	}
}

func TestDefaultRange(t *testing.T) {
	s := New(nil)
	assert.Equal(t, 100, s.max)
}

func TestSeededSelectorIsDeterministic(t *testing.T) {
	a := New(&Config{Max: 100, Seed: 7})
	b := New(&Config{Max: 100, Seed: 7})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}
