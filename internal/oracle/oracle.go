package oracle

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_selector.go github.com/raffleworks/tombola/internal/oracle Selector

// Selector produces one candidate winning number per call. It knows nothing
// about sold tickets or prior winners; callers filter candidates themselves.
type Selector interface {
	// Pick returns a candidate number in [1, max]
	Pick() int
}

// Config for the random selector
type Config struct {
	// Max is the top of the candidate range, defaults to 100
	Max int

	// Optional seed for testing
	Seed int64
}

// randomSelector implements Selector with math/rand
type randomSelector struct {
	max    int
	random *rand.Rand
}

// New creates a rand-backed selector
func New(cfg *Config) *randomSelector {
	max := 100
	var seed int64

	if cfg != nil {
		if cfg.Max > 0 {
			max = cfg.Max
		}
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &randomSelector{
		max:    max,
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick returns a candidate number in [1, max]
func (s *randomSelector) Pick() int {
	return s.random.Intn(s.max) + 1
}
