package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproachFactor(t *testing.T) {
	cases := []struct {
		name     string
		rate, dt float64
		want     float64
	}{
		{"small_step", 10, 0.01, 0.1},
		{"clamped_high", 10, 1, 1},
		{"negative_dt", 10, -1, 0},
		{"nan", math.NaN(), 0.1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, ApproachFactor(c.rate, c.dt), 1e-12)
		})
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
}
