package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBScaledInUnitRange(t *testing.T) {
	for v := 0; v <= 255; v++ {
		c := RGB{uint8(v), uint8(255 - v), uint8(v / 2)}
		for i, s := range c.Scaled() {
			assert.GreaterOrEqual(t, s, float32(0), "channel %d of %v", i, c)
			assert.LessOrEqual(t, s, float32(1), "channel %d of %v", i, c)
		}
	}
	assert.Equal(t, float32(1), RGB{255, 255, 255}.Scaled().X())
}

func TestRGBAddSaturates(t *testing.T) {
	c := RGB{250, 5, 100}
	assert.Equal(t, RGB{255, 5, 100}, c.Add(0, 10))
	assert.Equal(t, RGB{250, 0, 100}, c.Add(1, -10))
	assert.Equal(t, RGB{250, 5, 110}, c.Add(2, 10))
	assert.Equal(t, RGB{250, 5, 100}, c, "Add returns a copy")
}

func TestColorWithAlpha(t *testing.T) {
	assert.Equal(t, Color{1, 1, 1, 0.5}, ColorWhite.WithAlpha(0.5))
}
