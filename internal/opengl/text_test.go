package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterizeTextSize(t *testing.T) {
	img := rasterizeText("Light 1", 1)
	assert.Equal(t, 7*7, img.Bounds().Dx())
	assert.Equal(t, LineHeight(), img.Bounds().Dy())

	big := rasterizeText("Light 1", 2)
	assert.Equal(t, 2*img.Bounds().Dx(), big.Bounds().Dx())
	assert.Equal(t, 2*img.Bounds().Dy(), big.Bounds().Dy())
}

func TestRasterizeTextInk(t *testing.T) {
	img := rasterizeText("X", 1)
	inked := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			inked++
		}
	}
	assert.Positive(t, inked)

	assert.True(t, rasterizeText("", 1).Bounds().Empty())
}
