package sprites

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromaKey(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.White)
	src.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(0, 1, color.RGBA{R: 254, G: 255, B: 255, A: 255})
	src.Set(1, 1, color.White)

	dst := ChromaKey(src, color.White)

	assert.Equal(t, uint8(0), dst.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), dst.NRGBAAt(1, 1).A)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, dst.NRGBAAt(1, 0))
	assert.Equal(t, uint8(255), dst.NRGBAAt(0, 1).A)
}

func TestChromaKeyOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(6, 5, color.Black)
	dst := ChromaKey(src, color.White)
	assert.Equal(t, image.Rect(0, 0, 2, 1), dst.Bounds())
	assert.Equal(t, uint8(255), dst.NRGBAAt(1, 0).A)
}

func TestScale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 4))
	assert.Same(t, src, Scale(src, 8, 4))
	assert.Same(t, src, Scale(src, 0, 4))

	out := Scale(src, 16, 2)
	assert.Equal(t, image.Rect(0, 0, 16, 2), out.Bounds())
}
