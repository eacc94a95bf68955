// Package sprites prepares decoded images before they are handed to the GPU:
// chroma keying and resizing. It works on image.Image only.
package sprites

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ChromaKey returns a copy of src where every pixel matching key becomes
// fully transparent. All other pixels are made opaque.
func ChromaKey(src image.Image, key color.Color) *image.NRGBA {
	kr, kg, kb, _ := key.RGBA()
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			if r == kr && g == kg && bl == kb {
				continue
			}
			dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, color.NRGBA{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(bl >> 8),
				A: 0xff,
			})
		}
	}
	return dst
}

// Scale resizes src to w×h. Images already at that size are returned as is.
func Scale(src image.Image, w, h int) image.Image {
	b := src.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
