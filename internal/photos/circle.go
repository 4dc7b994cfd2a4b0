package photos

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Circle turns an arbitrary photo into a size×size circular avatar,
// transparent outside the inscribed circle. The source's own alpha
// channel is not kept.
func Circle(src image.Image, size int) image.Image {
	b := src.Bounds()

	// Bound the cost of the crop and final resize for huge sources.
	if b.Dx() > 2*size || b.Dy() > 2*size {
		src = imaging.Fit(src, 2*size, 2*size, imaging.Lanczos)
		b = src.Bounds()
	}

	if b.Dx() != b.Dy() {
		side := b.Dx()
		if b.Dy() < side {
			side = b.Dy()
		}
		src = imaging.CropCenter(src, side, side)
	}

	resized := imaging.Resize(src, size, size, imaging.Lanczos)

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				out.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			c := resized.NRGBAAt(x, y)
			c.A = 0xff
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
