package julia

// Field fills a ColorImage with a base pattern before the mask is applied.
type Field interface {
	// Apply overwrites every pixel of img.
	Apply(img *ColorImage)
}

// Flat is a Field of one solid color.
type Flat struct {
	Color RGB
}

// Apply implements Field.
func (f Flat) Apply(img *ColorImage) {
	FillFlat(img, f.Color)
}

// DiagonalGradient is a Field that ramps from red at the top-left corner to
// blue at the bottom-right, with green held at zero.
type DiagonalGradient struct{}

// Apply implements Field.
func (DiagonalGradient) Apply(img *ColorImage) {
	FillDiagonalGradient(img)
}

// FillFlat sets every pixel of img to c.
func FillFlat(img *ColorImage, c RGB) {
	img.Fill(c)
}

// FillDiagonalGradient writes the diagonal ramp
//
//	R = 255 * (w+h-x-y) / (w+h)
//	G = 0
//	B = 255 * (x+y) / (w+h)
//
// using truncating integer division, so the banding is identical for any
// given size.
func FillDiagonalGradient(img *ColorImage) {
	if img.Empty() {
		return
	}
	w, h := img.width, img.height
	span := w + h

	r, g, b := img.planes[Red], img.planes[Green], img.planes[Blue]
	for y := 0; y < h; y++ {
		off := y * w
		for x := 0; x < w; x++ {
			i := off + x
			// #nosec G115 -- both quotients lie in [0, 255]
			r[i] = uint8(clamp(maxLevel*(span-x-y)/span, 0, maxLevel))
			g[i] = 0
			// #nosec G115 -- see above
			b[i] = uint8(clamp(maxLevel*(x+y)/span, 0, maxLevel))
		}
	}
}
