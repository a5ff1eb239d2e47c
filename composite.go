package julia

// CompositeMask multiplies mask into every plane of target.
//
// Each target sample s at (x, y) becomes uint8(s * m/255), truncated, where
// m is the mask sample at the same position. Only the overlap of the two
// images, min(widths) x min(heights), is touched; everything outside it is
// left as is. Images of different sizes are accepted without error so a
// mask can be reused across targets. A nil or empty argument does nothing.
func CompositeMask(mask *Image, target *ColorImage) {
	if mask.Empty() || target.Empty() {
		return
	}

	xMax := min(mask.width, target.width)
	yMax := min(mask.height, target.height)

	r, g, b := target.planes[Red], target.planes[Green], target.planes[Blue]
	for y := 0; y < yMax; y++ {
		mrow := mask.pix[y*mask.width : y*mask.width+xMax]
		off := y * target.width
		for x, m := range mrow {
			rate := float64(m) / maxLevel
			i := off + x
			r[i] = uint8(float64(r[i]) * rate)
			g[i] = uint8(float64(g[i]) * rate)
			b[i] = uint8(float64(b[i]) * rate)
		}
	}
}
