package julia

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/julia/bitmap"
	"github.com/gogpu/julia/internal/pool"
)

// Channel selects one plane of a ColorImage.
type Channel int

// Color channels.
const (
	Red Channel = iota
	Green
	Blue
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// ColorImage is a planar RGB image: three independent 8-bit planes of the
// same size.
//
// The planes are owned together. NewColorImage either returns all three or
// none, and Release frees all three at once; there is no way to free a
// single plane of a live image.
type ColorImage struct {
	width  int
	height int
	planes [3][]uint8
}

// NewColorImage allocates a zeroed width x height planar image.
//
// If any of the three planes cannot be allocated, the planes already
// obtained are returned to the pool and the error wraps ErrAllocation.
func NewColorImage(width, height int) (*ColorImage, error) {
	return newColorImage(width, height, DefaultMaxPixels)
}

func newColorImage(width, height, limit int) (*ColorImage, error) {
	img := &ColorImage{width: width, height: height}
	for ch := range img.planes {
		pix, err := allocPlane(width, height, limit)
		if err != nil {
			for _, p := range img.planes[:ch] {
				pool.Default.Put(p)
			}
			return nil, fmt.Errorf("plane %v: %w", Channel(ch), err)
		}
		img.planes[ch] = pix
	}
	return img, nil
}

// Width returns the image width, or 0 for an empty image.
func (img *ColorImage) Width() int {
	if img.Empty() {
		return 0
	}
	return img.width
}

// Height returns the image height, or 0 for an empty image.
func (img *ColorImage) Height() int {
	if img.Empty() {
		return 0
	}
	return img.height
}

// Bounds returns the image dimensions as an image.Rectangle.
func (img *ColorImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// Empty reports whether the image has been released or never allocated.
func (img *ColorImage) Empty() bool {
	return img == nil || img.width == 0 || img.planes[Red] == nil
}

// Plane returns the samples of one channel in row-major order.
// The slice must not be used after Release.
func (img *ColorImage) Plane(ch Channel) []uint8 {
	if img.Empty() || ch < Red || ch > Blue {
		return nil
	}
	return img.planes[ch]
}

// At returns the color at (x, y), or Black outside the image.
func (img *ColorImage) At(x, y int) RGB {
	if img.Empty() || x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Black
	}
	i := y*img.width + x
	return RGB{R: img.planes[Red][i], G: img.planes[Green][i], B: img.planes[Blue][i]}
}

// Set sets the color at (x, y). Coordinates outside the image are ignored.
func (img *ColorImage) Set(x, y int, c RGB) {
	if img.Empty() || x < 0 || x >= img.width || y < 0 || y >= img.height {
		return
	}
	i := y*img.width + x
	img.planes[Red][i] = c.R
	img.planes[Green][i] = c.G
	img.planes[Blue][i] = c.B
}

// Fill sets every pixel to c: each plane receives its own component.
func (img *ColorImage) Fill(c RGB) {
	if img.Empty() {
		return
	}
	for ch, v := range [3]uint8{c.R, c.G, c.B} {
		p := img.planes[ch]
		for i := range p {
			p[i] = v
		}
	}
}

// Release returns all three planes to the pool and marks the image empty.
// Releasing an empty or nil image does nothing.
func (img *ColorImage) Release() {
	if img.Empty() {
		return
	}
	for ch, p := range img.planes {
		pool.Default.Put(p)
		img.planes[ch] = nil
	}
	img.width = 0
	img.height = 0
}

// ToImage interleaves the planes into an opaque *image.RGBA.
func (img *ColorImage) ToImage() *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	if img.Empty() {
		return out
	}
	r, g, b := img.planes[Red], img.planes[Green], img.planes[Blue]
	for i := range r {
		out.Pix[i*4+0] = r[i]
		out.Pix[i*4+1] = g[i]
		out.Pix[i*4+2] = b[i]
		out.Pix[i*4+3] = 255
	}
	return out
}

// bitmapPlanes exposes the planes to the bitmap encoder.
func (img *ColorImage) bitmapPlanes() (r, g, b bitmap.Plane) {
	mk := func(ch Channel) bitmap.Plane {
		return bitmap.Plane{Pix: img.Plane(ch), Width: img.Width(), Height: img.Height()}
	}
	return mk(Red), mk(Green), mk(Blue)
}

// SaveBMP writes the image to path as an uncompressed 24-bit bitmap.
// A partially written file is removed when encoding fails.
func (img *ColorImage) SaveBMP(path string) error {
	r, g, b := img.bitmapPlanes()
	if err := bitmap.Save(path, r, g, b); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncoding, path, err)
	}
	return nil
}

// LoadBMP reads a bitmap file into a new ColorImage.
func LoadBMP(path string) (*ColorImage, error) {
	r, g, b, err := bitmap.Load(path)
	if err != nil {
		return nil, err
	}
	if r.Width != g.Width || r.Width != b.Width || r.Height != g.Height || r.Height != b.Height {
		return nil, errors.New("julia: decoded planes differ in size")
	}
	img, err := NewColorImage(r.Width, r.Height)
	if err != nil {
		return nil, err
	}
	copy(img.planes[Red], r.Pix)
	copy(img.planes[Green], g.Pix)
	copy(img.planes[Blue], b.Pix)
	return img, nil
}
