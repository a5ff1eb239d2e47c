package julia

import (
	"fmt"
	"image"

	"github.com/gogpu/julia/internal/pool"
)

// DefaultMaxPixels is the largest plane, in pixels, that NewImage and
// NewColorImage will allocate.
const DefaultMaxPixels = 1 << 28

// Image is a single 8-bit sample plane, used as the escape-time mask.
// Values range from 0 (black) to 255 (full brightness).
//
// An Image is created by NewImage, mutated in place and released with
// Release. A released (empty) image has zero width and no buffer; every
// method on it is a no-op.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage allocates a zeroed width x height plane.
//
// Non-positive dimensions return ErrInvalidDimensions. A plane larger than
// DefaultMaxPixels, or one the runtime refuses to allocate, returns an
// error wrapping ErrAllocation. A nil *Image is returned on every failure.
func NewImage(width, height int) (*Image, error) {
	return newImage(width, height, DefaultMaxPixels)
}

func newImage(width, height, limit int) (*Image, error) {
	pix, err := allocPlane(width, height, limit)
	if err != nil {
		return nil, err
	}
	return &Image{width: width, height: height, pix: pix}, nil
}

// allocPlane validates the dimensions and draws one buffer from the pool.
func allocPlane(width, height, limit int) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if width > limit/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, limit)
	}
	pix, err := pool.Default.Get(width * height)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d: %w", ErrAllocation, width, height, err)
	}
	return pix, nil
}

// Width returns the plane width, or 0 for an empty image.
func (m *Image) Width() int {
	if m.Empty() {
		return 0
	}
	return m.width
}

// Height returns the plane height, or 0 for an empty image.
func (m *Image) Height() int {
	if m.Empty() {
		return 0
	}
	return m.height
}

// Bounds returns the plane dimensions as an image.Rectangle.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width(), m.Height())
}

// Empty reports whether the image has been released or never allocated.
func (m *Image) Empty() bool {
	return m == nil || m.width == 0 || m.pix == nil
}

// At returns the sample at (x, y).
// Returns 0 for coordinates outside the image.
func (m *Image) At(x, y int) uint8 {
	if m.Empty() || x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.pix[y*m.width+x]
}

// Set sets the sample at (x, y).
// Coordinates outside the image are ignored.
func (m *Image) Set(x, y int, v uint8) {
	if m.Empty() || x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = v
}

// Fill sets every sample to v.
func (m *Image) Fill(v uint8) {
	if m.Empty() {
		return
	}
	for i := range m.pix {
		m.pix[i] = v
	}
}

// Pix returns the underlying samples in row-major order.
// The slice must not be used after Release.
func (m *Image) Pix() []uint8 {
	if m.Empty() {
		return nil
	}
	return m.pix
}

// Release returns the buffer to the pool and marks the image empty.
// Releasing an empty or nil image does nothing.
func (m *Image) Release() {
	if m.Empty() {
		return
	}
	pool.Default.Put(m.pix)
	m.pix = nil
	m.width = 0
	m.height = 0
}

// ToGray copies the plane into an *image.Gray.
func (m *Image) ToGray() *image.Gray {
	img := image.NewGray(m.Bounds())
	if !m.Empty() {
		copy(img.Pix, m.pix)
	}
	return img
}
