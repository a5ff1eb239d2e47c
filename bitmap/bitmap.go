// Package bitmap writes planar 8-bit RGB samples as uncompressed 24-bit
// Windows bitmap (BMP) files and reads bitmaps back into planes.
//
// # Layout
//
// Encoded files always carry a 14-byte BITMAPFILEHEADER followed by a
// 40-byte BITMAPINFOHEADER, so pixel data starts at offset 54. Rows are
// stored bottom-to-top, each pixel as B, G, R, and every row is padded with
// zero bytes to a multiple of 4.
package bitmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Encoding errors.
var (
	// ErrDimensionMismatch is returned when the three planes differ in size.
	ErrDimensionMismatch = errors.New("bitmap: plane dimensions differ")

	// ErrEmptyImage is returned for planes with no pixels or a short buffer.
	ErrEmptyImage = errors.New("bitmap: empty image")
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// HeaderSize is the offset of the pixel array in files written by Encode.
	HeaderSize = fileHeaderSize + infoHeaderSize

	bitsPerPixel   = 24
	pixelsPerM     = 2835 // 72 DPI
	compressionRGB = 0
)

// fileHeader is BITMAPFILEHEADER.
type fileHeader struct {
	Type      [2]byte // "BM"
	Size      uint32  // Total file size in bytes.
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // Offset of the pixel array.
}

// infoHeader is BITMAPINFOHEADER.
type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32 // Positive: rows are stored bottom-up.
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Plane is one 8-bit channel in row-major order (index y*Width + x).
type Plane struct {
	Pix    []uint8
	Width  int
	Height int
}

// valid reports whether the plane has pixels and a large enough buffer.
func (p Plane) valid() bool {
	return p.Width > 0 && p.Height > 0 && len(p.Pix) >= p.Width*p.Height
}

func check(r, g, b Plane) error {
	if !r.valid() || !g.valid() || !b.valid() {
		return ErrEmptyImage
	}
	if r.Width != g.Width || r.Width != b.Width || r.Height != g.Height || r.Height != b.Height {
		return fmt.Errorf("%w: R %dx%d, G %dx%d, B %dx%d", ErrDimensionMismatch,
			r.Width, r.Height, g.Width, g.Height, b.Width, b.Height)
	}
	return nil
}

// Stride returns the padded length in bytes of one encoded row.
func Stride(width int) int {
	return (width*3 + 3) &^ 3
}

// FileSize returns the size in bytes of an encoded width x height bitmap.
func FileSize(width, height int) int {
	return HeaderSize + Stride(width)*height
}

// Encode writes r, g and b as a 24-bit bitmap to w.
//
// The planes must have identical dimensions, otherwise ErrDimensionMismatch
// is returned before anything is written.
func Encode(w io.Writer, r, g, b Plane) error {
	if err := check(r, g, b); err != nil {
		return err
	}

	width, height := r.Width, r.Height
	stride := Stride(width)
	imageSize := stride * height

	// #nosec G115 -- dimensions are bounded by the caller's allocation
	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(HeaderSize + imageSize),
		OffBits: HeaderSize,
	}
	// #nosec G115 -- see above
	ih := infoHeader{
		Size:        infoHeaderSize,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    bitsPerPixel,
		Compression: compressionRGB,
		SizeImage:   uint32(imageSize),
		XPixelsPerM: pixelsPerM,
		YPixelsPerM: pixelsPerM,
	}
	if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &ih); err != nil {
		return err
	}

	row := make([]byte, stride) // padding bytes stay zero
	for y := height - 1; y >= 0; y-- {
		off := y * width
		for x := 0; x < width; x++ {
			i := x * 3
			row[i+0] = b.Pix[off+x]
			row[i+1] = g.Pix[off+x]
			row[i+2] = r.Pix[off+x]
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Save encodes the planes into the file at path.
//
// The file is flushed and closed on every return path. When encoding fails
// the partially written file is removed on a best-effort basis.
func Save(path string, r, g, b Plane) (err error) {
	// Reject bad planes before touching the filesystem.
	if err := check(r, g, b); err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	bw := bufio.NewWriterSize(f, 64*1024)
	if err := Encode(bw, r, g, b); err != nil {
		return err
	}
	return bw.Flush()
}
