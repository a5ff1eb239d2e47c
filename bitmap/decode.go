package bitmap

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Decode reads a bitmap from r and splits it into R, G and B planes.
// Any bitmap variant understood by golang.org/x/image/bmp is accepted;
// alpha is discarded.
func Decode(r io.Reader) (rp, gp, bp Plane, err error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return Plane{}, Plane{}, Plane{}, fmt.Errorf("bitmap: decode: %w", err)
	}
	rp, gp, bp = split(img)
	return rp, gp, bp, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (rp, gp, bp Plane, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Plane{}, Plane{}, Plane{}, fmt.Errorf("bitmap: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeConfig returns the dimensions of the bitmap in r without reading
// the pixel data.
func DecodeConfig(r io.Reader) (width, height int, err error) {
	cfg, err := bmp.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("bitmap: decode config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

func split(img image.Image) (rp, gp, bp Plane) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rp = Plane{Pix: make([]uint8, w*h), Width: w, Height: h}
	gp = Plane{Pix: make([]uint8, w*h), Width: w, Height: h}
	bp = Plane{Pix: make([]uint8, w*h), Width: w, Height: h}

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < h; y++ {
			src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
			for x := 0; x < w; x++ {
				i := y*w + x
				rp.Pix[i] = src[x*4+0]
				gp.Pix[i] = src[x*4+1]
				bp.Pix[i] = src[x*4+2]
			}
		}
		return rp, gp, bp
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := y*w + x
			// #nosec G115 -- 16-bit channel >> 8 fits in uint8
			rp.Pix[i], gp.Pix[i], bp.Pix[i] = uint8(r>>8), uint8(g>>8), uint8(b>>8)
		}
	}
	return rp, gp, bp
}
