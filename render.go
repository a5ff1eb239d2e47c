package julia

import (
	"github.com/gogpu/julia/internal/parallel"
)

// FillMask evaluates the escape time of every pixel of mask and stores the
// resulting level at index y*width + x.
//
// The grid is the mask itself: its width and height feed StartPoint, while
// magnification, c, iteration bound, escape radius, levels and gamma come
// from cfg. With cfg.Workers != 1 the rows are split into bands evaluated
// concurrently; the output is identical to the sequential pass. An empty
// mask is left untouched.
func FillMask(mask *Image, cfg Config) {
	if mask.Empty() {
		return
	}

	if cfg.Workers == 1 {
		fillRows(mask, cfg, 0, mask.height)
		return
	}

	pool := parallel.NewWorkerPool(cfg.Workers)
	defer pool.Close()

	Logger().Debug("julia: parallel mask", "workers", pool.Workers(), "rows", mask.height)
	pool.Rows(mask.height, func(y0, y1 int) {
		fillRows(mask, cfg, y0, y1)
	})
}

// fillRows evaluates rows y0..y1-1.
func fillRows(mask *Image, cfg Config, y0, y1 int) {
	w, h := mask.width, mask.height
	for y := y0; y < y1; y++ {
		row := mask.pix[y*w : (y+1)*w]
		for x := range row {
			z0 := StartPoint(x, y, w, h, cfg.Magnification)
			n := Escape(z0, cfg.C, cfg.MaxIterations, cfg.EscapeRadius)
			row[x] = Level(n, cfg.MaxIterations, cfg.Levels, cfg.Gamma)
		}
	}
}

// NewMask allocates a cfg.Width x cfg.Height mask and fills it.
// The caller owns the result and should Release it.
func NewMask(cfg Config) (*Image, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mask, err := newImage(cfg.Width, cfg.Height, cfg.maxPixels())
	if err != nil {
		return nil, err
	}
	FillMask(mask, cfg)
	return mask, nil
}
