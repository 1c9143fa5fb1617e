package tannen

import (
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rasterize renders the scene at time t into img using the CPU evaluator,
// splitting rows into bands across the available CPUs. Pixels are written as
// premultiplied 8-bit RGBA.
//
// Each pixel is evaluated independently, so serial and parallel runs produce
// byte-identical output for the same t and bounds.
func Rasterize(img *image.RGBA, t float64) error {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	aspect := float64(w) / float64(h)

	workers := runtime.GOMAXPROCS(0)
	band := (h + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < h; y0 += band {
		y1 := min(y0+band, h)
		g.Go(func() error {
			rasterizeRows(img, y0, y1, t, aspect)
			return nil
		})
	}
	return g.Wait()
}

// rasterizeRows fills rows [y0, y1) of img. Row 0 is the top of the output;
// the shader's uv space has Y increasing upward, so rows are flipped here.
func rasterizeRows(img *image.RGBA, y0, y1 int, t, aspect float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	for y := y0; y < y1; y++ {
		v := 1 - (float64(y)+0.5)/float64(h)
		row := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			c := Shade(Vec2{u, v}, t, aspect)
			off := row + x*4
			img.Pix[off+0] = byte(c.R*c.A*255 + 0.5)
			img.Pix[off+1] = byte(c.G*c.A*255 + 0.5)
			img.Pix[off+2] = byte(c.B*c.A*255 + 0.5)
			img.Pix[off+3] = byte(c.A*255 + 0.5)
		}
	}
}

// RenderFrame allocates a w×h frame and rasterizes the scene at time t into it.
func RenderFrame(w, h int, t float64) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if err := Rasterize(img, t); err != nil {
		return nil, err
	}
	return img, nil
}
