package tannen

import (
	"bytes"
	"image"
	"testing"
)

func TestRasterizeMatchesShade(t *testing.T) {
	const w, h = 40, 56
	img, err := RenderFrame(w, h, 0)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	aspect := float64(w) / float64(h)

	// Spot-check a few pixels against a direct evaluation, including the
	// row flip (image row 0 is the top of the scene).
	probes := []struct{ x, y int }{
		{0, 0},
		{w / 2, h / 2},
		{w / 2, h - 5}, // trunk region
		{w - 1, h - 1},
	}
	for _, pr := range probes {
		u := (float64(pr.x) + 0.5) / w
		v := 1 - (float64(pr.y)+0.5)/h
		c := Shade(Vec2{u, v}, 0, aspect)
		off := img.PixOffset(pr.x, pr.y)
		want := [4]byte{
			byte(c.R*c.A*255 + 0.5),
			byte(c.G*c.A*255 + 0.5),
			byte(c.B*c.A*255 + 0.5),
			byte(c.A*255 + 0.5),
		}
		got := [4]byte{img.Pix[off], img.Pix[off+1], img.Pix[off+2], img.Pix[off+3]}
		if got != want {
			t.Errorf("pixel (%d,%d) = %v, want %v", pr.x, pr.y, got, want)
		}
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	// Parallel band evaluation must not affect the result: two runs are
	// byte-identical.
	a, err := RenderFrame(50, 70, 3.7)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	b, err := RenderFrame(50, 70, 3.7)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("two rasterizations of the same frame differ")
	}
}

func TestRasterizePremultiplied(t *testing.T) {
	img, err := RenderFrame(50, 70, 1.5)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		for ch := 0; ch < 3; ch++ {
			if img.Pix[i+ch] > a {
				t.Fatalf("pixel %d channel %d = %d exceeds alpha %d; output not premultiplied",
					i/4, ch, img.Pix[i+ch], a)
			}
		}
	}
}

func TestRasterizeCornersTransparent(t *testing.T) {
	img, err := RenderFrame(200, 280, 0)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	for _, pr := range []struct{ x, y int }{{0, 0}, {199, 0}, {0, 279}, {199, 279}} {
		off := img.PixOffset(pr.x, pr.y)
		if a := img.Pix[off+3]; a != 0 {
			t.Errorf("corner (%d,%d) alpha = %d, want 0", pr.x, pr.y, a)
		}
	}
}

func TestRasterizeSubImageOffset(t *testing.T) {
	// Non-zero bounds must not confuse the pixel addressing.
	img := image.NewRGBA(image.Rect(10, 20, 50, 76))
	if err := Rasterize(img, 0); err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	ref, err := RenderFrame(40, 56, 0)
	if err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	if !bytes.Equal(img.Pix, ref.Pix) {
		t.Error("offset-bounds rasterization differs from zero-origin rasterization")
	}
}

func TestRasterizeEmpty(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if err := Rasterize(img, 0); err != nil {
		t.Fatalf("Rasterize on empty image: %v", err)
	}
}
