package clipcap

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// checkerImage builds a 2x2 image with distinct corner colors.
func checkerImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestTexture_SampleTexelCenters(t *testing.T) {
	tex := NewTexture(checkerImage())
	if w, h := tex.Size(); w != 2 || h != 2 {
		t.Fatalf("Size = (%d, %d), want (2, 2)", w, h)
	}

	// Sampling exactly at a texel center returns that texel.
	got := tex.Sample(0.25, 0.25)
	if !approxEq(got.R, 1) || !approxEq(got.G, 0) || !approxEq(got.B, 0) {
		t.Errorf("Sample(0.25, 0.25) = %v, want red", got)
	}
	got = tex.Sample(0.75, 0.75)
	if !approxEq(got.R, 1) || !approxEq(got.G, 1) || !approxEq(got.B, 1) {
		t.Errorf("Sample(0.75, 0.75) = %v, want white", got)
	}
}

func TestTexture_SampleBilinear(t *testing.T) {
	tex := NewTexture(checkerImage())
	// Dead center of the texture blends all four texels equally.
	got := tex.Sample(0.5, 0.5)
	if !approxEq(got.R, 0.5) || !approxEq(got.G, 0.5) || !approxEq(got.B, 0.5) {
		t.Errorf("Sample(0.5, 0.5) = %v, want quarter blend (0.5, 0.5, 0.5)", got)
	}
}

func TestTexture_SampleWraps(t *testing.T) {
	tex := NewTexture(checkerImage())
	a := tex.Sample(0.25, 0.25)
	for _, uv := range [][2]float32{{1.25, 0.25}, {-0.75, 0.25}, {0.25, 2.25}, {3.25, -1.75}} {
		got := tex.Sample(uv[0], uv[1])
		if got != a {
			t.Errorf("Sample(%v, %v) = %v, want wrapped %v", uv[0], uv[1], got, a)
		}
	}
}

func TestTexture_NilSamplesWhite(t *testing.T) {
	var tex *Texture
	if got := tex.Sample(0.5, 0.5); got != RGB(1, 1, 1) {
		t.Errorf("nil texture Sample = %v, want white", got)
	}
}

func TestNewTexture_ConvertsSubimages(t *testing.T) {
	// An image with a non-zero origin must be normalized.
	big := image.NewRGBA(image.Rect(0, 0, 4, 4))
	big.SetRGBA(2, 2, color.RGBA{255, 0, 0, 255})
	sub := big.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)

	tex := NewTexture(sub)
	if w, h := tex.Size(); w != 2 || h != 2 {
		t.Fatalf("Size = (%d, %d), want (2, 2)", w, h)
	}
	got := tex.Sample(0.25, 0.25)
	if !approxEq(got.R, 1) || !approxEq(got.G, 0) {
		t.Errorf("Sample = %v, want red from the subimage origin", got)
	}
}

func TestLoadTexture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, checkerImage()); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tex, err := LoadTexture(path)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if w, h := tex.Size(); w != 2 || h != 2 {
		t.Errorf("Size = (%d, %d), want (2, 2)", w, h)
	}

	if _, err := LoadTexture(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for a missing file")
	}
}
