package clipcap

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmap_SetAt(t *testing.T) {
	pm := NewPixmap(4, 3)
	if len(pm.Pix) != 4*3*4 {
		t.Fatalf("Pix length = %d, want %d", len(pm.Pix), 4*3*4)
	}

	pm.Set(2, 1, RGB(1, 0, 0))
	if got, want := pm.At(2, 1), (color.NRGBA{255, 0, 0, 255}); got != want {
		t.Errorf("At(2, 1) = %v, want %v", got, want)
	}
	if got := pm.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("untouched pixel = %v, want zero", got)
	}
}

func TestPixmap_OutOfBounds(t *testing.T) {
	pm := NewPixmap(2, 2)
	// Writes outside the pixmap are dropped, reads return zero.
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		pm.Set(xy[0], xy[1], RGB(1, 1, 1))
		if got := pm.At(xy[0], xy[1]); got != (color.NRGBA{}) {
			t.Errorf("At(%d, %d) = %v, want zero", xy[0], xy[1], got)
		}
	}
	for _, b := range pm.Pix {
		if b != 0 {
			t.Fatal("out-of-bounds Set modified the pixel data")
		}
	}
}

func TestPixmap_ImageSharesPixels(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Set(1, 1, RGB(0, 1, 0))
	img := pm.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 3 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 0 || g != 0xFFFF || b != 0 || a != 0xFFFF {
		t.Errorf("image pixel = (%d, %d, %d, %d), want green", r, g, b, a)
	}
}

func TestPixmap_SavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Set(3, 3, RGB(1, 0.5, 0))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Error("SavePNG wrote an empty file")
	}

	if err := pm.SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png")); err == nil {
		t.Error("expected error for an unwritable path")
	}
}
