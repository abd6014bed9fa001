package clipcap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a CPU-resident RGBA8 render target. Both backends resolve
// their output into a Pixmap: the software renderer writes it
// directly, the GPU renderer reads its color attachment back into one.
type Pixmap struct {
	W, H int
	// Pix holds RGBA bytes, 4 per pixel, row-major.
	Pix []uint8
}

// NewPixmap allocates a zeroed (transparent black) pixmap.
func NewPixmap(w, h int) *Pixmap {
	return &Pixmap{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

// Set writes a color at (x, y). Out-of-bounds writes are ignored.
func (p *Pixmap) Set(x, y int, c RGBA) {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return
	}
	n := c.NRGBA()
	i := (y*p.W + x) * 4
	p.Pix[i] = n.R
	p.Pix[i+1] = n.G
	p.Pix[i+2] = n.B
	p.Pix[i+3] = n.A
}

// At returns the color at (x, y). Out-of-bounds reads return zero.
func (p *Pixmap) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return color.NRGBA{}
	}
	i := (y*p.W + x) * 4
	return color.NRGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

// Image wraps the pixel data as an *image.RGBA sharing the same
// backing array.
func (p *Pixmap) Image() *image.RGBA {
	return &image.RGBA{Pix: p.Pix, Stride: p.W * 4, Rect: image.Rect(0, 0, p.W, p.H)}
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, p.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
