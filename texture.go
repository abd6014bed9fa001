package clipcap

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the formats textures commonly ship in.
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// Texture is a CPU-side 2D image sampled by the front-face pass.
// Texture coordinates wrap (repeat addressing); sampling is bilinear.
type Texture struct {
	rgba *image.RGBA
	w, h int
}

// NewTexture wraps an image as a texture, converting it to RGBA if
// necessary.
func NewTexture(img image.Image) *Texture {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
		rgba = dst
	}
	return &Texture{rgba: rgba, w: rgba.Bounds().Dx(), h: rgba.Bounds().Dy()}
}

// LoadTexture reads and decodes an image file (PNG or JPEG).
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	return NewTexture(img), nil
}

// Size returns the texture dimensions in pixels.
func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

// RGBA exposes the backing pixel data for GPU upload.
func (t *Texture) RGBA() *image.RGBA {
	return t.rgba
}

// Sample returns the bilinearly filtered color at texture coordinate
// (u, v) with repeat wrapping.
func (t *Texture) Sample(u, v float32) RGBA {
	if t == nil || t.w == 0 || t.h == 0 {
		return RGB(1, 1, 1)
	}
	fx := wrap01(u)*float32(t.w) - 0.5
	fy := wrap01(v)*float32(t.h) - 0.5
	x0 := floorInt(fx)
	y0 := floorInt(fy)
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

func (t *Texture) texel(x, y int) RGBA {
	x = mod(x, t.w)
	y = mod(y, t.h)
	i := t.rgba.PixOffset(x, y)
	p := t.rgba.Pix[i : i+4 : i+4]
	return RGBA{
		R: float32(p[0]) / 255,
		G: float32(p[1]) / 255,
		B: float32(p[2]) / 255,
		A: float32(p[3]) / 255,
	}
}

func wrap01(v float32) float32 {
	v -= float32(floorInt(v))
	if v < 0 {
		v += 1
	}
	return v
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
