package clipcap

import (
	"image/color"
	"testing"
)

func TestRGBA_Arithmetic(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.8}

	got := c.Scale(0.5)
	want := RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.8}
	if !approxEq(got.R, want.R) || !approxEq(got.G, want.G) ||
		!approxEq(got.B, want.B) || got.A != c.A {
		t.Errorf("Scale = %v, want %v (alpha unchanged)", got, want)
	}

	got = c.Add(RGBA{R: 0.1, G: 0.1, B: 0.1, A: 0.5})
	if !approxEq(got.R, 0.3) || !approxEq(got.G, 0.5) || !approxEq(got.B, 0.7) || got.A != 0.8 {
		t.Errorf("Add = %v, want RGB sum with alpha from receiver", got)
	}

	got = RGB(0.5, 1, 0.25).Mod(RGB(0.5, 0.5, 0.5))
	if !approxEq(got.R, 0.25) || !approxEq(got.G, 0.5) || !approxEq(got.B, 0.125) {
		t.Errorf("Mod = %v, want (0.25, 0.5, 0.125)", got)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(1, 0.5, 0.25)
	got := a.Lerp(b, 0.5)
	if !approxEq(got.R, 0.5) || !approxEq(got.G, 0.25) || !approxEq(got.B, 0.125) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestRGBA_Clamp(t *testing.T) {
	got := RGBA{R: -0.5, G: 1.5, B: 0.5, A: 2}.Clamp()
	want := RGBA{R: 0, G: 1, B: 0.5, A: 1}
	if got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}

func TestRGBA_NRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.NRGBA
	}{
		{"black", RGB(0, 0, 0), color.NRGBA{0, 0, 0, 255}},
		{"white", RGB(1, 1, 1), color.NRGBA{255, 255, 255, 255}},
		{"mid gray", RGB(0.5, 0.5, 0.5), color.NRGBA{128, 128, 128, 255}},
		{"overbright clamps", RGBA{R: 2, G: 1, B: 0, A: 1}, color.NRGBA{255, 255, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.NRGBA(); got != tt.want {
				t.Errorf("NRGBA = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 255, A: 255})
	if !approxEq(got.R, 1) || !approxEq(got.G, 0) || !approxEq(got.B, 1) || !approxEq(got.A, 1) {
		t.Errorf("FromColor = %v, want magenta", got)
	}
}
