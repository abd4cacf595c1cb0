package render

import (
	"image/color"
	"testing"
)

func TestPaletteTwoColorsIsBlackAndWhite(t *testing.T) {
	p := Palette(2)
	if len(p) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(p))
	}
	if p[0] != (color.RGBA{A: 255}) {
		t.Fatalf("value 0 should be black, got %v", p[0])
	}
	if p[1] != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("value 1 should be white, got %v", p[1])
	}
}

func TestPaletteEvenlySpacedHues(t *testing.T) {
	p := Palette(3)
	want := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for i, w := range want {
		if p[i] != w {
			t.Fatalf("entry %d: got %v, want %v", i, p[i], w)
		}
	}

	big := Palette(256)
	seen := map[color.RGBA]bool{}
	for _, c := range big {
		if c.A != 255 {
			t.Fatalf("palette entries must be opaque, got %v", c)
		}
		seen[c] = true
	}
	if len(seen) < 200 {
		t.Fatalf("expected mostly distinct hues, got %d unique colors", len(seen))
	}
	if Palette(0) != nil {
		t.Fatal("empty palette expected for zero colors")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	cells := []uint8{0, 1, 9}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, buf[i], want[i])
		}
	}

	fillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}

func TestCellSize(t *testing.T) {
	cases := []struct{ aw, ah, w, h, want int }{
		{700, 500, 7, 5, 100},
		{700, 300, 7, 5, 60},
		{10, 10, 20, 20, 1},
		{100, 100, 0, 5, 1},
	}
	for _, tc := range cases {
		if got := CellSize(tc.aw, tc.ah, tc.w, tc.h); got != tc.want {
			t.Fatalf("CellSize(%d,%d,%d,%d) = %d, want %d", tc.aw, tc.ah, tc.w, tc.h, got, tc.want)
		}
	}
}
