package render

import "image/color"

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry; an empty palette clears the
// buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// CellSize picks the largest square cell that fits a w×h grid inside the
// available area, never smaller than one pixel.
func CellSize(availW, availH, w, h int) int {
	if w <= 0 || h <= 0 {
		return 1
	}
	size := availW / w
	if sy := availH / h; sy < size {
		size = sy
	}
	if size < 1 {
		size = 1
	}
	return size
}
