package render

import "image"

// Target is a pixel sink for the renderer. Implementations clip
// out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Image is an RGBA Target held in memory
type Image struct {
	img *image.RGBA
}

func NewImage(w, h int) *Image {
	i := &Image{}
	i.Resize(w, h)
	return i
}

// Resize reallocates the pixel buffer when the size changes
func (i *Image) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if i.img != nil && i.img.Rect.Dx() == w && i.img.Rect.Dy() == h {
		return
	}
	i.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (i *Image) Size() (int, int) {
	if i == nil || i.img == nil {
		return 0, 0
	}
	return i.img.Rect.Dx(), i.img.Rect.Dy()
}

func (i *Image) SetPixel(x, y int, c Color) {
	if i == nil || i.img == nil {
		return
	}
	if !(image.Point{X: x, Y: y}).In(i.img.Rect) {
		return
	}
	off := i.img.PixOffset(x, y)
	p := i.img.Pix[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xFF
}

func (i *Image) Clear(c Color) {
	if i == nil || i.img == nil {
		return
	}
	pix := i.img.Pix
	for off := 0; off+3 < len(pix); off += 4 {
		pix[off], pix[off+1], pix[off+2], pix[off+3] = c.R, c.G, c.B, 0xFF
	}
}

// At returns the color at (x, y), black when out of bounds
func (i *Image) At(x, y int) Color {
	if i == nil || i.img == nil || !(image.Point{X: x, Y: y}).In(i.img.Rect) {
		return Color{}
	}
	off := i.img.PixOffset(x, y)
	return Color{R: i.img.Pix[off], G: i.img.Pix[off+1], B: i.img.Pix[off+2]}
}

// Pixels returns the raw RGBA bytes, row major
func (i *Image) Pixels() []byte {
	if i == nil || i.img == nil {
		return nil
	}
	return i.img.Pix
}

// RGBA exposes the backing image
func (i *Image) RGBA() *image.RGBA {
	if i == nil {
		return nil
	}
	return i.img
}

// Release drops the pixel buffer. The image reports a zero size afterwards.
func (i *Image) Release() {
	if i != nil {
		i.img = nil
	}
}
