package segment

import "image"

// Mask is a binary per-pixel classification of a normalized image:
// foreground pixels belong to object regions, everything else is
// background. Coordinates outside the mask read as background.
type Mask struct {
	width  int
	height int
	fg     []bool
}

// NewMask creates an all-background mask of the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		fg:     make([]bool, width*height),
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Foreground reports whether the pixel at (x, y) is foreground.
// Out-of-bounds coordinates are background.
func (m *Mask) Foreground(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.fg[y*m.width+x]
}

// SetForeground marks the pixel at (x, y) as foreground or background.
// Out-of-bounds coordinates are ignored.
func (m *Mask) SetForeground(x, y int, foreground bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.fg[y*m.width+x] = foreground
}

// MaskFromImage binarizes an image into a mask: pixels with luminance of
// 128 or more are foreground. Intended for the near-binary output of a
// threshold/morphology chain, where every pixel is already close to black
// or white.
func MaskFromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			lum := (float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114)
			if lum >= 128 {
				m.fg[y*m.width+x] = true
			}
		}
	}
	return m
}
