package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Dennis3204/Coin-Detection/internal/detect"
)

// Annotation colors follow the original calibration tool: green outlines,
// blue ID labels, red for the selected object.
var (
	outlineColor   = colorful.Color{R: 0, G: 0.8, B: 0.2}
	labelColor     = colorful.Color{R: 0.15, G: 0.3, B: 1}
	highlightColor = colorful.Color{R: 0.9, G: 0.1, B: 0.1}
)

// Annotate draws every object's enclosing circle and ID label onto a copy
// of the image. The source image is never modified.
func Annotate(img image.Image, objects []detect.Object) *image.RGBA {
	dst := cloneRGBA(img)
	for _, o := range objects {
		cx, cy, r := circlePixels(o)
		drawCircleOutline(dst, cx, cy, r, toRGBA(outlineColor), 1)
		drawLabel(dst, cx+5, cy+5, strconv.Itoa(o.ID), toRGBA(labelColor))
	}
	return dst
}

// Highlight draws one object emphasized (thicker, red) onto a copy of the
// image. Used to acknowledge a pointer query match.
func Highlight(img image.Image, o detect.Object) *image.RGBA {
	dst := cloneRGBA(img)
	cx, cy, r := circlePixels(o)
	drawCircleOutline(dst, cx, cy, r, toRGBA(highlightColor), 2)
	return dst
}

func cloneRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(bounds)
	draw.Draw(dst, bounds, img, bounds.Min, draw.Src)
	return dst
}

func circlePixels(o detect.Object) (cx, cy, r int) {
	cx = int(math.Round(o.Center.X))
	cy = int(math.Round(o.Center.Y))
	r = int(math.Round(o.Radius()))
	return cx, cy, r
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// drawCircleOutline rasterizes a circle outline with the midpoint
// algorithm. Thickness is built from concentric rings; pixels outside the
// image are clipped.
func drawCircleOutline(dst *image.RGBA, cx, cy, radius int, c color.RGBA, thickness int) {
	for t := 0; t < thickness; t++ {
		r := radius - t
		if r < 0 {
			break
		}
		drawRing(dst, cx, cy, r, c)
	}
}

func drawRing(dst *image.RGBA, cx, cy, radius int, c color.RGBA) {
	x := radius
	y := 0
	err := 0

	for x >= y {
		setClipped(dst, cx+x, cy+y, c)
		setClipped(dst, cx+y, cy+x, c)
		setClipped(dst, cx-y, cy+x, c)
		setClipped(dst, cx-x, cy+y, c)
		setClipped(dst, cx-x, cy-y, c)
		setClipped(dst, cx-y, cy-x, c)
		setClipped(dst, cx+y, cy-x, c)
		setClipped(dst, cx+x, cy-y, c)

		if err <= 0 {
			y++
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func setClipped(dst *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(dst.Bounds()) {
		dst.SetRGBA(x, y, c)
	}
}

// drawLabel renders text with the fixed 7x13 basicfont; (x, y) is the
// baseline origin.
func drawLabel(dst *image.RGBA, x, y int, text string, c color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
