package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/Dennis3204/Coin-Detection/internal/detect"
)

func testObject(id int, x, y, diameter float64) detect.Object {
	return detect.Object{
		ID:         id,
		Center:     detect.Point{X: x, Y: y},
		DiameterPx: diameter,
	}
}

func whiteImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestAnnotate_DrawsOutline(t *testing.T) {
	img := whiteImage(100, 100)

	out := Annotate(img, []detect.Object{testObject(1, 50, 50, 40)})

	// Rightmost point of the circle outline.
	if out.RGBAAt(70, 50) != toRGBA(outlineColor) {
		t.Errorf("expected outline color at (70,50), got %v", out.RGBAAt(70, 50))
	}
}

func TestAnnotate_DrawsLabel(t *testing.T) {
	img := whiteImage(100, 100)

	out := Annotate(img, []detect.Object{testObject(1, 50, 50, 40)})

	found := false
	want := toRGBA(labelColor)
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && !found; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if out.RGBAAt(x, y) == want {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected at least one label-colored pixel")
	}
}

func TestAnnotate_SourceNotModified(t *testing.T) {
	img := whiteImage(100, 100)

	Annotate(img, []detect.Object{testObject(1, 50, 50, 40)})

	if img.RGBAAt(70, 50) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("source image was mutated")
	}
}

func TestAnnotate_NoObjects(t *testing.T) {
	img := whiteImage(50, 50)

	out := Annotate(img, nil)

	for y := 0; y < 50; y++ {
		for x := 0; x < 50; x++ {
			if out.RGBAAt(x, y) != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				t.Fatalf("unexpected drawing at (%d,%d)", x, y)
			}
		}
	}
}

func TestAnnotate_ClipsAtImageEdge(t *testing.T) {
	img := whiteImage(40, 40)

	// Circle extends past every edge; must not panic.
	Annotate(img, []detect.Object{testObject(1, 2, 2, 120)})
}

func TestHighlight_ThickOutline(t *testing.T) {
	img := whiteImage(100, 100)
	o := testObject(1, 50, 50, 40)

	out := Highlight(img, o)

	want := toRGBA(highlightColor)
	if out.RGBAAt(70, 50) != want {
		t.Errorf("expected highlight color at (70,50), got %v", out.RGBAAt(70, 50))
	}
	if out.RGBAAt(69, 50) != want {
		t.Errorf("thickness 2 should also color (69,50), got %v", out.RGBAAt(69, 50))
	}
}

func TestHighlight_SubPixelCenterRounded(t *testing.T) {
	img := whiteImage(100, 100)
	o := testObject(1, 50.4, 50.6, 40)

	out := Highlight(img, o)

	// Center rounds to (50, 51); rightmost ring pixel is at (70, 51).
	if out.RGBAAt(70, 51) != toRGBA(highlightColor) {
		t.Errorf("expected highlight color at (70,51), got %v", out.RGBAAt(70, 51))
	}
}
