package imaging

import (
	"image"
	"testing"
)

func TestNormalize_WideImageResized(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1600, 1200))

	norm := Normalize(img)

	bounds := norm.Bounds()
	if bounds.Dx() != MaxWidth {
		t.Errorf("width: got %d, want %d", bounds.Dx(), MaxWidth)
	}
	if bounds.Dy() != 600 {
		t.Errorf("height: got %d, want 600 (aspect preserved)", bounds.Dy())
	}
}

func TestNormalize_NarrowImageUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))

	norm := Normalize(img)

	if norm != image.Image(img) {
		t.Error("narrow image should pass through unchanged")
	}
}

func TestNormalize_ExactWidthUnchanged(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, MaxWidth, 100))

	norm := Normalize(img)

	if norm != image.Image(img) {
		t.Error("image at exactly MaxWidth should pass through unchanged")
	}
}

func TestNormalize_TallAspectPreserved(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1000, 2000))

	norm := Normalize(img)

	bounds := norm.Bounds()
	if bounds.Dx() != MaxWidth || bounds.Dy() != 1600 {
		t.Errorf("got %dx%d, want %dx1600", bounds.Dx(), bounds.Dy(), MaxWidth)
	}
}
