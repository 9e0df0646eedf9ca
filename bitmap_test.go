package chisel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBitmapAllocates(t *testing.T) {
	bm, err := NewBitmap(4, 3, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(bm.Pixels) != 12 {
		t.Errorf("pixel count = %d, want 12", len(bm.Pixels))
	}
	for i, p := range bm.Pixels {
		if p {
			t.Fatalf("pixel %d should start carveable", i)
		}
	}
}

func TestNewBitmapValidation(t *testing.T) {
	var gridErr *GridError

	_, err := NewBitmap(0, 3, nil)
	if !errors.As(err, &gridErr) {
		t.Errorf("zero width: got %v, want *GridError", err)
	}
	_, err = NewBitmap(3, -1, nil)
	if !errors.As(err, &gridErr) {
		t.Errorf("negative height: got %v, want *GridError", err)
	}
	_, err = NewBitmap(3, 3, make([]bool, 5))
	if !errors.As(err, &gridErr) {
		t.Errorf("pixel mismatch: got %v, want *GridError", err)
	}
}

func TestBitmapAtSetBounds(t *testing.T) {
	bm, _ := NewBitmap(3, 3, nil)
	bm.Set(1, 2, true)
	if !bm.At(1, 2) {
		t.Error("Set pixel should read back true")
	}

	// Out-of-range access is safe and reads false.
	bm.Set(-1, 0, true)
	bm.Set(3, 0, true)
	if bm.At(-1, 0) || bm.At(0, 3) {
		t.Error("out-of-range At should be false")
	}
}

func TestBitmapFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{0, 0, 0, 255})       // black → protected
	img.Set(1, 0, color.NRGBA{255, 255, 255, 255}) // white → carveable
	img.Set(2, 0, color.NRGBA{0, 0, 0, 0})         // transparent → carveable

	bm := BitmapFromImage(img, 128)
	if bm.Width != 3 || bm.Height != 1 {
		t.Fatalf("dimensions = %dx%d, want 3x1", bm.Width, bm.Height)
	}
	if !bm.At(0, 0) {
		t.Error("black pixel should be protected")
	}
	if bm.At(1, 0) {
		t.Error("white pixel should be carveable")
	}
	if bm.At(2, 0) {
		t.Error("transparent pixel should be carveable")
	}
}
