package chisel

import "image"

// Bitmap is the binary input image for a carving run. True pixels are
// protected (text); false pixels are carveable background. Pixels are
// stored row-major, y*Width+x.
type Bitmap struct {
	Width, Height int
	Pixels        []bool
}

// NewBitmap creates a Bitmap of the given dimensions. When pixels is nil a
// zeroed (all-carveable) backing slice is allocated; otherwise its length
// must equal width*height.
func NewBitmap(width, height int, pixels []bool) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, &GridError{Op: "bitmap", X: -1, Y: -1,
			Reason: "dimensions must be positive"}
	}
	if pixels == nil {
		pixels = make([]bool, width*height)
	}
	if len(pixels) != width*height {
		return nil, &GridError{Op: "bitmap", X: -1, Y: -1,
			Reason: "pixel count does not match width*height"}
	}
	return &Bitmap{Width: width, Height: height, Pixels: pixels}, nil
}

// At reports the pixel at (x, y). Out-of-range coordinates return false.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	return b.Pixels[y*b.Width+x]
}

// Set writes the pixel at (x, y). Out-of-range coordinates are ignored.
func (b *Bitmap) Set(x, y int, on bool) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	b.Pixels[y*b.Width+x] = on
}

// BitmapFromImage thresholds img into a Bitmap: pixels darker than the
// given luminance (0-255) become protected. Fully transparent pixels are
// always carveable regardless of color.
func BitmapFromImage(img image.Image, threshold uint8) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bm := &Bitmap{Width: w, Height: h, Pixels: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			// Rec. 601 luma on 16-bit channels, scaled back to 8-bit.
			luma := (299*r + 587*g + 114*b) / 1000 >> 8
			if luma < uint32(threshold) {
				bm.Pixels[y*w+x] = true
			}
		}
	}
	return bm
}
