package chisel

import "testing"

func TestRasterizeTextErrors(t *testing.T) {
	if _, err := RasterizeText("", 24); err == nil {
		t.Error("expected an error for empty text")
	}
	if _, err := RasterizeText("   ", 24); err == nil {
		t.Error("expected an error for whitespace-only text")
	}
	if _, err := RasterizeText("GO", 0); err == nil {
		t.Error("expected an error for a zero font size")
	}
	if _, err := RasterizeText("GO", -12); err == nil {
		t.Error("expected an error for a negative font size")
	}
}

func TestRasterizeText(t *testing.T) {
	bm, err := RasterizeText("GO", 24)
	if err != nil {
		t.Fatal(err)
	}
	if bm.Width <= 0 || bm.Height <= 0 {
		t.Fatalf("bitmap = %dx%d", bm.Width, bm.Height)
	}

	protected, carveable := 0, 0
	for _, p := range bm.Pixels {
		if p {
			protected++
		} else {
			carveable++
		}
	}
	if protected == 0 {
		t.Error("rasterized text produced no protected pixels")
	}
	if carveable == 0 {
		t.Error("rasterized text produced no carveable pixels")
	}
	// Glyph coverage stays well below the full canvas.
	if protected > carveable {
		t.Errorf("protected %d > carveable %d, text should not dominate", protected, carveable)
	}
}

func TestRasterizeTextFeedsSimulation(t *testing.T) {
	bm, err := RasterizeText("I", 16)
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSimulation(bm, testParams(21))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Islands()) == 0 {
		t.Error("a glyph should form at least one island")
	}
}
