package chisel

import (
	"testing"
)

func benchmarkSim(b *testing.B, width, height, balls int) *Simulation {
	b.Helper()
	bm, err := NewBitmap(width, height, nil)
	if err != nil {
		b.Fatal(err)
	}
	for y := height / 3; y < 2*height/3; y++ {
		for x := width / 3; x < 2*width/3; x++ {
			bm.Set(x, y, true)
		}
	}
	p := DefaultParams()
	p.BallCount = balls
	p.Seed = 1
	s, err := NewSimulation(bm, p)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkAdvanceFrameSmall(b *testing.B) {
	s := benchmarkSim(b, 30, 20, 10)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.AdvanceFrame()
	}
}

func BenchmarkAdvanceFrameLarge(b *testing.B) {
	s := benchmarkSim(b, 120, 60, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.AdvanceFrame()
	}
}

func BenchmarkFindIslands(b *testing.B) {
	bm, err := NewBitmap(120, 60, nil)
	if err != nil {
		b.Fatal(err)
	}
	// Scatter hollow boxes so the flood fill has work to do.
	for by := 5; by < 55; by += 12 {
		for bx := 5; bx < 115; bx += 12 {
			for i := 0; i < 8; i++ {
				bm.Set(bx+i, by, true)
				bm.Set(bx+i, by+7, true)
				bm.Set(bx, by+i, true)
				bm.Set(bx+7, by+i, true)
			}
		}
	}
	g, err := NewGrid(bm, 2)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		FindIslands(g)
	}
}

func BenchmarkIntersectRaySquare(b *testing.B) {
	square := Rect{X: 2, Y: 2, Width: 1, Height: 1}
	start, end := Vec2{1.2, 2.6}, Vec2{3.4, 2.1}
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		IntersectRaySquare(start, end, square)
	}
}

func BenchmarkAdvanceFrameAllocs(b *testing.B) {
	s := benchmarkSim(b, 30, 20, 10)
	allocs := testing.AllocsPerRun(100, func() {
		s.AdvanceFrame()
	})
	b.ReportMetric(allocs, "allocs/frame")
}
