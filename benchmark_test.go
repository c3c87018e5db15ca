package mandel

import (
	"fmt"
	"testing"
)

var benchViewport = Viewport{UpperLeft: complex(-1.20, 0.35), LowerRight: complex(-1, 0.20)}

// BenchmarkRender benchmarks full renders at various sizes.
func BenchmarkRender(b *testing.B) {
	sizes := []struct {
		name   string
		bounds Bounds
	}{
		{"100x75", Bounds{100, 75}},
		{"256x192", Bounds{256, 192}},
		{"640x480", Bounds{640, 480}},
		{"1000x750", Bounds{1000, 750}},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Render(size.bounds, benchViewport); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(size.bounds.Len())) // 1 byte per pixel
		})
	}
}

// BenchmarkRender_Workers measures how rendering scales with the worker
// count at a fixed size.
func BenchmarkRender_Workers(b *testing.B) {
	bounds := Bounds{Width: 640, Height: 480}

	for _, workers := range []int{1, 2, 4, 8, 16} {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Render(bounds, benchViewport, WithWorkers(workers)); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(bounds.Len()))
		})
	}
}

// BenchmarkRender_Oversample compares plain rendering against supersampled
// rendering at the same output size.
func BenchmarkRender_Oversample(b *testing.B) {
	bounds := Bounds{Width: 200, Height: 150}

	for _, factor := range []int{1, 2} {
		b.Run(fmt.Sprintf("%dx", factor), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Render(bounds, benchViewport, WithOversample(factor)); err != nil {
					b.Fatal(err)
				}
			}
			b.SetBytes(int64(bounds.Len()))
		})
	}
}

// BenchmarkEscapeTime benchmarks the per-point iteration across the three
// cost classes: interior points pay the full limit, boundary points escape
// midway, exterior points escape immediately.
func BenchmarkEscapeTime(b *testing.B) {
	points := []struct {
		name string
		c    complex128
	}{
		{"interior", complex(-1.1, 0.21)},
		{"boundary", complex(-1.20, 0.35)},
		{"exterior", complex(2.5, 0)},
	}

	for _, p := range points {
		b.Run(p.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				EscapeTime(p.c, DefaultIterationLimit)
			}
		})
	}
}

// BenchmarkPixmap_Clear benchmarks clearing pixmaps of various sizes.
func BenchmarkPixmap_Clear(b *testing.B) {
	sizes := []struct {
		name   string
		bounds Bounds
	}{
		{"100x100", Bounds{100, 100}},
		{"1000x750", Bounds{1000, 750}},
		{"1920x1080", Bounds{1920, 1080}},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			pm := NewPixmap(size.bounds)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				pm.Clear(128)
			}
			b.SetBytes(int64(size.bounds.Len()))
		})
	}
}
