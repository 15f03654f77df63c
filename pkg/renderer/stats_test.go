package renderer

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Create a 2x2 image
	// Top-left: Red (1, 0, 0) -> Lum = 0.2126
	// Top-right: Green (0, 1, 0) -> Lum = 0.7152
	// Bottom-left: Blue (0, 0, 1) -> Lum = 0.0722
	// Bottom-right: Black (0, 0, 0) -> Lum = 0.0

	// Expected average: (0.2126 + 0.7152 + 0.0722 + 0.0) / 4 = 1.0 / 4 = 0.25

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{0, 0, 0, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCalculateAverageLuminance_White(t *testing.T) {
	// 1x1 White pixel -> Lum = 1.0
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255})

	avgLum := CalculateAverageLuminance(img)
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminosity %f, got %f", expected, avgLum)
	}
}

func TestCombineStats(t *testing.T) {
	workers := []WorkerStats{
		{ID: 0, Chunks: 2, Rows: 60, Pixels: 600, Samples: 6000},
		{ID: 1, Chunks: 1, Rows: 5, Pixels: 50, Samples: 500},
		{ID: 2},
	}

	stats := combineStats(workers, 2*time.Second)

	if stats.TotalPixels != 650 || stats.TotalSamples != 6500 || stats.RowsRendered != 65 {
		t.Errorf("Unexpected totals %+v", stats)
	}
	if stats.AverageSamples != 10 {
		t.Errorf("Expected average 10 samples, got %f", stats.AverageSamples)
	}
	if stats.NumWorkers != 3 || stats.Duration != 2*time.Second {
		t.Errorf("Unexpected worker count or duration %+v", stats)
	}
}

func TestCombineStats_Empty(t *testing.T) {
	stats := combineStats(nil, 0)
	if stats.AverageSamples != 0 || stats.TotalPixels != 0 {
		t.Errorf("Expected zero stats, got %+v", stats)
	}
}

func TestWorkerStatsMerge(t *testing.T) {
	ws := WorkerStats{ID: 3, Chunks: 1, Rows: 30, Pixels: 300, Samples: 3000}
	ws.Merge(WorkerStats{ID: 9, Chunks: 1, Rows: 10, Pixels: 100, Samples: 1000})

	expected := WorkerStats{ID: 3, Chunks: 2, Rows: 40, Pixels: 400, Samples: 4000}
	if ws != expected {
		t.Errorf("Expected %+v, got %+v", expected, ws)
	}
}
