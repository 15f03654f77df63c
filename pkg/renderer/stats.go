package renderer

import (
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of camera samples taken
	AverageSamples float64       // Average samples per pixel
	RowsRendered   int           // Rows written to the buffer
	NumWorkers     int           // Workers that took part in the render
	Duration       time.Duration // Wall time from dispatch to join
	Workers        []WorkerStats // Per-worker breakdown, indexed by worker ID
}

// WorkerStats tracks the work done by a single worker
type WorkerStats struct {
	ID      int // Worker index
	Chunks  int // Row ranges claimed
	Rows    int // Rows rendered
	Pixels  int // Pixels rendered
	Samples int // Camera samples taken
}

// Merge accumulates other into ws, keeping ws's ID
func (ws *WorkerStats) Merge(other WorkerStats) {
	ws.Chunks += other.Chunks
	ws.Rows += other.Rows
	ws.Pixels += other.Pixels
	ws.Samples += other.Samples
}

// combineStats folds per-worker totals into render-wide statistics
func combineStats(workers []WorkerStats, duration time.Duration) RenderStats {
	stats := RenderStats{
		NumWorkers: len(workers),
		Duration:   duration,
		Workers:    workers,
	}

	for _, w := range workers {
		stats.TotalPixels += w.Pixels
		stats.TotalSamples += w.Samples
		stats.RowsRendered += w.Rows
	}

	if stats.TotalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(stats.TotalPixels)
	}

	return stats
}
