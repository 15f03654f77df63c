package renderer

import (
	"fmt"
	"sync/atomic"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

// Config contains dispatcher settings that do not change the scene
type Config struct {
	RowStride      int   // Rows claimed per scheduler call
	NumWorkers     int   // Number of parallel workers (0 = use CPU count)
	Seed           int64 // Base seed for every worker's random generator
	SaturateOutput bool  // Clamp channels to [0, 1] before quantizing instead of wrapping
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		RowStride:      30,
		NumWorkers:     0,
		Seed:           42,
		SaturateOutput: false,
	}
}

// RenderJob is a render running in the background
type RenderJob struct {
	finished      atomic.Bool
	rowsCompleted atomic.Int64
	totalRows     int
	done          chan struct{}
	stats         RenderStats
}

// Finished reports whether every worker has joined. Once true the buffer is complete.
func (j *RenderJob) Finished() bool {
	return j.finished.Load()
}

// Wait blocks until the render completes and returns its statistics
func (j *RenderJob) Wait() RenderStats {
	<-j.done
	return j.stats
}

// RowsCompleted returns how many rows have been fully written so far
func (j *RenderJob) RowsCompleted() int {
	return int(j.rowsCompleted.Load())
}

// Progress returns the fraction of rows completed in [0, 1]
func (j *RenderJob) Progress() float64 {
	if j.totalRows == 0 {
		return 1
	}
	return float64(j.RowsCompleted()) / float64(j.totalRows)
}

// Render renders scene into buf and returns when every row has been written
func Render(scene Scene, buf []byte, cfg Config, logger core.Logger) (RenderStats, error) {
	job, err := Start(scene, buf, cfg, logger)
	if err != nil {
		return RenderStats{}, err
	}
	return job.Wait(), nil
}

// Start validates the request and renders scene into buf in the background.
// The caller must not read buf until Finished reports true or Wait returns,
// and must keep scene alive and unmodified until then.
func Start(scene Scene, buf []byte, cfg Config, logger core.Logger) (*RenderJob, error) {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	sampling := scene.GetSamplingConfig()
	if err := validate(sampling, cfg, len(buf)); err != nil {
		return nil, fmt.Errorf("invalid render request: %w", err)
	}

	raytracer := NewRaytracer(scene, sampling, cfg.SaturateOutput)
	scheduler := NewRowScheduler(sampling.Height, cfg.RowStride)

	job := &RenderJob{
		totalRows: sampling.Height,
		done:      make(chan struct{}),
	}
	pool := NewWorkerPool(raytracer, scheduler, buf, cfg.NumWorkers, cfg.Seed, &job.rowsCompleted)

	logger.Printf("Rendering %dx%d, %d samples/pixel, max depth %d, %d workers, %d rows per chunk\n",
		sampling.Width, sampling.Height, sampling.SamplesPerPixel, sampling.MaxDepth,
		pool.GetNumWorkers(), cfg.RowStride)

	go func() {
		job.stats = pool.Run()
		logger.Printf("Render complete: %d pixels, %d samples in %v\n",
			job.stats.TotalPixels, job.stats.TotalSamples, job.stats.Duration)
		job.finished.Store(true)
		close(job.done)
	}()

	return job, nil
}

// validate rejects requests that would index outside buf
func validate(sampling core.SamplingConfig, cfg Config, bufLen int) error {
	if sampling.Width <= 0 || sampling.Height <= 0 {
		return fmt.Errorf("image size %dx%d must be positive", sampling.Width, sampling.Height)
	}
	if sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", sampling.SamplesPerPixel)
	}
	if sampling.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", sampling.MaxDepth)
	}
	if cfg.RowStride <= 0 {
		return fmt.Errorf("row stride must be positive, got %d", cfg.RowStride)
	}
	if expected := 3 * sampling.Width * sampling.Height; bufLen != expected {
		return fmt.Errorf("buffer holds %d bytes, expected %d for %dx%d RGB",
			bufLen, expected, sampling.Width, sampling.Height)
	}
	return nil
}
