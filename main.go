package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/renderer"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/scene"
)

func main() {
	// Parse command line flags
	defaults := renderer.DefaultConfig()
	sceneType := flag.String("scene", "random", "Scene type: 'random', 'sphere' or 'grid'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum scattering events per path (0 = scene default)")
	stride := flag.Int("stride", defaults.RowStride, "Rows claimed by a worker at a time")
	workers := flag.Int("workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count)")
	seed := flag.Int64("seed", defaults.Seed, "Seed for scene generation and sampling")
	saturate := flag.Bool("saturate", defaults.SaturateOutput, "Clamp colors to [0, 1] before quantizing")
	out := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Sphere Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
		}
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting Sphere Raytracer...")

	selectedScene, err := createScene(*sceneType, *seed)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	selectedScene.SetSamplingConfig(core.SamplingConfig{
		Width:           *width,
		Height:          *height,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})
	fmt.Printf("Using %s scene with %d spheres...\n", *sceneType, selectedScene.GetPrimitiveCount())

	filename := *out
	if filename == "" {
		outputDir := createOutputDir(*sceneType)
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	cfg := renderer.Config{
		RowStride:      *stride,
		NumWorkers:     *workers,
		Seed:           *seed,
		SaturateOutput: *saturate,
	}

	sampling := selectedScene.GetSamplingConfig()
	buf := renderer.NewFrameBuffer(sampling.Width, sampling.Height)

	job, err := renderer.Start(selectedScene, buf, cfg, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error starting render: %v\n", err)
		os.Exit(1)
	}

	// Poll the completion flag the way a display loop would
	ticker := time.NewTicker(500 * time.Millisecond)
	for !job.Finished() {
		<-ticker.C
		fmt.Printf("\rProgress: %5.1f%% (%d/%d rows)", job.Progress()*100, job.RowsCompleted(), sampling.Height)
	}
	ticker.Stop()
	fmt.Println()

	stats := job.Wait()
	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("Samples per pixel: %.1f across %d workers\n", stats.AverageSamples, stats.NumWorkers)

	img, err := renderer.BufferToImage(buf, sampling.Width, sampling.Height)
	if err != nil {
		fmt.Printf("Error converting buffer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(img))

	if err := savePNG(filename, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene builds a built-in scene by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	return scene.NewSceneByName(sceneType, seed)
}

// createOutputDir returns the directory renders of sceneType are written to
func createOutputDir(sceneType string) string {
	name := strings.ToLower(strings.TrimSpace(sceneType))
	name = filepath.Base(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "default"
	}
	return filepath.Join("output", name)
}

// savePNG writes img to filename as a PNG
func savePNG(filename string, img image.Image) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
