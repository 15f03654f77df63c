package renderer

import (
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/geometry"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/integrator"
)

// Scene interface to avoid circular imports
type Scene interface {
	integrator.Scene
	GetCamera() *geometry.Camera
	GetSamplingConfig() core.SamplingConfig
}

// Raytracer turns rows of pixels into quantized RGB bytes.
// It holds no mutable state and may be shared by all workers.
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	width      int
	height     int
	config     core.SamplingConfig
	saturate   bool
}

// NewRaytracer creates a raytracer for a width x height image
func NewRaytracer(scene Scene, config core.SamplingConfig, saturate bool) *Raytracer {
	return &Raytracer{
		scene:      scene,
		integrator: integrator.NewPathTracingIntegrator(config),
		width:      config.Width,
		height:     config.Height,
		config:     config,
		saturate:   saturate,
	}
}

// PixelColor returns the averaged linear color of pixel (i, j), where j = 0 is the bottom row
func (rt *Raytracer) PixelColor(i, j int, sampler core.Sampler) core.Vec3 {
	camera := rt.scene.GetCamera()
	colorAccum := core.Vec3{}

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		u := (float64(i) + sampler.Get1D()) / float64(rt.width)
		v := (float64(j) + sampler.Get1D()) / float64(rt.height)

		ray := camera.GetRay(u, v, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, sampler))
	}

	return colorAccum.Divide(float64(rt.config.SamplesPerPixel))
}

// RenderRows renders every pixel in rows into buf.
// Pixel (i, j) occupies buf[3*(j*width+i) : 3*(j*width+i)+3].
func (rt *Raytracer) RenderRows(rows RowRange, buf []byte, sampler core.Sampler) WorkerStats {
	var stats WorkerStats

	for j := rows.Start; j < rows.End; j++ {
		for i := 0; i < rt.width; i++ {
			// Gamma 2
			c := rt.PixelColor(i, j, sampler).Sqrt()

			offset := 3 * (j*rt.width + i)
			buf[offset] = Quantize(c.X, rt.saturate)
			buf[offset+1] = Quantize(c.Y, rt.saturate)
			buf[offset+2] = Quantize(c.Z, rt.saturate)
		}
	}

	stats.Chunks = 1
	stats.Rows = rows.Rows()
	stats.Pixels = rows.Rows() * rt.width
	stats.Samples = stats.Pixels * rt.config.SamplesPerPixel
	return stats
}

// Quantize maps a gamma-corrected channel to a byte as int(255.99*c).
// Values outside [0, 1] wrap modulo 256 unless saturate clamps them first.
func Quantize(c float64, saturate bool) byte {
	if saturate {
		c = min(max(c, 0), 1)
	}
	return byte(int(255.99 * c))
}
