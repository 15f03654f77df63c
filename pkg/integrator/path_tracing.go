package integrator

import (
	"math"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

// HitEpsilon is the lower bound of every intersection query.
// It keeps scattered rays from re-hitting the surface they leave.
const HitEpsilon = 1e-4

// PathTracingIntegrator implements unidirectional path tracing against a sky gradient
type PathTracingIntegrator struct {
	config core.SamplingConfig
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor follows a path until it escapes to the sky, is absorbed or
// exceeds MaxDepth scattering events. Paths that never escape contribute black.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; ; depth++ {
		hit, isHit := scene.Hit(ray, HitEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(BackgroundGradient(ray, scene))
		}

		if depth >= pt.config.MaxDepth {
			return core.Vec3{}
		}

		scatter, didScatter := scene.Material(hit.Material).Scatter(ray, hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}

// BackgroundGradient returns the sky color seen along r.
// The blend runs from bottomColor at unit Y = -1 to topColor at unit Y = +1.
func BackgroundGradient(r core.Ray, scene Scene) core.Vec3 {
	topColor, bottomColor := scene.BackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	// (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}
