package integrator

import (
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/material"
)

// Scene is the read-only view of a world the integrator traces against.
// Implementations must be safe for concurrent readers.
type Scene interface {
	// Hit returns the nearest intersection strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
	// Material resolves a handle produced when the scene was built
	Material(h material.Handle) *material.Material
	// BackgroundColors returns the sky colors toward +Y and -Y
	BackgroundColors() (topColor, bottomColor core.Vec3)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance carried back along ray
	RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3
}
