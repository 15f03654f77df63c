package material

import (
	"fmt"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

// Kind identifies which scattering model a Material uses
type Kind uint8

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// String returns a readable name for the material kind
func (k Kind) String() string {
	switch k {
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Material is a closed variant over the supported surface models.
// Only the fields relevant to Kind are meaningful.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal color
	Fuzz            float64   // Metal roughness in [0, 1]
	RefractiveIndex float64   // Dielectric index of refraction
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64   // Parameter t along the ray
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit normal, not flipped for back faces
	Material Handle    // Material of the hit object
}

// Scatter decides whether the incoming ray continues after striking the surface.
// It returns false when the ray is absorbed; the result is then the zero value.
func (m *Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
