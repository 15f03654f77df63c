package material

import (
	"math"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

// NewDielectric creates a transparent material like glass that can both reflect and refract
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

func (m *Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Clear glass never tints
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	direction := rayIn.Direction
	cosDirNormal := direction.Dot(hit.Normal) / direction.Length()

	var outwardNormal core.Vec3
	var refractionRatio, cosine float64
	if direction.Dot(hit.Normal) > 0 {
		// Exiting the material (glass to air)
		outwardNormal = hit.Normal.Negate()
		refractionRatio = m.RefractiveIndex
		cosine = m.RefractiveIndex * cosDirNormal
	} else {
		// Entering the material (air to glass)
		outwardNormal = hit.Normal
		refractionRatio = 1.0 / m.RefractiveIndex
		cosine = -cosDirNormal
	}

	reflected := reflect(direction, hit.Normal)

	refracted, canRefract := refract(direction, outwardNormal, refractionRatio)
	if !canRefract || sampler.Get1D() < Reflectance(cosine, m.RefractiveIndex) {
		return ScatterResult{
			Scattered:   core.NewRay(hit.Point, reflected),
			Attenuation: attenuation,
		}, true
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, refracted),
		Attenuation: attenuation,
	}, true
}

// refract bends v through a surface with normal n using Snell's law.
// It reports false on total internal reflection.
func refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
