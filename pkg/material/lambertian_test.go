package material

import (
	"math/rand"
	"testing"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

func TestLambertian_Scatter(t *testing.T) {
	albedo := core.NewVec3(0.7, 0.3, 0.3)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))
	hit := HitRecord{
		T:      1,
		Point:  core.NewVec3(0, 1, 0),
		Normal: core.NewVec3(0, 1, 0),
	}

	for i := 0; i < 200; i++ {
		scatter, didScatter := lambertian.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		// The scattered ray starts at the hit point
		if !scatter.Scattered.Origin.Equals(hit.Point) {
			t.Errorf("Scattered origin should be the hit point %v, got %v", hit.Point, scatter.Scattered.Origin)
		}

		// Target lies in the unit sphere centered at point+normal, never below the tangent plane
		if scatter.Scattered.Direction.Dot(hit.Normal) < 0 {
			t.Errorf("Scattered direction %v points into the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.Subtract(hit.Normal).Length() >= 1.0 {
			t.Errorf("Scattered direction %v outside the tangent unit sphere", scatter.Scattered.Direction)
		}

		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
		}
	}
}

func TestLambertian_Deterministic(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: core.NewVec3(0, 0, 1)}
	rayIn := core.NewRay(core.NewVec3(1, 2, 5), core.NewVec3(0, 0, -1))

	// 0.75 maps to 0.5 in [-1,1], which is inside the unit sphere
	sampler := &sequenceSampler{values: []float64{0.75, 0.5, 0.5}}
	scatter, _ := lambertian.Scatter(rayIn, hit, sampler)

	expected := core.NewVec3(0.5, 0, 1)
	if !scatter.Scattered.Direction.Equals(expected) {
		t.Errorf("Expected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
}
