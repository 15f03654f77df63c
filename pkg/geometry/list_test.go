package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
)

func TestHitableList_Empty(t *testing.T) {
	list := NewHitableList(0)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Empty list should never report a hit")
	}
}

func TestHitableList_NearestHitRegardlessOfOrder(t *testing.T) {
	// Sphere A is hit at t=2, sphere B at t=5
	sphereA := NewSphere(core.NewVec3(0, 0, -3), 1, 1)
	sphereB := NewSphere(core.NewVec3(0, 0, -6), 1, 2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := map[string][]Sphere{
		"A then B": {sphereA, sphereB},
		"B then A": {sphereB, sphereA},
	}

	for name, spheres := range orders {
		t.Run(name, func(t *testing.T) {
			list := NewHitableList(len(spheres))
			for _, s := range spheres {
				list.AddSphere(s)
			}

			hit, isHit := list.Hit(ray, 0, 100)
			if !isHit {
				t.Fatal("Expected a hit")
			}
			if hit.Material != 1 {
				t.Errorf("Expected sphere A (material 1), got material %d", hit.Material)
			}
			if math.Abs(hit.T-2) > 1e-9 {
				t.Errorf("Expected t=2, got %f", hit.T)
			}
		})
	}
}

func TestHitableList_RespectsInterval(t *testing.T) {
	list := NewHitableList(2)
	list.AddSphere(NewSphere(core.NewVec3(0, 0, -3), 1, 1))
	list.AddSphere(NewSphere(core.NewVec3(0, 0, -6), 1, 2))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Excluding the front of A leaves its back face at t=4
	hit, isHit := list.Hit(ray, 3, 100)
	if !isHit || math.Abs(hit.T-4) > 1e-9 || hit.Material != 1 {
		t.Errorf("Expected back face of A at t=4, got t=%f material=%d hit=%t", hit.T, hit.Material, isHit)
	}

	if _, isHit := list.Hit(ray, 0, 1.5); isHit {
		t.Error("Expected no hit when every intersection lies beyond tMax")
	}
}

func TestHitableList_Nested(t *testing.T) {
	inner := NewHitableList(1)
	inner.AddSphere(NewSphere(core.NewVec3(0, 0, -3), 1, 5))

	outer := NewHitableList(2)
	outer.AddSphere(NewSphere(core.NewVec3(0, 0, -10), 1, 6))
	outer.Add(ListHitable(inner))

	if outer.Len() != 2 {
		t.Fatalf("Expected 2 members, got %d", outer.Len())
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := outer.Hit(ray, 0.001, math.Inf(1))
	if !isHit || hit.Material != 5 {
		t.Errorf("Expected nested sphere (material 5), got %d (hit=%t)", hit.Material, isHit)
	}
}

func TestHitableList_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	list := NewHitableList(50)
	spheres := make([]Sphere, 0, 50)
	for i := 0; i < 50; i++ {
		center := core.RandomInUnitSphere(sampler).Multiply(20)
		s := NewSphere(center, 0.5+random.Float64()*2, 0)
		spheres = append(spheres, s)
		list.AddSphere(s)
	}

	for i := 0; i < 200; i++ {
		origin := core.RandomInUnitSphere(sampler).Multiply(30)
		direction := core.RandomInUnitSphere(sampler)
		ray := core.NewRay(origin, direction)

		best := math.Inf(1)
		for j := range spheres {
			if hit, isHit := spheres[j].Hit(ray, 0.001, math.Inf(1)); isHit && hit.T < best {
				best = hit.T
			}
		}

		hit, isHit := list.Hit(ray, 0.001, math.Inf(1))
		if isHit != !math.IsInf(best, 1) {
			t.Fatalf("Ray %d: list hit=%t, brute force best=%f", i, isHit, best)
		}
		if isHit && hit.T != best {
			t.Errorf("Ray %d: expected nearest t=%f, got %f", i, best, hit.T)
		}
	}
}
