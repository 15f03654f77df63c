package geometry

import (
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/material"
)

// Kind identifies the payload carried by a Hitable
type Kind uint8

const (
	KindSphere Kind = iota
	KindList
)

// Hitable is a closed variant over the geometry the engine can intersect.
// Sphere is used when Kind is KindSphere, List when Kind is KindList.
type Hitable struct {
	Kind   Kind
	Sphere Sphere
	List   *HitableList
}

// SphereHitable wraps a sphere as a Hitable
func SphereHitable(s Sphere) Hitable {
	return Hitable{Kind: KindSphere, Sphere: s}
}

// ListHitable wraps a nested list as a Hitable
func ListHitable(l *HitableList) Hitable {
	return Hitable{Kind: KindList, List: l}
}

// Hit reports the nearest intersection inside (tMin, tMax)
func (h *Hitable) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	switch h.Kind {
	case KindSphere:
		return h.Sphere.Hit(ray, tMin, tMax)
	case KindList:
		return h.List.Hit(ray, tMin, tMax)
	default:
		return material.HitRecord{}, false
	}
}
