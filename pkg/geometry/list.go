package geometry

import (
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/material"
)

// HitableList is an ordered flat collection scanned linearly on every query
type HitableList struct {
	Items []Hitable
}

// NewHitableList creates an empty list with room for capacity items
func NewHitableList(capacity int) *HitableList {
	return &HitableList{Items: make([]Hitable, 0, capacity)}
}

// Add appends an item to the list
func (l *HitableList) Add(h Hitable) {
	l.Items = append(l.Items, h)
}

// AddSphere appends a sphere to the list
func (l *HitableList) AddSphere(s Sphere) {
	l.Items = append(l.Items, SphereHitable(s))
}

// Len returns the number of direct members
func (l *HitableList) Len() int {
	return len(l.Items)
}

// Hit returns the nearest hit among all members.
// Each member is queried against the closest hit found so far, so order does not matter.
func (l *HitableList) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for i := range l.Items {
		if hit, isHit := l.Items[i].Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
