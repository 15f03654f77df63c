package scene

import (
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/geometry"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/material"
)

// Scene contains all the elements needed for rendering.
// It owns the material arena; every handle stored in World resolves through Materials.
// A scene is built on one goroutine and read concurrently once rendering starts.
type Scene struct {
	Camera         *geometry.Camera
	CameraConfig   geometry.CameraConfig
	SamplingConfig core.SamplingConfig
	World          *geometry.HitableList // Root of the object hierarchy
	Materials      *material.Arena       // Material payloads referenced by World
	TopColor       core.Vec3             // Sky color toward +Y
	BottomColor    core.Vec3             // Sky color toward -Y
}

// newScene creates an empty scene with the default sky and a camera built from cameraConfig
func newScene(cameraConfig geometry.CameraConfig, samplingConfig core.SamplingConfig, capacity int) *Scene {
	return &Scene{
		Camera:         geometry.NewCamera(cameraConfig),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		World:          geometry.NewHitableList(capacity),
		Materials:      material.NewArena(capacity),
		TopColor:       core.NewVec3(0.5, 0.7, 1.0), // Blue sky
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0), // White horizon
	}
}

// applyCameraOverride merges the first override, if any, into base
func applyCameraOverride(base geometry.CameraConfig, overrides []geometry.CameraConfig) geometry.CameraConfig {
	if len(overrides) > 0 {
		return geometry.MergeCameraConfig(base, overrides[0])
	}
	return base
}

// AddSphere stores mat in the arena and adds a sphere referencing it
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) material.Handle {
	handle := s.Materials.Add(mat)
	s.World.AddSphere(geometry.NewSphere(center, radius, handle))
	return handle
}

// SetSamplingConfig applies the non-zero fields of override.
// The camera is rebuilt when the image shape changes so the aspect ratio follows it.
func (s *Scene) SetSamplingConfig(override core.SamplingConfig) {
	merged := core.MergeSamplingConfig(s.SamplingConfig, override)
	resized := merged.Width != s.SamplingConfig.Width || merged.Height != s.SamplingConfig.Height
	s.SamplingConfig = merged

	if resized && merged.Width > 0 && merged.Height > 0 {
		s.CameraConfig.AspectRatio = float64(merged.Width) / float64(merged.Height)
		s.Camera = geometry.NewCamera(s.CameraConfig)
	}
}

// Hit returns the nearest intersection with the world
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	return s.World.Hit(ray, tMin, tMax)
}

// Material resolves a handle against the scene's arena
func (s *Scene) Material(h material.Handle) *material.Material {
	return s.Materials.Get(h)
}

// BackgroundColors returns the sky gradient colors
func (s *Scene) BackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// GetSamplingConfig returns the image size and sampling settings
func (s *Scene) GetSamplingConfig() core.SamplingConfig {
	return s.SamplingConfig
}

// GetPrimitiveCount returns the total number of spheres in the scene, including nested lists
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(list *geometry.HitableList) int {
	count := 0
	for i := range list.Items {
		switch list.Items[i].Kind {
		case geometry.KindSphere:
			count++
		case geometry.KindList:
			count += countPrimitives(list.Items[i].List)
		}
	}
	return count
}
