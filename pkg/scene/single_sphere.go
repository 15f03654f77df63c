package scene

import (
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/core"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/geometry"
	"github.com/FrozenXZeus/interactive-raytracing-inaweekend/pkg/material"
)

// NewSingleSphereScene creates a unit diffuse sphere at the origin seen through a pinhole camera
func NewSingleSphereScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	samplingConfig := core.SamplingConfig{
		Width:           200,
		Height:          200,
		SamplesPerPixel: 16,
		MaxDepth:        50,
	}

	defaultCameraConfig := geometry.CameraConfig{
		Center:      core.NewVec3(0, 0, 5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        40.0,
		Aperture:    0.0, // Pinhole, no lens samples drawn
	}
	cameraConfig := applyCameraOverride(defaultCameraConfig, cameraOverrides)

	s := newScene(cameraConfig, samplingConfig, 1)
	s.AddSphere(core.NewVec3(0, 0, 0), 1.0, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3)))

	return s
}
