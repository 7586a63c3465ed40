package config

import "sync"

// CameraSettings holds camera and input configuration
type CameraSettings struct {
	mu          sync.RWMutex
	fov         float32 // degrees
	moveSpeed   float32 // blocks per second
	sensitivity float32 // degrees per pixel of mouse travel
}

var globalCameraSettings = &CameraSettings{
	fov:         60.0,
	moveSpeed:   12.0,
	sensitivity: 0.1,
}

// GetFOV returns the vertical field of view in degrees
func GetFOV() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.fov
}

// SetFOV sets the vertical field of view in degrees
func SetFOV(fov float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	// Clamp to reasonable values
	if fov < 30 {
		fov = 30
	}
	if fov > 110 {
		fov = 110
	}
	globalCameraSettings.fov = fov
}

// GetMoveSpeed returns the freecam movement speed in blocks per second
func GetMoveSpeed() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.moveSpeed
}

// SetMoveSpeed sets the freecam movement speed in blocks per second
func SetMoveSpeed(speed float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if speed < 1 {
		speed = 1
	}
	if speed > 100 {
		speed = 100
	}
	globalCameraSettings.moveSpeed = speed
}

// GetMouseSensitivity returns mouse look sensitivity in degrees per pixel
func GetMouseSensitivity() float32 {
	globalCameraSettings.mu.RLock()
	defer globalCameraSettings.mu.RUnlock()
	return globalCameraSettings.sensitivity
}

// SetMouseSensitivity sets mouse look sensitivity in degrees per pixel
func SetMouseSensitivity(s float32) {
	globalCameraSettings.mu.Lock()
	defer globalCameraSettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 1 {
		s = 1
	}
	globalCameraSettings.sensitivity = s
}
