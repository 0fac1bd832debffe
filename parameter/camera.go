package parameter

// Camera
const (
	CameraX = 0.0
	CameraY = 5.0
	CameraZ = 10.0

	// CameraFOVDegrees is the vertical field of view
	CameraFOVDegrees = 60.0

	// CameraNear discards points closer than this to the eye
	CameraNear = 0.1

	// CellAspect is terminal cell height over width, cells are roughly twice as tall as wide
	CellAspect = 2.0
)
