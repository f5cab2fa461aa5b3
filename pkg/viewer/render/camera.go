package render

// Default camera parameters of the viewer
const (
	DefaultFOVDegrees = 75
	DefaultNear       = 0.1
	DefaultFar        = 1000
)

// HomePosition is where the camera starts and where ResetCamera returns to
var HomePosition = V3(5, 5, 5)

// Camera is a perspective camera looking at Target
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	FOVY float64 // radians
	Near float64
	Far  float64
}

// DefaultCamera returns the camera at HomePosition looking at the origin
func DefaultCamera() Camera {
	return Camera{
		Position: HomePosition,
		Target:   V3(0, 0, 0),
		Up:       V3(0, 1, 0),
		FOVY:     Radians(DefaultFOVDegrees),
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return LookAt(c.Position, c.Target, up)
}

func (c Camera) Projection(aspect float64) Mat4 {
	return Perspective(c.FOVY, aspect, c.Near, c.Far)
}
