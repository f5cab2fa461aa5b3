package render

import "math"

// Orbit limits of the viewer
const (
	DefaultMinDistance = 2
	DefaultMaxDistance = 20
	DefaultDamping     = 0.05
)

// polar angle is kept away from the poles to avoid a degenerate view
const polarEpsilon = 1e-6

// OrbitController rotates, pans and zooms a camera around a target point
// using spherical coordinates. Rotation and pan input is damped: each Update
// applies a Damping fraction of the pending delta and keeps the rest for
// later frames.
type OrbitController struct {
	Target Vec3

	Radius float64
	Theta  float64 // azimuth around +Y
	Phi    float64 // polar angle from +Y

	MinDistance float64
	MaxDistance float64
	Damping     float64

	deltaTheta float64
	deltaPhi   float64
	panOffset  Vec3
	scale      float64
}

// NewOrbitController creates a controller matching the current camera placement
func NewOrbitController(cam Camera) *OrbitController {
	c := &OrbitController{
		MinDistance: DefaultMinDistance,
		MaxDistance: DefaultMaxDistance,
		Damping:     DefaultDamping,
	}
	c.Reset(cam)
	return c
}

// Reset adopts the camera placement and drops pending input
func (c *OrbitController) Reset(cam Camera) {
	c.Target = cam.Target
	offset := cam.Position.Sub(cam.Target)
	c.Radius = offset.Len()
	if c.Radius > 0 {
		c.Theta = math.Atan2(offset.X, offset.Z)
		c.Phi = math.Acos(clamp(offset.Y/c.Radius, -1, 1))
	}
	c.deltaTheta = 0
	c.deltaPhi = 0
	c.panOffset = Vec3{}
	c.scale = 1
}

// Rotate queues an orbit by the given angles in radians
func (c *OrbitController) Rotate(dTheta, dPhi float64) {
	c.deltaTheta += dTheta
	c.deltaPhi += dPhi
}

// Pan queues a move of the target along the camera's right and up axes, in
// world units
func (c *OrbitController) Pan(right, up float64) {
	sinT, cosT := math.Sincos(c.Theta)
	sinP, cosP := math.Sincos(c.Phi)
	// unit vectors of the current view; eye direction is (sinP*sinT, cosP, sinP*cosT)
	r := V3(cosT, 0, -sinT)
	u := V3(-cosP*sinT, sinP, -cosP*cosT)
	c.panOffset = c.panOffset.Add(r.Scale(right)).Add(u.Scale(up))
}

// Zoom queues a dolly. Factors above 1 move away from the target.
func (c *OrbitController) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	if c.scale == 0 {
		c.scale = 1
	}
	c.scale *= factor
}

// Settled reports whether there is no pending input left to apply
func (c *OrbitController) Settled() bool {
	const eps = 1e-9
	return math.Abs(c.deltaTheta) < eps && math.Abs(c.deltaPhi) < eps &&
		c.panOffset.Len() < eps && (c.scale == 0 || c.scale == 1)
}

// Update advances the damped motion by one frame and places cam
func (c *OrbitController) Update(cam *Camera) {
	damping := c.Damping
	if damping <= 0 || damping > 1 {
		damping = 1
	}

	c.Theta += c.deltaTheta * damping
	c.Phi += c.deltaPhi * damping
	c.Phi = clamp(c.Phi, polarEpsilon, math.Pi-polarEpsilon)
	c.deltaTheta *= 1 - damping
	c.deltaPhi *= 1 - damping
	c.Target = c.Target.Add(c.panOffset.Scale(damping))
	c.panOffset = c.panOffset.Scale(1 - damping)

	if c.scale > 0 {
		c.Radius *= c.scale
	}
	c.scale = 1
	if c.MinDistance > 0 && c.Radius < c.MinDistance {
		c.Radius = c.MinDistance
	}
	if c.MaxDistance > 0 && c.Radius > c.MaxDistance {
		c.Radius = c.MaxDistance
	}

	if cam == nil {
		return
	}
	sinPhi := math.Sin(c.Phi)
	cam.Position = c.Target.Add(V3(
		c.Radius*sinPhi*math.Sin(c.Theta),
		c.Radius*math.Cos(c.Phi),
		c.Radius*sinPhi*math.Cos(c.Theta),
	))
	cam.Target = c.Target
}
