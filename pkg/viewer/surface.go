package viewer

import (
	"math"

	"github.com/immersivevr/immersive/pkg/domain/model"
	"github.com/immersivevr/immersive/pkg/viewer/render"
)

// RotationStep is the angle in radians the primitive turns around Y per frame
const RotationStep = 0.005

// zoomBase is the dolly factor of one wheel notch
const zoomBase = 0.95

// Display is the window that hosts the surface
type Display interface {
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
}

// SurfaceState is a comparable snapshot of what the surface shows
type SurfaceState struct {
	Appearance  model.Appearance
	Mode        render.RenderMode
	EdgeOverlay bool
	Rotation    float64
	Camera      render.Vec3
	Target      render.Vec3
	Width       int
	Height      int
	Closed      bool
}

// Surface renders the stand-in primitive of the focused record
type Surface struct {
	scene    *render.Scene
	renderer *render.Renderer
	target   *render.Image
	object   *render.Object
	orbit    *render.OrbitController
	display  Display

	appearance  model.Appearance
	rotation    float64
	unsubscribe func()
	closed      bool
	lastStats   render.Stats
}

// NewSurface creates a surface showing the default primitive
func NewSurface(width, height int) *Surface {
	scene := render.NewScene()
	s := &Surface{
		scene:    scene,
		renderer: render.NewRenderer(),
		target:   render.NewImage(width, height),
		orbit:    render.NewOrbitController(scene.Camera),
	}
	s.Show(model.DefaultAppearance())
	return s
}

// SetDisplay attaches the hosting window used by ToggleFullscreen
func (s *Surface) SetDisplay(d Display) {
	if s.closed {
		return
	}
	s.display = d
}

// Attach follows sel: every Select swaps the primitive. A previous
// selection is detached first.
func (s *Surface) Attach(sel *Selection) {
	if s.closed || sel == nil {
		return
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.unsubscribe = sel.Subscribe(func(record *model.ModelRecord) {
		s.Show(model.AppearanceFor(record))
	})
	if focused := sel.Focused(); focused != nil {
		s.Show(model.AppearanceFor(focused))
	}
}

// Show replaces the primitive. Rotation and render mode are kept.
func (s *Surface) Show(a model.Appearance) {
	if s.closed {
		return
	}
	if s.object != nil {
		s.scene.Remove(s.object)
	}
	s.appearance = a
	s.object = &render.Object{
		Mesh:      render.MeshFor(a.Shape),
		Transform: s.transform(),
		Color:     render.FromModel(a.Color),
		EdgeColor: render.FromModel(a.EdgeColor),
		ShowEdges: s.renderer.Mode == render.RenderSolid,
	}
	s.scene.Add(s.object)
}

func (s *Surface) transform() render.Mat4 {
	return render.RotateY(s.rotation)
}

// ToggleWireframe flips between the outline only view and the solid view
// with the edge overlay. It returns true when wireframe is now on.
func (s *Surface) ToggleWireframe() bool {
	if s.closed {
		return false
	}
	if s.renderer.Mode == render.RenderWireframe {
		s.renderer.Mode = render.RenderSolid
	} else {
		s.renderer.Mode = render.RenderWireframe
	}
	// the edge overlay belongs to the solid view only
	s.object.ShowEdges = s.renderer.Mode == render.RenderSolid
	return s.renderer.Mode == render.RenderWireframe
}

// Step advances one frame: rotation around Y and damped camera motion
func (s *Surface) Step() {
	if s.closed {
		return
	}
	s.rotation += RotationStep
	s.object.Transform = s.transform()
	s.orbit.Update(&s.scene.Camera)
}

// ResetCamera returns to the home position and drops pending orbit input
func (s *Surface) ResetCamera() {
	if s.closed {
		return
	}
	s.scene.Camera = render.DefaultCamera()
	s.orbit.Reset(s.scene.Camera)
}

// ToggleFullscreen sets the display to the opposite of its current state.
// It reports the new state; without a display it does nothing.
func (s *Surface) ToggleFullscreen() bool {
	if s.closed || s.display == nil {
		return false
	}
	next := !s.display.IsFullscreen()
	s.display.SetFullscreen(next)
	return next
}

// Resize adapts the render buffer. The projection follows the buffer aspect
// on the next Render.
func (s *Surface) Resize(width, height int) {
	if s.closed {
		return
	}
	s.target.Resize(width, height)
}

// Orbit rotates the camera by a pointer drag in pixels
func (s *Surface) Orbit(dx, dy float64) {
	if s.closed {
		return
	}
	_, h := s.target.Size()
	if h <= 0 {
		return
	}
	s.orbit.Rotate(-2*math.Pi*dx/float64(h), -2*math.Pi*dy/float64(h))
}

// Pan shifts the view by a pointer drag in pixels. The point under the
// cursor at the target depth follows the pointer.
func (s *Surface) Pan(dx, dy float64) {
	if s.closed {
		return
	}
	_, h := s.target.Size()
	if h <= 0 {
		return
	}
	perPixel := 2 * s.orbit.Radius * math.Tan(s.scene.Camera.FOVY/2) / float64(h)
	s.orbit.Pan(-dx*perPixel, dy*perPixel)
}

// Zoom dollies by wheel notches. Positive values move closer.
func (s *Surface) Zoom(notches float64) {
	if s.closed || notches == 0 {
		return
	}
	s.orbit.Zoom(math.Pow(zoomBase, notches))
}

// Render draws the current frame and returns it. It returns nil once the
// surface is closed.
func (s *Surface) Render() *render.Image {
	if s.closed {
		return nil
	}
	s.lastStats = s.renderer.Render(s.target, s.scene)
	return s.target
}

// Stats returns the counters of the last Render
func (s *Surface) Stats() render.Stats {
	return s.lastStats
}

func (s *Surface) State() SurfaceState {
	w, h := s.target.Size()
	state := SurfaceState{
		Appearance: s.appearance,
		Mode:       s.renderer.Mode,
		Rotation:   s.rotation,
		Camera:     s.scene.Camera.Position,
		Target:     s.scene.Camera.Target,
		Width:      w,
		Height:     h,
		Closed:     s.closed,
	}
	if s.object != nil {
		state.EdgeOverlay = s.object.ShowEdges
	}
	return state
}

// Close detaches from the selection and releases render buffers and the
// display. Every later call on the surface is a no-op.
func (s *Surface) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	if s.object != nil {
		s.scene.Remove(s.object)
		s.object = nil
	}
	s.renderer.Release()
	s.target.Release()
	s.display = nil
}
