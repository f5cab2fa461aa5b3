package render

// Scene defaults of the viewer
var (
	DefaultBackground = Hex(0x0F0F23)

	DefaultAmbient = AmbientLight{Color: Hex(0x6366F1), Intensity: 0.4}

	DefaultDirectional = DirectionalLight{Color: Hex(0xFFFFFF), Intensity: 0.8, Position: V3(10, 10, 5)}

	DefaultPoint = PointLight{Color: Hex(0x06B6D4), Intensity: 0.6, Position: V3(-10, 10, -10)}
)

type AmbientLight struct {
	Color     Color
	Intensity float64
}

// DirectionalLight shines from Position towards the origin
type DirectionalLight struct {
	Color     Color
	Intensity float64
	Position  Vec3
}

// PointLight shines from Position in all directions without falloff
type PointLight struct {
	Color     Color
	Intensity float64
	Position  Vec3
}

// Object places a mesh in the scene
type Object struct {
	Mesh      *Mesh
	Transform Mat4
	Color     Color
	EdgeColor Color
	// ShowEdges composites the mesh's outline overlay
	ShowEdges bool
	Hidden    bool
}

// Scene is what the renderer draws
type Scene struct {
	Camera      Camera
	Background  Color
	Ambient     AmbientLight
	Directional []DirectionalLight
	Points      []PointLight

	objects []*Object
}

// NewScene returns a scene with the viewer's camera, background and lights
func NewScene() *Scene {
	return &Scene{
		Camera:      DefaultCamera(),
		Background:  DefaultBackground,
		Ambient:     DefaultAmbient,
		Directional: []DirectionalLight{DefaultDirectional},
		Points:      []PointLight{DefaultPoint},
	}
}

func (s *Scene) Add(o *Object) {
	if o == nil {
		return
	}
	if o.Transform == (Mat4{}) {
		o.Transform = Identity()
	}
	s.objects = append(s.objects, o)
}

// Remove detaches o. Removing an object that is not in the scene is a no-op.
func (s *Scene) Remove(o *Object) {
	for i, cur := range s.objects {
		if cur == o {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return
		}
	}
}

// Objects returns the objects in draw order
func (s *Scene) Objects() []*Object {
	return s.objects
}

// lightAt returns the light received by a face with world normal n at point p
func (s *Scene) lightAt(p, n Vec3) Light {
	total := LightOf(s.Ambient.Color, s.Ambient.Intensity)
	for _, d := range s.Directional {
		l := d.Position.Normalize()
		if k := n.Dot(l); k > 0 {
			total = total.Add(LightOf(d.Color, d.Intensity*k))
		}
	}
	for _, pl := range s.Points {
		l := pl.Position.Sub(p).Normalize()
		if k := n.Dot(l); k > 0 {
			total = total.Add(LightOf(pl.Color, pl.Intensity*k))
		}
	}
	return total
}
