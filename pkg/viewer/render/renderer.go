package render

import "math"

// RenderMode selects how meshes are rasterized
type RenderMode uint8

const (
	// RenderSolid fills faces with flat shading
	RenderSolid RenderMode = iota
	// RenderWireframe draws triangle outlines only
	RenderWireframe
)

func (m RenderMode) String() string {
	switch m {
	case RenderWireframe:
		return "wireframe"
	default:
		return "solid"
	}
}

// edgeDepthBias lets overlay lines win against the faces they lie on
const edgeDepthBias = 2e-5

// Stats summarizes one Render call
type Stats struct {
	Triangles int // rasterized faces
	Culled    int // back facing or clipped faces
	Lines     int // drawn line segments
}

// Renderer rasterizes scenes. Reuse it across frames to keep the depth
// buffer allocation.
type Renderer struct {
	Mode RenderMode

	depth  []float64
	screen []screenVertex
}

func NewRenderer() *Renderer {
	return &Renderer{Mode: RenderSolid}
}

// Release drops the internal buffers
func (r *Renderer) Release() {
	r.depth = nil
	r.screen = nil
}

type screenVertex struct {
	x, y  int
	z     float64
	valid bool
}

// Render draws s into t
func (r *Renderer) Render(t Target, s *Scene) Stats {
	var stats Stats
	if r == nil || t == nil || s == nil {
		return stats
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return stats
	}
	t.Clear(s.Background)
	r.resetDepth(w * h)

	view := s.Camera.View()
	proj := s.Camera.Projection(float64(w) / float64(h))
	viewProj := proj.Mul(view)

	for _, o := range s.objects {
		if o == nil || o.Hidden || o.Mesh == nil {
			continue
		}
		r.renderObject(t, w, h, viewProj, s, o, &stats)
	}
	return stats
}

func (r *Renderer) resetDepth(n int) {
	if cap(r.depth) < n {
		r.depth = make([]float64, n)
	}
	r.depth = r.depth[:n]
	for i := range r.depth {
		r.depth[i] = math.Inf(1)
	}
}

func project(mvp Mat4, p Vec3, near float64, w, h int) screenVertex {
	c := mvp.MulVec4(p.Point())
	if c.W <= near*0.5 {
		return screenVertex{}
	}
	inv := 1 / c.W
	nx, ny, nz := c.X*inv, c.Y*inv, c.Z*inv
	return screenVertex{
		x:     int(math.Round((nx*0.5 + 0.5) * float64(w-1))),
		y:     int(math.Round((1 - (ny*0.5 + 0.5)) * float64(h-1))),
		z:     nz*0.5 + 0.5,
		valid: true,
	}
}

func (r *Renderer) renderObject(t Target, w, h int, viewProj Mat4, s *Scene, o *Object, stats *Stats) {
	m := o.Mesh
	mvp := viewProj.Mul(o.Transform)
	near := s.Camera.Near

	if cap(r.screen) < len(m.Positions) {
		r.screen = make([]screenVertex, len(m.Positions))
	}
	screen := r.screen[:len(m.Positions)]
	for i, p := range m.Positions {
		screen[i] = project(mvp, p, near, w, h)
	}

	for i := 0; i < m.Triangles(); i++ {
		v0 := screen[m.Indices[i*3]]
		v1 := screen[m.Indices[i*3+1]]
		v2 := screen[m.Indices[i*3+2]]
		if !v0.valid || !v1.valid || !v2.valid {
			stats.Culled++
			continue
		}

		if r.Mode == RenderWireframe {
			r.line(t, w, h, v0, v1, o.Color, false)
			r.line(t, w, h, v1, v2, o.Color, false)
			r.line(t, w, h, v2, v0, o.Color, false)
			stats.Lines += 3
			stats.Triangles++
			continue
		}

		if edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y) <= 0 {
			stats.Culled++
			continue
		}

		a, b, c := m.Triangle(i)
		wa := o.Transform.MulVec4(a.Point()).XYZ()
		wb := o.Transform.MulVec4(b.Point()).XYZ()
		wc := o.Transform.MulVec4(c.Point()).XYZ()
		n := FaceNormal(wa, wb, wc)
		centroid := wa.Add(wb).Add(wc).Scale(1.0 / 3)

		r.fill(t, w, h, v0, v1, v2, o.Color.Shade(s.lightAt(centroid, n)))
		stats.Triangles++
	}

	if !o.ShowEdges {
		return
	}
	for _, seg := range m.Edges {
		a := project(mvp, seg.A, near, w, h)
		b := project(mvp, seg.B, near, w, h)
		if !a.valid || !b.valid {
			continue
		}
		r.line(t, w, h, a, b, o.EdgeColor, r.Mode == RenderSolid)
		stats.Lines++
	}
}

func (r *Renderer) fill(t Target, w, h int, v0, v1, v2 screenVertex, c Color) {
	minX := max(min(v0.x, v1.x, v2.x), 0)
	maxX := min(max(v0.x, v1.x, v2.x), w-1)
	minY := max(min(v0.y, v1.y, v2.y), 0)
	maxY := min(max(v0.y, v1.y, v2.y), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	inv := 1 / float64(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(v1.x, v1.y, v2.x, v2.y, x, y)
			w1 := edgeFn(v2.x, v2.y, v0.x, v0.y, x, y)
			w2 := edgeFn(v0.x, v0.y, v1.x, v1.y, x, y)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := (float64(w0)*v0.z + float64(w1)*v1.z + float64(w2)*v2.z) * inv
			idx := y*w + x
			if z >= r.depth[idx] {
				continue
			}
			r.depth[idx] = z
			t.SetPixel(x, y, c)
		}
	}
}

// line draws a Bresenham segment. With depthTest set, pixels hidden behind
// already drawn faces are skipped; lines never write depth.
func (r *Renderer) line(t Target, w, h int, a, b screenVertex, c Color, depthTest bool) {
	x0, y0, x1, y1 := a.x, a.y, b.x, b.y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	steps := max(dx, -dy)
	err := dx + dy
	for i := 0; ; i++ {
		if x0 >= 0 && y0 >= 0 && x0 < w && y0 < h {
			visible := true
			if depthTest {
				z := a.z
				if steps > 0 {
					z += (b.z - a.z) * float64(i) / float64(steps)
				}
				visible = z <= r.depth[y0*w+x0]+edgeDepthBias
			}
			if visible {
				t.SetPixel(x0, y0, c)
			}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
