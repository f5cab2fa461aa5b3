package render

import (
	"math"

	"github.com/immersivevr/immersive/pkg/domain/types"
)

// Mesh is an indexed triangle list with counter-clockwise front faces
type Mesh struct {
	Positions []Vec3
	Indices   []uint32

	// Edges is the outline overlay: feature edges between faces that meet
	// at an angle, plus open boundaries.
	Edges []Segment
}

// Segment is a line between two model space points
type Segment struct {
	A, B Vec3
}

// Triangles returns the number of triangles
func (m *Mesh) Triangles() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Triangle returns the corner positions of triangle i
func (m *Mesh) Triangle(i int) (Vec3, Vec3, Vec3) {
	return m.Positions[m.Indices[i*3]], m.Positions[m.Indices[i*3+1]], m.Positions[m.Indices[i*3+2]]
}

// Primitive sizes of the viewer
const (
	BoxSize          = 2
	SphereRadius     = 1.5
	SphereSegments   = 32
	CylinderRadius   = 1
	CylinderHeight   = 2
	CylinderSegments = 32

	edgeThresholdDegrees = 1
)

// MeshFor returns the stand-in primitive of a shape. Unknown shapes get a box.
func MeshFor(shape types.Shape) *Mesh {
	switch shape {
	case types.ShapeSphere:
		return Sphere(SphereRadius, SphereSegments, SphereSegments)
	case types.ShapeCylinder:
		return Cylinder(CylinderRadius, CylinderRadius, CylinderHeight, CylinderSegments)
	default:
		return Box(BoxSize, BoxSize, BoxSize)
	}
}

type boxFace struct {
	normal, u, v Vec3
}

// u × v equals normal for every face
var boxFaces = [6]boxFace{
	{normal: V3(1, 0, 0), u: V3(0, 0, -1), v: V3(0, 1, 0)},
	{normal: V3(-1, 0, 0), u: V3(0, 0, 1), v: V3(0, 1, 0)},
	{normal: V3(0, 1, 0), u: V3(1, 0, 0), v: V3(0, 0, -1)},
	{normal: V3(0, -1, 0), u: V3(1, 0, 0), v: V3(0, 0, 1)},
	{normal: V3(0, 0, 1), u: V3(1, 0, 0), v: V3(0, 1, 0)},
	{normal: V3(0, 0, -1), u: V3(-1, 0, 0), v: V3(0, 1, 0)},
}

// Box builds an axis aligned box centered on the origin
func Box(width, height, depth float64) *Mesh {
	half := V3(width/2, height/2, depth/2)
	mul := func(a, b Vec3) Vec3 { return V3(a.X*b.X, a.Y*b.Y, a.Z*b.Z) }

	m := &Mesh{}
	for _, f := range boxFaces {
		center := mul(f.normal, half)
		u := mul(f.u, half)
		v := mul(f.v, half)

		base := uint32(len(m.Positions))
		m.Positions = append(m.Positions,
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.Edges = featureEdges(m, edgeThresholdDegrees)
	return m
}

// Sphere builds a UV sphere centered on the origin
func Sphere(radius float64, widthSegments, heightSegments int) *Mesh {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	m := &Mesh{}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			row[ix] = uint32(len(m.Positions))
			m.Positions = append(m.Positions, V3(
				-radius*math.Cos(u*2*math.Pi)*math.Sin(v*math.Pi),
				radius*math.Cos(v*math.Pi),
				radius*math.Sin(u*2*math.Pi)*math.Sin(v*math.Pi),
			))
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	m.Edges = featureEdges(m, edgeThresholdDegrees)
	return m
}

// Cylinder builds a capped cylinder along Y centered on the origin
func Cylinder(radiusTop, radiusBottom, height float64, radialSegments int) *Mesh {
	radialSegments = max(radialSegments, 3)
	halfHeight := height / 2

	m := &Mesh{}
	ring := func(radius, y float64) []uint32 {
		idx := make([]uint32, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			theta := float64(x) / float64(radialSegments) * 2 * math.Pi
			idx[x] = uint32(len(m.Positions))
			m.Positions = append(m.Positions, V3(radius*math.Sin(theta), y, radius*math.Cos(theta)))
		}
		return idx
	}

	top := ring(radiusTop, halfHeight)
	bottom := ring(radiusBottom, -halfHeight)
	for x := 0; x < radialSegments; x++ {
		a, b, c, d := top[x], bottom[x], bottom[x+1], top[x+1]
		m.Indices = append(m.Indices, a, b, d, b, c, d)
	}

	if radiusTop > 0 {
		center := uint32(len(m.Positions))
		m.Positions = append(m.Positions, V3(0, halfHeight, 0))
		for x := 0; x < radialSegments; x++ {
			m.Indices = append(m.Indices, center, top[x], top[x+1])
		}
	}
	if radiusBottom > 0 {
		center := uint32(len(m.Positions))
		m.Positions = append(m.Positions, V3(0, -halfHeight, 0))
		for x := 0; x < radialSegments; x++ {
			m.Indices = append(m.Indices, center, bottom[x+1], bottom[x])
		}
	}
	m.Edges = featureEdges(m, edgeThresholdDegrees)
	return m
}

// FaceNormal is the unit normal of a counter-clockwise triangle
func FaceNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

type edgeKey [6]int64

type edgeInfo struct {
	seg     Segment
	normal  Vec3
	shared  bool
	feature bool
}

func quantize(v Vec3) [3]int64 {
	const precision = 1e4
	return [3]int64{
		int64(math.Round(v.X * precision)),
		int64(math.Round(v.Y * precision)),
		int64(math.Round(v.Z * precision)),
	}
}

func keyOf(a, b Vec3) edgeKey {
	qa, qb := quantize(a), quantize(b)
	if qb[0] < qa[0] || (qb[0] == qa[0] && (qb[1] < qa[1] || (qb[1] == qa[1] && qb[2] < qa[2]))) {
		qa, qb = qb, qa
	}
	return edgeKey{qa[0], qa[1], qa[2], qb[0], qb[1], qb[2]}
}

// featureEdges collects edges whose adjacent faces differ by more than
// thresholdDeg, plus edges used by a single face. Vertices are matched by
// position so seams with duplicated vertices are handled.
func featureEdges(m *Mesh, thresholdDeg float64) []Segment {
	cosThreshold := math.Cos(Radians(thresholdDeg))

	var order []edgeKey
	edges := make(map[edgeKey]*edgeInfo)

	for i := 0; i < m.Triangles(); i++ {
		a, b, c := m.Triangle(i)
		n := FaceNormal(a, b, c)
		if n == (Vec3{}) {
			continue
		}
		for _, s := range [3]Segment{{a, b}, {b, c}, {c, a}} {
			k := keyOf(s.A, s.B)
			info, ok := edges[k]
			if !ok {
				edges[k] = &edgeInfo{seg: s, normal: n}
				order = append(order, k)
				continue
			}
			if info.shared {
				continue
			}
			info.shared = true
			info.feature = info.normal.Dot(n) <= cosThreshold
		}
	}

	out := make([]Segment, 0, len(order))
	for _, k := range order {
		info := edges[k]
		if !info.shared || info.feature {
			out = append(out, info.seg)
		}
	}
	return out
}
