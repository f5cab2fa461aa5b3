package types

// Shape is a primitive used in place of real model geometry
type Shape string

const (
	ShapeBox      Shape = "box"
	ShapeSphere   Shape = "sphere"
	ShapeCylinder Shape = "cylinder"
)

// AllShapes returns all primitive shapes
func AllShapes() []Shape {
	return []Shape{
		ShapeBox,
		ShapeSphere,
		ShapeCylinder,
	}
}

// IsValid checks if the shape is one of the known primitives
func (s Shape) IsValid() bool {
	switch s {
	case ShapeBox,
		ShapeSphere,
		ShapeCylinder:
		return true
	default:
		return false
	}
}

func (s Shape) String() string {
	return string(s)
}
