// Package render is a small software 3D engine used by the desktop viewer.
//
// Pipeline: Scene → model/view/projection → clip → rasterize → Target.
//
// It draws a handful of primitives with flat shading, a depth buffer and
// an optional edge overlay. It makes no use of the GPU.
package render
