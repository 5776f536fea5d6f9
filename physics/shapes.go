package physics

import (
	"github.com/jakecoffman/cp/v2"

	"github.com/Waridley/rapier/gm"
)

type ToShape interface {
	MakeShape(body *cp.Body) *cp.Shape
	Moment(mass float64) float64
}

type CircleShape struct {
	Radius float64
}

func (s CircleShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, s.Radius, cp.Vector{})
}

func (s CircleShape) Moment(mass float64) float64 {
	return cp.MomentForCircle(mass, 0, s.Radius, cp.Vector{})
}

type BoxShape struct {
	Width, Height float64
}

func (s BoxShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewBox(body, s.Width, s.Height, 0)
}

func (s BoxShape) Moment(mass float64) float64 {
	return cp.MomentForBox(mass, s.Width, s.Height)
}

type SegmentShape struct {
	A, B   gm.Vec
	Radius float64
}

func (s SegmentShape) MakeShape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, cpVecOf(s.A), cpVecOf(s.B), s.Radius)
}

func (s SegmentShape) Moment(mass float64) float64 {
	return cp.MomentForSegment(mass, cpVecOf(s.A), cpVecOf(s.B), s.Radius)
}

func cpVecOf(vec gm.Vec) cp.Vector {
	return cp.Vector{X: vec.X, Y: vec.Y}
}

func toVec(v cp.Vector) gm.Vec {
	return gm.Vec{X: v.X, Y: v.Y}
}
