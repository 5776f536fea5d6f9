// Package physics runs the narrow phase of the collision simulation on top
// of a chipmunk space and reports intersection and contact changes to a
// pipeline.EventHandler.
//
// The package decides *when* an event happened and whether the involved
// colliders asked for it (their ActiveEvents mask); what happens to the
// event afterwards is entirely up to the configured handler.
package physics

import (
	"sync"
	"sync/atomic"

	"github.com/alphadose/haxmap"
	"github.com/fogfish/opts"
	"github.com/jakecoffman/cp/v2"

	"github.com/Waridley/rapier/geometry"
	"github.com/Waridley/rapier/gm"
	"github.com/Waridley/rapier/pipeline"
)

// all shapes managed by a World share one collision type so that a single
// pair handler observes every begin/separate exactly once
const colliderType cp.CollisionType = 1

var (
	// WithGravity sets the constant acceleration applied to dynamic bodies.
	WithGravity = opts.ForName[World, gm.Vec]("gravity")
	// WithDamping sets the fraction of velocity a body keeps per second.
	WithDamping = opts.ForName[World, float64]("damping")
	// WithIterations sets the number of solver iterations per step.
	WithIterations = opts.ForName[World, uint]("iterations")
)

// ColliderDesc describes a collider to add to a World.
type ColliderDesc struct {
	Shape    ToShape
	Position gm.Vec
	Velocity gm.Vec

	// Mass of the collider's body. Zero makes the body static.
	Mass float64

	Elasticity float64
	Friction   float64

	// Sensor colliders detect overlap but produce no collision response.
	// Overlap changes involving a sensor are reported as intersection
	// events, contacts between two solid colliders as contact events.
	Sensor bool

	// Events selects which event categories this collider participates in.
	// An event is dispatched when at least one of the two involved
	// colliders has the matching bit set.
	Events pipeline.ActiveEvents
}

// World owns a chipmunk space together with the colliders added to it and
// dispatches collision events to its handler from within Step.
type World struct {
	gravity    gm.Vec
	damping    float64
	iterations uint

	handler pipeline.EventHandler
	space   *cp.Space

	// registered colliders, keyed by raw handle; read lock-free from the
	// collision callbacks
	colliders *haxmap.Map[uint64, *collider]

	// handle arena, guarded by mu
	mu          sync.Mutex
	generations []uint32
	freeSlots   []uint32

	// scratch contact pair handed to the handler, reused between events;
	// only touched from within Step
	scratch geometry.ContactPair
}

type collider struct {
	handle geometry.ColliderHandle
	body   *cp.Body
	shape  *cp.Shape
	sensor bool
	events atomic.Uint32
}

func (c *collider) activeEvents() pipeline.ActiveEvents {
	return pipeline.ActiveEvents(c.events.Load())
}

// NewWorld creates an empty world reporting to handler. A nil handler is
// replaced by the no-op handler.
func NewWorld(handler pipeline.EventHandler, options ...opts.Option[World]) (*World, error) {
	if handler == nil {
		handler = pipeline.NoopEventHandler{}
	}

	w := &World{
		damping:    1.0,
		iterations: 10,
		handler:    handler,
		colliders:  haxmap.New[uint64, *collider](),
	}

	if err := opts.Apply(w, options); err != nil {
		return nil, err
	}

	space := cp.NewSpace()
	space.Iterations = w.iterations
	space.SetGravity(cpVecOf(w.gravity))
	space.SetDamping(w.damping)

	collisions := space.NewCollisionHandler(colliderType, colliderType)
	collisions.BeginFunc = w.onBegin
	collisions.SeparateFunc = w.onSeparate

	w.space = space
	return w, nil
}

// AddCollider adds a collider to the world and returns its handle.
func (w *World) AddCollider(desc ColliderDesc) geometry.ColliderHandle {
	handle := w.allocHandle()

	var body *cp.Body
	if desc.Mass > 0 {
		body = cp.NewBody(desc.Mass, desc.Shape.Moment(desc.Mass))
	} else {
		body = cp.NewStaticBody()
	}

	body.SetPosition(cpVecOf(desc.Position))
	body.SetVelocity(desc.Velocity.X, desc.Velocity.Y)
	w.space.AddBody(body)

	shape := desc.Shape.MakeShape(body)
	shape.SetElasticity(desc.Elasticity)
	shape.SetFriction(desc.Friction)
	shape.SetSensor(desc.Sensor)
	shape.SetCollisionType(colliderType)
	shape.UserData = handle
	w.space.AddShape(shape)

	c := &collider{
		handle: handle,
		body:   body,
		shape:  shape,
		sensor: desc.Sensor,
	}
	c.events.Store(uint32(desc.Events))

	w.colliders.Set(uint64(handle), c)
	return handle
}

// RemoveCollider removes the collider from the world. Contacts that were
// alive at this point are reported as stopped before the collider is gone.
// Must not be called from within Step.
func (w *World) RemoveCollider(handle geometry.ColliderHandle) bool {
	c, ok := w.colliders.Get(uint64(handle))
	if !ok {
		return false
	}

	// removing the shape fires separate callbacks for live arbiters, so the
	// registry entry has to stay valid until after this call
	w.space.RemoveShape(c.shape)
	w.space.RemoveBody(c.body)

	w.colliders.Del(uint64(handle))
	w.freeHandle(handle)
	return true
}

// SetActiveEvents replaces the event mask of a collider.
func (w *World) SetActiveEvents(handle geometry.ColliderHandle, events pipeline.ActiveEvents) bool {
	c, ok := w.colliders.Get(uint64(handle))
	if !ok {
		return false
	}

	c.events.Store(uint32(events))
	return true
}

// ActiveEvents returns the event mask of a collider.
func (w *World) ActiveEvents(handle geometry.ColliderHandle) (pipeline.ActiveEvents, bool) {
	c, ok := w.colliders.Get(uint64(handle))
	if !ok {
		return 0, false
	}

	return c.activeEvents(), true
}

// Position returns the current world position of a collider's body.
func (w *World) Position(handle geometry.ColliderHandle) (gm.Vec, bool) {
	c, ok := w.colliders.Get(uint64(handle))
	if !ok {
		return gm.Vec{}, false
	}

	return toVec(c.body.Position()), true
}

// SetPosition teleports a collider's body. Must not be called from within
// Step.
func (w *World) SetPosition(handle geometry.ColliderHandle, position gm.Vec) bool {
	c, ok := w.colliders.Get(uint64(handle))
	if !ok {
		return false
	}

	c.body.SetPosition(cpVecOf(position))
	c.body.EachShape(func(s *cp.Shape) {
		w.space.ReindexShape(s)
	})
	return true
}

// Len returns the number of colliders currently in the world.
func (w *World) Len() int {
	return int(w.colliders.Len())
}

// Step advances the simulation by dt seconds. Collision events detected
// during the step are dispatched to the handler synchronously, on the
// calling goroutine.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

func (w *World) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	c1, c2, ok := w.lookupPair(arb)
	if !ok {
		return true
	}

	if c1.sensor || c2.sensor {
		if (c1.activeEvents() | c2.activeEvents()).Contains(pipeline.IntersectionEvents) {
			w.handler.HandleIntersectionEvent(geometry.IntersectionEvent{
				Collider1:    c1.handle,
				Collider2:    c2.handle,
				Intersecting: true,
			})
		}

		return true
	}

	if (c1.activeEvents() | c2.activeEvents()).Contains(pipeline.ContactEvents) {
		w.fillScratchPair(arb, c1, c2)
		w.handler.HandleContactEvent(geometry.ContactStartedEvent(c1.handle, c2.handle), &w.scratch)
	}

	return true
}

func (w *World) onSeparate(arb *cp.Arbiter, _ *cp.Space, _ interface{}) {
	c1, c2, ok := w.lookupPair(arb)
	if !ok {
		return
	}

	if c1.sensor || c2.sensor {
		if (c1.activeEvents() | c2.activeEvents()).Contains(pipeline.IntersectionEvents) {
			w.handler.HandleIntersectionEvent(geometry.IntersectionEvent{
				Collider1:    c1.handle,
				Collider2:    c2.handle,
				Intersecting: false,
			})
		}

		return
	}

	if (c1.activeEvents() | c2.activeEvents()).Contains(pipeline.ContactEvents) {
		// no contact points anymore, the pair only names the colliders
		w.scratch.Clear()
		w.scratch.Collider1 = c1.handle
		w.scratch.Collider2 = c2.handle
		w.handler.HandleContactEvent(geometry.ContactStoppedEvent(c1.handle, c2.handle), &w.scratch)
	}
}

func (w *World) lookupPair(arb *cp.Arbiter) (*collider, *collider, bool) {
	shape1, shape2 := arb.Shapes()

	handle1, ok1 := shape1.UserData.(geometry.ColliderHandle)
	handle2, ok2 := shape2.UserData.(geometry.ColliderHandle)
	if !ok1 || !ok2 {
		return nil, nil, false
	}

	c1, ok1 := w.colliders.Get(uint64(handle1))
	c2, ok2 := w.colliders.Get(uint64(handle2))
	if !ok1 || !ok2 {
		return nil, nil, false
	}

	return c1, c2, true
}

func (w *World) fillScratchPair(arb *cp.Arbiter, c1, c2 *collider) {
	w.scratch.Clear()
	w.scratch.Collider1 = c1.handle
	w.scratch.Collider2 = c2.handle

	set := arb.ContactPointSet()
	if set.Count == 0 {
		return
	}

	manifold := geometry.ContactManifold{
		Normal: toVec(set.Normal),
	}

	for idx := 0; idx < set.Count; idx++ {
		point := set.Points[idx]

		manifold.Points = append(manifold.Points, geometry.ContactPoint{
			// midpoint between the two surface points
			Point:    toVec(point.PointA).Add(toVec(point.PointB)).Mul(0.5),
			Distance: point.Distance,
		})
	}

	w.scratch.Manifolds = append(w.scratch.Manifolds, manifold)
}

func (w *World) allocHandle() geometry.ColliderHandle {
	w.mu.Lock()
	defer w.mu.Unlock()

	if n := len(w.freeSlots); n > 0 {
		index := w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
		return geometry.HandleFromRawParts(index, w.generations[index])
	}

	// generations start at one so a live handle is never the zero value
	w.generations = append(w.generations, 1)
	return geometry.HandleFromRawParts(uint32(len(w.generations)-1), 1)
}

func (w *World) freeHandle(handle geometry.ColliderHandle) {
	w.mu.Lock()
	defer w.mu.Unlock()

	index := handle.Index()
	if index >= uint32(len(w.generations)) || w.generations[index] != handle.Generation() {
		return
	}

	w.generations[index] += 1
	w.freeSlots = append(w.freeSlots, index)
}
