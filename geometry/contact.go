package geometry

import "github.com/Waridley/rapier/gm"

// ContactPoint is a single point of a contact manifold.
type ContactPoint struct {
	// Point is the contact location in world coordinates.
	Point gm.Vec
	// Distance between the two touching surfaces. Negative while the
	// colliders penetrate each other.
	Distance float64
}

// ContactManifold is a set of contact points sharing one contact normal.
type ContactManifold struct {
	Normal gm.Vec
	Points []ContactPoint
}

// ContactPair is the detailed, transient view of a contact between two
// colliders. Event handlers receive it by pointer and only for the duration
// of a single call: the narrow phase reuses the backing storage, so a
// handler that needs any of this data beyond the call must copy it out,
// for example with Clone.
type ContactPair struct {
	Collider1 ColliderHandle
	Collider2 ColliderHandle
	Manifolds []ContactManifold
}

// Clone returns a deep copy of the pair that remains valid after the
// dispatch call returns.
func (p *ContactPair) Clone() ContactPair {
	out := ContactPair{
		Collider1: p.Collider1,
		Collider2: p.Collider2,
	}

	if len(p.Manifolds) > 0 {
		out.Manifolds = make([]ContactManifold, len(p.Manifolds))
	}

	for idx, manifold := range p.Manifolds {
		out.Manifolds[idx] = ContactManifold{
			Normal: manifold.Normal,
			Points: append([]ContactPoint(nil), manifold.Points...),
		}
	}

	return out
}

// Clear empties the pair for reuse, keeping the manifold storage around.
func (p *ContactPair) Clear() {
	p.Collider1 = 0
	p.Collider2 = 0

	for idx := range p.Manifolds {
		p.Manifolds[idx].Points = p.Manifolds[idx].Points[:0]
	}

	p.Manifolds = p.Manifolds[:0]
}
