package geometry

import "fmt"

// ColliderHandle identifies a collider within a collider set. It packs an
// arena index together with a generation counter, so a handle to a removed
// collider never aliases the collider that later reuses its slot.
//
// The zero value is never handed out for a live collider.
type ColliderHandle uint64

// HandleFromRawParts builds a handle from an arena index and a generation.
func HandleFromRawParts(index, generation uint32) ColliderHandle {
	return ColliderHandle(uint64(generation)<<32 | uint64(index))
}

func (h ColliderHandle) Index() uint32 {
	return uint32(h)
}

func (h ColliderHandle) Generation() uint32 {
	return uint32(h >> 32)
}

func (h ColliderHandle) String() string {
	return fmt.Sprintf("collider(%d/%d)", h.Index(), h.Generation())
}
