package geometry

// IntersectionEvent signals that the intersection state of two colliders
// changed. At least one of the two colliders is a sensor.
type IntersectionEvent struct {
	Collider1 ColliderHandle `json:"collider1"`
	Collider2 ColliderHandle `json:"collider2"`

	// Intersecting is true when the colliders started overlapping and false
	// when they stopped overlapping.
	Intersecting bool `json:"intersecting"`
}

// ContactEventKind discriminates the two variants of a ContactEvent.
type ContactEventKind uint8

const (
	// ContactStarted signals that two colliders started touching.
	ContactStarted ContactEventKind = iota
	// ContactStopped signals that two colliders stopped touching.
	ContactStopped
)

func (k ContactEventKind) String() string {
	switch k {
	case ContactStarted:
		return "started"
	case ContactStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ContactEvent signals that two colliders started or stopped touching,
// independently of the number of contact points involved.
type ContactEvent struct {
	Kind      ContactEventKind `json:"kind"`
	Collider1 ColliderHandle   `json:"collider1"`
	Collider2 ColliderHandle   `json:"collider2"`
}

// ContactStartedEvent builds the Started variant of a ContactEvent.
func ContactStartedEvent(collider1, collider2 ColliderHandle) ContactEvent {
	return ContactEvent{Kind: ContactStarted, Collider1: collider1, Collider2: collider2}
}

// ContactStoppedEvent builds the Stopped variant of a ContactEvent.
func ContactStoppedEvent(collider1, collider2 ColliderHandle) ContactEvent {
	return ContactEvent{Kind: ContactStopped, Collider1: collider1, Collider2: collider2}
}
