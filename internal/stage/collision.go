package stage

// Phase tells whether two sprites started or stopped overlapping.
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseEnd
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseEnd {
		return "End"
	}
	return "Begin"
}

// CollisionEvent reports that the bounding boxes of sprites A and B began
// or stopped overlapping since the previous tick. A sorts before B.
type CollisionEvent struct {
	A, B  string
	Phase Phase
}

// Involves returns true if the given sprite ID is part of the pair.
func (e CollisionEvent) Involves(id string) bool {
	return e.A == id || e.B == id
}

type pairKey struct {
	a, b string
}

func makePairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Collisions compares the current overlap set of collidable sprites with
// the one from the previous call and returns Begin events for new overlaps
// and End events for ones that stopped. Events are ordered by the sprite
// insertion order of the first pair member, so a run is deterministic for
// a fixed seed.
//
// Callers drain the returned slice within the same tick; the stage retains
// only the overlap set, never the events.
func (st *Stage) Collisions() []CollisionEvent {
	current := make(map[pairKey]bool)
	var events []CollisionEvent

	// O(n^2) pair scan. The stage holds a handful of collidable sprites,
	// so a spatial index would be overkill.
	for i, idA := range st.spriteOrder {
		a := st.sprites[idA]
		if !a.Collidable {
			continue
		}
		for _, idB := range st.spriteOrder[i+1:] {
			b := st.sprites[idB]
			if !b.Collidable {
				continue
			}
			key := makePairKey(idA, idB)
			if a.Box().Overlaps(b.Box()) {
				current[key] = true
				if !st.overlaps[key] {
					events = append(events, CollisionEvent{A: key.a, B: key.b, Phase: PhaseBegin})
				}
			}
		}
	}

	for key := range st.overlaps {
		if !current[key] {
			events = append(events, CollisionEvent{A: key.a, B: key.b, Phase: PhaseEnd})
		}
	}

	st.overlaps = current
	return events
}
