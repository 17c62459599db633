package stage

import (
	"testing"

	"github.com/arcadekit/roadrush/internal/core"
)

func carAt(id string, role Role, x, y float64) Sprite {
	return Sprite{
		ID:         id,
		Role:       role,
		Pos:        core.Vec2{X: x, Y: y},
		HalfW:      50,
		HalfH:      25,
		Collidable: true,
	}
}

func TestCollisionsBeginOnce(t *testing.T) {
	st := New()
	st.AddSprite(carAt("player1", RolePlayer, 0, 0))
	st.AddSprite(carAt("obstacle0", RoleObstacle, 500, 0))

	if events := st.Collisions(); len(events) != 0 {
		t.Fatalf("no overlap yet, got %d events", len(events))
	}

	// Move the obstacle onto the player
	st.MustSprite("obstacle0").Pos.X = 30

	events := st.Collisions()
	if len(events) != 1 {
		t.Fatalf("expected 1 Begin event, got %d", len(events))
	}
	ev := events[0]
	if ev.Phase != PhaseBegin {
		t.Errorf("phase = %v, want Begin", ev.Phase)
	}
	if !ev.Involves("player1") || !ev.Involves("obstacle0") {
		t.Errorf("event pair = %q/%q", ev.A, ev.B)
	}

	// Still overlapping: no new Begin
	if events := st.Collisions(); len(events) != 0 {
		t.Errorf("sustained overlap should not re-emit Begin, got %d events", len(events))
	}
}

func TestCollisionsEndWhenSeparated(t *testing.T) {
	st := New()
	st.AddSprite(carAt("player1", RolePlayer, 0, 0))
	st.AddSprite(carAt("obstacle0", RoleObstacle, 20, 0))

	st.Collisions() // Begin

	st.MustSprite("obstacle0").Pos.X = 900
	events := st.Collisions()
	if len(events) != 1 || events[0].Phase != PhaseEnd {
		t.Fatalf("expected a single End event, got %v", events)
	}
}

func TestCollisionsIgnoreNonCollidable(t *testing.T) {
	st := New()
	st.AddSprite(carAt("player1", RolePlayer, 0, 0))
	line := carAt("roadline0", RoleRoadLine, 0, 0)
	line.Collidable = false
	st.AddSprite(line)

	if events := st.Collisions(); len(events) != 0 {
		t.Errorf("non-collidable sprites should never emit events, got %v", events)
	}
}

func TestCollisionsPairOrderIsSorted(t *testing.T) {
	st := New()
	// Insert in reverse lexical order; the pair must still come out sorted.
	st.AddSprite(carAt("zebra", RoleObstacle, 0, 0))
	st.AddSprite(carAt("apple", RolePlayer, 0, 0))

	events := st.Collisions()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].A != "apple" || events[0].B != "zebra" {
		t.Errorf("pair = (%q, %q), want (apple, zebra)", events[0].A, events[0].B)
	}
}

func TestCollisionsScaleAffectsBox(t *testing.T) {
	st := New()
	st.AddSprite(carAt("player1", RolePlayer, 0, 0))
	small := carAt("obstacle0", RoleObstacle, 70, 0)
	small.Scale = 0.1
	st.AddSprite(small)

	// At scale 0.1 the obstacle's box is 5 units wide, so at x=70 it does
	// not reach the player's box edge at x=50.
	if events := st.Collisions(); len(events) != 0 {
		t.Errorf("scaled-down obstacle should not collide, got %v", events)
	}
}
