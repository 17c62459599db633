package stage

import (
	"testing"

	"github.com/arcadekit/roadrush/internal/core"
)

func TestAddSpriteDuplicatePanics(t *testing.T) {
	st := New()
	st.AddSprite(Sprite{ID: "player1", Role: RolePlayer})

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate sprite ID should panic")
		}
	}()
	st.AddSprite(Sprite{ID: "player1", Role: RoleObstacle})
}

func TestMustSpritePanicsWhenMissing(t *testing.T) {
	st := New()

	defer func() {
		if recover() == nil {
			t.Error("MustSprite on a missing ID should panic")
		}
	}()
	st.MustSprite("player1")
}

func TestMustTextPanicsWhenMissing(t *testing.T) {
	st := New()

	defer func() {
		if recover() == nil {
			t.Error("MustText on a missing ID should panic")
		}
	}()
	st.MustText("health_message")
}

func TestAddSpriteDefaultsScale(t *testing.T) {
	st := New()
	s := st.AddSprite(Sprite{ID: "obstacle0", Role: RoleObstacle})
	if s.Scale != 1.0 {
		t.Errorf("zero scale should default to 1.0, got %f", s.Scale)
	}
}

func TestVisitRoleFiltersAndPreservesOrder(t *testing.T) {
	st := New()
	st.AddSprite(Sprite{ID: "player1", Role: RolePlayer})
	st.AddSprite(Sprite{ID: "roadline1", Role: RoleRoadLine})
	st.AddSprite(Sprite{ID: "obstacle0", Role: RoleObstacle})
	st.AddSprite(Sprite{ID: "roadline0", Role: RoleRoadLine})

	var seen []string
	st.VisitRole(RoleRoadLine, func(s *Sprite) {
		seen = append(seen, s.ID)
	})

	if len(seen) != 2 || seen[0] != "roadline1" || seen[1] != "roadline0" {
		t.Errorf("VisitRole order = %v, want [roadline1 roadline0]", seen)
	}
}

func TestSpriteMutationIsVisible(t *testing.T) {
	st := New()
	st.AddSprite(Sprite{ID: "player1", Role: RolePlayer, Pos: core.Vec2{X: -500}})

	p := st.MustSprite("player1")
	p.Pos.Y = 120.0
	p.Rotation = 0.15

	again := st.MustSprite("player1")
	if again.Pos.Y != 120.0 || again.Rotation != 0.15 {
		t.Error("mutations through the borrowed sprite should persist in the stage")
	}
}

func TestTextRegistryRoundTrip(t *testing.T) {
	st := New()
	st.AddText(Text{ID: "health_message", Value: "Health: 5", Pos: core.Vec2{X: 550, Y: 320}})

	msg := st.MustText("health_message")
	msg.Value = "Health: 4"

	got, ok := st.Text("health_message")
	if !ok || got.Value != "Health: 4" {
		t.Errorf("text lookup after mutation = %+v, ok=%v", got, ok)
	}
}
