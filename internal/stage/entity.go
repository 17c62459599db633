// Package stage provides the entity registry and collision detection the
// game mutates each tick: string-keyed sprites with positions in world
// coordinates, text labels, and AABB begin/end collision events.
package stage

import "github.com/arcadekit/roadrush/internal/core"

// Role is the functional category of a sprite. It selects which per-tick
// update rule applies and is assigned once at creation, so update code
// never has to re-derive it from the sprite's string ID.
type Role int

const (
	RolePlayer Role = iota
	RoleRoadLine
	RoleObstacle
	RoleDecor // drawn but never moved or collided
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleRoadLine:
		return "roadline"
	case RoleObstacle:
		return "obstacle"
	case RoleDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// Sprite is an addressable game object in world coordinates. The game
// mutates position and rotation in place each tick; the stage owns the
// storage.
type Sprite struct {
	ID       string
	Role     Role
	Pos      core.Vec2
	Rotation float64 // radians, cosmetic tilt
	Scale    float64

	// Collision half-extents in world units at Scale 1.0. Sprites with
	// Collidable false never produce collision events.
	HalfW      float64
	HalfH      float64
	Collidable bool

	// Rendering hints for the platform layer.
	Glyph rune
	Color core.Color
}

// Box returns the sprite's collision box at its current position and scale.
func (s *Sprite) Box() core.Box {
	return core.Box{
		Center: s.Pos,
		HalfW:  s.HalfW * s.Scale,
		HalfH:  s.HalfH * s.Scale,
	}
}

// Text is an addressable text label in world coordinates.
type Text struct {
	ID    string
	Value string
	Pos   core.Vec2
	Big   bool // rendered emphasized (banner style)
	Color core.Color
}
