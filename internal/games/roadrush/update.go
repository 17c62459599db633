package roadrush

import (
	"fmt"

	"github.com/arcadekit/roadrush/internal/core"
	"github.com/arcadekit/roadrush/internal/stage"
)

// advance runs one tick of the simulation: steer the player, scroll the
// road, recycle obstacles, then settle collisions and the run outcome.
// dt is the elapsed time in seconds and is never negative.
func (g *Game) advance(dt float64, in core.InputFrame) {
	dir := core.Direction(in)
	g.steerPlayer(dir, dt)

	speed := g.difficulty.RoadSpeed(g.cfg.Speeds.Road, g.Score(), g.tickCount)
	g.scrollRoad(speed, dt)
	g.recycleObstacles(speed, dt)
	g.distance += speed * dt

	g.resolveCollisions(g.stage.Collisions())
	g.settleOutcome()
}

// steerPlayer moves the player vertically at the fixed steering speed and
// tilts the sprite toward the direction of travel. The player is never
// clamped: leaving the road vertically zeroes health on the spot, and the
// terminal transition is settled at the end of the tick.
func (g *Game) steerPlayer(dir, dt float64) {
	player := g.stage.MustSprite(g.state.PlayerName)
	player.Pos.Y += dir * g.cfg.Speeds.Player * dt
	player.Rotation = dir * g.cfg.Player.Tilt

	if player.Pos.Y < g.cfg.Bounds.Bottom || player.Pos.Y > g.cfg.Bounds.Top {
		g.state.Health = 0
	}
}

// scrollRoad translates the lane markers leftward, wrapping each one back
// to the right edge once it scrolls out, which keeps a fixed number of
// markers covering the road forever.
func (g *Game) scrollRoad(speed, dt float64) {
	g.stage.VisitRole(stage.RoleRoadLine, func(s *stage.Sprite) {
		s.Pos.X -= speed * dt
		if s.Pos.X < g.cfg.Road.WrapAt {
			s.Pos.X += g.cfg.Road.WrapSpan
		}
	})
}

// recycleObstacles translates obstacles leftward and respawns any that
// scrolled past the despawn line at a uniformly random position in the
// spawn band, producing an endless, non-repeating obstacle stream.
func (g *Game) recycleObstacles(speed, dt float64) {
	g.stage.VisitRole(stage.RoleObstacle, func(s *stage.Sprite) {
		s.Pos.X -= speed * dt
		if s.Pos.X < g.cfg.Obstacles.DespawnAt {
			s.Pos = g.randomObstaclePos()
		}
	})
}

// resolveCollisions drains this tick's collision events. Only begin-phase
// events that involve the player are health-relevant; obstacles brushing
// each other and overlap-end notifications are ignored.
func (g *Game) resolveCollisions(events []stage.CollisionEvent) {
	healthMessage := g.stage.MustText(healthMessageID)

	for _, ev := range events {
		if ev.Phase != stage.PhaseBegin || !ev.Involves(g.state.PlayerName) {
			continue
		}
		if g.state.Health > 0 {
			g.state.Health--
			healthMessage.Value = fmt.Sprintf("Health: %d", g.state.Health)
			g.effects.PlayImpact()
		}
	}
}

// settleOutcome performs the one-time transition to the terminal Lost
// state once health is exhausted: spawn the game-over banner, stop the
// music, and play the jingle. Subsequent ticks return before reaching
// this point, so the side effects cannot fire twice.
func (g *Game) settleOutcome() {
	if g.state.Health > 0 || g.state.Lost {
		return
	}

	g.state.Lost = true
	g.stage.AddText(stage.Text{
		ID:    gameOverID,
		Value: "GAME OVER",
		Pos:   core.Vec2{X: 0, Y: 0},
		Big:   true,
		Color: core.ColorBrightRed,
	})
	g.effects.StopMusic()
	g.effects.PlayGameOver()
}
