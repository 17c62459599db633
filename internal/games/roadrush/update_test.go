package roadrush

import (
	"testing"

	"github.com/arcadekit/roadrush/internal/core"
	"github.com/arcadekit/roadrush/internal/stage"
)

func TestResolveCollisionsDecrementsOnPlayerBegin(t *testing.T) {
	g, rec := newTestGame(t, 1)
	g.state.Health = 3

	g.resolveCollisions([]stage.CollisionEvent{
		{A: "obstacle0", B: "player1", Phase: stage.PhaseBegin},
	})

	if g.state.Health != 2 {
		t.Errorf("health = %d, want 2", g.state.Health)
	}
	if msg := g.stage.MustText("health_message").Value; msg != "Health: 2" {
		t.Errorf("health label = %q, want \"Health: 2\"", msg)
	}
	if rec.impacts != 1 {
		t.Errorf("impact sfx count = %d, want 1", rec.impacts)
	}
}

func TestResolveCollisionsIgnoresEndPhase(t *testing.T) {
	g, rec := newTestGame(t, 1)
	g.state.Health = 3

	g.resolveCollisions([]stage.CollisionEvent{
		{A: "obstacle0", B: "player1", Phase: stage.PhaseEnd},
	})

	if g.state.Health != 3 || rec.impacts != 0 {
		t.Errorf("End events are no-ops, got health %d, impacts %d", g.state.Health, rec.impacts)
	}
}

func TestResolveCollisionsIgnoresNonPlayerPairs(t *testing.T) {
	g, rec := newTestGame(t, 1)
	g.state.Health = 3

	g.resolveCollisions([]stage.CollisionEvent{
		{A: "obstacle0", B: "obstacle1", Phase: stage.PhaseBegin},
	})

	if g.state.Health != 3 || rec.impacts != 0 {
		t.Errorf("obstacle-obstacle events are no-ops, got health %d, impacts %d", g.state.Health, rec.impacts)
	}
}

func TestResolveCollisionsStopsAtZero(t *testing.T) {
	g, rec := newTestGame(t, 1)
	g.state.Health = 1

	// Two qualifying hits in one frame's batch: only the first counts.
	g.resolveCollisions([]stage.CollisionEvent{
		{A: "obstacle0", B: "player1", Phase: stage.PhaseBegin},
		{A: "obstacle1", B: "player1", Phase: stage.PhaseBegin},
	})

	if g.state.Health != 0 {
		t.Errorf("health = %d, want 0", g.state.Health)
	}
	if rec.impacts != 1 {
		t.Errorf("impact sfx count = %d, want 1", rec.impacts)
	}
	if msg := g.stage.MustText("health_message").Value; msg != "Health: 0" {
		t.Errorf("health label = %q, want \"Health: 0\"", msg)
	}
}

func TestLastHitLosesWithinSameStep(t *testing.T) {
	g, rec := newTestGame(t, 21)
	g.state.Health = 1

	// Park two obstacles on top of the player so the same tick produces
	// two Begin events.
	player := g.stage.MustSprite("player1")
	g.stage.MustSprite("obstacle0").Pos = player.Pos
	g.stage.MustSprite("obstacle1").Pos = player.Pos

	result := g.Step(core.NewInputFrame())

	if g.state.Health != 0 || !g.state.Lost {
		t.Fatalf("health=%d lost=%v, want 0/true", g.state.Health, g.state.Lost)
	}
	if !result.State.GameOver {
		t.Error("StepResult should report game over")
	}
	if rec.impacts != 1 {
		t.Errorf("impacts = %d, want exactly 1", rec.impacts)
	}
	if rec.musicStops != 1 || rec.gameOvers != 1 {
		t.Errorf("game-over side effects = stops %d, jingles %d, want 1/1", rec.musicStops, rec.gameOvers)
	}
	if banner := g.stage.MustText("game_over"); banner.Value != "GAME OVER" {
		t.Errorf("banner = %q", banner.Value)
	}
}

func TestSustainedOverlapCostsOneHealth(t *testing.T) {
	g, _ := newTestGame(t, 23)

	// An obstacle sitting on the player only begins overlapping once;
	// staying overlapped on later ticks must not drain further health.
	player := g.stage.MustSprite("player1")
	obstacle := g.stage.MustSprite("obstacle0")
	obstacle.Pos = player.Pos

	g.Step(core.NewInputFrame())
	healthAfterHit := g.state.Health
	if healthAfterHit != 4 {
		t.Fatalf("health after first overlap tick = %d, want 4", healthAfterHit)
	}

	// Re-pin the obstacle so it stays overlapping despite scrolling.
	for i := 0; i < 5; i++ {
		obstacle.Pos = player.Pos
		g.Step(core.NewInputFrame())
	}

	if g.state.Health != healthAfterHit {
		t.Errorf("sustained overlap drained health to %d", g.state.Health)
	}
}
