// Package roadrush implements an endless "dodge the obstacles" road racer.
// The player car holds a fixed lane position on the left and steers up and
// down to avoid oncoming obstacles while the road scrolls past.
package roadrush

import (
	"fmt"
	"math/rand"

	"github.com/arcadekit/roadrush/internal/config"
	"github.com/arcadekit/roadrush/internal/core"
	"github.com/arcadekit/roadrush/internal/registry"
	"github.com/arcadekit/roadrush/internal/stage"
)

// Sprite registry keys. The player key comes from config; these are fixed.
const (
	healthMessageID = "health_message"
	gameOverID      = "game_over"
)

// Collision half-extents in world units at scale 1.0.
const (
	carHalfW      = 50.0
	carHalfH      = 30.0
	obstacleHalfW = 28.0
	obstacleHalfH = 28.0
	roadLineHalfW = 60.0
	roadLineHalfH = 10.0
)

// Game implements the Road Rush game logic.
type Game struct {
	state      RunState
	stage      *stage.Stage
	rng        *rand.Rand
	effects    Effects
	runtime    core.RuntimeConfig
	cfg        config.RoadRushConfig
	difficulty *config.DifficultyManager
	distance   float64 // world units of road travelled
	tickCount  int
	paused     bool
}

// Package-level knobs set by the CLI before game creation,
// following the platform's pre-registration configuration pattern.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	effectsSink      Effects = NopEffects{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// SetEffects installs the audio sink used by games created afterwards.
func SetEffects(fx Effects) {
	if fx == nil {
		fx = NopEffects{}
	}
	effectsSink = fx
}

// New creates a new Road Rush game instance.
func New() *Game {
	return &Game{effects: effectsSink}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "roadrush"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Road Rush"
}

// Reset initializes or restarts the game: it rebuilds the stage, places
// every sprite at its starting position, and restarts the music. This is
// the one-time startup configuration; the per-tick update assumes it ran.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRoadRush(configPath)
	if err != nil {
		cfg = config.DefaultRoadRushConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRoadRushPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.distance = 0
	g.tickCount = 0
	g.paused = false
	g.state = RunState{
		PlayerName: cfg.Player.Name,
		Health:     cfg.Health.Initial,
		Lost:       false,
	}

	g.stage = stage.New()
	g.addPlayer()
	g.addRoadLines()
	g.addObstacles()

	g.stage.AddText(stage.Text{
		ID:    healthMessageID,
		Value: fmt.Sprintf("Health: %d", g.state.Health),
		Pos:   core.Vec2{X: 550.0, Y: 320.0},
		Color: core.ColorBrightWhite,
	})

	g.effects.StartMusic()
}

// addPlayer registers the player car at its fixed lane position.
func (g *Game) addPlayer() {
	g.stage.AddSprite(stage.Sprite{
		ID:         g.cfg.Player.Name,
		Role:       stage.RolePlayer,
		Pos:        core.Vec2{X: g.cfg.Player.StartX, Y: 0},
		HalfW:      carHalfW,
		HalfH:      carHalfH,
		Collidable: true,
		Glyph:      '▶',
		Color:      core.ColorBrightYellow,
	})
}

// addRoadLines registers the evenly spaced lane markers.
func (g *Game) addRoadLines() {
	for i := 0; i < g.cfg.Road.Lines; i++ {
		g.stage.AddSprite(stage.Sprite{
			ID:    fmt.Sprintf("roadline%d", i),
			Role:  stage.RoleRoadLine,
			Pos:   core.Vec2{X: g.cfg.Road.StartX + g.cfg.Road.Spacing*float64(i), Y: 0},
			Scale: g.cfg.Road.Scale,
			HalfW: roadLineHalfW,
			HalfH: roadLineHalfH,
			Glyph: '━',
			Color: core.ColorGray,
		})
	}
}

// addObstacles registers the obstacles at random off-screen positions to
// the right, so the road starts clear and fills up as they scroll in.
func (g *Game) addObstacles() {
	for i := 0; i < g.cfg.Obstacles.Count; i++ {
		g.stage.AddSprite(stage.Sprite{
			ID:         fmt.Sprintf("obstacle%d", i),
			Role:       stage.RoleObstacle,
			Pos:        g.randomObstaclePos(),
			HalfW:      obstacleHalfW,
			HalfH:      obstacleHalfH,
			Collidable: true,
			Glyph:      '▓',
			Color:      core.ColorBrightRed,
		})
	}
}

// randomObstaclePos picks a uniform spawn position in the respawn band to
// the right of the visible road.
func (g *Game) randomObstaclePos() core.Vec2 {
	o := g.cfg.Obstacles
	return core.Vec2{
		X: o.RespawnMinX + g.rng.Float64()*(o.RespawnMaxX-o.RespawnMinX),
		Y: o.MinY + g.rng.Float64()*(o.MaxY-o.MinY),
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Terminal state: the run is frozen, nothing moves or mutates.
	if g.state.Lost {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := 1.0 / float64(g.runtime.TickRate)
	g.advance(dt, in)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.state.Lost,
		Paused:   g.paused,
	}
}

// Score is the distance survived, in road units scaled down to a
// leaderboard-friendly number.
func (g *Game) Score() int {
	return int(g.distance / 10.0)
}

// Register the game with the registry
func init() {
	registry.Register("roadrush", func() registry.Game {
		return New()
	})
}
