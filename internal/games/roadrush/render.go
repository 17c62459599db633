package roadrush

import (
	"fmt"

	"github.com/arcadekit/roadrush/internal/core"
	"github.com/arcadekit/roadrush/internal/stage"
)

// The visible world region: x spans one wrap period centered on the
// player's side of the road, y spans the drivable bounds plus a shoulder.
const (
	worldLeft   = -800.0
	worldRight  = 800.0
	worldTop    = 400.0
	worldBottom = -400.0
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.stage == nil {
		return
	}

	g.drawShoulders(dst)

	g.stage.VisitRole(stage.RoleRoadLine, func(s *stage.Sprite) {
		g.drawRoadLine(dst, s)
	})
	g.stage.VisitRole(stage.RoleObstacle, func(s *stage.Sprite) {
		g.drawObstacle(dst, s)
	})
	g.drawPlayer(dst)

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.state.Lost {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Distance: %d  |  Press R to restart", g.Score()))
	}
}

// project maps world coordinates to screen cells. World +Y is up, screen
// +Y is down.
func (g *Game) project(dst *core.Screen, pos core.Vec2) (int, int) {
	x := int((pos.X - worldLeft) / (worldRight - worldLeft) * float64(dst.Width()))
	y := int((worldTop - pos.Y) / (worldTop - worldBottom) * float64(dst.Height()))
	return x, y
}

// drawShoulders draws the road edges at the vertical loss bounds.
func (g *Game) drawShoulders(dst *core.Screen) {
	_, topY := g.project(dst, core.Vec2{Y: g.cfg.Bounds.Top})
	_, bottomY := g.project(dst, core.Vec2{Y: g.cfg.Bounds.Bottom})
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, topY, '▀', core.ColorGray)
		dst.SetColored(x, bottomY, '▄', core.ColorGray)
	}
}

// drawRoadLine draws a lane marker as a short dash.
func (g *Game) drawRoadLine(dst *core.Screen, s *stage.Sprite) {
	x, y := g.project(dst, s.Pos)
	dst.SetColored(x, y, s.Glyph, s.Color)
	dst.SetColored(x+1, y, s.Glyph, s.Color)
}

// drawObstacle draws an obstacle as a 2x1 block.
func (g *Game) drawObstacle(dst *core.Screen, s *stage.Sprite) {
	x, y := g.project(dst, s.Pos)
	dst.SetColored(x, y, s.Glyph, s.Color)
	dst.SetColored(x+1, y, s.Glyph, s.Color)
}

// drawPlayer draws the car with a tilt glyph matching its rotation sign.
func (g *Game) drawPlayer(dst *core.Screen) {
	player := g.stage.MustSprite(g.state.PlayerName)
	x, y := g.project(dst, player.Pos)

	body := '='
	switch {
	case player.Rotation > 0:
		body = '/'
	case player.Rotation < 0:
		body = '\\'
	}

	dst.SetColored(x-1, y, body, player.Color)
	dst.SetColored(x, y, body, player.Color)
	dst.SetColored(x+1, y, player.Glyph, player.Color)
}

// drawHUD draws the distance counter and all stage text labels.
func (g *Game) drawHUD(dst *core.Screen) {
	dst.DrawText(2, 0, fmt.Sprintf(" Distance: %d ", g.Score()))

	if g.difficulty.IsEnabled() {
		speed := g.difficulty.RoadSpeed(g.cfg.Speeds.Road, g.Score(), g.tickCount)
		speedText := fmt.Sprintf(" Spd: %.0f ", speed)
		dst.DrawText(dst.Width()-len(speedText)-20, 0, speedText)
	}

	g.stage.VisitTexts(func(t *stage.Text) {
		if t.Big {
			// Big banners are drawn by drawCenteredMessage instead.
			return
		}
		x, y := g.project(dst, t.Pos)
		// Keep right-anchored labels on screen.
		if x+len(t.Value) > dst.Width() {
			x = dst.Width() - len(t.Value) - 1
		}
		dst.DrawTextColored(x, y, t.Value, t.Color)
	})
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
