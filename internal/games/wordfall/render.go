package wordfall

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/wordfall/internal/core"
)

// Visual characters for rendering
const (
	FloorChar  = '='
	PlayerChar = '^'
	PlayerBase = "---"
	HitChar    = 'X'
)

// Colors of the playfield elements
const (
	ColorFloor    = core.ColorWhite
	ColorHUD      = core.ColorBrightYellow
	ColorTarget   = core.ColorBrightCyan
	ColorCatch    = core.ColorBrightGreen // Falling target words
	ColorObstacle = core.ColorBrightRed   // Falling wrong words
	ColorPlayer   = core.ColorBrightWhite
	ColorHit      = core.ColorBrightRed
)

// Render draws the current game state to the screen.
// Playfield coordinates are 1-based; screen cells are 0-based.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.gameOver {
		g.renderSummary(dst)
		return
	}

	r := g.rules
	w := &g.world

	// Floor
	dst.SetColor(ColorFloor)
	dst.DrawHLine(0, r.FloorY()-1, r.Width, FloorChar)

	// HUD
	dst.SetColor(ColorHUD)
	dst.DrawText(0, 0, fmt.Sprintf("Time: %ds | SCORE: %d  |  LIVES: %d", g.remaining, w.Score, w.Lives))

	target := fmt.Sprintf("Target: [ %s ]", g.Target().English)
	dst.SetColor(ColorTarget)
	dst.DrawText(r.Width-runewidth.StringWidth(target), 0, target)

	// Falling words
	for i := range w.Objects {
		o := w.Objects[i]
		if !o.Active {
			continue
		}
		if o.WordIndex == w.Target {
			dst.SetColor(ColorCatch)
		} else {
			dst.SetColor(ColorObstacle)
		}
		dst.DrawText(o.X-1, o.Y-1, r.Words.At(o.WordIndex).English)
	}

	// Player
	dst.SetColor(ColorPlayer)
	dst.Set(w.PlayerX-1, r.GroundY()-1, PlayerChar)
	dst.DrawText(w.PlayerX-2, r.FloorY()-1, PlayerBase)

	// Hit flashes go on top of everything
	dst.SetColor(ColorHit)
	for _, ev := range g.hits {
		dst.Set(w.PlayerX-1, ev.Y-1, HitChar)
	}
}

// renderSummary draws the final screen.
func (g *Game) renderSummary(dst *core.Screen) {
	cx := g.rules.Width / 2
	cy := g.rules.Height / 2

	dst.SetColor(core.ColorBrightRed)
	dst.DrawText(cx-6, cy-1, "GAME OVER")

	dst.SetColor(core.ColorBrightWhite)
	dst.DrawText(cx-7, cy, fmt.Sprintf("Final Score: %d", g.world.Score))

	dst.SetColor(core.ColorGray)
	if reason := g.reason.String(); reason != "" {
		dst.DrawTextCentered(cy+2, reason)
	}
	dst.DrawTextCentered(cy+4, "Press any key to exit")
}
