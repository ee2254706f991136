package runner

import (
	"fmt"
	"strings"

	"github.com/atbot/runner/internal/assets"
	"github.com/atbot/runner/internal/core"
)

// Render draws the current phase to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.view.Cols || dst.Height() != g.view.Rows {
		g.Resize(dst.Width(), dst.Height())
	}
	dst.Clear()

	switch g.phase {
	case PhaseBoot:
		g.renderBoot(dst)
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseGameplay:
		g.renderGameplay(dst)
	}
}

func (g *Game) renderBoot(dst *core.Screen) {
	loaded, total := g.loader.Progress()
	msg := fmt.Sprintf("Loading %d/%d", loaded, total)
	y := dst.Height() / 2
	dst.DrawTextCentered(y, msg)

	barW := core.Min(30, dst.Width()-4)
	if barW <= 0 || total == 0 {
		return
	}
	filled := barW * loaded / total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
	dst.DrawTextCentered(y+1, bar)
}

func (g *Game) renderMenu(dst *core.Screen) {
	bg := g.loader.Get(assets.Background)
	dst.Tile(bg.Sprite, core.NewRect(0, 0, dst.Width(), dst.Height()), 0, core.ColorGray)

	_, row := g.view.ToCell(0, 100)
	x := (dst.Width() - len([]rune(Title))) / 2
	dst.DrawTextColored(x, row, Title, core.ColorBrightWhite)

	g.drawButton(dst, assets.StartButton)
	hint := "Enter to start"
	_, hintRow := g.view.ToCell(0, 260)
	dst.DrawTextColored((dst.Width()-len(hint))/2, hintRow, hint, core.ColorGray)
}

func (g *Game) renderGameplay(dst *core.Screen) {
	r := g.run
	_, floorRow := g.view.ToCell(0, g.cfg.World.FloorY)
	floorRow = core.Clamp(floorRow, 0, dst.Height())

	bg := g.loader.Get(r.bg.Key)
	dst.Tile(bg.Sprite, core.NewRect(0, 0, dst.Width(), floorRow), g.view.Columns(r.bg.PositionX), bg.Color)
	ground := g.loader.Get(r.ground.Key)
	dst.Tile(ground.Sprite, core.NewRect(0, floorRow, dst.Width(), dst.Height()-floorRow), g.view.Columns(r.ground.PositionX), ground.Color)

	for _, e := range []struct{ tag, key string }{
		{TagObstacle, assets.Obstacle},
		{TagCoin, assets.Coin},
	} {
		a := g.loader.Get(e.key)
		for _, b := range r.world.Bodies(e.tag) {
			dst.Blit(a.Sprite, g.view.ToCellRect(b.Bounds()), a.Color)
		}
	}

	horse := g.loader.Get(r.player.Frame())
	dst.Blit(horse.Sprite, g.view.ToCellRect(r.player.Body().Bounds()), horse.Color)

	s := r.Session()
	col, row := g.view.ToCell(16, 16)
	dst.DrawTextColored(col, row, s.ScoreText(), core.ColorBrightWhite)
	lives := s.LivesText()
	col, _ = g.view.ToCell(700, 16)
	col = core.Min(col, dst.Width()-len([]rune(lives)))
	dst.DrawTextColored(col, row, lives, core.ColorBrightRed)

	if r.Paused() {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if s.IsOver() {
		_, titleRow := g.view.ToCell(0, 140)
		dst.DrawTextColored((dst.Width()-9)/2, titleRow, "GAME OVER", core.ColorBrightRed)
		g.drawButton(dst, assets.RestartButton)
		hint := fmt.Sprintf("Score: %d  |  Press R to restart", s.Score())
		_, hintRow := g.view.ToCell(0, 260)
		dst.DrawTextColored((dst.Width()-len(hint))/2, hintRow, hint, core.ColorBrightWhite)
	}
}

// buttonRect is where a button is drawn and clicked: its art at natural
// size, centred on the middle of the display.
func (g *Game) buttonRect(key string) core.Rect {
	sp := g.loader.Get(key).Sprite
	col, row := g.view.ToCell(g.cfg.World.Width/2, g.cfg.World.Height/2)
	return core.NewRect(col-sp.Width()/2, row-sp.Height()/2, sp.Width(), sp.Height())
}

func (g *Game) drawButton(dst *core.Screen, key string) {
	a := g.loader.Get(key)
	r := g.buttonRect(key)
	dst.DrawRect(r, ' ')
	dst.Blit(a.Sprite, r, a.Color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
