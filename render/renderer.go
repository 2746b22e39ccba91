package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lanedriver/config"
	"github.com/lixenwraith/lanedriver/constants"
	"github.com/lixenwraith/lanedriver/engine"
)

const (
	// maxRoadCols caps the road width so lanes stay readable on wide
	// terminals
	maxRoadCols = 60
)

var (
	styleDefault = tcell.StyleDefault
	styleRoad    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleShield  = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleCoin    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleRecord  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// coinSpinFrames cycles with the coin's cosmetic rotation phase
var coinSpinFrames = []rune{'$', 'o', 'O', '0'}

// TerminalRenderer draws the simulation onto a tcell screen. It only
// reads: per-frame snapshots and entity stores flow in, nothing flows
// back to the simulation.
type TerminalRenderer struct {
	screen tcell.Screen
	cfg    *config.Config

	width, height int
	roadX, roadY  int
	roadCols      int
	roadRows      int
	scaleX        float64
	scaleY        float64
}

// NewTerminalRenderer creates a renderer over the screen.
func NewTerminalRenderer(screen tcell.Screen, cfg *config.Config) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, cfg: cfg}
	w, h := screen.Size()
	r.Resize(w, h)
	return r
}

// Resize recomputes the road viewport mapping. In-flight entity
// positions are world-space, so they stay consistent across resizes;
// only the cell mapping changes.
func (r *TerminalRenderer) Resize(width, height int) {
	r.width = width
	r.height = height

	r.roadCols = width - 4
	if r.roadCols > maxRoadCols {
		r.roadCols = maxRoadCols
	}
	if r.roadCols < r.cfg.LaneCount*3 {
		r.roadCols = r.cfg.LaneCount * 3
	}

	// Row 0 is the HUD, the bottom row is the key hint bar
	r.roadRows = height - 2
	if r.roadRows < 1 {
		r.roadRows = 1
	}

	r.roadX = (width - r.roadCols) / 2
	if r.roadX < 1 {
		r.roadX = 1
	}
	r.roadY = 1

	r.scaleX = float64(r.roadCols) / constants.WorldWidth
	r.scaleY = float64(r.roadRows) / constants.WorldHeight
}

// Frame draws one complete frame.
func (r *TerminalRenderer) Frame(snap engine.HUDSnapshot, world *engine.World) {
	r.screen.Clear()

	r.drawRoad(snap)
	if world.Player != nil {
		r.drawEntities(snap, world)
	}
	r.drawHUD(snap)
	r.drawHints()

	switch {
	case snap.Over:
		r.drawGameOverOverlay(snap)
	case snap.Paused:
		r.drawPausedOverlay()
	case !snap.Playing:
		r.drawReadyOverlay(snap)
	}

	r.screen.Show()
}

// drawRoad draws the shoulders and scrolling lane dividers. The dash
// phase follows the run distance so the road appears to move with the
// car; exact phase is cosmetic.
func (r *TerminalRenderer) drawRoad(snap engine.HUDSnapshot) {
	scroll := int(snap.Distance / 8)

	for row := 0; row < r.roadRows; row++ {
		y := r.roadY + row
		r.screen.SetContent(r.roadX-1, y, '║', nil, styleRoad)
		r.screen.SetContent(r.roadX+r.roadCols, y, '║', nil, styleRoad)

		for lane := 1; lane < r.cfg.LaneCount; lane++ {
			x := r.roadX + int(float64(lane)*r.cfg.LaneWidth()*r.scaleX)
			if (row+scroll)%3 != 0 {
				r.screen.SetContent(x, y, '┊', nil, styleRoad)
			}
		}
	}
}

func (r *TerminalRenderer) drawEntities(snap engine.HUDSnapshot, world *engine.World) {
	for _, e := range world.Enemies {
		r.fillWorldRect(e.X, e.Y, e.Width, e.Height, '▓', styleEnemy)
	}

	for _, c := range world.Coins {
		frame := coinSpinFrames[int(c.Spin)%len(coinSpinFrames)]
		x, y := r.worldToCell(c.CenterX(), c.CenterY())
		r.setRoadCell(x, y, frame, styleCoin)
	}

	for _, p := range world.PowerUps {
		x, y := r.worldToCell(p.CenterX(), p.CenterY())
		glyph, style := powerUpGlyph(p.Type)
		// Pulse phase blinks the token between bracketed and bare
		if int(p.Pulse)%2 == 0 {
			r.setRoadCell(x-1, y, '[', style)
			r.setRoadCell(x+1, y, ']', style)
		}
		r.setRoadCell(x, y, glyph, style)
	}

	player := world.Player
	style := stylePlayer
	if snap.ActivePowerUp == engine.PowerShield {
		style = styleShield
	}
	r.fillWorldRect(player.X, player.Y, player.Width, player.Height, '█', style)
}

// fillWorldRect paints every road cell covered by a world-space rect.
func (r *TerminalRenderer) fillWorldRect(x, y, w, h float64, glyph rune, style tcell.Style) {
	x0, y0 := r.worldToCell(x, y)
	x1, y1 := r.worldToCell(x+w, y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			r.setRoadCell(cx, cy, glyph, style)
		}
	}
}

// worldToCell maps world coordinates to screen cells.
func (r *TerminalRenderer) worldToCell(x, y float64) (int, int) {
	return r.roadX + int(x*r.scaleX), r.roadY + int(y*r.scaleY)
}

// setRoadCell writes one cell, clipped to the road viewport.
func (r *TerminalRenderer) setRoadCell(x, y int, glyph rune, style tcell.Style) {
	if x < r.roadX || x >= r.roadX+r.roadCols {
		return
	}
	if y < r.roadY || y >= r.roadY+r.roadRows {
		return
	}
	r.screen.SetContent(x, y, glyph, nil, style)
}

func (r *TerminalRenderer) drawHUD(snap engine.HUDSnapshot) {
	sound := "on"
	if !snap.SoundOn {
		sound = "off"
	}

	hud := fmt.Sprintf(" SCORE %d  COINS %d  LVL %d  TOP %d  SND %s",
		snap.Score, snap.Coins, snap.DifficultyLevel, snap.TopScore, sound)
	if snap.Combo > 1 {
		hud += fmt.Sprintf("  COMBO x%d", snap.Combo)
	}
	if snap.ActivePowerUp != engine.PowerNone {
		hud += fmt.Sprintf("  [%s %.1fs]", snap.ActivePowerUp, snap.PowerUpRemaining.Seconds())
	}
	r.drawText(0, 0, hud, styleHUD)
}

func (r *TerminalRenderer) drawHints() {
	r.drawText(0, r.height-1, " ←/h  →/l move   space pause   r restart   m sound   q quit", styleHint)
}

func (r *TerminalRenderer) drawReadyOverlay(snap engine.HUDSnapshot) {
	mid := r.roadY + r.roadRows/2
	r.drawCentered(mid-2, "L A N E D R I V E R", styleOverlay)
	r.drawCentered(mid, "press s or enter to start", styleHUD)
	if snap.TopScore > 0 {
		r.drawCentered(mid+2, fmt.Sprintf("top score %d   lifetime coins %d", snap.TopScore, snap.TotalCoins), styleHint)
	}
	r.drawCentered(mid+4, "t resets the top score", styleHint)
}

func (r *TerminalRenderer) drawPausedOverlay() {
	mid := r.roadY + r.roadRows/2
	r.drawCentered(mid, "P A U S E D", styleOverlay)
	r.drawCentered(mid+2, "space to resume", styleHint)
}

func (r *TerminalRenderer) drawGameOverOverlay(snap engine.HUDSnapshot) {
	mid := r.roadY + r.roadRows/2
	r.drawCentered(mid-2, "G A M E   O V E R", styleOverlay)
	r.drawCentered(mid, fmt.Sprintf("score %d   coins %d", snap.Score, snap.Coins), styleHUD)
	if snap.NewRecord {
		r.drawCentered(mid+1, "NEW RECORD", styleRecord)
	} else {
		r.drawCentered(mid+1, fmt.Sprintf("top score %d", snap.TopScore), styleHint)
	}
	r.drawCentered(mid+3, "r to restart", styleHint)
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	x := (r.width - len(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		if x+i >= r.width {
			break
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// powerUpGlyph maps an effect type to its token glyph and style.
func powerUpGlyph(t engine.PowerUpType) (rune, tcell.Style) {
	switch t {
	case engine.PowerShield:
		return 'S', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	case engine.PowerMagnet:
		return 'M', tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	case engine.PowerSlowMo:
		return 'W', tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	case engine.PowerDoublePoints:
		return 'D', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	case engine.PowerNitro:
		return 'N', tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	default:
		return '?', styleDefault
	}
}
