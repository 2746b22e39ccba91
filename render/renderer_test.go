package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lanedriver/config"
	"github.com/lixenwraith/lanedriver/constants"
	"github.com/lixenwraith/lanedriver/engine"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

// screenText flattens the screen into one row-per-line string.
func screenText(screen tcell.SimulationScreen) string {
	cells, w, h := screen.GetContents()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) > 0 {
				sb.WriteRune(c.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func testWorld() *engine.World {
	w := engine.NewWorld()
	w.Reset(&engine.Player{
		X: 175, Y: constants.PlayerY,
		Width: constants.PlayerWidth, Height: constants.PlayerHeight,
		Lane: 1,
	})
	w.Enemies = append(w.Enemies, &engine.Enemy{
		X: 40, Y: 100,
		Width: constants.EnemyWidth, Height: constants.EnemyHeight,
		Lane: 0, Speed: 5,
	})
	w.Coins = append(w.Coins, &engine.Coin{
		X: 300, Y: 200, Size: constants.CoinSize, Lane: 2,
	})
	w.PowerUps = append(w.PowerUps, &engine.PowerUp{
		X: 180, Y: 250, Size: constants.PowerUpSize, Lane: 1,
		Type: engine.PowerShield,
	})
	return w
}

func TestFrameDrawsReadyOverlay(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	r.Frame(engine.HUDSnapshot{TopScore: 500}, engine.NewWorld())

	text := screenText(screen)
	if !strings.Contains(text, "L A N E D R I V E R") {
		t.Error("Ready screen should show the title")
	}
	if !strings.Contains(text, "top score 500") {
		t.Error("Ready screen should show the persisted top score")
	}
}

func TestFrameDrawsHUDAndEntities(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	snap := engine.HUDSnapshot{
		Playing: true,
		Score:   1234,
		Coins:   7,
		Combo:   3,
		SoundOn: true,
	}
	r.Frame(snap, testWorld())

	text := screenText(screen)
	if !strings.Contains(text, "SCORE 1234") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(text, "COMBO x3") {
		t.Error("HUD should show an active combo")
	}
	if !strings.Contains(text, "█") {
		t.Error("Player car should be drawn")
	}
	if !strings.Contains(text, "▓") {
		t.Error("Enemy should be drawn")
	}
	if !strings.Contains(text, "[S]") {
		t.Error("Shield token should be drawn")
	}
}

func TestFrameHidesComboOfOne(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	r.Frame(engine.HUDSnapshot{Playing: true, Combo: 1}, testWorld())

	if strings.Contains(screenText(screen), "COMBO") {
		t.Error("A combo of 1 should not appear in the HUD")
	}
}

func TestFrameDrawsActivePowerUpTimer(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	snap := engine.HUDSnapshot{
		Playing:          true,
		ActivePowerUp:    engine.PowerMagnet,
		PowerUpRemaining: 2500 * time.Millisecond,
	}
	r.Frame(snap, testWorld())

	if !strings.Contains(screenText(screen), "[magnet 2.5s]") {
		t.Error("HUD should show the active effect and its remaining time")
	}
}

func TestFrameDrawsPausedOverlay(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	r.Frame(engine.HUDSnapshot{Playing: true, Paused: true}, testWorld())

	if !strings.Contains(screenText(screen), "P A U S E D") {
		t.Error("Paused overlay missing")
	}
}

func TestFrameDrawsGameOverOverlay(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	snap := engine.HUDSnapshot{Over: true, Score: 900, NewRecord: true}
	r.Frame(snap, testWorld())

	text := screenText(screen)
	if !strings.Contains(text, "G A M E   O V E R") {
		t.Error("Game over overlay missing")
	}
	if !strings.Contains(text, "NEW RECORD") {
		t.Error("New record banner missing")
	}
}

func TestResizeToTinyScreenDoesNotPanic(t *testing.T) {
	screen := newTestScreen(t)
	r := NewTerminalRenderer(screen, config.Default())

	screen.SetSize(5, 3)
	r.Resize(5, 3)
	r.Frame(engine.HUDSnapshot{Playing: true}, testWorld())
}
