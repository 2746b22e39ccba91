package game

import (
	"math"
	"testing"

	"github.com/lixenwraith/lanedriver/constants"
	"github.com/lixenwraith/lanedriver/engine"
)

func TestStepNoOpWhenNotPlaying(t *testing.T) {
	sim, _ := newTestSim(t)
	st := sim.State()

	sim.Step()

	if st.Distance != 0 || st.Score != 0 {
		t.Error("Step before Start must not advance the run")
	}
}

func TestStepNoOpWhilePaused(t *testing.T) {
	sim, _ := startedSim(t)
	sim.Pause()
	st := sim.State()
	before := st.Distance

	sim.Step()

	if st.Distance != before {
		t.Error("Step while paused must not advance distance")
	}
}

func TestStepSpeedGrowsEveryFrame(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()

	for i := 0; i < 100; i++ {
		sim.Step()
	}

	want := 1.0 + 100*constants.SpeedIncrement
	if math.Abs(st.CurrentSpeed-want) > 1e-9 {
		t.Errorf("CurrentSpeed = %v, want %v", st.CurrentSpeed, want)
	}
}

func TestStepContinuousScoring(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()

	for i := 0; i < 10; i++ {
		sim.Step()
	}

	// floor(speed*dt) is 1 per frame at near-unit speed
	if st.Score != 10 {
		t.Errorf("Score = %d, want 10 after 10 frames", st.Score)
	}
}

func TestStepDifficultyThreshold(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()

	if st.DifficultyLevel != 1 {
		t.Fatalf("Level = %d at distance 0, want 1", st.DifficultyLevel)
	}

	st.Distance = constants.DifficultyInterval - 0.001
	sim.Step()
	if st.DifficultyLevel != 2 {
		t.Errorf("Level = %d just past the first threshold, want 2", st.DifficultyLevel)
	}

	st.Distance = 3 * constants.DifficultyInterval
	sim.Step()
	if st.DifficultyLevel != 4 {
		t.Errorf("Level = %d at 3 intervals, want 4", st.DifficultyLevel)
	}
}

func TestStepSlowMoHalvesDistance(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()

	sim.Step()
	normalDelta := st.Distance

	st.Distance = 0
	st.CurrentSpeed = 1.0
	st.HasSlowMo = true
	sim.Step()

	if math.Abs(st.Distance-normalDelta*constants.SlowMoFactor) > 1e-9 {
		t.Errorf("SlowMo distance delta = %v, want %v", st.Distance, normalDelta*constants.SlowMoFactor)
	}
}

func TestStepNitroScalesDistance(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()

	sim.Step()
	normalDelta := st.Distance

	st.Distance = 0
	st.CurrentSpeed = 1.0
	st.HasNitro = true
	sim.Step()

	if math.Abs(st.Distance-normalDelta*constants.NitroFactor) > 1e-9 {
		t.Errorf("Nitro distance delta = %v, want %v", st.Distance, normalDelta*constants.NitroFactor)
	}
}

func TestStepPlayerEasesTowardLane(t *testing.T) {
	sim, _ := startedSim(t)
	player := sim.World().Player

	sim.RequestLaneShift(+1)
	target := LaneToX(player.Lane, sim.cfg.LaneWidth(), player.Width)
	before := math.Abs(target - player.X)

	for i := 0; i < 40; i++ {
		sim.Step()
	}
	after := math.Abs(target - player.X)

	if after >= before {
		t.Errorf("Player did not converge toward the lane center: %v -> %v", before, after)
	}
	if after > 1.0 {
		t.Errorf("Player still %v world units from center after 40 frames", after)
	}
}

func TestStepUnshieldedCollisionEndsRun(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()
	player := sim.World().Player

	sim.World().Enemies = append(sim.World().Enemies, &engine.Enemy{
		X: player.X, Y: player.Y,
		Width: constants.EnemyWidth, Height: constants.EnemyHeight,
		Lane: player.Lane, Speed: 0,
	})

	scoreBefore := st.Score
	sim.Step()

	if !st.Over || st.Playing {
		t.Error("Unshielded collision should end the run")
	}
	// The frame truncates at the crash: no continuous score after it
	if st.Score != scoreBefore {
		t.Errorf("Score = %d after crash, want unchanged %d", st.Score, scoreBefore)
	}
}

func TestStepShieldedCollisionPassesThrough(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()
	st.HasShield = true
	player := sim.World().Player

	sim.World().Enemies = append(sim.World().Enemies, &engine.Enemy{
		X: player.X, Y: player.Y,
		Width: constants.EnemyWidth, Height: constants.EnemyHeight,
		Lane: player.Lane, Speed: 5,
	})

	sim.Step()

	if st.Over {
		t.Error("Shielded collision must not end the run")
	}
	if len(sim.World().Enemies) != 1 {
		t.Error("Shielded pass-through must not remove the enemy")
	}
}

func TestStepDodgeFiresExactlyOnce(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()
	player := sim.World().Player

	// Just above the dodge line; one advance pushes it past
	sim.World().Enemies = append(sim.World().Enemies, &engine.Enemy{
		X: LaneToX(0, sim.cfg.LaneWidth(), constants.EnemyWidth),
		Y: player.Y + player.Height - 1,
		Width: constants.EnemyWidth, Height: constants.EnemyHeight,
		Lane: 0, Speed: 5,
	})

	sim.Step()
	if st.Combo != 1 {
		t.Fatalf("Combo = %d after the enemy cleared the player, want 1", st.Combo)
	}

	comboAfterDodge := st.Combo
	sim.Step()
	if st.Combo != comboAfterDodge {
		t.Error("Dodge must not fire twice for the same enemy")
	}
}

func TestStepEnemiesPrunedOffScreen(t *testing.T) {
	sim, _ := startedSim(t)

	sim.World().Enemies = append(sim.World().Enemies, &engine.Enemy{
		X: 0, Y: constants.WorldHeight,
		Width: constants.EnemyWidth, Height: constants.EnemyHeight,
		Lane: 0, Speed: 5, Passed: true,
	})

	sim.Step()

	if len(sim.World().Enemies) != 0 {
		t.Errorf("%d enemies remain past the bottom edge, want 0", len(sim.World().Enemies))
	}
}

func TestStepCoinPickup(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()
	player := sim.World().Player

	sim.World().Coins = append(sim.World().Coins, &engine.Coin{
		X:    player.CenterX() - constants.CoinSize/2,
		Y:    player.CenterY() - constants.CoinSize/2,
		Size: constants.CoinSize,
		Lane: player.Lane,
	})

	sim.Step()

	if st.Coins != 1 {
		t.Errorf("Coins = %d, want 1", st.Coins)
	}
	// 1 coin * 10 points + 1 continuous point
	if st.Score != constants.CoinValue*constants.CoinScoreMultiplier+1 {
		t.Errorf("Score = %d, want %d", st.Score, constants.CoinValue*constants.CoinScoreMultiplier+1)
	}
	if len(sim.World().Coins) != 0 {
		t.Error("Collected coin should be removed")
	}
}

func TestStepCoinDoubledUnderDoublePoints(t *testing.T) {
	sim, _ := startedSim(t)
	st := sim.State()
	st.HasDoublePoints = true
	player := sim.World().Player

	sim.World().Coins = append(sim.World().Coins, &engine.Coin{
		X:    player.CenterX() - constants.CoinSize/2,
		Y:    player.CenterY() - constants.CoinSize/2,
		Size: constants.CoinSize,
		Lane: player.Lane,
	})

	sim.Step()

	if st.Coins != 2 {
		t.Errorf("Coins = %d, want 2 under double points", st.Coins)
	}
}

func TestStepMagnetPullsNearbyCoin(t *testing.T) {
	sim, _ := startedSim(t)
	sim.State().HasMagnet = true
	player := sim.World().Player

	coin := &engine.Coin{
		X:    player.CenterX() + 100 - constants.CoinSize/2,
		Y:    player.CenterY() - constants.CoinSize/2,
		Size: constants.CoinSize,
		Lane: player.Lane,
	}
	sim.World().Coins = append(sim.World().Coins, coin)

	distBefore := math.Abs(player.CenterX() - coin.CenterX())
	sim.advanceCoins(0) // no scroll, isolate the pull
	distAfter := math.Abs(player.CenterX() - coin.CenterX())

	if distAfter >= distBefore {
		t.Errorf("Magnet did not pull the coin closer: %v -> %v", distBefore, distAfter)
	}
}

func TestStepMagnetIgnoresDistantCoin(t *testing.T) {
	sim, _ := startedSim(t)
	sim.State().HasMagnet = true
	player := sim.World().Player

	coin := &engine.Coin{
		X:    player.CenterX() - constants.CoinSize/2,
		Y:    player.CenterY() - constants.MagnetRadius - 50,
		Size: constants.CoinSize,
		Lane: player.Lane,
	}
	sim.World().Coins = append(sim.World().Coins, coin)

	yBefore := coin.Y
	sim.advanceCoins(0)

	if coin.Y != yBefore {
		t.Error("Coin outside the magnet radius must not be pulled")
	}
}
