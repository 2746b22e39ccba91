package engine

// Player is the run-scoped vehicle. Y never changes; X eases toward the
// current lane's center each frame.
type Player struct {
	X, Y          float64
	Width, Height float64
	// Lane is the lane the simulation is easing toward
	Lane int
}

// CenterX returns the horizontal center
func (p *Player) CenterX() float64 {
	return p.X + p.Width/2
}

// CenterY returns the vertical center
func (p *Player) CenterY() float64 {
	return p.Y + p.Height/2
}

// Enemy is a lane-locked obstacle falling toward the player.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Lane          int
	Speed         float64
	// Passed latches once the bounding box clears the player's y,
	// triggering dodge scoring exactly once
	Passed bool
}

// Coin is a collectible. Spin is cosmetic rotation phase.
type Coin struct {
	X, Y float64
	Size float64
	Lane int
	Spin float64
}

// CenterX returns the horizontal center
func (c *Coin) CenterX() float64 {
	return c.X + c.Size/2
}

// CenterY returns the vertical center
func (c *Coin) CenterY() float64 {
	return c.Y + c.Size/2
}

// PowerUp is a collectible timed-effect token. Pulse is cosmetic.
type PowerUp struct {
	X, Y  float64
	Size  float64
	Lane  int
	Type  PowerUpType
	Pulse float64
}

// CenterX returns the horizontal center
func (p *PowerUp) CenterX() float64 {
	return p.X + p.Size/2
}

// CenterY returns the vertical center
func (p *PowerUp) CenterY() float64 {
	return p.Y + p.Size/2
}

// World holds the entity stores for one run. Stores are ordered slices;
// spawners append, the update pass mutates and prunes in place.
type World struct {
	Player   *Player
	Enemies  []*Enemy
	Coins    []*Coin
	PowerUps []*PowerUp
}

// NewWorld creates empty stores with no player; Reset places one.
func NewWorld() *World {
	return &World{}
}

// Reset drops all entities and installs a fresh player at the given
// position.
func (w *World) Reset(player *Player) {
	w.Player = player
	w.Enemies = w.Enemies[:0]
	w.Coins = w.Coins[:0]
	w.PowerUps = w.PowerUps[:0]
}

// EnemyInLaneNear reports whether any enemy in the lane is still within
// clearance world units of the top of the viewport.
func (w *World) EnemyInLaneNear(lane int, clearance float64) bool {
	for _, e := range w.Enemies {
		if e.Lane == lane && e.Y < clearance {
			return true
		}
	}
	return false
}
