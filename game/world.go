package game

// SeedEntities returns the world-fixed bodies every match starts with.
// They mirror the free balls baked into the client scene.
func SeedEntities() []*Entity {
	return []*Entity{
		{ID: "ball3", X: 600, Y: 400, VX: -50, VY: -50, Mass: 0.8, Radius: 15},
		{ID: "ball4", X: 400, Y: 400, Mass: 3, Radius: 35},
	}
}

// SpawnFor places the nth player's ball.
func SpawnFor(n int) (x, y float64) {
	return SpawnBaseX + SpawnSpacing*float64(n-1), SpawnY
}

// NewPlayerEntity creates the ball owned by the nth player to join.
func NewPlayerEntity(id string, n int) *Entity {
	x, y := SpawnFor(n)
	return &Entity{ID: id, X: x, Y: y, Mass: PlayerMass, Radius: PlayerRadius}
}
