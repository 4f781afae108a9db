package game

const (
	// Player ball template. Must match the client's body factory.
	PlayerMass   = 1.5
	PlayerRadius = 20.0

	// Spawn layout: fixed horizontal spacing from a base point. Join
	// ordinals are never reused within a process, so two spawns can never
	// land on the same spot.
	SpawnBaseX   = 200.0
	SpawnSpacing = 200.0
	SpawnY       = 300.0
)
