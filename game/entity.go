package game

// Entity is a simulated rigid body. The server never integrates these
// (the authoritative client runs the simulation) but it keeps the
// attributes so late joiners can seed their local world.
type Entity struct {
	ID     string
	X, Y   float64
	VX, VY float64
	Mass   float64
	Radius float64
}
