package gel

// Fragment is one simulated DNA band. Position is the distance traveled
// from the top of the gel in distance-units; once Finished it is pinned at
// the travel limit and never moves again.
type Fragment struct {
	ID       string
	Lane     int
	SizeBP   int
	Position float64
	Finished bool
}

// LaneDef describes one well's worth of samples before loading.
type LaneDef struct {
	Lane  int
	Sizes []int
}
