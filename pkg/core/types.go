package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a driver uses to advance a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances one generation and reports how many cells changed.
	Step() int
	Population() int
}

// Editor is implemented by simulations whose cells can be edited directly.
// Coordinates are 1-based.
type Editor interface {
	Toggle(x, y int) error
	Clear()
}
