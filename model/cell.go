package model

// CellState is the state of a single grid cell. Removed is terminal:
// a removed cell never becomes occupied again.
type CellState int8

const (
	Empty CellState = iota
	Occupied
	Removed
)

// String returns the single-character text form of the state.
func (s CellState) String() string {
	return string(s.Rune())
}

// Rune returns the text-format character for the state.
func (s CellState) Rune() rune {
	switch s {
	case Occupied:
		return charOccupied
	case Removed:
		return charRemoved
	case Empty:
		return charEmpty
	}
	return '?'
}
