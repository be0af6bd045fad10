package domain

import "fmt"

// TileCoord is an integer tile position. It is used as a map key and as RNG seed material.
type TileCoord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Tile is shorthand for TileCoord{X: x, Y: y}
func Tile(x, y int) TileCoord {
	return TileCoord{X: x, Y: y}
}

// Offset returns the tile shifted by dx, dy
func (t TileCoord) Offset(dx, dy int) TileCoord {
	return TileCoord{X: t.X + dx, Y: t.Y + dy}
}

// Less orders tiles row-major (Y first, then X)
func (t TileCoord) Less(other TileCoord) bool {
	if t.Y != other.Y {
		return t.Y < other.Y
	}
	return t.X < other.X
}

func (t TileCoord) String() string {
	return fmt.Sprintf("<%d, %d>", t.X, t.Y)
}
