// Package hex implements cube and offset coordinates for hexagonal grids.
package hex

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is returned when cube components do not sum to zero.
var ErrInvalidCoordinate = errors.New("invalid cube coordinate")

// Cube is a hex position in cube coordinates. x+y+z is always 0.
// The zero value is the origin.
type Cube struct {
	x, y, z int
}

// NewCube validates the zero-sum invariant and builds a Cube.
func NewCube(x, y, z int) (Cube, error) {
	if x+y+z != 0 {
		return Cube{}, fmt.Errorf("%w: %d%+d%+d = %d", ErrInvalidCoordinate, x, y, z, x+y+z)
	}
	return Cube{x: x, y: y, z: z}, nil
}

// MustCube is NewCube for literals known to be valid. Panics otherwise.
func MustCube(x, y, z int) Cube {
	c, err := NewCube(x, y, z)
	if err != nil {
		panic(err)
	}
	return c
}

// fromXZ derives y, so the result is valid by construction.
func fromXZ(x, z int) Cube {
	return Cube{x: x, y: -x - z, z: z}
}

func (c Cube) X() int { return c.x }
func (c Cube) Y() int { return c.y }
func (c Cube) Z() int { return c.z }

// Add returns c + other.
func (c Cube) Add(other Cube) Cube {
	return Cube{x: c.x + other.x, y: c.y + other.y, z: c.z + other.z}
}

// Sub returns c - other.
func (c Cube) Sub(other Cube) Cube {
	return Cube{x: c.x - other.x, y: c.y - other.y, z: c.z - other.z}
}

// Scale multiplies every component by k.
func (c Cube) Scale(k int) Cube {
	return Cube{x: c.x * k, y: c.y * k, z: c.z * k}
}

// Length is the number of hex steps from the origin.
func (c Cube) Length() int {
	return (abs(c.x) + abs(c.y) + abs(c.z)) / 2
}

// Neighbor returns the adjacent cube in direction dir (0..5, see Directions).
func (c Cube) Neighbor(dir int) Cube {
	return c.Add(Directions[dir%6])
}

// String formats the cube as "(x, y, z)".
func (c Cube) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.x, c.y, c.z)
}

// Directions are the six unit vectors in the fixed neighbor order.
// Every neighbor enumeration in the engine follows this order.
var Directions = [6]Cube{
	{x: 1, y: -1, z: 0},
	{x: 1, y: 0, z: -1},
	{x: 0, y: 1, z: -1},
	{x: -1, y: 1, z: 0},
	{x: -1, y: 0, z: 1},
	{x: 0, y: -1, z: 1},
}

// Distance returns the number of hex steps between a and b.
func Distance(a, b Cube) int {
	return a.Sub(b).Length()
}

// rotate turns a vector 60° clockwise around the origin.
func rotate(v Cube) Cube {
	return Cube{x: -v.z, y: -v.x, z: -v.y}
}

// rotateBack is the inverse of rotate.
func rotateBack(v Cube) Cube {
	return Cube{x: -v.y, y: -v.z, z: -v.x}
}

// RotateRight rotates position 60° clockwise around center.
func RotateRight(center, position Cube) Cube {
	return center.Add(rotate(position.Sub(center)))
}

// RotateLeft rotates position 60° counter-clockwise around center.
func RotateLeft(center, position Cube) Cube {
	return center.Add(rotateBack(position.Sub(center)))
}

// Ring returns the cubes exactly radius steps from center, walking the ring
// in direction order. Radius 0 yields the center alone.
func Ring(center Cube, radius int) []Cube {
	if radius < 0 {
		return nil
	}
	if radius == 0 {
		return []Cube{center}
	}
	ring := make([]Cube, 0, 6*radius)
	cur := center.Add(Directions[4].Scale(radius))
	for side := range 6 {
		for range radius {
			ring = append(ring, cur)
			cur = cur.Neighbor(side)
		}
	}
	return ring
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
