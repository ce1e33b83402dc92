package grid

import "strings"

// Direction identifies one of the six unit moves between adjacent cells.
// The four compass directions span the XZ plane; Up and Down follow the
// vertical Y axis.
type Direction uint8

const (
	// North points toward decreasing Z.
	North Direction = iota
	// East points toward increasing X.
	East
	// South points toward increasing Z.
	South
	// West points toward decreasing X.
	West
	// Up points toward increasing Y.
	Up
	// Down points toward decreasing Y.
	Down

	numDirections
)

// CompassDirections lists the four horizontal directions in the canonical
// sweep order. Treated as read-only.
var CompassDirections = []Direction{North, East, South, West}

// directionOffsets maps each Direction to its unit displacement.
var directionOffsets = [numDirections]Vec{
	North: {0, 0, -1},
	East:  {1, 0, 0},
	South: {0, 0, 1},
	West:  {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
}

// Offset returns the unit displacement of d.
// Complexity: O(1).
func (d Direction) Offset() Vec { return directionOffsets[d] }

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	default:
		return Up
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case Up:
		return "Up"
	default:
		return "Down"
	}
}

// DirectionOf resolves a unit displacement back to its Direction.
// The second return is false when delta is not one of the six unit moves.
func DirectionOf(delta Vec) (Direction, bool) {
	for d := North; d < numDirections; d++ {
		if directionOffsets[d] == delta {
			return d, true
		}
	}

	return North, false
}

// DirectionSet is a bitmask of open directions at one cell. A direction is
// recorded as open only when carving confirmed a corridor or stair neighbor
// on that side; entrance detection additionally requires the neighbor's own
// set to reference back.
type DirectionSet uint8

// Add marks d open in the set.
func (s *DirectionSet) Add(d Direction) { *s |= 1 << d }

// Has reports whether d is open in the set.
func (s DirectionSet) Has(d Direction) bool { return s&(1<<d) != 0 }

// IsEmpty reports whether no direction is open.
func (s DirectionSet) IsEmpty() bool { return s == 0 }

// String lists the open directions, "none" for the empty set.
func (s DirectionSet) String() string {
	if s.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, int(numDirections))
	for d := North; d < numDirections; d++ {
		if s.Has(d) {
			names = append(names, d.String())
		}
	}

	return strings.Join(names, "|")
}
