package geom

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrNotCardinal is returned when converting a diagonal [Direction] to
// a [Cardinal].
var ErrNotCardinal = errors.New("not a cardinal direction")

// Direction is one of the eight compass directions.
type Direction uint8

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest

	numDirections = iota
)

// Cardinal is one of the four cardinal compass directions.
type Cardinal uint8

const (
	CardinalNorth Cardinal = iota
	CardinalEast
	CardinalSouth
	CardinalWest

	numCardinals = iota
)

// Directions returns an iterator over all eight directions, clockwise
// starting from [North].
func Directions() iter.Seq[Direction] {
	return func(yield func(Direction) bool) {
		for d := range Direction(numDirections) {
			if !yield(d) {
				return
			}
		}
	}
}

// Cardinals returns an iterator over the four cardinal directions,
// clockwise starting from [CardinalNorth].
func Cardinals() iter.Seq[Cardinal] {
	return func(yield func(Cardinal) bool) {
		for c := range Cardinal(numCardinals) {
			if !yield(c) {
				return
			}
		}
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case Northeast:
		return "Northeast"
	case East:
		return "East"
	case Southeast:
		return "Southeast"
	case South:
		return "South"
	case Southwest:
		return "Southwest"
	case West:
		return "West"
	case Northwest:
		return "Northwest"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Neg returns the opposite direction.
func (d Direction) Neg() Direction {
	switch d {
	case North:
		return South
	case Northeast:
		return Southwest
	case East:
		return West
	case Southeast:
		return Northwest
	case South:
		return North
	case Southwest:
		return Northeast
	case West:
		return East
	case Northwest:
		return Southeast
	default:
		panic(fmt.Errorf("invalid direction: %d", uint8(d)))
	}
}

// Rotate turns d clockwise by n eighths of a full turn. Negative values
// of n turn counterclockwise.
func (d Direction) Rotate(n int) Direction {
	n = (int(d) + n) % numDirections
	if n < 0 {
		n += numDirections
	}
	return Direction(n)
}

// IsDiagonal reports whether d lies between two cardinal directions.
func (d Direction) IsDiagonal() bool {
	return d%2 == 1
}

// Cardinal converts d to a cardinal direction. The conversion maps
// each direction to the opposite cardinal, so [North] becomes
// [CardinalSouth], matching [Cardinal.Direction]. Diagonal directions
// return [ErrNotCardinal].
func (d Direction) Cardinal() (Cardinal, error) {
	switch d {
	case North:
		return CardinalSouth, nil
	case East:
		return CardinalWest, nil
	case South:
		return CardinalNorth, nil
	case West:
		return CardinalEast, nil
	default:
		return 0, fmt.Errorf("direction %v: %w", d, ErrNotCardinal)
	}
}

// Angle returns the angle that d points along. [East] is zero and
// angles increase clockwise, so [North] is -π/2.
func (d Direction) Angle() Angle[float64] {
	return Rad(float64(int(d)-int(East)) * math.Pi / 4)
}

func (c Cardinal) String() string {
	switch c {
	case CardinalNorth:
		return "North"
	case CardinalEast:
		return "East"
	case CardinalSouth:
		return "South"
	case CardinalWest:
		return "West"
	default:
		return fmt.Sprintf("Cardinal(%d)", uint8(c))
	}
}

// Neg returns the opposite cardinal direction.
func (c Cardinal) Neg() Cardinal {
	switch c {
	case CardinalNorth:
		return CardinalSouth
	case CardinalEast:
		return CardinalWest
	case CardinalSouth:
		return CardinalNorth
	case CardinalWest:
		return CardinalEast
	default:
		panic(fmt.Errorf("invalid cardinal: %d", uint8(c)))
	}
}

// Rotate turns c clockwise by n quarter turns.
func (c Cardinal) Rotate(n int) Cardinal {
	n = (int(c) + n) % numCardinals
	if n < 0 {
		n += numCardinals
	}
	return Cardinal(n)
}

// Direction converts c to a [Direction]. Like [Direction.Cardinal], it
// maps to the opposite direction, so [CardinalNorth] becomes [South].
func (c Cardinal) Direction() Direction {
	switch c {
	case CardinalNorth:
		return South
	case CardinalSouth:
		return North
	case CardinalEast:
		return West
	case CardinalWest:
		return East
	default:
		panic(fmt.Errorf("invalid cardinal: %d", uint8(c)))
	}
}

// Angle returns the angle that c points along, using the same
// convention as [Direction.Angle].
func (c Cardinal) Angle() Angle[float64] {
	return Rad(float64(int(c)-int(CardinalEast)) * math.Pi / 2)
}
