package pipegrid

// openings lists, per kind, the directions a path may leave the cell through.
// Start opens in all four directions: until it is resolved, every shape it
// could stand for is a candidate.
var openings = [numKinds]DirSet{
	Ground:     0,
	Vertical:   Of(North, South),
	Horizontal: Of(East, West),
	NorthEast:  Of(North, East),
	NorthWest:  Of(North, West),
	SouthWest:  Of(South, West),
	SouthEast:  Of(South, East),
	Start:      Of(North, East, South, West),
}

// connects is the adjacency rule as one lookup:
// connects[from][to][d] reports whether a path may step from a `from` cell
// toward d into a `to` cell.
var connects [numKinds][numKinds][4]bool

func init() {
	for from := 0; from < numKinds; from++ {
		for to := 0; to < numKinds; to++ {
			for _, d := range Directions {
				connects[from][to][d] = openings[from].Has(d) && openings[to].Has(d.Opposite())
			}
		}
	}
}

// Openings returns the directions k connects to.
// Complexity: O(1).
func Openings(k Kind) DirSet {
	if int(k) >= numKinds {
		return 0
	}

	return openings[k]
}

// Connects reports whether a path can step from a cell of kind from, toward
// d, into a neighbouring cell of kind to. Both connectors must face each other.
// Complexity: O(1).
func Connects(from, to Kind, d Direction) bool {
	if int(from) >= numKinds || int(to) >= numKinds || d > West {
		return false
	}

	return connects[from][to][d]
}

// KindFor returns the concrete connector whose openings are exactly s.
// ok is false unless s holds exactly two directions.
func KindFor(s DirSet) (k Kind, ok bool) {
	if s.Len() != 2 {
		return Ground, false
	}
	for _, c := range []Kind{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast} {
		if openings[c] == s {
			return c, true
		}
	}

	return Ground, false
}
