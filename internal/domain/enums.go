package domain

// SquareState classifies a square for rendering. The numeric values are part
// of the JSON wire format consumed by the frontend.
type SquareState int

const (
	SquareEmpty    SquareState = iota
	SquareQueen                // a placed queen sits here
	SquareAttacked             // reachable by at least one placed queen
	SquareSafe                 // not reachable by any placed queen
)

// Direction selects a navigation move over a cached solution list.
type Direction int

const (
	First Direction = iota
	Prev
	Next
	Last
	Random // seeded random jump
)
