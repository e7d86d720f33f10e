package domain

import "time"

// Placement assigns one queen column per row: Placement[row] = col, 0-indexed.
// A complete placement for an n×n board has length n.
type Placement []int

// Cell identifies a square on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// BoardView is a render-ready snapshot of a board for the UI.
type BoardView struct {
	Size   int             `json:"size"`
	Grid   [][]SquareState `json:"grid"`
	Queens []Cell          `json:"queens,omitempty"`
	// Labels holds the algebraic square per placed queen, in row order ("c1").
	Labels []string `json:"labels,omitempty"`
}

// StepInfo narrates one step of a step-through animation.
type StepInfo struct {
	Step      int    `json:"step"` // row of the last placed queen; -1 for an empty board
	Message   string `json:"message,omitempty"`
	Remaining int    `json:"remaining"`
	Done      bool   `json:"done"`
}

// RunResult is one row of the size-by-size comparison table.
type RunResult struct {
	Size      int           `json:"size"`
	Solutions int           `json:"solutions"`
	Nodes     int           `json:"nodes"`
	Duration  time.Duration `json:"duration"`
}
