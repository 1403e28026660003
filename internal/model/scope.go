// Package model defines the data structures shared by the docstream engine.
package model

// Path represents a file system path.
type Path string

// Position is a single point reported by the analysis service.
// Lines are 1-indexed in the pre-insertion coordinate frame.
type Position struct {
	Line int `json:"line"`
}

// Range is the line span of a scope.
// BodyStart is optional; the analysis service omits it for some languages.
type Range struct {
	Start     Position  `json:"start"`
	End       Position  `json:"end"`
	BodyStart *Position `json:"body_start,omitempty"`
}

// Scope represents a region of code (function, class, file) that needs documentation.
type Scope struct {
	Name  string `json:"name,omitempty"`
	Range Range  `json:"range"`
}

// Placement defines where documentation is inserted relative to a scope.
type Placement string

const (
	// PlaceBefore inserts documentation immediately above the declaration.
	PlaceBefore Placement = "BEFORE"
	// PlaceAfter inserts documentation as the first statement inside the body.
	PlaceAfter Placement = "AFTER"
)

// Valid reports whether p is one of the known placement modes.
func (p Placement) Valid() bool {
	return p == PlaceBefore || p == PlaceAfter
}
