package domain

import (
	m "github.com/mouse-blink/docstream/internal/model"
)

// Anchor returns the original-frame line a scope's documentation is
// inserted before. AFTER falls back to the line after the declaration
// when the analysis service did not report a body start.
func Anchor(scope m.Scope, placement m.Placement) int {
	if placement == m.PlaceAfter {
		if scope.Range.BodyStart != nil {
			return scope.Range.BodyStart.Line
		}

		return scope.Range.Start.Line + 1
	}

	return scope.Range.Start.Line
}
