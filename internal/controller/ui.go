// Package controller renders docstream results for the command line.
package controller

import (
	m "github.com/mouse-blink/docstream/internal/model"
)

// UI defines how command results are shown to the user.
// Implementations can use different output methods.
type UI interface {
	// DisplaySummaries shows where each scope's documentation landed.
	DisplaySummaries(summaries []m.SessionSummary) error
	// DisplayEligibility shows the outcome of the eligibility gate.
	DisplayEligibility(result m.Eligibility) error
}
