package model

// ScopeState tracks where one scope's template landed in the buffer.
// All line numbers are 1-indexed in the final, insertion-adjusted frame.
type ScopeState struct {
	Scope        Scope
	DocsStart    int
	OverviewLine int
	DetailsLine  int
	EndLine      int
	// ScopesAfter holds the DocsStart of every scope reported after this one.
	ScopesAfter []int
}

// OverviewTarget is the line overview text accumulates on.
func (s ScopeState) OverviewTarget() int {
	return s.DetailsLine - 1
}

// DetailsTarget is the line details text accumulates on.
func (s ScopeState) DetailsTarget() int {
	return s.EndLine - 1
}

// SessionSummary is a snapshot of a session, used for reporting.
type SessionSummary struct {
	Topic     string
	Placement Placement
	States    []ScopeState
	Tokens    int
	Dropped   int
}
