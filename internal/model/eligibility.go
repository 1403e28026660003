package model

// Eligibility describes whether a file may take part in documentation sync.
type Eligibility struct {
	File     Path
	RepoRoot Path
	Relative Path
	Repo     string
	Branch   string
	Commit   string
	Tracked  bool
	Marker   bool
	Eligible bool
	// Reason is empty when Eligible is true.
	Reason string
}
