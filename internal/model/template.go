package model

import (
	"fmt"
	"strings"
)

// Layout holds the marker offsets of a template, relative to its first line.
type Layout struct {
	Overview int `koanf:"overview" yaml:"overview"`
	Details  int `koanf:"details" yaml:"details"`
	End      int `koanf:"end" yaml:"end"`
}

// DefaultLayout matches the blueprint served by the analysis service:
// overview at +2, details at +3 and the end marker at +4.
var DefaultLayout = Layout{Overview: 2, Details: 3, End: 4}

// Template is a multi-line blueprint inserted once per scope.
type Template struct {
	Text   string
	Layout Layout
}

// NewTemplate creates a Template using DefaultLayout.
func NewTemplate(text string) Template {
	return Template{Text: text, Layout: DefaultLayout}
}

// Lines splits the blueprint into its lines.
func (t Template) Lines() []string {
	return strings.Split(t.Text, "\n")
}

// LineCount returns the number of lines the template inserts.
func (t Template) LineCount() int {
	return strings.Count(t.Text, "\n") + 1
}

// Validate checks that the marker offsets agree with the blueprint.
// Overview and details text land on the lines just above the details and
// end markers, so the end marker must sit exactly one line past the template.
func (t Template) Validate() error {
	l := t.Layout
	if l.Overview <= 0 || l.Details <= l.Overview || l.End <= l.Details {
		return fmt.Errorf("layout offsets must be increasing and positive, got %d/%d/%d", l.Overview, l.Details, l.End)
	}

	if n := t.LineCount(); l.End != n {
		return fmt.Errorf("end marker offset %d does not match template length %d", l.End, n)
	}

	return nil
}

// Reindent prefixes every template line with the given whitespace.
func (t Template) Reindent(whitespace string) []string {
	lines := t.Lines()
	for i, line := range lines {
		lines[i] = whitespace + line
	}

	return lines
}
