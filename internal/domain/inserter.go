package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mouse-blink/docstream/internal/adapter"
	m "github.com/mouse-blink/docstream/internal/model"
)

// TemplateInserter places one template per scope into a buffer and builds
// the registry describing where each one landed.
type TemplateInserter interface {
	InsertAll(buffer adapter.Buffer, scopes []m.Scope, tmpl m.Template, placement m.Placement) (*Registry, error)
}

type templateInserter struct{}

// NewTemplateInserter creates a TemplateInserter.
func NewTemplateInserter() TemplateInserter {
	return &templateInserter{}
}

// InsertAll validates every scope before touching the buffer, then inserts
// the templates in report order. Positions are computed arithmetically from
// the number of templates already inserted; the buffer is never re-scanned.
func (ti *templateInserter) InsertAll(buffer adapter.Buffer, scopes []m.Scope, tmpl m.Template, placement m.Placement) (*Registry, error) {
	if !placement.Valid() {
		return nil, fmt.Errorf("unknown placement %q", placement)
	}

	if err := tmpl.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	if err := ti.validateRanges(buffer.LineCount(), scopes, placement); err != nil {
		return nil, err
	}

	registry, err := BuildRegistry(scopes, placement, tmpl)
	if err != nil {
		return nil, err
	}

	length := registry.TemplateLength()

	for i, state := range registry.States() {
		shift := length * i

		whitespace, err := ti.indentation(buffer, state, placement, shift)
		if err != nil {
			return nil, err
		}

		if err := buffer.InsertLines(state.DocsStart, tmpl.Reindent(whitespace)); err != nil {
			return nil, fmt.Errorf("failed to insert template for scope at line %d: %w", state.Scope.Range.Start.Line, err)
		}
	}

	registry.Correct()

	return registry, nil
}

func (ti *templateInserter) validateRanges(lineCount int, scopes []m.Scope, placement m.Placement) error {
	for i, scope := range scopes {
		start, end := scope.Range.Start.Line, scope.Range.End.Line
		if start < 1 || end < start || end > lineCount {
			return fmt.Errorf("%w: scope %d spans %d-%d in a %d line buffer", ErrInvalidScopeRange, i, start, end, lineCount)
		}

		if anchor := Anchor(scope, placement); anchor < start || anchor > end {
			return fmt.Errorf("%w: scope %d anchors at line %d outside %d-%d", ErrInvalidScopeRange, i, anchor, start, end)
		}
	}

	return nil
}

// indentation returns the leading whitespace the template copies. BEFORE
// copies the declaration line; AFTER copies the first non-blank body line.
func (ti *templateInserter) indentation(buffer adapter.Buffer, state m.ScopeState, placement m.Placement, shift int) (string, error) {
	if placement == m.PlaceBefore {
		line, err := buffer.ReadLine(state.DocsStart)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidScopeRange, err)
		}

		return leadingWhitespace(line), nil
	}

	end := state.Scope.Range.End.Line + shift
	for n := state.DocsStart; n <= end; n++ {
		line, err := buffer.ReadLine(n)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidScopeRange, err)
		}

		if strings.TrimSpace(line) != "" {
			return leadingWhitespace(line), nil
		}
	}

	return "", nil
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}
