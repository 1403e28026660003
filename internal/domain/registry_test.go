package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docstream/internal/model"
)

func scopeAt(start, end int) m.Scope {
	return m.Scope{Range: m.Range{Start: m.Position{Line: start}, End: m.Position{Line: end}}}
}

func bodyScopeAt(start, body, end int) m.Scope {
	s := scopeAt(start, end)
	s.Range.BodyStart = &m.Position{Line: body}

	return s
}

// threeLineTemplate is an L=3 template whose layout passes Validate.
func threeLineTemplate(t *testing.T) m.Template {
	t.Helper()

	tmpl := m.Template{Text: "a\nb\nc", Layout: m.Layout{Overview: 1, Details: 2, End: 3}}
	require.NoError(t, tmpl.Validate())

	return tmpl
}

func TestBuildRegistry_CumulativeShift(t *testing.T) {
	tmpl := threeLineTemplate(t)
	scopes := []m.Scope{scopeAt(10, 12), scopeAt(20, 22), scopeAt(30, 32)}

	r, err := BuildRegistry(scopes, m.PlaceBefore, tmpl)
	require.NoError(t, err)

	states := r.States()
	require.Len(t, states, 3)

	for i, want := range []int{10, 23, 36} {
		assert.Equal(t, want, states[i].DocsStart, "scope %d docs start", i)
	}

	// markers stay in the original frame until Correct runs
	assert.Equal(t, 21, states[1].OverviewLine)
	assert.Equal(t, []int{36, 23}, states[0].ScopesAfter)
	assert.Equal(t, []int{36}, states[1].ScopesAfter)
	assert.Empty(t, states[2].ScopesAfter)
}

func TestRegistry_CorrectDoesNotDoubleCount(t *testing.T) {
	tmpl := threeLineTemplate(t)
	scopes := []m.Scope{scopeAt(10, 12), scopeAt(20, 22), scopeAt(30, 32)}

	r, err := BuildRegistry(scopes, m.PlaceBefore, tmpl)
	require.NoError(t, err)

	r.Correct()
	r.Correct()

	for _, state := range r.States() {
		assert.Equal(t, state.DocsStart+1, state.OverviewLine)
		assert.Equal(t, state.DocsStart+2, state.DetailsLine)
		assert.Equal(t, state.DocsStart+3, state.EndLine)
	}
}

func TestRegistry_StateForAndResolve(t *testing.T) {
	tmpl := m.NewTemplate("/**\n*\n*\n*/")
	scopes := []m.Scope{scopeAt(3, 5), scopeAt(8, 9)}

	r, err := BuildRegistry(scopes, m.PlaceBefore, tmpl)
	require.NoError(t, err)
	r.Correct()

	docsStart, err := r.Resolve(scopeAt(8, 9))
	require.NoError(t, err)
	assert.Equal(t, 12, docsStart)

	state, err := r.StateFor(docsStart)
	require.NoError(t, err)
	assert.Equal(t, 14, state.OverviewLine)
	assert.Equal(t, 14, state.OverviewTarget())
	assert.Equal(t, 15, state.DetailsTarget())

	_, err = r.StateFor(99)
	require.ErrorIs(t, err, ErrUnknownScope)

	_, err = r.Resolve(scopeAt(4, 5))
	require.ErrorIs(t, err, ErrUnknownScope)
}

func TestBuildRegistry_RejectsUnorderedAnchors(t *testing.T) {
	tmpl := m.NewTemplate("/**\n*\n*\n*/")

	t.Run("duplicate", func(t *testing.T) {
		_, err := BuildRegistry([]m.Scope{scopeAt(3, 5), scopeAt(3, 4)}, m.PlaceBefore, tmpl)
		require.ErrorIs(t, err, ErrInvalidScopeRange)
	})

	t.Run("descending", func(t *testing.T) {
		_, err := BuildRegistry([]m.Scope{scopeAt(8, 9), scopeAt(3, 5)}, m.PlaceBefore, tmpl)
		require.ErrorIs(t, err, ErrInvalidScopeRange)
	})
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name      string
		scope     m.Scope
		placement m.Placement
		want      int
	}{
		{"before uses start", bodyScopeAt(4, 6, 9), m.PlaceBefore, 4},
		{"after uses body start", bodyScopeAt(4, 6, 9), m.PlaceAfter, 6},
		{"after without body start", scopeAt(4, 9), m.PlaceAfter, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Anchor(tt.scope, tt.placement))
		})
	}
}
