package domain

import (
	"fmt"

	m "github.com/mouse-blink/docstream/internal/model"
)

// Registry maps a session's final docs-start lines to scope states.
type Registry struct {
	placement m.Placement
	layout    m.Layout
	length    int
	order     []int
	states    map[int]*m.ScopeState
	anchors   map[int]int
	corrected bool
}

// BuildRegistry computes every scope's insertion line for a single
// left-to-right pass. Each template inserted above a scope pushes its anchor
// down by one template length, so scope i starts at anchor + length*i.
// Marker lines are left in the original frame until Correct runs.
func BuildRegistry(scopes []m.Scope, placement m.Placement, tmpl m.Template) (*Registry, error) {
	length := tmpl.LineCount()
	r := &Registry{
		placement: placement,
		layout:    tmpl.Layout,
		length:    length,
		order:     make([]int, 0, len(scopes)),
		states:    make(map[int]*m.ScopeState, len(scopes)),
		anchors:   make(map[int]int, len(scopes)),
	}

	prev := 0

	for i, scope := range scopes {
		anchor := Anchor(scope, placement)
		if anchor <= prev {
			return nil, fmt.Errorf("%w: scope %d anchors at line %d, not after line %d", ErrInvalidScopeRange, i, anchor, prev)
		}

		prev = anchor
		docsStart := anchor + length*i

		r.order = append(r.order, docsStart)
		r.anchors[anchor] = docsStart
		r.states[docsStart] = &m.ScopeState{
			Scope:        scope,
			DocsStart:    docsStart,
			OverviewLine: anchor + tmpl.Layout.Overview,
			DetailsLine:  anchor + tmpl.Layout.Details,
			EndLine:      anchor + tmpl.Layout.End,
		}
	}

	for i, docsStart := range r.order {
		state := r.states[docsStart]
		for j := len(r.order) - 1; j > i; j-- {
			state.ScopesAfter = append(state.ScopesAfter, r.order[j])
		}
	}

	return r, nil
}

// Correct shifts the markers of every scope by one template length for each
// scope inserted above it. It is a no-op after the first call.
func (r *Registry) Correct() {
	if r.corrected {
		return
	}

	for _, docsStart := range r.order {
		for _, after := range r.states[docsStart].ScopesAfter {
			target := r.states[after]
			target.OverviewLine += r.length
			target.DetailsLine += r.length
			target.EndLine += r.length
		}
	}

	r.corrected = true
}

// StateFor returns the state whose template starts at docsStart.
func (r *Registry) StateFor(docsStart int) (m.ScopeState, error) {
	state, ok := r.states[docsStart]
	if !ok {
		return m.ScopeState{}, fmt.Errorf("%w: no scope documented at line %d", ErrUnknownScope, docsStart)
	}

	return *state, nil
}

// Resolve maps a scope in original coordinates to its docs-start line.
func (r *Registry) Resolve(scope m.Scope) (int, error) {
	anchor := Anchor(scope, r.placement)

	docsStart, ok := r.anchors[anchor]
	if !ok {
		return 0, fmt.Errorf("%w: no scope anchored at original line %d", ErrUnknownScope, anchor)
	}

	return docsStart, nil
}

// States returns the scope states in report order.
func (r *Registry) States() []m.ScopeState {
	out := make([]m.ScopeState, 0, len(r.order))
	for _, docsStart := range r.order {
		out = append(out, *r.states[docsStart])
	}

	return out
}

// Placement returns the placement mode the registry was built with.
func (r *Registry) Placement() m.Placement {
	return r.placement
}

// TemplateLength returns the number of lines each template inserts.
func (r *Registry) TemplateLength() int {
	return r.length
}

// Len returns the number of registered scopes.
func (r *Registry) Len() int {
	return len(r.order)
}
