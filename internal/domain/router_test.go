package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/docstream/internal/adapter"
	adaptermocks "github.com/mouse-blink/docstream/internal/adapter/mocks"
	m "github.com/mouse-blink/docstream/internal/model"
)

func newTestRouter(t *testing.T, buf adapter.Buffer, diagnostics adapter.Diagnostics) Router {
	t.Helper()

	store, err := NewSessionStore(4, nil)
	require.NoError(t, err)

	return NewRouter(buf, store, NewTemplateInserter(), diagnostics)
}

func initMsg(topic string, scopes ...m.Scope) m.InitMessage {
	return m.InitMessage{
		Topic:     topic,
		Scopes:    scopes,
		Template:  m.NewTemplate(jsdocTemplate),
		Placement: m.PlaceBefore,
	}
}

func tokenMsg(topic string, scope m.Scope, field m.FieldKind, text string) m.TokenMessage {
	return m.TokenMessage{Topic: topic, Scope: scope, Field: field, Text: text}
}

func TestRouter_EndToEnd(t *testing.T) {
	buf := numberedBuffer(10)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))
	scope := scopeAt(5, 8)

	require.NoError(t, r.Handle(initMsg("topic-1", scope)))
	assert.Equal(t, 14, buf.LineCount())

	require.NoError(t, r.Handle(tokenMsg("topic-1", scope, m.FieldOverview, "Adds")))
	require.NoError(t, r.Handle(tokenMsg("topic-1", scope, m.FieldOverview, " two")))
	require.NoError(t, r.Handle(tokenMsg("topic-1", scope, m.FieldDetails, "x,y")))

	overview, err := buf.ReadLine(7)
	require.NoError(t, err)
	assert.Equal(t, "*Adds two", overview)

	details, err := buf.ReadLine(8)
	require.NoError(t, err)
	assert.Equal(t, "*/x,y", details)

	assert.Equal(t, 14, buf.LineCount(), "tokens never insert lines")
}

func TestRouter_ConcatenationLaw(t *testing.T) {
	scope := scopeAt(2, 3)

	split := numberedBuffer(4)
	rs := newTestRouter(t, split, adaptermocks.NewMockDiagnostics(t))
	require.NoError(t, rs.Handle(initMsg("t", scope)))
	require.NoError(t, rs.Handle(tokenMsg("t", scope, m.FieldDetails, "a")))
	require.NoError(t, rs.Handle(tokenMsg("t", scope, m.FieldDetails, "b")))

	joined := numberedBuffer(4)
	rj := newTestRouter(t, joined, adaptermocks.NewMockDiagnostics(t))
	require.NoError(t, rj.Handle(initMsg("t", scope)))
	require.NoError(t, rj.Handle(tokenMsg("t", scope, m.FieldDetails, "ab")))

	assert.Equal(t, joined.Lines(), split.Lines())
}

func TestRouter_FieldBoundaryIsNoop(t *testing.T) {
	buf := numberedBuffer(6)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))
	scope := scopeAt(3, 4)

	require.NoError(t, r.Handle(initMsg("t", scope)))
	before := buf.Lines()

	require.NoError(t, r.Handle(tokenMsg("t", scope, m.FieldOverview, "\n")))
	require.NoError(t, r.Handle(tokenMsg("t", scope, m.FieldDetails, "\n")))

	assert.Equal(t, before, buf.Lines())
}

func TestRouter_TokenWithoutInit(t *testing.T) {
	buf := numberedBuffer(6)
	diagnostics := adaptermocks.NewMockDiagnostics(t)
	r := newTestRouter(t, buf, diagnostics)
	before := buf.Lines()

	err := r.Handle(tokenMsg("missing", scopeAt(3, 4), m.FieldOverview, "text"))
	require.ErrorIs(t, err, ErrSessionNotFound)

	diagnostics.EXPECT().Report(m.LevelWarning, mock.AnythingOfType("string")).Return().Once()
	r.Deliver(tokenMsg("missing", scopeAt(3, 4), m.FieldOverview, "text"))

	assert.Equal(t, before, buf.Lines())
}

func TestRouter_UnknownScopeIsDropped(t *testing.T) {
	buf := numberedBuffer(6)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))

	require.NoError(t, r.Handle(initMsg("t", scopeAt(3, 4))))
	before := buf.Lines()

	err := r.Handle(tokenMsg("t", scopeAt(5, 6), m.FieldOverview, "text"))
	require.ErrorIs(t, err, ErrUnknownScope)
	assert.Equal(t, before, buf.Lines())

	summary, err := r.Close("t")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Dropped)
	assert.Equal(t, 0, summary.Tokens)
}

func TestRouter_InterleavedScopes(t *testing.T) {
	buf := numberedBuffer(12)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))
	first, second := scopeAt(2, 4), scopeAt(6, 9)

	require.NoError(t, r.Handle(initMsg("t", first, second)))

	require.NoError(t, r.Handle(tokenMsg("t", second, m.FieldOverview, "second")))
	require.NoError(t, r.Handle(tokenMsg("t", first, m.FieldOverview, "first")))
	require.NoError(t, r.Handle(tokenMsg("t", second, m.FieldDetails, "more")))

	lines := buf.Lines()
	assert.Equal(t, "*first", lines[3])
	assert.Equal(t, "*second", lines[11])
	assert.Equal(t, "*/more", lines[12])
	assert.Equal(t, "orig6", lines[13])
}

func TestRouter_SecondInitRejected(t *testing.T) {
	buf := numberedBuffer(6)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))

	require.NoError(t, r.Handle(initMsg("t", scopeAt(3, 4))))
	count := buf.LineCount()

	err := r.Handle(initMsg("t", scopeAt(3, 4)))
	require.ErrorIs(t, err, ErrSessionExists)
	assert.Equal(t, count, buf.LineCount())
}

func TestRouter_InvalidInitNotPublished(t *testing.T) {
	buf := numberedBuffer(6)
	diagnostics := adaptermocks.NewMockDiagnostics(t)
	r := newTestRouter(t, buf, diagnostics)

	diagnostics.EXPECT().Report(m.LevelError, mock.AnythingOfType("string")).Return().Once()
	r.Deliver(initMsg("t", scopeAt(3, 40)))

	assert.Empty(t, r.Topics())
	assert.Equal(t, 6, buf.LineCount())

	err := r.Handle(tokenMsg("t", scopeAt(3, 40), m.FieldOverview, "x"))
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRouter_ErrorMessagePassesThrough(t *testing.T) {
	diagnostics := adaptermocks.NewMockDiagnostics(t)
	r := newTestRouter(t, numberedBuffer(2), diagnostics)

	diagnostics.EXPECT().Report(m.LevelInfo, "not in a git repository").Return().Once()
	require.NoError(t, r.Handle(m.ErrorMessage{Level: m.LevelInfo, Message: "not in a git repository"}))
}

func TestRouter_CloseTearsDownSession(t *testing.T) {
	buf := numberedBuffer(6)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))
	scope := scopeAt(3, 4)

	require.NoError(t, r.Handle(initMsg("t", scope)))
	require.NoError(t, r.Handle(tokenMsg("t", scope, m.FieldOverview, "x")))

	summary, err := r.Close("t")
	require.NoError(t, err)
	assert.Equal(t, "t", summary.Topic)
	assert.Equal(t, m.PlaceBefore, summary.Placement)
	assert.Equal(t, 1, summary.Tokens)
	require.Len(t, summary.States, 1)
	assert.Equal(t, 3, summary.States[0].DocsStart)

	_, err = r.Close("t")
	require.ErrorIs(t, err, ErrSessionNotFound)

	err = r.Handle(tokenMsg("t", scope, m.FieldOverview, "y"))
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, m.LevelWarning, Severity(ErrUnknownScope))
	assert.Equal(t, m.LevelWarning, Severity(ErrSessionNotFound))
	assert.Equal(t, m.LevelWarning, Severity(adapter.ErrMalformedMessage))
	assert.Equal(t, m.LevelError, Severity(ErrInvalidScopeRange))
	assert.Equal(t, m.LevelError, Severity(ErrSessionExists))
}

func TestRouter_InitWithoutScopes(t *testing.T) {
	buf := numberedBuffer(3)
	r := newTestRouter(t, buf, adaptermocks.NewMockDiagnostics(t))

	require.NoError(t, r.Handle(initMsg("t")))
	assert.Equal(t, 3, buf.LineCount())
	assert.Equal(t, []string{"t"}, r.Topics())

	summary, err := r.Close("t")
	require.NoError(t, err)
	assert.Empty(t, summary.States)
}
