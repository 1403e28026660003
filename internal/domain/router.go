package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/docstream/internal/adapter"
	m "github.com/mouse-blink/docstream/internal/model"
)

// fieldBoundary is the token text the service sends between fields.
const fieldBoundary = "\n"

// Router applies stream messages to a buffer. It is not safe for concurrent
// use; the host delivers one message at a time.
type Router interface {
	// Handle applies one message and reports what went wrong, if anything.
	Handle(msg m.Message) error
	// Deliver is the host callback: it applies msg and turns any failure
	// into a diagnostic instead of returning it.
	Deliver(msg m.Message)
	// Close tears down the session for topic.
	Close(topic string) (m.SessionSummary, error)
	// Topics returns the topics of all live sessions.
	Topics() []string
}

type router struct {
	buffer      adapter.Buffer
	sessions    SessionStore
	inserter    TemplateInserter
	diagnostics adapter.Diagnostics
}

// NewRouter creates a Router writing into buffer.
func NewRouter(buffer adapter.Buffer, sessions SessionStore, inserter TemplateInserter, diagnostics adapter.Diagnostics) Router {
	return &router{
		buffer:      buffer,
		sessions:    sessions,
		inserter:    inserter,
		diagnostics: diagnostics,
	}
}

func (r *router) Handle(msg m.Message) error {
	switch msg := msg.(type) {
	case m.InitMessage:
		return r.handleInit(msg)
	case m.TokenMessage:
		return r.handleToken(msg)
	case m.ErrorMessage:
		r.diagnostics.Report(msg.Level, msg.Message)
		return nil
	default:
		return fmt.Errorf("unsupported message %T", msg)
	}
}

func (r *router) Deliver(msg m.Message) {
	if err := r.Handle(msg); err != nil {
		r.diagnostics.Report(Severity(err), err.Error())
	}
}

func (r *router) Close(topic string) (m.SessionSummary, error) {
	session, err := r.sessions.Close(topic)
	if err != nil {
		return m.SessionSummary{}, err
	}

	return session.Summary(), nil
}

func (r *router) Topics() []string {
	return r.sessions.Topics()
}

func (r *router) handleInit(msg m.InitMessage) error {
	if _, err := r.sessions.Get(msg.Topic); err == nil {
		return fmt.Errorf("%w: %s", ErrSessionExists, msg.Topic)
	}

	registry, err := r.inserter.InsertAll(r.buffer, msg.Scopes, msg.Template, msg.Placement)
	if err != nil {
		return fmt.Errorf("failed to start session %s: %w", msg.Topic, err)
	}

	return r.sessions.Put(&Session{
		Topic:    msg.Topic,
		Buffer:   r.buffer,
		Registry: registry,
	})
}

func (r *router) handleToken(msg m.TokenMessage) error {
	session, err := r.sessions.Get(msg.Topic)
	if err != nil {
		return err
	}

	if msg.Text == fieldBoundary {
		return nil
	}

	docsStart, err := session.Registry.Resolve(msg.Scope)
	if err != nil {
		session.dropped++
		return err
	}

	state, err := session.Registry.StateFor(docsStart)
	if err != nil {
		session.dropped++
		return err
	}

	target := state.DetailsTarget()
	if msg.Field == m.FieldOverview {
		target = state.OverviewTarget()
	}

	line, err := session.Buffer.ReadLine(target)
	if err != nil {
		session.dropped++
		return fmt.Errorf("failed to read line %d: %w", target, err)
	}

	if err := session.Buffer.SetLine(target, line+msg.Text); err != nil {
		session.dropped++
		return fmt.Errorf("failed to write line %d: %w", target, err)
	}

	session.tokens++

	return nil
}

// Severity maps a routing failure to the level it is reported at.
func Severity(err error) m.Level {
	switch {
	case errors.Is(err, ErrUnknownScope),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, adapter.ErrMalformedMessage):
		return m.LevelWarning
	default:
		return m.LevelError
	}
}
