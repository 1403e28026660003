package domain

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mouse-blink/docstream/internal/adapter"
	m "github.com/mouse-blink/docstream/internal/model"
)

// DefaultMaxSessions bounds the number of concurrently active topics.
const DefaultMaxSessions = 64

// Session is one active documentation stream bound to a buffer.
type Session struct {
	Topic    string
	Buffer   adapter.Buffer
	Registry *Registry
	tokens   int
	dropped  int
	closed   bool
}

// Summary snapshots the session for reporting.
func (s *Session) Summary() m.SessionSummary {
	return m.SessionSummary{
		Topic:     s.Topic,
		Placement: s.Registry.Placement(),
		States:    s.Registry.States(),
		Tokens:    s.tokens,
		Dropped:   s.dropped,
	}
}

// SessionStore tracks active sessions by topic.
type SessionStore interface {
	// Put registers a new session. It fails if the topic is already live.
	Put(session *Session) error
	Get(topic string) (*Session, error)
	// Close removes the session for topic and returns it.
	Close(topic string) (*Session, error)
	Topics() []string
	Len() int
}

type lruSessionStore struct {
	cache *lru.Cache[string, *Session]
}

// NewSessionStore creates a SessionStore holding at most maxSessions topics.
// When full, the least recently used session is evicted and onEvict is called.
func NewSessionStore(maxSessions int, onEvict func(*Session)) (SessionStore, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	cache, err := lru.NewWithEvict(maxSessions, func(_ string, session *Session) {
		if onEvict != nil && !session.closed {
			onEvict(session)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &lruSessionStore{cache: cache}, nil
}

func (s *lruSessionStore) Put(session *Session) error {
	if s.cache.Contains(session.Topic) {
		return fmt.Errorf("%w: %s", ErrSessionExists, session.Topic)
	}

	s.cache.Add(session.Topic, session)

	return nil
}

func (s *lruSessionStore) Get(topic string) (*Session, error) {
	session, ok := s.cache.Get(topic)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, topic)
	}

	return session, nil
}

func (s *lruSessionStore) Close(topic string) (*Session, error) {
	session, ok := s.cache.Peek(topic)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, topic)
	}

	// Closing is not an eviction; the callback skips closed sessions.
	session.closed = true
	s.cache.Remove(topic)

	return session, nil
}

func (s *lruSessionStore) Topics() []string {
	return s.cache.Keys()
}

func (s *lruSessionStore) Len() int {
	return s.cache.Len()
}
