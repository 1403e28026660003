package domain

import "errors"

var (
	// ErrUnknownScope indicates a token referenced a scope never registered for its session.
	ErrUnknownScope = errors.New("unknown scope")
	// ErrInvalidScopeRange indicates a scope's lines fall outside the buffer.
	ErrInvalidScopeRange = errors.New("invalid scope range")
	// ErrSessionNotFound indicates a token arrived for a topic with no session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExists indicates a second init for a live topic.
	ErrSessionExists = errors.New("session already exists")
	// ErrInvalidTemplate indicates the template layout disagrees with its text.
	ErrInvalidTemplate = errors.New("invalid template")
)
