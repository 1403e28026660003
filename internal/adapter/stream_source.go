package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	m "github.com/mouse-blink/docstream/internal/model"
)

// ErrMalformedMessage marks a single stream line that could not be decoded.
// The stream itself stays usable.
var ErrMalformedMessage = errors.New("malformed message")

const maxMessageSize = 4 * 1024 * 1024

// MessageSource yields protocol messages one at a time. Next returns io.EOF
// once the stream is exhausted.
type MessageSource interface {
	Next(ctx context.Context) (m.Message, error)
}

// JSONLinesSource decodes the proxy's newline-delimited JSON envelope.
// Lines are read on a separate goroutine so Next can return as soon as its
// context is done, even while the reader blocks. That goroutine stops once
// the context of the first Next call is done or the reader is exhausted.
type JSONLinesSource struct {
	scanner *bufio.Scanner
	layout  m.Layout
	lines   chan scannedLine
	once    sync.Once
}

type scannedLine struct {
	raw []byte
	err error
}

// NewJSONLinesSource reads messages from r. Templates carried by init
// messages are given layout.
func NewJSONLinesSource(r io.Reader, layout m.Layout) *JSONLinesSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	return &JSONLinesSource{scanner: scanner, layout: layout, lines: make(chan scannedLine)}
}

type envelope struct {
	Type    string          `json:"type"`
	Topic   string          `json:"topic"`
	Data    json.RawMessage `json:"data"`
	Level   int             `json:"level"`
	Message string          `json:"message"`
}

type initPayload struct {
	Scopes   []m.Scope `json:"scopes"`
	Template string    `json:"template"`
	Position string    `json:"position"`
	Topic    string    `json:"topic"`
}

type tokenPayload struct {
	Scope m.Scope `json:"scope"`
	Type  string  `json:"type"`
	Text  string  `json:"text"`
}

// Next decodes the next non-empty line.
func (s *JSONLinesSource) Next(ctx context.Context) (m.Message, error) {
	s.once.Do(func() { go s.scan(ctx) })

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case line, ok := <-s.lines:
			if !ok {
				return nil, io.EOF
			}

			if line.err != nil {
				return nil, line.err
			}

			if len(line.raw) == 0 {
				continue
			}

			return DecodeMessage(line.raw, s.layout)
		}
	}
}

func (s *JSONLinesSource) scan(ctx context.Context) {
	defer close(s.lines)

	for s.scanner.Scan() {
		raw := append([]byte(nil), s.scanner.Bytes()...)

		select {
		case s.lines <- scannedLine{raw: raw}:
		case <-ctx.Done():
			return
		}
	}

	if err := s.scanner.Err(); err != nil {
		select {
		case s.lines <- scannedLine{err: fmt.Errorf("failed to read stream: %w", err)}:
		case <-ctx.Done():
		}
	}
}

// DecodeMessage decodes one JSON envelope into a typed message.
func DecodeMessage(raw []byte, layout m.Layout) (m.Message, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	switch env.Type {
	case "init":
		var p initPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("%w: init payload: %w", ErrMalformedMessage, err)
		}

		placement := m.Placement(p.Position)
		if !placement.Valid() {
			return nil, fmt.Errorf("%w: unknown position %q", ErrMalformedMessage, p.Position)
		}

		if p.Topic == "" {
			return nil, fmt.Errorf("%w: init without topic", ErrMalformedMessage)
		}

		return m.InitMessage{
			Topic:     p.Topic,
			Scopes:    p.Scopes,
			Template:  m.Template{Text: p.Template, Layout: layout},
			Placement: placement,
		}, nil
	case "token":
		var p tokenPayload
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return nil, fmt.Errorf("%w: token payload: %w", ErrMalformedMessage, err)
		}

		field := m.FieldKind(p.Type)
		if field != m.FieldOverview && field != m.FieldDetails {
			return nil, fmt.Errorf("%w: unknown field %q", ErrMalformedMessage, p.Type)
		}

		return m.TokenMessage{
			Topic: env.Topic,
			Scope: p.Scope,
			Field: field,
			Text:  p.Text,
		}, nil
	case "error":
		return m.ErrorMessage{Level: m.Level(env.Level), Message: env.Message}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrMalformedMessage, env.Type)
	}
}
