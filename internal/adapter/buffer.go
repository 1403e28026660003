package adapter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	m "github.com/mouse-blink/docstream/internal/model"
)

// ErrLineOutOfRange is returned when a line number is outside the buffer.
var ErrLineOutOfRange = errors.New("line out of range")

// Buffer abstracts the editor buffer the engine mutates. Line numbers are
// 1-indexed. Implementations must not reorder lines between calls.
type Buffer interface {
	// ReadLine returns the content of line n.
	ReadLine(n int) (string, error)
	// InsertLines inserts lines so that the first one becomes line at.
	// at may be LineCount()+1 to append.
	InsertLines(at int, lines []string) error
	// SetLine replaces the content of line n.
	SetLine(n int, text string) error
	// LineCount returns the current number of lines.
	LineCount() int
}

// MemoryBuffer is an in-memory Buffer.
type MemoryBuffer struct {
	lines []string
	// trailingNewline records whether the source text ended with a newline.
	trailingNewline bool
}

// NewMemoryBuffer creates a MemoryBuffer holding a copy of lines.
func NewMemoryBuffer(lines ...string) *MemoryBuffer {
	return &MemoryBuffer{lines: append([]string(nil), lines...)}
}

// ParseBuffer splits text into a MemoryBuffer.
func ParseBuffer(text string) *MemoryBuffer {
	buf := &MemoryBuffer{}
	if strings.HasSuffix(text, "\n") {
		buf.trailingNewline = true
		text = strings.TrimSuffix(text, "\n")
	}

	if text == "" && buf.trailingNewline {
		buf.lines = []string{""}
		return buf
	}

	if text != "" {
		buf.lines = strings.Split(text, "\n")
	}

	return buf
}

// LoadFileBuffer reads a file into a MemoryBuffer.
func LoadFileBuffer(path m.Path) (*MemoryBuffer, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParseBuffer(string(content)), nil
}

// ReadLine returns the content of line n.
func (b *MemoryBuffer) ReadLine(n int) (string, error) {
	if n < 1 || n > len(b.lines) {
		return "", fmt.Errorf("%w: read %d of %d", ErrLineOutOfRange, n, len(b.lines))
	}

	return b.lines[n-1], nil
}

// InsertLines inserts lines before line at.
func (b *MemoryBuffer) InsertLines(at int, lines []string) error {
	if at < 1 || at > len(b.lines)+1 {
		return fmt.Errorf("%w: insert at %d of %d", ErrLineOutOfRange, at, len(b.lines))
	}

	out := make([]string, 0, len(b.lines)+len(lines))
	out = append(out, b.lines[:at-1]...)
	out = append(out, lines...)
	out = append(out, b.lines[at-1:]...)
	b.lines = out

	return nil
}

// SetLine replaces the content of line n.
func (b *MemoryBuffer) SetLine(n int, text string) error {
	if n < 1 || n > len(b.lines) {
		return fmt.Errorf("%w: set %d of %d", ErrLineOutOfRange, n, len(b.lines))
	}

	b.lines[n-1] = text

	return nil
}

// LineCount returns the current number of lines.
func (b *MemoryBuffer) LineCount() int {
	return len(b.lines)
}

// Lines returns a copy of the buffer contents.
func (b *MemoryBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the buffer back into text, keeping the original trailing newline.
func (b *MemoryBuffer) String() string {
	text := strings.Join(b.lines, "\n")
	if b.trailingNewline {
		text += "\n"
	}

	return text
}

// Save writes the buffer to path.
func (b *MemoryBuffer) Save(path m.Path) error {
	if err := os.WriteFile(string(path), []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
