package model

// FieldKind identifies which template field a token belongs to.
type FieldKind string

const (
	// FieldOverview is the one-line summary field.
	FieldOverview FieldKind = "@overview"
	// FieldDetails is the multi-line extended field.
	FieldDetails FieldKind = "@details"
)

// Level is a diagnostic severity. Values follow the numeric levels used by
// the upstream proxy so they can be passed through untouched.
type Level int

// Known severities.
const (
	LevelDebug    Level = 10
	LevelInfo     Level = 20
	LevelWarning  Level = 30
	LevelError    Level = 40
	LevelCritical Level = 50
)

func (l Level) String() string {
	switch {
	case l >= LevelCritical:
		return "critical"
	case l >= LevelError:
		return "error"
	case l >= LevelWarning:
		return "warning"
	case l >= LevelInfo:
		return "info"
	default:
		return "debug"
	}
}

// Message is one inbound stream message. The set of variants is closed:
// InitMessage, TokenMessage and ErrorMessage.
type Message interface {
	isMessage()
}

// InitMessage starts a documentation session for Topic.
type InitMessage struct {
	Topic     string
	Scopes    []Scope
	Template  Template
	Placement Placement
}

// TokenMessage carries one streamed fragment of documentation text.
type TokenMessage struct {
	Topic string
	Scope Scope
	Field FieldKind
	Text  string
}

// ErrorMessage is an out-of-band diagnostic from the transport.
type ErrorMessage struct {
	Level   Level
	Message string
}

func (InitMessage) isMessage()  {}
func (TokenMessage) isMessage() {}
func (ErrorMessage) isMessage() {}
