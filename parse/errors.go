package parse

import "fmt"

// ErrorKind identifies which parse-error category an Error belongs to, so
// callers can match on kind without string-comparing messages.
type ErrorKind int

const (
	LexError ErrorKind = iota
	UnknownCommand
	MissingArgument
	UnexpectedToken
	UnmatchedGroup
	UnmatchedDelimiter
	NoSuchEnvironment
	WrongColumnCount
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "LexError"
	case UnknownCommand:
		return "UnknownCommand"
	case MissingArgument:
		return "MissingArgument"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnmatchedGroup:
		return "UnmatchedGroup"
	case UnmatchedDelimiter:
		return "UnmatchedDelimiter"
	case NoSuchEnvironment:
		return "NoSuchEnvironment"
	case WrongColumnCount:
		return "WrongColumnCount"
	default:
		return "Unknown"
	}
}

// Error is the single error type the parser returns. Pos is a byte offset
// into the original formula string, so a caller can underline the
// offending span without the parser tracking line/column itself.
type Error struct {
	Kind    ErrorKind
	Pos     int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at byte %d: %s", e.Kind, e.Pos, e.Message)
}

func errf(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
