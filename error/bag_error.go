package error

type ErrorType int

const (
	InvalidArgument ErrorType = iota
	ExhaustedIterator
	ConcurrentModification
)

type Error struct {
	Message string
	Type    ErrorType
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error of the same Type, so sentinels built with an empty
// reason compare equal to errors carrying a specific one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	if !ok {
		return false
	}

	return e.Type == t.Type
}

func New(errorType ErrorType, reason string) *Error {
	error := &Error{}

	switch errorType {
	case InvalidArgument:
		error.Message = "go-bag: Invalid argument"
	case ExhaustedIterator:
		error.Message = "go-bag: Iterator exhausted"
	case ConcurrentModification:
		error.Message = "go-bag: Concurrent modification"
	default:
		error.Message = "go-bag: Unknown error"
	}

	if reason != "" {
		error.Message += ": " + reason
	}

	error.Type = errorType

	return error
}
