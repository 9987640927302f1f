package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode identifies a class of lottery failure.
type ErrorCode string

const (
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

	// Lookup failures of the registry
	ErrCodeGameNotRegistered ErrorCode = "GAME_NOT_REGISTERED"
	ErrCodeWinnerNotFound    ErrorCode = "WINNER_NOT_FOUND"
)

// AppError is a typed application error carrying a code and optional details.
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Stack     []string               `json:"stack,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Cause     error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the cause so errors.Is can see sentinel errors.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is one of the lookup failures.
func (e *AppError) IsNotFound() bool {
	return e.Code == ErrCodeGameNotRegistered ||
		e.Code == ErrCodeWinnerNotFound
}

// WithDetail attaches a detail value to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an application error.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Stack:     getStackTrace(),
	}
}

// Wrap wraps an existing error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func getStackTrace() []string {
	var stack []string
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		// skip frames of this package
		if strings.Contains(fn.Name(), "internal/common/errors") {
			continue
		}
		stack = append(stack, fmt.Sprintf("%s:%d %s", file, line, fn.Name()))
		if len(stack) >= 10 {
			break
		}
	}
	return stack
}

// NewGameNotRegisteredError wraps cause for a game name nobody registered for.
func NewGameNotRegisteredError(gameName string, cause error) *AppError {
	return Wrap(cause, ErrCodeGameNotRegistered, fmt.Sprintf("No contestants registered for game: %s", gameName)).
		WithDetail("game", gameName)
}

// NewWinnerNotFoundError wraps cause for a game name with no drawn winner.
func NewWinnerNotFoundError(gameName string, cause error) *AppError {
	return Wrap(cause, ErrCodeWinnerNotFound, fmt.Sprintf("No winner drawn for game: %s", gameName)).
		WithDetail("game", gameName)
}

// AsAppError converts err to *AppError when possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
