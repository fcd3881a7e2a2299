// Package llms provides the chat completion providers used for LLM-backed
// generation. Claude over the Anthropic messages API is the primary
// provider; a vLLM deployment speaking the OpenAI chat API serves as the
// local fallback.
package llms

import (
	"context"
	"errors"
	"fmt"
)

// Provider generates a completion for a system/user prompt pair and
// reports the tokens consumed.
type Provider interface {
	Name() string
	Generate(ctx context.Context, system, user string) (string, int, error)
	Close() error
}

type ErrorKind int

const (
	ErrOther ErrorKind = iota
	ErrRateLimit
	ErrTimeout
	ErrAuth
	ErrParse
)

// BackendError wraps a provider failure with enough classification for the
// caller to decide between retrying and falling back.
type BackendError struct {
	Provider string
	Kind     ErrorKind
	Message  string
	Err      error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a BackendError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Kind == kind
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case 401, 403:
		return ErrAuth
	case 408:
		return ErrTimeout
	case 429:
		return ErrRateLimit
	default:
		return ErrOther
	}
}
