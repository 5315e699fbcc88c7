package llm

import (
	"context"
	"errors"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role
	Content string
}

type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
}

// Completer performs a single chat completion and returns the text of the
// first choice.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Factory builds a new Completer authorized with apiKey.
type Factory func(apiKey string) (Completer, error)

var ErrEmptyResponse = errors.New("llm returned an empty response")
