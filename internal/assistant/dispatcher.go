package assistant

import (
	"context"
	"log/slog"
	"os"

	"expert-assistant/internal/llm"
	"expert-assistant/internal/roles"

	"github.com/google/uuid"
)

const (
	CredentialEnvVar = "OPENAI_API_KEY"

	DefaultModel       = "gpt-3.5-turbo"
	DefaultTemperature = 0.2
)

// Dispatcher sends one completion request per Respond call.
type Dispatcher struct {
	newCompleter llm.Factory
	lookupEnv    func(string) (string, bool)
	model        string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLookupEnv replaces os.LookupEnv as the source of the credential.
func WithLookupEnv(lookup func(string) (string, bool)) Option {
	return func(d *Dispatcher) {
		d.lookupEnv = lookup
	}
}

// WithModel overrides DefaultModel. An empty model is ignored.
func WithModel(model string) Option {
	return func(d *Dispatcher) {
		if model != "" {
			d.model = model
		}
	}
}

// NewDispatcher returns a Dispatcher that builds its clients with factory.
func NewDispatcher(factory llm.Factory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		newCompleter: factory,
		lookupEnv:    os.LookupEnv,
		model:        DefaultModel,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Respond sends input to the model using the system prompt of role and returns
// the completion text. The credential is read on every call and a new client is
// built for each invocation.
func (d *Dispatcher) Respond(ctx context.Context, input, role string) (string, error) {
	apiKey, _ := d.lookupEnv(CredentialEnvVar)
	if apiKey == "" {
		return "", ErrMissingCredential
	}

	invocationID := uuid.New()

	req := llm.CompletionRequest{
		Model: d.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: roles.SystemPrompt(role)},
			{Role: llm.RoleUser, Content: input},
		},
		Temperature: DefaultTemperature,
	}

	completer, err := d.newCompleter(apiKey)
	if err != nil {
		slog.Error("error creating llm client", "invocation_id", invocationID, "error", err)
		return "", &ExternalCallFailure{Cause: err}
	}

	answer, err := completer.Complete(ctx, req)
	if err != nil {
		slog.Error("llm call failed", "invocation_id", invocationID, "role", role, "model", d.model, "error", err)
		return "", &ExternalCallFailure{Cause: err}
	}
	if answer == "" {
		slog.Error("llm returned empty answer", "invocation_id", invocationID, "role", role, "model", d.model)
		return "", &ExternalCallFailure{Cause: llm.ErrEmptyResponse}
	}

	slog.Info("llm call completed", "invocation_id", invocationID, "role", role, "model", d.model, "answer_len", len(answer))

	return answer, nil
}
