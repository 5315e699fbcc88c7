package api

import (
	"context"
	"errors"
	"net/http"

	"expert-assistant/internal/assistant"
	"expert-assistant/internal/roles"
	"expert-assistant/pkg/api"

	"github.com/go-chi/chi/v5"
)

const emptyInputMessage = "入力テキストを入力してください。"

// Responder answers input using the system prompt of role.
type Responder interface {
	Respond(ctx context.Context, input, role string) (string, error)
}

type AssistantService struct {
	responder Responder
}

// NewAssistantService serves the form page and JSON API on top of responder.
func NewAssistantService(responder Responder) *AssistantService {
	return &AssistantService{responder: responder}
}

func (s *AssistantService) AddRoutes(r chi.Router) {
	r.Get("/health", RestHandler(s.Health))
	r.Get("/", s.ShowPage)
	r.Post("/", s.SubmitForm)
	r.Route("/api", func(r chi.Router) {
		r.Get("/roles", RestHandler(s.ListRoles))
		r.Post("/ask", RestHandler(s.Ask))
	})
}

func (s *AssistantService) Health(r *http.Request) (any, error) {
	return api.HealthResponse{Status: "ok"}, nil
}

func (s *AssistantService) ListRoles(r *http.Request) (any, error) {
	return api.RolesResponse{Roles: roles.Names(), Default: roles.Default}, nil
}

func (s *AssistantService) Ask(r *http.Request) (any, error) {
	req, err := ParseRequest[api.AskRequest](r)
	if err != nil {
		return nil, err
	}

	if req.Input == "" {
		return nil, CodedErrorf(http.StatusBadRequest, emptyInputMessage)
	}

	answer, err := s.responder.Respond(r.Context(), req.Input, req.Role)
	if err != nil {
		return nil, dispatchError(err)
	}

	role := req.Role
	if !roles.Valid(role) {
		role = roles.Default
	}

	return api.AskResponse{Role: role, Answer: answer}, nil
}

func dispatchError(err error) error {
	var failure *assistant.ExternalCallFailure
	switch {
	case errors.Is(err, assistant.ErrMissingCredential):
		return CodedError(http.StatusServiceUnavailable, err)
	case errors.As(err, &failure):
		return CodedError(http.StatusBadGateway, err)
	default:
		return CodedError(http.StatusInternalServerError, err)
	}
}
