package client

import (
	"context"
	"fmt"
	"strings"

	"expert-assistant/pkg/api"

	"github.com/go-resty/resty/v2"
)

// Client talks to the assistant JSON API. Requests carry no deadline of their
// own; callers bound them through ctx.
type Client struct {
	client *resty.Client
}

// New returns a Client for the server at baseURL.
func New(baseURL string) *Client {
	return &Client{
		client: resty.New().SetBaseURL(strings.TrimSuffix(baseURL, "/")),
	}
}

func (c *Client) Roles(ctx context.Context) (api.RolesResponse, error) {
	var roles api.RolesResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetResult(&roles).
		Get("/api/roles")
	if err != nil {
		return roles, fmt.Errorf("error listing roles: %w", err)
	}
	if !res.IsSuccess() {
		return roles, responseError(res)
	}
	return roles, nil
}

func (c *Client) Ask(ctx context.Context, role, input string) (string, error) {
	var answer api.AskResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(api.AskRequest{Role: role, Input: input}).
		SetResult(&answer).
		Post("/api/ask")
	if err != nil {
		return "", fmt.Errorf("error sending question: %w", err)
	}
	if !res.IsSuccess() {
		return "", responseError(res)
	}
	return answer.Answer, nil
}

func responseError(res *resty.Response) error {
	return fmt.Errorf("server returned %d: %s", res.StatusCode(), strings.TrimSpace(res.String()))
}
