package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

type LangChain struct {
	client *openai.LLM
}

func NewLangChain(apiKey, baseURL string) (*LangChain, error) {
	opts := []openai.Option{openai.WithToken(apiKey)}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(strings.TrimSuffix(baseURL, "/")))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create OpenAI client: %w", err)
	}

	return &LangChain{client: client}, nil
}

func (l *LangChain) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]llms.MessageContent, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, llms.TextParts(messageType(msg.Role), msg.Content))
	}

	resp, err := l.client.GenerateContent(ctx, messages,
		llms.WithModel(req.Model),
		llms.WithTemperature(req.Temperature),
	)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Content, nil
}

func messageType(role Role) schema.ChatMessageType {
	if role == RoleSystem {
		return schema.ChatMessageTypeSystem
	}
	return schema.ChatMessageTypeHuman
}
