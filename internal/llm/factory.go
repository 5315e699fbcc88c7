package llm

import "fmt"

const (
	BackendLangChain = "langchain"
	BackendOpenAI    = "openai"
)

// NewFactory returns a Factory for the named backend. The backend is fixed for
// the lifetime of the factory.
func NewFactory(backend, baseURL string) (Factory, error) {
	switch backend {
	case BackendLangChain:
		return func(apiKey string) (Completer, error) {
			return NewLangChain(apiKey, baseURL)
		}, nil
	case BackendOpenAI:
		return func(apiKey string) (Completer, error) {
			return NewOpenAI(apiKey, baseURL), nil
		}, nil
	default:
		return nil, fmt.Errorf("unsupported llm backend: %s", backend)
	}
}
