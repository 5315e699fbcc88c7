package assistant

import (
	"errors"
	"fmt"
)

var ErrMissingCredential = errors.New("OPENAI_API_KEY が設定されていません。環境変数を確認してください。")

// ExternalCallFailure wraps any error raised while building the completion
// client or performing the completion call.
type ExternalCallFailure struct {
	Cause error
}

func (e *ExternalCallFailure) Error() string {
	return fmt.Sprintf("LLM 呼び出しに失敗しました: %v", e.Cause)
}

func (e *ExternalCallFailure) Unwrap() error {
	return e.Cause
}
