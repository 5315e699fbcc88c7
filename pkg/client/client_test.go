package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expert-assistant/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/ask", r.URL.Path)

		var req api.AskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, api.AskRequest{Role: "健康専門家", Input: "テストです"}, req)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.AskResponse{Role: req.Role, Answer: "OK"}) //nolint:errcheck
	}))
	defer server.Close()

	answer, err := New(server.URL+"/").Ask(context.Background(), "健康専門家", "テストです")
	require.NoError(t, err)
	assert.Equal(t, "OK", answer)
}

func TestAskErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "LLM 呼び出しに失敗しました: boom", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := New(server.URL).Ask(context.Background(), "AI専門家", "テストです")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "LLM 呼び出しに失敗しました: boom")
}

func TestRoles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/roles", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.RolesResponse{Roles: []string{"AI専門家", "健康専門家"}, Default: "AI専門家"}) //nolint:errcheck
	}))
	defer server.Close()

	roles, err := New(server.URL).Roles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AI専門家", "健康専門家"}, roles.Roles)
	assert.Equal(t, "AI専門家", roles.Default)
}

func TestNewHasNoClientTimeout(t *testing.T) {
	c := New("http://localhost:8501")
	assert.Zero(t, c.client.GetClient().Timeout)
}

func TestAskHonorsContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(server.URL).Ask(ctx, "AI専門家", "テストです")
	assert.Error(t, err)
}
