package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateChatCompletion_ReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotBody chatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"The vendor is at fault."}},{"message":{"role":"assistant","content":"ignored"}}]}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	messages := []ChatMessage{
		{Role: "system", Content: "You are an adjudicator."},
		{Role: "user", Content: "Who is at fault?"},
	}
	content, err := client.CreateChatCompletion(context.Background(), "gpt-3.5-turbo", messages)
	require.NoError(t, err)
	require.Equal(t, "The vendor is at fault.", content)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "gpt-3.5-turbo", gotBody.Model)
	require.Equal(t, messages, gotBody.Messages)
}

func TestCreateChatCompletion_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	client, err := NewClient("bad-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), "gpt-3.5-turbo", []ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestCreateChatCompletion_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), "gpt-3.5-turbo", []ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no choices")
}

func TestCreateChatCompletion_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), "gpt-3.5-turbo", []ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient("  ")
	require.Error(t, err)
}

func TestCreateChatCompletion_ValidatesInput(t *testing.T) {
	client, err := NewClient("test-key")
	require.NoError(t, err)

	_, err = client.CreateChatCompletion(context.Background(), "", []ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)

	_, err = client.CreateChatCompletion(context.Background(), "gpt-3.5-turbo", nil)
	require.Error(t, err)
}
