package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

// wireRequest mirrors the chat completion body the upstream endpoint
// expects, for asserting what actually went over the wire.
type wireRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

func newTestProvider(t *testing.T, key, url string) Provider {
	t.Helper()
	os.Setenv("MINIMAX_API_KEY", key)
	os.Setenv("MINIMAX_API_URL", url)
	t.Cleanup(func() {
		os.Unsetenv("MINIMAX_API_KEY")
		os.Unsetenv("MINIMAX_API_URL")
	})
	return NewMinimaxProvider()
}

func TestCompleteWireContract(t *testing.T) {
	var captured wireRequest
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "生成的内容"}},
			},
		})
	}))
	defer server.Close()

	p := newTestProvider(t, "test-key", server.URL)

	content, err := p.Complete(context.Background(), "生成一个学习计划")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if content != "生成的内容" {
		t.Errorf("unexpected content: %q", content)
	}

	if authHeader != "Bearer test-key" {
		t.Errorf("unexpected Authorization header: %q", authHeader)
	}
	if captured.Temperature != 0.7 {
		t.Errorf("temperature must be 0.7, got %v", captured.Temperature)
	}
	if captured.MaxTokens != 2000 {
		t.Errorf("max_tokens must be 2000, got %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" {
		t.Errorf("first message must be the system turn, got %q", captured.Messages[0].Role)
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "生成一个学习计划" {
		t.Errorf("second message must carry the prompt: %+v", captured.Messages[1])
	}
}

func TestCompleteMockMode(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	p := newTestProvider(t, "", server.URL)

	content, err := p.Complete(context.Background(), "任意提示")
	if err != nil {
		t.Fatalf("mock mode must not fail: %v", err)
	}
	if called {
		t.Error("mock mode must not make a network call")
	}
	if !IsMockNotice(content) {
		t.Errorf("expected the mock notice, got %q", content)
	}
}

func TestCompleteTransportErrors(t *testing.T) {
	t.Run("Non2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer server.Close()

		p := newTestProvider(t, "test-key", server.URL)
		_, err := p.Complete(context.Background(), "x")

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	})

	t.Run("MissingCompletionField", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
		}))
		defer server.Close()

		p := newTestProvider(t, "test-key", server.URL)
		_, err := p.Complete(context.Background(), "x")

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	})

	t.Run("NetworkFailure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		p := newTestProvider(t, "test-key", server.URL)
		_, err := p.Complete(context.Background(), "x")

		var te *TransportError
		if !errors.As(err, &te) {
			t.Fatalf("expected TransportError, got %v", err)
		}
	})
}
