package ollama_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bloggen/internal/services/ollama"
)

func TestGenerateReturnsText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "demo-model" {
			t.Fatalf("unexpected model %q", req.Model)
		}
		if req.Stream {
			t.Fatal("streaming must be disabled")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "  an article  "})
	}))
	defer server.Close()

	client := ollama.NewClient(ollama.Config{BaseURL: server.URL, Model: "demo-model", Retries: 3})
	text, err := client.Generate(context.Background(), "write something")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "an article" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestGenerateRetriesExactlyConfiguredAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var sleeps []time.Duration
	client := ollama.NewClient(
		ollama.Config{BaseURL: server.URL, Model: "demo", Retries: 4},
		ollama.WithSleeper(func(d time.Duration) { sleeps = append(sleeps, d) }),
	)

	_, err := client.Generate(context.Background(), "prompt")
	var genErr *ollama.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Attempts != 4 {
		t.Fatalf("unexpected attempt count in error: %d", genErr.Attempts)
	}
	if got := calls.Load(); got != 4 {
		t.Fatalf("expected exactly 4 requests, got %d", got)
	}
	// Linear backoff: one sleep between each pair of attempts, growing by step.
	want := []time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second}
	if len(sleeps) != len(want) {
		t.Fatalf("unexpected sleep count: %v", sleeps)
	}
	for i, d := range want {
		if sleeps[i] != d {
			t.Fatalf("sleep %d = %s, want %s", i, sleeps[i], d)
		}
	}
}

func TestGenerateReportsAttemptsMadeOnCancellation(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := ollama.NewClient(
		ollama.Config{BaseURL: server.URL, Model: "demo", Retries: 5},
		ollama.WithSleeper(func(time.Duration) { cancel() }),
	)

	_, err := client.Generate(ctx, "prompt")
	var genErr *ollama.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.Attempts != 1 {
		t.Fatalf("error should report the single attempt made, got %d", genErr.Attempts)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 request, got %d", got)
	}
}

func TestGenerateTreatsEmptyResponseAsFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "   "})
	}))
	defer server.Close()

	client := ollama.NewClient(
		ollama.Config{BaseURL: server.URL, Model: "demo", Retries: 2},
		ollama.WithSleeper(func(time.Duration) {}),
	)

	if _, err := client.Generate(context.Background(), "prompt"); err == nil {
		t.Fatal("expected failure for empty responses")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestGenerateRecoversAfterTransientFailure(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "recovered"})
	}))
	defer server.Close()

	client := ollama.NewClient(
		ollama.Config{BaseURL: server.URL, Model: "demo", Retries: 3},
		ollama.WithSleeper(func(time.Duration) {}),
	)

	text, err := client.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "recovered" {
		t.Fatalf("unexpected text: %q", text)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 requests, got %d", got)
	}
}

func TestGenerateSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model not found"})
	}))
	defer server.Close()

	client := ollama.NewClient(
		ollama.Config{BaseURL: server.URL, Model: "demo", Retries: 1},
	)

	_, err := client.Generate(context.Background(), "prompt")
	if err == nil || !errors.As(err, new(*ollama.GenerationError)) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerateRequiresPrompt(t *testing.T) {
	client := ollama.NewClient(ollama.Config{Model: "demo"})
	if _, err := client.Generate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for blank prompt")
	}
}
