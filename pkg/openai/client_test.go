package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dev2197/smart-task-manager/pkg/openai"
)

func TestBuildTaskParsingMessages(t *testing.T) {
	ref := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	rawText := "Review by June 20th 2pm"

	msgs := openai.BuildTaskParsingMessages(rawText, ref)

	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Errorf("unexpected roles: %s, %s", msgs[0].Role, msgs[1].Role)
	}
	if !strings.Contains(msgs[0].Content, "task parsing assistant") {
		t.Errorf("system message missing parsing context")
	}
	if !strings.Contains(msgs[0].Content, "2024") {
		t.Errorf("system message missing reference year")
	}
	if !strings.Contains(msgs[1].Content, rawText) {
		t.Errorf("user message missing source text")
	}
	if !strings.Contains(msgs[1].Content, ref.Format(time.RFC3339)) {
		t.Errorf("user message missing reference time")
	}
}

func TestNew(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatalf("expected error for missing api key")
	}

	c, err := openai.New(openai.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != openai.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestClient_CreateChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid key","type":"invalid_request_error"}}`))
			return
		}

		var req openai.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Messages[len(req.Messages)-1].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"server exploded","type":"server_error"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"choices": [
				{
					"index": 0,
					"message": {"role": "assistant", "content": "{\"title\":\"Review\"}"},
					"finish_reason": "stop"
				}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-api-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "Hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 {
			t.Fatalf("expected 1 choice")
		}
		if resp.Choices[0].Message.Content != `{"title":"Review"}` {
			t.Errorf("unexpected content: %s", resp.Choices[0].Message.Content)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
		if !strings.Contains(err.Error(), "server exploded") {
			t.Errorf("expected API error message surfaced, got: %v", err)
		}
	})

	t.Run("Bad Key Flow", func(t *testing.T) {
		badClient, _ := openai.New(openai.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := badClient.CreateChatCompletion(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "Hello"}},
		})
		if err == nil {
			t.Fatalf("expected error from 401 response")
		}
	})
}
