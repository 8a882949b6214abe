package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewGeminiLLM_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiLLM("", "gemini-1.5-flash", "")
	if err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestNewGeminiLLM_Defaults(t *testing.T) {
	svc, err := NewGeminiLLM("key-test", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	llm := svc.(*GeminiLLM)
	if llm.model != "gemini-1.5-flash" {
		t.Errorf("expected default model gemini-1.5-flash, got %s", llm.model)
	}
}

func TestGeminiLLM_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("expected generateContent path, got %s", r.URL.Path)
		}

		var req geminiGenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.GenerationConfig.Temperature != geminiTemperature {
			t.Errorf("expected temperature %v, got %v", geminiTemperature, req.GenerationConfig.Temperature)
		}
		if req.GenerationConfig.MaxOutputTokens != geminiMaxOutputTokens {
			t.Errorf("expected max tokens %d, got %d", geminiMaxOutputTokens, req.GenerationConfig.MaxOutputTokens)
		}

		resp := geminiGenerateResponse{
			Candidates: []struct {
				Content      geminiContent `json:"content"`
				FinishReason string        `json:"finishReason"`
			}{
				{
					Content:      geminiContent{Parts: []geminiPart{{Text: "An index speeds up lookups."}}},
					FinishReason: "STOP",
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc, err := NewGeminiLLM("key-test", "gemini-1.5-flash", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	answer, err := svc.Generate(context.Background(), "What is an index?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "An index speeds up lookups." {
		t.Errorf("unexpected answer: %q", answer)
	}
}

func TestGeminiLLM_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiGenerateResponse{
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				Status  string `json:"status"`
			}{
				Code:    429,
				Message: "Resource has been exhausted",
				Status:  "RESOURCE_EXHAUSTED",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc, err := NewGeminiLLM("key-test", "gemini-1.5-flash", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Generate(context.Background(), "prompt")
	if err == nil {
		t.Error("expected error for API error response")
	}
	if !strings.Contains(err.Error(), "Resource has been exhausted") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestGeminiLLM_Generate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	svc, err := NewGeminiLLM("key-test", "gemini-1.5-flash", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Generate(context.Background(), "prompt")
	if err == nil {
		t.Error("expected error when no candidates are returned")
	}
}
