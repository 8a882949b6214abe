package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewGeminiEmbedding_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiEmbedding("", "embedding-001", "")
	if err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestNewGeminiEmbedding_Defaults(t *testing.T) {
	svc, err := NewGeminiEmbedding("key-test", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	emb := svc.(*GeminiEmbedding)
	if emb.model != "embedding-001" {
		t.Errorf("expected default model embedding-001, got %s", emb.model)
	}
	if emb.baseURL != "https://generativelanguage.googleapis.com/v1beta" {
		t.Errorf("expected default base URL, got %s", emb.baseURL)
	}
	if svc.Dimensions() != 768 {
		t.Errorf("expected 768 dimensions, got %d", svc.Dimensions())
	}
}

func TestGeminiEmbedding_Embed_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasSuffix(r.URL.Path, ":batchEmbedContents") {
			t.Errorf("expected batchEmbedContents path, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "key-test" {
			t.Error("expected API key query parameter")
		}

		var req geminiBatchEmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Requests) != 2 {
			t.Errorf("expected 2 embed requests, got %d", len(req.Requests))
		}

		resp := geminiBatchEmbedResponse{
			Embeddings: []struct {
				Values []float32 `json:"values"`
			}{
				{Values: []float32{0.1, 0.2, 0.3}},
				{Values: []float32{0.4, 0.5, 0.6}},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc, err := NewGeminiEmbedding("key-test", "embedding-001", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Embed(context.Background(), []string{"hello", "world"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("expected 2 embeddings, got %d", len(result))
	}
	if len(result[1]) != 3 || result[1][0] != 0.4 {
		t.Error("unexpected embedding values")
	}
}

func TestGeminiEmbedding_Embed_CountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiBatchEmbedResponse{
			Embeddings: []struct {
				Values []float32 `json:"values"`
			}{
				{Values: []float32{0.1}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc, err := NewGeminiEmbedding("key-test", "embedding-001", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Embed(context.Background(), []string{"one", "two"})
	if err == nil {
		t.Error("expected error when embedding count does not match input")
	}
}

func TestGeminiEmbedding_Embed_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiBatchEmbedResponse{
			Error: &struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				Status  string `json:"status"`
			}{
				Code:    400,
				Message: "API key not valid",
				Status:  "INVALID_ARGUMENT",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc, err := NewGeminiEmbedding("key-invalid", "embedding-001", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Embed(context.Background(), []string{"test"})
	if err == nil {
		t.Error("expected error for API error response")
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestGeminiEmbedding_EmbedQuery_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := geminiBatchEmbedResponse{
			Embeddings: []struct {
				Values []float32 `json:"values"`
			}{
				{Values: []float32{0.1, 0.2, 0.3}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	svc, err := NewGeminiEmbedding("key-test", "embedding-001", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.EmbedQuery(context.Background(), "test query")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("expected 3 dimensions, got %d", len(result))
	}
}
