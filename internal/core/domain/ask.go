package domain

import "time"

// Answer boundaries
const (
	// DefaultTopK is the number of chunks retrieved when the caller does not ask for more
	DefaultTopK = 4

	// MaxTopK bounds prompt size; requests above it are clamped, never passed through
	MaxTopK = 20

	// SimilarityThreshold is the floor below which a question is considered
	// ambiguous and a clarification is requested instead of an answer
	SimilarityThreshold = 0.25

	// NoContextAnswer is the fixed response for the unanswerable-question case
	NoContextAnswer = "I don't know based on the provided documents."
)

// AskRequest is a question against the caller's documents
type AskRequest struct {
	Question string `json:"question" example:"What time is the library open?"`
	TopK     int    `json:"top_k,omitempty" example:"4"`
	Debug    bool   `json:"debug,omitempty"`
}

// Source identifies a document a retrieved chunk came from.
// Similarity is the maximum observed across that source's chunks.
type Source struct {
	Name       string  `json:"source"`
	Page       *int    `json:"page,omitempty"`
	Similarity float64 `json:"similarity"`
}

// ChunkUsed is the caller-visible view of one retrieved chunk
type ChunkUsed struct {
	Text       string  `json:"text"`
	Source     string  `json:"source,omitempty"`
	Page       *int    `json:"page,omitempty"`
	Similarity float64 `json:"similarity"`
}

// AnswerResult is the full outcome of one ask request
type AnswerResult struct {
	Question              string      `json:"question"`
	Answer                *string     `json:"answer"`
	Sources               []Source    `json:"sources"`
	ChunksUsed            []ChunkUsed `json:"chunks_used"`
	ClarificationRequired bool        `json:"clarification_required,omitempty"`
	ClarificationQuestion *string     `json:"clarification_question,omitempty"`
	DebugContext          *string     `json:"debug_context,omitempty"`
}

// ConversationContext is the single per-user follow-up slot.
// Overwritten on every answered question; concurrent updates from the same
// user are last-write-wins.
type ConversationContext struct {
	Question   string            `json:"question"`
	Chunks     []*RetrievedChunk `json:"chunks"`
	RawContext string            `json:"raw_context"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
