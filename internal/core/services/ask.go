package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/campuslabs/askdoc-core/internal/core/domain"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driven"
	"github.com/campuslabs/askdoc-core/internal/core/ports/driving"
	"github.com/campuslabs/askdoc-core/internal/runtime"
)

// Ensure askService implements AskService
var _ driving.AskService = (*askService)(nil)

// askService orchestrates retrieval, context merge, ambiguity detection
// and LLM invocation for one question
type askService struct {
	retrieval     driving.RetrievalEngine
	conversations driven.ConversationStore
	services      *runtime.Services
	logger        *slog.Logger
}

// NewAskService creates a new AskService
func NewAskService(
	retrieval driving.RetrievalEngine,
	conversations driven.ConversationStore,
	services *runtime.Services,
	logger *slog.Logger,
) driving.AskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &askService{
		retrieval:     retrieval,
		conversations: conversations,
		services:      services,
		logger:        logger,
	}
}

// Ask answers a question against the user's documents.
//
// The per-request flow is RETRIEVE, then either CLARIFY or ANSWER. A prior
// conversation context makes a follow-up inherit all earlier grounding text;
// the read here and the save at the end are not atomic, so two concurrent
// follow-ups from one user are last-write-wins.
func (s *askService) Ask(ctx context.Context, userID string, req domain.AskRequest) (*domain.AnswerResult, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, domain.ErrInvalidInput
	}

	prior, err := s.conversations.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("conversation context read failed", "user_id", userID, "error", err)
		}
		prior = nil
	}

	chunks, rawContext, err := s.retrieval.Retrieve(ctx, question, userID, req.TopK)
	if err != nil {
		return nil, err
	}

	// A follow-up question inherits all prior grounding text, even when the
	// new retrieval came back empty.
	combined := rawContext
	if prior != nil {
		combined = strings.TrimSpace(prior.RawContext + "\n\n" + rawContext)
	}

	result := &domain.AnswerResult{
		Question:   question,
		Sources:    []domain.Source{},
		ChunksUsed: []domain.ChunkUsed{},
	}
	if req.Debug {
		result.DebugContext = &combined
	}

	// The single unanswerable-question contract: nothing retrieved and
	// nothing carried over.
	if len(chunks) == 0 && prior == nil {
		answer := domain.NoContextAnswer
		result.Answer = &answer
		return result, nil
	}

	topSimilarity := 0.0
	for _, rc := range chunks {
		if rc.Similarity > topSimilarity {
			topSimilarity = rc.Similarity
		}
	}

	if prior == nil && topSimilarity < domain.SimilarityThreshold {
		clarification := s.generate(ctx, clarificationPrompt(question, combined))
		result.ClarificationRequired = true
		result.ClarificationQuestion = &clarification
		s.saveContext(ctx, userID, question, chunks, combined)
		return result, nil
	}

	answer := s.generate(ctx, answerPrompt(question, combined))
	result.Answer = &answer
	result.Sources = uniqueSources(chunks)
	result.ChunksUsed = chunksUsed(chunks)
	s.saveContext(ctx, userID, question, chunks, combined)

	return result, nil
}

// generate calls the LLM with a single attempt. Failures degrade to a
// visible "Error: ..." string so the caller always receives a response
// object; callers treating answers that start with "Error:" as failed LLM
// calls is part of the contract.
func (s *askService) generate(ctx context.Context, prompt string) string {
	llm := s.services.LLMService()
	if llm == nil {
		return "Error: no language model configured"
	}

	out, err := llm.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("llm call failed", "error", err)
		return "Error: " + err.Error()
	}
	return strings.TrimSpace(out)
}

// saveContext overwrites the user's conversation slot with this request's
// question, its own retrieved chunks (not the merged set) and the full
// combined context, so the next follow-up compounds correctly.
func (s *askService) saveContext(ctx context.Context, userID, question string, chunks []*domain.RetrievedChunk, combined string) {
	conv := &domain.ConversationContext{
		Question:   question,
		Chunks:     chunks,
		RawContext: combined,
		UpdatedAt:  time.Now(),
	}
	if err := s.conversations.Save(ctx, userID, conv); err != nil {
		s.logger.Warn("conversation context save failed", "user_id", userID, "error", err)
	}
}
