package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// Answer generation runs slightly warm; routing and SQL generation stay at 0.
const answerTemperature = 0.2

// VectorPathUseCase answers open-ended questions from the document corpus:
// embed, retrieve a candidate pool, rerank with the cross-encoder, generate
// from the top slice.
type VectorPathUseCase struct {
	embedder  ports.Embedder
	index     ports.VectorIndex
	reranker  ports.Reranker
	generator ports.ChatCompleter

	topK int
	topN int
}

func NewVectorPathUseCase(
	embedder ports.Embedder,
	index ports.VectorIndex,
	reranker ports.Reranker,
	generator ports.ChatCompleter,
	topK, topN int,
) *VectorPathUseCase {
	if topK <= 0 {
		topK = 15
	}
	if topN <= 0 || topN > topK {
		topN = 5
	}
	return &VectorPathUseCase{
		embedder:  embedder,
		index:     index,
		reranker:  reranker,
		generator: generator,
		topK:      topK,
		topN:      topN,
	}
}

func (uc *VectorPathUseCase) Answer(ctx context.Context, question string) (string, error) {
	queryVector, err := uc.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}
	if len(queryVector) == 0 {
		// The embedding adapter swallowed an upstream failure. Without a
		// query vector there is nothing to retrieve.
		return domain.Apology, nil
	}

	matches, err := uc.index.Query(ctx, queryVector, uc.topK)
	if err != nil {
		return "", fmt.Errorf("query vector index: %w", err)
	}
	if len(matches) == 0 {
		return domain.Apology, nil
	}

	selected := uc.rerank(ctx, question, matches)

	texts := make([]string, 0, len(selected))
	for _, m := range selected {
		texts = append(texts, m.Text)
	}
	contextText := strings.Join(texts, domain.ContextSeparator)

	answer, err := uc.generator.Complete(ctx, domain.Prompt{
		System:      answerSystemPrompt,
		User:        fmt.Sprintf("**Context:**\n%s\n\n**Question:**\n%s", contextText, question),
		Temperature: answerTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}

// rerank orders the candidate pool by cross-encoder relevance and keeps the
// top N. When the rerank call fails the first N candidates are kept in their
// original retrieval order; a degraded answer beats a failed request.
func (uc *VectorPathUseCase) rerank(ctx context.Context, question string, matches []domain.Match) []domain.Match {
	texts := make([]string, 0, len(matches))
	for _, m := range matches {
		texts = append(texts, m.Text)
	}

	scores, err := uc.reranker.Rerank(ctx, question, texts)
	if err != nil || len(scores) != len(matches) {
		if err != nil {
			slog.Warn("rerank_failed", "error", err)
		} else {
			slog.Warn("rerank_score_count_mismatch", "scores", len(scores), "candidates", len(matches))
		}
		return headMatches(matches, uc.topN)
	}

	ranked := make([]domain.Match, len(matches))
	copy(ranked, matches)
	for i := range ranked {
		ranked[i].Score = scores[i]
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return headMatches(ranked, uc.topN)
}

func headMatches(matches []domain.Match, n int) []domain.Match {
	if len(matches) <= n {
		return matches
	}
	return matches[:n]
}
