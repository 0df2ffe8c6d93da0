package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

const editCandidates = 5

// RecordsUseCase backs the manual-correction workflow: find the indexed
// chunks nearest a query, then overwrite one of them with corrected text.
type RecordsUseCase struct {
	embedder ports.Embedder
	index    ports.VectorIndex
}

func NewRecordsUseCase(embedder ports.Embedder, index ports.VectorIndex) *RecordsUseCase {
	return &RecordsUseCase{embedder: embedder, index: index}
}

func (uc *RecordsUseCase) Nearest(ctx context.Context, query string) ([]domain.EditMatch, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "nearest records", errors.New("query is required"))
	}

	vector, err := uc.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed edit query: %w", err)
	}
	if len(vector) == 0 {
		return nil, domain.WrapError(domain.ErrTemporary, "nearest records", errors.New("embedding unavailable"))
	}

	matches, err := uc.index.Query(ctx, vector, editCandidates)
	if err != nil {
		return nil, fmt.Errorf("query vector index: %w", err)
	}

	out := make([]domain.EditMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, domain.EditMatch{
			ID:          m.ID,
			CurrentText: m.Text,
			Score:       m.Score,
		})
	}
	return out, nil
}

// Update re-embeds the corrected text and upserts it under the existing
// record id. Input is validated before any external call is made.
func (uc *RecordsUseCase) Update(ctx context.Context, id, newText string) error {
	if strings.TrimSpace(id) == "" || strings.TrimSpace(newText) == "" {
		return domain.WrapError(domain.ErrInvalidInput, "update record", errors.New("id and new_text are required"))
	}

	vector, err := uc.embedder.EmbedQuery(ctx, newText)
	if err != nil {
		return fmt.Errorf("embed corrected text: %w", err)
	}
	if len(vector) == 0 {
		return domain.WrapError(domain.ErrTemporary, "update record", errors.New("embedding unavailable"))
	}

	if err := uc.index.Upsert(ctx, id, vector, newText); err != nil {
		return fmt.Errorf("upsert corrected record: %w", err)
	}
	return nil
}
