package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// RewriteUseCase turns the latest question plus prior turns into a standalone
// query. This is a hard dependency of every request: there is no local
// fallback, a failure here fails the request.
type RewriteUseCase struct {
	generator ports.ChatCompleter
}

func NewRewriteUseCase(generator ports.ChatCompleter) *RewriteUseCase {
	return &RewriteUseCase{generator: generator}
}

func (uc *RewriteUseCase) Rewrite(ctx context.Context, history []domain.Turn, question string) (string, error) {
	standalone, err := uc.generator.Complete(ctx, domain.Prompt{
		System:      rewriteSystemPrompt,
		History:     history,
		User:        fmt.Sprintf("Rewrite this question: %s", question),
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("rewrite query: %w", err)
	}
	return strings.TrimSpace(standalone), nil
}
