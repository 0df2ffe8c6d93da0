package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// SummarizeUseCase condenses a conversation into 2-3 sentences for session
// titles and handover notes.
type SummarizeUseCase struct {
	generator ports.ChatCompleter
}

func NewSummarizeUseCase(generator ports.ChatCompleter) *SummarizeUseCase {
	return &SummarizeUseCase{generator: generator}
}

func (uc *SummarizeUseCase) Summarize(ctx context.Context, messages []domain.Turn) (string, error) {
	if len(messages) == 0 {
		return "", nil
	}

	summary, err := uc.generator.Complete(ctx, domain.Prompt{
		System:      summarySystemPrompt,
		User:        renderTranscript(messages),
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("summarize conversation: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// renderTranscript is the canonical transcript form fed to the summarizer:
// one "role: content" line per turn.
func renderTranscript(messages []domain.Turn) string {
	var b strings.Builder
	for i, msg := range messages {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(msg.Role))
		b.WriteString(": ")
		b.WriteString(msg.Content)
	}
	return b.String()
}
