package ports

import (
	"context"
	"io"

	"github.com/laukik86/chatmate/internal/core/domain"
)

// ChatService is the inbound contract for one conversational request:
// rewrite, route, answer, normalize.
type ChatService interface {
	Chat(ctx context.Context, question string, history []domain.Turn) (*domain.ChatReply, error)
}

// ConversationSummarizer condenses a finished conversation.
type ConversationSummarizer interface {
	Summarize(ctx context.Context, messages []domain.Turn) (string, error)
}

// RecordEditor backs the manual-correction workflow over indexed chunks.
type RecordEditor interface {
	Nearest(ctx context.Context, query string) ([]domain.EditMatch, error)
	Update(ctx context.Context, id, newText string) error
}

// DocumentIngestor is the inbound contract for document upload orchestration.
type DocumentIngestor interface {
	Upload(ctx context.Context, filename, mimeType string, body io.Reader) (*domain.Document, error)
}

// DocumentProcessor is the inbound contract for asynchronous corpus ingestion.
type DocumentProcessor interface {
	ProcessByID(ctx context.Context, documentID string) error
}
