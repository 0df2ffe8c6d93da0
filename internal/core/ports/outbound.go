package ports

import (
	"context"
	"io"

	"github.com/laukik86/chatmate/internal/core/domain"
)

// ChatCompleter executes one generation call against the hosted LLM.
type ChatCompleter interface {
	Complete(ctx context.Context, prompt domain.Prompt) (string, error)
}

// Embedder is the request-path embedding adapter. On upstream failure it
// returns an empty vector and a nil error; the failure is logged at the
// boundary, never propagated.
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// ChunkEmbedder is the raw embedding call used by ingestion. Unlike Embedder
// it surfaces errors so the retry ladder can tell transient from permanent.
type ChunkEmbedder interface {
	EmbedChunk(ctx context.Context, text string) ([]float32, error)
}

// Reranker scores candidate texts against a query with a cross-encoder.
// Scores are returned in candidate order.
type Reranker interface {
	Rerank(ctx context.Context, query string, texts []string) ([]float64, error)
}

// VectorIndex is the hosted vector index: per-item upsert and top-K query.
type VectorIndex interface {
	Query(ctx context.Context, vector []float32, topK int) ([]domain.Match, error)
	Upsert(ctx context.Context, id string, vector []float32, text string) error
}

// CutoffChain turns a natural-language question into SQL over the cutoffs
// table, executes it and returns the raw row list as a string.
type CutoffChain interface {
	Run(ctx context.Context, question string) (string, error)
}

// TextExtractor pulls plain text out of a stored source document.
type TextExtractor interface {
	Extract(ctx context.Context, r io.Reader) (string, error)
}

// Chunker splits extracted text into overlapping chunks.
type Chunker interface {
	Split(text string) []string
}

// DocumentRepository persists document metadata and ingestion state.
type DocumentRepository interface {
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id string) (*domain.Document, error)
	UpdateStatus(ctx context.Context, id string, status domain.DocumentStatus, errMessage string) error
	SaveIngestReport(ctx context.Context, id string, report domain.IngestReport) error
}

// ObjectStorage stores uploaded source documents.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// MessageQueue publishes/consumes corpus ingestion events.
type MessageQueue interface {
	PublishDocumentUploaded(ctx context.Context, documentID string) error
	SubscribeDocumentUploaded(ctx context.Context, handler func(context.Context, string) error) error
}
