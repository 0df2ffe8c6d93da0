package huggingface

import (
	"context"
	"errors"
	"log/slog"
)

// Embedder is the request-path adapter over Client. Its contract differs from
// the raw client on purpose: an upstream failure is logged and surfaces as an
// empty vector, never as an error. Request handlers decide what an empty
// vector means for them; ingestion uses the raw client instead because it
// needs the error taxonomy for its retry ladder.
type Embedder struct {
	client *Client
}

func NewEmbedder(client *Client) *Embedder {
	return &Embedder{client: client}
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.client.EmbedChunk(ctx, text)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		slog.Warn("embedding_failed", "error", err)
		return nil, nil
	}
	return vector, nil
}
