package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

const (
	defaultEmbedAttempts = 5
	defaultBackoffStep   = 10 * time.Second
)

// IngestPipeline pushes one document's text into the vector index: split into
// overlapping chunks, embed each chunk, upsert chunk plus source text.
//
// The loop is strictly sequential and additionally paced by a rate limiter.
// The hosted embedding service throttles aggressively; fanning out would just
// convert throughput into 429s.
type IngestPipeline struct {
	chunker  ports.Chunker
	embedder ports.ChunkEmbedder
	index    ports.VectorIndex
	limiter  *rate.Limiter

	maxAttempts int
	backoffStep time.Duration

	// sleep is swapped out by tests to observe the backoff ladder.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewIngestPipeline(
	chunker ports.Chunker,
	embedder ports.ChunkEmbedder,
	index ports.VectorIndex,
	limiter *rate.Limiter,
) *IngestPipeline {
	return &IngestPipeline{
		chunker:     chunker,
		embedder:    embedder,
		index:       index,
		limiter:     limiter,
		maxAttempts: defaultEmbedAttempts,
		backoffStep: defaultBackoffStep,
		sleep:       sleepContext,
	}
}

// IngestText chunks and indexes text. Chunk ids are derived from position:
// "<idPrefix>_chunk_<i>". A chunk that keeps failing is skipped, never
// retried across runs, and never aborts the rest of the document.
func (p *IngestPipeline) IngestText(ctx context.Context, idPrefix, text string) (domain.IngestReport, error) {
	chunks := p.chunker.Split(text)
	report := domain.IngestReport{Chunks: len(chunks)}
	if len(chunks) == 0 {
		return report, domain.WrapError(domain.ErrInvalidInput, "ingest text", fmt.Errorf("no chunks produced"))
	}

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		chunkID := fmt.Sprintf("%s_chunk_%d", idPrefix, i)
		if err := p.indexChunk(ctx, chunkID, chunk); err != nil {
			slog.Warn("chunk_skipped", "chunk_id", chunkID, "error", err)
			report.Skipped++
			continue
		}
		report.Upserted++
	}
	return report, nil
}

// indexChunk embeds and upserts a single chunk, retrying transient upstream
// failures with linearly increasing backoff: 10s, 20s, ... up to maxAttempts.
// Any other failure skips the chunk immediately.
func (p *IngestPipeline) indexChunk(ctx context.Context, chunkID, chunk string) error {
	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		vector, err := p.embedder.EmbedChunk(ctx, chunk)
		if err == nil {
			return p.index.Upsert(ctx, chunkID, vector, chunk)
		}
		if !domain.IsKind(err, domain.ErrTemporary) {
			return err
		}

		lastErr = err
		wait := time.Duration(attempt) * p.backoffStep
		slog.Warn("embed_retry",
			"chunk_id", chunkID,
			"attempt", attempt,
			"max_attempts", p.maxAttempts,
			"backoff_s", wait.Seconds(),
		)
		if err := p.sleep(ctx, wait); err != nil {
			return err
		}
	}
	return fmt.Errorf("embed chunk after %d attempts: %w", p.maxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
