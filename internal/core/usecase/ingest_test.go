package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/laukik86/chatmate/internal/core/domain"
)

type chunkerFake struct {
	chunks []string
}

func (f *chunkerFake) Split(string) []string { return f.chunks }

type chunkEmbedderFake struct {
	calls int
	errs  map[string]error
}

func (f *chunkEmbedderFake) EmbedChunk(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if err, ok := f.errs[text]; ok && err != nil {
		return nil, err
	}
	return []float32{0.1, 0.2}, nil
}

type ingestIndexFake struct {
	upserts []string
}

func (f *ingestIndexFake) Query(context.Context, []float32, int) ([]domain.Match, error) {
	return nil, nil
}

func (f *ingestIndexFake) Upsert(_ context.Context, id string, _ []float32, _ string) error {
	f.upserts = append(f.upserts, id)
	return nil
}

func newPipelineForTest(chunks []string, embedder *chunkEmbedderFake, index *ingestIndexFake) (*IngestPipeline, *[]time.Duration) {
	pipeline := NewIngestPipeline(&chunkerFake{chunks: chunks}, embedder, index, nil)
	var sleeps []time.Duration
	pipeline.sleep = func(_ context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return pipeline, &sleeps
}

func TestIngestTextUpsertsPositionalChunkIDs(t *testing.T) {
	index := &ingestIndexFake{}
	pipeline, _ := newPipelineForTest([]string{"a", "b", "c"}, &chunkEmbedderFake{}, index)

	report, err := pipeline.IngestText(context.Background(), "pdf", "text")
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}
	if report.Chunks != 3 || report.Upserted != 3 || report.Skipped != 0 {
		t.Fatalf("unexpected report %+v", report)
	}
	want := []string{"pdf_chunk_0", "pdf_chunk_1", "pdf_chunk_2"}
	for i, id := range want {
		if index.upserts[i] != id {
			t.Fatalf("upsert[%d] = %q, want %q", i, index.upserts[i], id)
		}
	}
}

func TestIngestTextLinearBackoffLadder(t *testing.T) {
	transient := domain.WrapError(domain.ErrTemporary, "embed", errors.New("429"))
	embedder := &chunkEmbedderFake{errs: map[string]error{"bad": transient}}
	pipeline, sleeps := newPipelineForTest([]string{"ok", "bad"}, embedder, &ingestIndexFake{})

	report, err := pipeline.IngestText(context.Background(), "pdf", "text")
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}
	if report.Upserted != 1 || report.Skipped != 1 {
		t.Fatalf("unexpected report %+v", report)
	}

	want := []time.Duration{
		10 * time.Second,
		20 * time.Second,
		30 * time.Second,
		40 * time.Second,
		50 * time.Second,
	}
	if len(*sleeps) != len(want) {
		t.Fatalf("sleeps = %v, want %v", *sleeps, want)
	}
	for i := range want {
		if (*sleeps)[i] != want[i] {
			t.Fatalf("sleep[%d] = %v, want %v", i, (*sleeps)[i], want[i])
		}
	}
}

func TestIngestTextNonTransientErrorSkipsImmediately(t *testing.T) {
	embedder := &chunkEmbedderFake{errs: map[string]error{"bad": errors.New("unsupported input")}}
	pipeline, sleeps := newPipelineForTest([]string{"bad", "ok"}, embedder, &ingestIndexFake{})

	report, err := pipeline.IngestText(context.Background(), "pdf", "text")
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}
	if report.Skipped != 1 || report.Upserted != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
	if len(*sleeps) != 0 {
		t.Fatalf("expected no backoff sleeps, got %v", *sleeps)
	}
	// One failed attempt for the bad chunk, one successful for the good one.
	if embedder.calls != 2 {
		t.Fatalf("embed calls = %d, want 2", embedder.calls)
	}
}

func TestIngestTextEmptyTextRejected(t *testing.T) {
	pipeline, _ := newPipelineForTest(nil, &chunkEmbedderFake{}, &ingestIndexFake{})

	_, err := pipeline.IngestText(context.Background(), "pdf", "")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
