package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// ProcessUseCase runs the ingestion pipeline for an uploaded document:
// load metadata, open the stored file, extract text, chunk+embed+upsert.
type ProcessUseCase struct {
	repo      ports.DocumentRepository
	storage   ports.ObjectStorage
	extractor ports.TextExtractor
	pipeline  *IngestPipeline
}

func NewProcessUseCase(
	repo ports.DocumentRepository,
	storage ports.ObjectStorage,
	extractor ports.TextExtractor,
	pipeline *IngestPipeline,
) *ProcessUseCase {
	return &ProcessUseCase{
		repo:      repo,
		storage:   storage,
		extractor: extractor,
		pipeline:  pipeline,
	}
}

func (uc *ProcessUseCase) ProcessByID(ctx context.Context, documentID string) error {
	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("set status=processing: %w", err)
	}

	report, err := uc.run(ctx, documentID)
	if err != nil {
		if failErr := uc.repo.UpdateStatus(ctx, documentID, domain.StatusFailed, err.Error()); failErr != nil {
			return fmt.Errorf("%w; mark failed status: %v", err, failErr)
		}
		return err
	}

	if err := uc.repo.SaveIngestReport(ctx, documentID, report); err != nil {
		return fmt.Errorf("save ingest report: %w", err)
	}
	if err := uc.repo.UpdateStatus(ctx, documentID, domain.StatusReady, ""); err != nil {
		return fmt.Errorf("set status=ready: %w", err)
	}
	return nil
}

func (uc *ProcessUseCase) run(ctx context.Context, documentID string) (domain.IngestReport, error) {
	doc, err := uc.repo.GetByID(ctx, documentID)
	if err != nil {
		return domain.IngestReport{}, fmt.Errorf("fetch document by id: %w", err)
	}

	file, err := uc.storage.Open(ctx, doc.StoragePath)
	if err != nil {
		return domain.IngestReport{}, fmt.Errorf("open stored document: %w", err)
	}
	defer file.Close()

	text, err := uc.extractor.Extract(ctx, file)
	if err != nil {
		return domain.IngestReport{}, fmt.Errorf("extract text: %w", err)
	}
	if text == "" {
		return domain.IngestReport{}, domain.WrapError(domain.ErrInvalidInput, "extract text", errors.New("empty extracted text"))
	}

	report, err := uc.pipeline.IngestText(ctx, doc.ID, text)
	if err != nil {
		return domain.IngestReport{}, err
	}
	return report, nil
}
