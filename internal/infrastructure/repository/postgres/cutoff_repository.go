package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/laukik86/chatmate/internal/core/domain"
)

// CutoffRepository loads published cutoff sheets into the table the SQL
// retrieval path reads. Only the importer writes here; the chat pipeline
// treats the table as read-only.
type CutoffRepository struct {
	db *sql.DB
}

func NewCutoffRepository(db *sql.DB) *CutoffRepository {
	return &CutoffRepository{db: db}
}

func (r *CutoffRepository) EnsureSchema(ctx context.Context) error {
	const query = `
CREATE TABLE IF NOT EXISTS cutoffs (
	college_name TEXT NOT NULL,
	branch_code TEXT NOT NULL,
	category_code TEXT NOT NULL,
	closing_percentile DOUBLE PRECISION NOT NULL,
	year INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_cutoffs_year ON cutoffs(year);
CREATE INDEX IF NOT EXISTS idx_cutoffs_college_name ON cutoffs(college_name);
`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("execute cutoffs ddl: %w", err)
	}
	return nil
}

func (r *CutoffRepository) InsertBatch(ctx context.Context, records []domain.CutoffRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cutoffs tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO cutoffs (college_name, branch_code, category_code, closing_percentile, year)
VALUES ($1,$2,$3,$4,$5)
`)
	if err != nil {
		return fmt.Errorf("prepare cutoffs insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if _, err := stmt.ExecContext(ctx,
			record.CollegeName, record.BranchCode, record.CategoryCode,
			record.ClosingPercentile, record.Year,
		); err != nil {
			return fmt.Errorf("insert cutoff row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cutoffs tx: %w", err)
	}
	return nil
}
