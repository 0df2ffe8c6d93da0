package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"github.com/laukik86/chatmate/internal/config"
	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/infrastructure/repository/postgres"
	"github.com/laukik86/chatmate/internal/observability/logging"
)

// Column order in the published sheets:
// college_name, branch_code, category_code, closing_percentile, year.
const cutoffColumns = 5

func main() {
	_ = godotenv.Load()

	var (
		filePath = flag.String("file", "", "path to the cutoffs .xlsx sheet")
		sheet    = flag.String("sheet", "", "sheet name (default: first sheet)")
	)
	flag.Parse()
	if *filePath == "" {
		log.Fatal("usage: cutoffs -file <cutoffs.xlsx> [-sheet Sheet1]")
	}

	cfg := config.Load()
	slog.SetDefault(logging.NewJSONLogger("chatmate-cutoffs", cfg.LogLevel))

	ctx := context.Background()

	records, err := readSheet(*filePath, *sheet)
	if err != nil {
		log.Fatalf("read sheet: %v", err)
	}
	if len(records) == 0 {
		log.Fatal("sheet contains no data rows")
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCutoffRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	if err := repo.InsertBatch(ctx, records); err != nil {
		log.Fatalf("insert cutoffs: %v", err)
	}

	slog.Info("cutoffs_imported", "file", *filePath, "rows", len(records))
}

func readSheet(path, sheet string) ([]domain.CutoffRecord, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	if sheet == "" {
		sheet = workbook.GetSheetName(0)
	}
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var records []domain.CutoffRecord
	for i, row := range rows {
		// First row is the header.
		if i == 0 {
			continue
		}
		record, err := parseRow(row)
		if err != nil {
			slog.Warn("row_skipped", "row", i+1, "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func parseRow(row []string) (domain.CutoffRecord, error) {
	if len(row) < cutoffColumns {
		return domain.CutoffRecord{}, fmt.Errorf("expected %d columns, got %d", cutoffColumns, len(row))
	}

	percentile, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return domain.CutoffRecord{}, fmt.Errorf("closing_percentile: %w", err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return domain.CutoffRecord{}, fmt.Errorf("year: %w", err)
	}

	record := domain.CutoffRecord{
		CollegeName:       strings.TrimSpace(row[0]),
		BranchCode:        strings.TrimSpace(row[1]),
		CategoryCode:      strings.TrimSpace(row[2]),
		ClosingPercentile: percentile,
		Year:              year,
	}
	if record.CollegeName == "" {
		return domain.CutoffRecord{}, fmt.Errorf("college_name is empty")
	}
	return record, nil
}
