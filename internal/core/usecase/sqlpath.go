package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// SQLPathUseCase answers cutoff/rank questions from the cutoffs table. The
// chain returns the raw row list; a second generation call renders it for
// humans. Nothing escapes this path as an error: every failure becomes a
// labeled "Database Error:" answer so the handler boundary never sees it.
type SQLPathUseCase struct {
	chain     ports.CutoffChain
	formatter ports.ChatCompleter
}

func NewSQLPathUseCase(chain ports.CutoffChain, formatter ports.ChatCompleter) *SQLPathUseCase {
	return &SQLPathUseCase{chain: chain, formatter: formatter}
}

func (uc *SQLPathUseCase) Answer(ctx context.Context, question string) string {
	rawRows, err := uc.chain.Run(ctx, strings.Replace(sqlSystemPrompt, "{input}", question, 1))
	if err != nil {
		slog.Warn("sql_chain_failed", "error", err)
		return databaseError(err)
	}

	formatted, err := uc.formatter.Complete(ctx, domain.Prompt{
		User:        fmt.Sprintf("Convert this database result into a clean summary table: %s", rawRows),
		Temperature: 0,
	})
	if err != nil {
		slog.Warn("sql_result_format_failed", "error", err)
		return databaseError(err)
	}
	return formatted
}

func databaseError(err error) string {
	return fmt.Sprintf("Database Error: %s", err.Error())
}
