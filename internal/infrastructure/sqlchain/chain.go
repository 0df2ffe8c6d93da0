package sqlchain

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
	"github.com/laukik86/chatmate/internal/core/ports"
)

// Chain is the natural-language-to-SQL path over the read-only cutoffs
// table: one generation call produces the statement, the statement runs
// against Postgres, and the raw rows are rendered as a canonical string for
// the downstream formatting call.
type Chain struct {
	db        *sql.DB
	generator ports.ChatCompleter
}

func New(db *sql.DB, generator ports.ChatCompleter) *Chain {
	return &Chain{db: db, generator: generator}
}

// Run takes the fully-assembled instructional prompt (schema, transformation
// rules, question) and returns the raw result rows as a string. The result is
// never wrapped in natural language here; that is the formatter's job.
func (c *Chain) Run(ctx context.Context, question string) (string, error) {
	generated, err := c.generator.Complete(ctx, domain.Prompt{
		User:        question,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("generate sql: %w", err)
	}

	stmt, err := extractSelect(generated)
	if err != nil {
		return "", err
	}

	rows, err := c.db.QueryContext(ctx, stmt)
	if err != nil {
		return "", fmt.Errorf("execute generated sql: %w", err)
	}
	defer rows.Close()

	rendered, err := renderRows(rows)
	if err != nil {
		return "", err
	}
	return rendered, nil
}

// extractSelect pulls a single SELECT statement out of the model output,
// tolerating code fences and an echoed "SQLQuery:" label. Anything that is
// not exactly one SELECT is rejected; the cutoffs table is read-only from
// this system's point of view and model output is untrusted input.
func extractSelect(generated string) (string, error) {
	stmt := strings.TrimSpace(generated)
	stmt = strings.TrimPrefix(stmt, "```sql")
	stmt = strings.TrimPrefix(stmt, "```")
	stmt = strings.TrimSuffix(stmt, "```")
	if idx := strings.LastIndex(stmt, "SQLQuery:"); idx >= 0 {
		stmt = stmt[idx+len("SQLQuery:"):]
	}
	stmt = strings.TrimSpace(stmt)
	if idx := strings.Index(stmt, ";"); idx >= 0 {
		rest := strings.TrimSpace(stmt[idx+1:])
		if rest != "" {
			return "", fmt.Errorf("generated sql is not a single statement")
		}
		stmt = strings.TrimSpace(stmt[:idx])
	}
	if stmt == "" {
		return "", fmt.Errorf("generated sql is empty")
	}

	first := strings.ToUpper(strings.Fields(stmt)[0])
	if first != "SELECT" {
		return "", fmt.Errorf("generated sql is not a select: %q", first)
	}
	return stmt, nil
}

// renderRows is the canonical raw-row representation: every row a
// parenthesized tuple in column order, rows joined by ", " inside brackets.
// The formatting prompt downstream was written against this shape.
func renderRows(rows *sql.Rows) (string, error) {
	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("read result columns: %w", err)
	}

	var rendered []string
	values := make([]any, len(columns))
	pointers := make([]any, len(columns))
	for i := range values {
		pointers[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(pointers...); err != nil {
			return "", fmt.Errorf("scan result row: %w", err)
		}
		fields := make([]string, len(values))
		for i, v := range values {
			fields[i] = renderValue(v)
		}
		rendered = append(rendered, "("+strings.Join(fields, ", ")+")")
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate result rows: %w", err)
	}

	if len(rendered) == 0 {
		return "No data found.", nil
	}
	return "[" + strings.Join(rendered, ", ") + "]", nil
}

func renderValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(value)
	case string:
		return value
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
	default:
		return fmt.Sprintf("%v", value)
	}
}
