package huggingface

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/laukik86/chatmate/internal/core/domain"
)

type HTTPStatusError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "huggingface status error"
	}
	if strings.TrimSpace(e.Body) == "" {
		return fmt.Sprintf("huggingface %s status: %s", e.Operation, e.Status)
	}
	return fmt.Sprintf("huggingface %s status: %s: %s", e.Operation, e.Status, strings.TrimSpace(e.Body))
}

// wrapTemporaryIfNeeded tags server-busy style failures (timeouts, 429,
// 5xx, model loading) as domain.ErrTemporary. The ingestion retry ladder
// keys off this tag; everything else is treated as permanent and skipped.
func wrapTemporaryIfNeeded(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		if isRetryableStatus(statusErr.StatusCode) {
			return domain.WrapError(domain.ErrTemporary, operation, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.WrapError(domain.ErrTemporary, operation, err)
	}
	return err
}

func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
