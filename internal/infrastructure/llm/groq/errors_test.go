package groq

import (
	"context"
	"errors"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/laukik86/chatmate/internal/core/domain"
)

func TestWrapTemporaryIfNeeded(t *testing.T) {
	cases := []struct {
		name          string
		err           error
		wantTemporary bool
	}{
		{
			name:          "rate limited",
			err:           &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests},
			wantTemporary: true,
		},
		{
			name:          "server error",
			err:           &openai.APIError{HTTPStatusCode: http.StatusBadGateway},
			wantTemporary: true,
		},
		{
			name:          "bad request is permanent",
			err:           &openai.APIError{HTTPStatusCode: http.StatusBadRequest},
			wantTemporary: false,
		},
		{
			name:          "request error with retryable status",
			err:           &openai.RequestError{HTTPStatusCode: http.StatusServiceUnavailable},
			wantTemporary: true,
		},
		{
			name:          "plain error is permanent",
			err:           errors.New("boom"),
			wantTemporary: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := wrapTemporaryIfNeeded("complete", tc.err)
			if domain.IsKind(got, domain.ErrTemporary) != tc.wantTemporary {
				t.Fatalf("wrapTemporaryIfNeeded(%v) temporary = %v, want %v", tc.err, !tc.wantTemporary, tc.wantTemporary)
			}
		})
	}
}

func TestWrapTemporaryIfNeededPassesContextErrors(t *testing.T) {
	got := wrapTemporaryIfNeeded("complete", context.Canceled)
	if !errors.Is(got, context.Canceled) {
		t.Fatalf("got %v", got)
	}
	if domain.IsKind(got, domain.ErrTemporary) {
		t.Fatal("cancellation must not be tagged temporary")
	}
}
