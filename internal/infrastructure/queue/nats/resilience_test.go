package nats

import (
	"context"
	"errors"
	"testing"

	"github.com/nats-io/nats.go"

	"github.com/laukik86/chatmate/internal/core/domain"
)

func TestClassifyNATSError(t *testing.T) {
	cases := []struct {
		name          string
		err           error
		wantRetryable bool
		wantFailure   bool
	}{
		{name: "nil", err: nil},
		{name: "cancellation", err: context.Canceled},
		{name: "no servers", err: nats.ErrNoServers, wantRetryable: true, wantFailure: true},
		{name: "timeout", err: nats.ErrTimeout, wantRetryable: true, wantFailure: true},
		{name: "connection closed", err: nats.ErrConnectionClosed, wantRetryable: true, wantFailure: true},
		{name: "other errors are permanent", err: errors.New("bad subject"), wantFailure: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyNATSError(tc.err)
			if got.Retryable != tc.wantRetryable || got.RecordFailure != tc.wantFailure {
				t.Fatalf("classifyNATSError(%v) = %+v", tc.err, got)
			}
		})
	}
}

func TestWrapTemporaryIfNeeded(t *testing.T) {
	got := wrapTemporaryIfNeeded(nats.ErrTimeout)
	if !domain.IsKind(got, domain.ErrTemporary) {
		t.Fatalf("expected temporary, got %v", got)
	}

	permanent := errors.New("bad subject")
	if got := wrapTemporaryIfNeeded(permanent); domain.IsKind(got, domain.ErrTemporary) {
		t.Fatalf("permanent error tagged temporary: %v", got)
	}
	if got := wrapTemporaryIfNeeded(nil); got != nil {
		t.Fatalf("nil must stay nil, got %v", got)
	}
}
