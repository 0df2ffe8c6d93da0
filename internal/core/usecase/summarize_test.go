package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/laukik86/chatmate/internal/core/domain"
)

type summaryCompleterFake struct {
	calls  int
	prompt domain.Prompt
	reply  string
	err    error
}

func (f *summaryCompleterFake) Complete(_ context.Context, prompt domain.Prompt) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestSummarizeEmptyConversationSkipsGeneration(t *testing.T) {
	completer := &summaryCompleterFake{}
	uc := NewSummarizeUseCase(completer)

	got, err := uc.Summarize(context.Background(), nil)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "" {
		t.Fatalf("Summarize() = %q, want empty", got)
	}
	if completer.calls != 0 {
		t.Fatalf("expected no generation call, got %d", completer.calls)
	}
}

func TestSummarizeRendersTranscript(t *testing.T) {
	completer := &summaryCompleterFake{reply: " User asked about COEP cutoffs. "}
	uc := NewSummarizeUseCase(completer)

	messages := []domain.Turn{
		{Role: domain.RoleUser, Content: "cutoff for COEP?"},
		{Role: domain.RoleAssistant, Content: "COEP closed at 96.50."},
	}
	got, err := uc.Summarize(context.Background(), messages)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if got != "User asked about COEP cutoffs." {
		t.Fatalf("Summarize() = %q", got)
	}
	want := "user: cutoff for COEP?\nassistant: COEP closed at 96.50."
	if completer.prompt.User != want {
		t.Fatalf("transcript = %q, want %q", completer.prompt.User, want)
	}
}

func TestSummarizeErrorPropagates(t *testing.T) {
	uc := NewSummarizeUseCase(&summaryCompleterFake{err: errors.New("upstream down")})
	_, err := uc.Summarize(context.Background(), []domain.Turn{{Role: domain.RoleUser, Content: "hi"}})
	if err == nil {
		t.Fatal("expected error")
	}
}
