package pdfdoc

import (
	"context"
	"strings"
	"testing"
)

func TestExtractRejectsNonPDFInput(t *testing.T) {
	extractor := NewExtractor()

	_, err := extractor.Extract(context.Background(), strings.NewReader("this is not a pdf"))
	if err == nil {
		t.Fatal("expected error for non-PDF input")
	}
}

func TestExtractRejectsEmptyInput(t *testing.T) {
	extractor := NewExtractor()

	_, err := extractor.Extract(context.Background(), strings.NewReader(""))
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}
