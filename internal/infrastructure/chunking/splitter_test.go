package chunking

import (
	"strings"
	"testing"
)

func TestSplitEmptyText(t *testing.T) {
	s := NewSplitter(1000, 200)
	if got := s.Split(""); got != nil {
		t.Fatalf("Split() = %v, want nil", got)
	}
}

func TestSplitShortTextSingleChunk(t *testing.T) {
	s := NewSplitter(1000, 200)
	got := s.Split("Admission requires a valid MHT-CET score.")
	if len(got) != 1 {
		t.Fatalf("expected one chunk, got %d", len(got))
	}
	if got[0] != "Admission requires a valid MHT-CET score." {
		t.Fatalf("chunk = %q", got[0])
	}
}

func TestSplitPrefersParagraphBoundary(t *testing.T) {
	first := strings.Repeat("a", 60)
	second := strings.Repeat("b", 60)
	s := NewSplitter(80, 10)

	got := s.Split(first + "\n\n" + second)
	if len(got) < 2 {
		t.Fatalf("expected at least two chunks, got %d", len(got))
	}
	if got[0] != first {
		t.Fatalf("first chunk should end at the paragraph break, got %q", got[0])
	}
}

func TestSplitChunksStayWithinSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("The institute publishes cutoff lists every year. ")
	}
	s := NewSplitter(1000, 200)

	chunks := s.Split(b.String())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > 1000 {
			t.Fatalf("chunk %d has %d runes", i, n)
		}
	}
}

func TestSplitOverlapRepeatsTailText(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("sentence number goes here. ")
	}
	s := NewSplitter(200, 50)

	chunks := s.Split(b.String())
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// The start of every later chunk must re-appear near the end of the
	// previous one.
	for i := 1; i < len(chunks); i++ {
		head := []rune(chunks[i])
		if len(head) > 20 {
			head = head[:20]
		}
		if !strings.Contains(chunks[i-1], strings.TrimSpace(string(head))) {
			t.Fatalf("chunk %d does not overlap its predecessor", i)
		}
	}
}

func TestSplitMakesProgressWithoutBoundaries(t *testing.T) {
	s := NewSplitter(50, 45)
	text := strings.Repeat("x", 500)

	chunks := s.Split(text)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	var total int
	for _, chunk := range chunks {
		total += len(chunk)
	}
	if total < len(text) {
		t.Fatalf("chunks cover %d of %d runes", total, len(text))
	}
}

func TestNewSplitterNormalizesBadArguments(t *testing.T) {
	s := NewSplitter(0, -1)
	if s.ChunkSize != 1000 || s.Overlap != 0 {
		t.Fatalf("unexpected defaults %+v", s)
	}

	s = NewSplitter(100, 100)
	if s.Overlap != 20 {
		t.Fatalf("overlap = %d, want 20", s.Overlap)
	}
}
