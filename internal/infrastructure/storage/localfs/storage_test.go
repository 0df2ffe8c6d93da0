package localfs

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundTrip(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := storage.Save(context.Background(), "doc-1_brochure.pdf", strings.NewReader("%PDF-1.7")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	file, err := storage.Open(context.Background(), "doc-1_brochure.pdf")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "%PDF-1.7" {
		t.Fatalf("content = %q", raw)
	}
}

func TestResolveConfinesKeysToRoot(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Clean collapses the traversal; the write must land inside the root.
	if err := storage.Save(context.Background(), "../../escape.txt", strings.NewReader("x")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	file, err := storage.Open(context.Background(), "escape.txt")
	if err != nil {
		t.Fatalf("traversal key not confined to root: %v", err)
	}
	file.Close()
}

func TestOpenMissingKey(t *testing.T) {
	storage, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := storage.Open(context.Background(), "missing.pdf"); err == nil {
		t.Fatal("expected error")
	}
}
