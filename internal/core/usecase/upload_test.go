package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/laukik86/chatmate/internal/core/domain"
)

func TestUploadStoresCreatesAndPublishes(t *testing.T) {
	repo := &documentRepoFake{}
	storage := &storageFake{}
	queue := &queueFake{}
	uc := NewUploadUseCase(repo, storage, queue)

	doc, err := uc.Upload(context.Background(), "Admission Brochure 2025.pdf", "application/pdf", strings.NewReader("%PDF-1.7"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if doc.Status != domain.StatusUploaded {
		t.Fatalf("status = %q", doc.Status)
	}
	if doc.Filename != "Admission Brochure 2025.pdf" {
		t.Fatalf("filename = %q", doc.Filename)
	}
	if !strings.HasSuffix(doc.StoragePath, "_Admission_Brochure_2025.pdf") {
		t.Fatalf("storage path not sanitized: %q", doc.StoragePath)
	}
	if _, ok := storage.saved[doc.StoragePath]; !ok {
		t.Fatalf("file not saved under %q", doc.StoragePath)
	}
	if repo.created == nil || repo.created.ID != doc.ID {
		t.Fatalf("metadata row not created")
	}
	if len(queue.published) != 1 || queue.published[0] != doc.ID {
		t.Fatalf("published = %v", queue.published)
	}
}

func TestSanitizeFilenameStripsPathAndSpecials(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "../../etc/passwd", want: "passwd"},
		{in: "cut offs (2024).pdf", want: "cut_offs__2024_.pdf"},
		{in: "", want: "document.pdf"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
