package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/laukik86/chatmate/internal/core/domain"
)

type chatServiceFake struct {
	reply *domain.ChatReply
	err   error
}

func (f *chatServiceFake) Chat(context.Context, string, []domain.Turn) (*domain.ChatReply, error) {
	return f.reply, f.err
}

type summarizerFake struct {
	summary string
	err     error
}

func (f *summarizerFake) Summarize(context.Context, []domain.Turn) (string, error) {
	return f.summary, f.err
}

type recordEditorFake struct {
	matches   []domain.EditMatch
	updateErr error
	updatedID string
}

func (f *recordEditorFake) Nearest(context.Context, string) ([]domain.EditMatch, error) {
	return f.matches, nil
}

func (f *recordEditorFake) Update(_ context.Context, id, _ string) error {
	f.updatedID = id
	return f.updateErr
}

type ingestorFake struct {
	doc *domain.Document
	err error
}

func (f *ingestorFake) Upload(context.Context, string, string, io.Reader) (*domain.Document, error) {
	return f.doc, f.err
}

type repoFake struct {
	doc *domain.Document
}

func (f *repoFake) Create(context.Context, *domain.Document) error { return nil }
func (f *repoFake) GetByID(_ context.Context, id string) (*domain.Document, error) {
	if f.doc == nil || f.doc.ID != id {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", errors.New("id="+id))
	}
	return f.doc, nil
}
func (f *repoFake) UpdateStatus(context.Context, string, domain.DocumentStatus, string) error {
	return nil
}
func (f *repoFake) SaveIngestReport(context.Context, string, domain.IngestReport) error { return nil }

func newTestRouter(chat *chatServiceFake, records *recordEditorFake, ingestor *ingestorFake, repo *repoFake) http.Handler {
	if chat == nil {
		chat = &chatServiceFake{reply: &domain.ChatReply{Reply: "ok", ToolUsed: domain.RouteVector}}
	}
	if records == nil {
		records = &recordEditorFake{}
	}
	if ingestor == nil {
		ingestor = &ingestorFake{doc: &domain.Document{ID: "doc-1"}}
	}
	if repo == nil {
		repo = &repoFake{}
	}
	return NewRouter(chat, &summarizerFake{summary: "short summary"}, records, ingestor, repo, nil).Handler()
}

func postJSON(t *testing.T, handler http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func TestChatEndpoint(t *testing.T) {
	chat := &chatServiceFake{reply: &domain.ChatReply{Reply: "COEP closed at 96.5.", ToolUsed: domain.RouteSQL}}
	handler := newTestRouter(chat, nil, nil, nil)

	resp := postJSON(t, handler, "/chat", map[string]any{
		"question": "cutoff for COEP?",
		"history":  []domain.Turn{{Role: domain.RoleUser, Content: "hi"}},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var got domain.ChatReply
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Reply != "COEP closed at 96.5." || got.ToolUsed != domain.RouteSQL {
		t.Fatalf("unexpected reply %+v", got)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("missing request id header")
	}
}

func TestChatEndpointRequiresQuestion(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, nil)

	resp := postJSON(t, handler, "/chat", map[string]any{"question": "  "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestChatEndpointTemporaryFailureMapsTo503(t *testing.T) {
	chat := &chatServiceFake{err: domain.WrapError(domain.ErrTemporary, "chat", errors.New("overloaded"))}
	handler := newTestRouter(chat, nil, nil, nil)

	resp := postJSON(t, handler, "/chat", map[string]any{"question": "q"})
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestSummarizeEndpoint(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, nil)

	resp := postJSON(t, handler, "/summarize", map[string]any{
		"messages": []domain.Turn{{Role: domain.RoleUser, Content: "hello"}},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(resp.Body.Bytes(), &got)
	if got["summary"] != "short summary" {
		t.Fatalf("summary = %q", got["summary"])
	}
}

func TestGetToEditEndpointReturnsEmptyList(t *testing.T) {
	handler := newTestRouter(nil, &recordEditorFake{}, nil, nil)

	resp := postJSON(t, handler, "/get-to-edit", map[string]any{"query": "fees"})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var got struct {
		Results []domain.EditMatch `json:"results"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Results == nil {
		t.Fatal("results must be an empty list, not null")
	}
}

func TestUpdateRecordEndpoint(t *testing.T) {
	records := &recordEditorFake{}
	handler := newTestRouter(nil, records, nil, nil)

	resp := postJSON(t, handler, "/update-record", map[string]any{
		"id":       "pdf_chunk_2",
		"new_text": "corrected",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(resp.Body.Bytes(), &got)
	if got["status"] != "success" || got["message"] != "Record updated successfully" {
		t.Fatalf("unexpected response %v", got)
	}
	if records.updatedID != "pdf_chunk_2" {
		t.Fatalf("updated id = %q", records.updatedID)
	}
}

func TestUpdateRecordEndpointValidation(t *testing.T) {
	records := &recordEditorFake{
		updateErr: domain.WrapError(domain.ErrInvalidInput, "update record", errors.New("id and new_text are required")),
	}
	handler := newTestRouter(nil, records, nil, nil)

	resp := postJSON(t, handler, "/update-record", map[string]any{"id": "", "new_text": ""})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.Code)
	}
	var got map[string]string
	_ = json.Unmarshal(resp.Body.Bytes(), &got)
	if got["error"] == "" {
		t.Fatal("expected error payload")
	}
}

func TestUploadDocumentEndpoint(t *testing.T) {
	ingestor := &ingestorFake{doc: &domain.Document{ID: "doc-9", Status: domain.StatusUploaded}}
	handler := newTestRouter(nil, nil, ingestor, nil)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "brochure.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	_, _ = part.Write([]byte("%PDF-1.7"))
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/documents", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body = %s", recorder.Code, recorder.Body.String())
	}
	if !strings.Contains(recorder.Body.String(), "doc-9") {
		t.Fatalf("body = %s", recorder.Body.String())
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, &repoFake{})

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/missing", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d", recorder.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := newTestRouter(nil, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/chat", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", recorder.Code)
	}
}
