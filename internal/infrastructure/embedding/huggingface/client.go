package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

// Client calls the HuggingFace Inference API for feature extraction and
// cross-encoder reranking.
type Client struct {
	baseURL     string
	token       string
	embedModel  string
	rerankModel string
	httpClient  *http.Client
}

func New(baseURL, token, embedModel, rerankModel string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		token:       token,
		embedModel:  embedModel,
		rerankModel: rerankModel,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

// EmbedChunk embeds a single text. The service answers either a flat vector
// or a list containing one vector per input; both shapes collapse to a flat
// vector here, so callers never see nesting.
func (c *Client) EmbedChunk(ctx context.Context, text string) ([]float32, error) {
	payload := map[string]any{"inputs": text}
	raw, err := c.post(ctx, "/models/"+c.embedModel, payload, "feature extraction")
	if err != nil {
		return nil, err
	}
	return flattenVector(raw)
}

// Rerank scores candidate texts against a query. Scores come back in
// candidate order regardless of which of the two wire shapes the service
// picked.
func (c *Client) Rerank(ctx context.Context, query string, texts []string) ([]float64, error) {
	payload := map[string]any{
		"inputs": map[string]any{
			"query": query,
			"texts": texts,
		},
	}
	raw, err := c.post(ctx, "/models/"+c.rerankModel, payload, "rerank")
	if err != nil {
		return nil, err
	}

	scores, err := parseRerankScores(raw)
	if err != nil {
		return nil, err
	}
	if len(scores) != len(texts) {
		return nil, fmt.Errorf("rerank returned %d scores for %d texts", len(scores), len(texts))
	}
	return scores, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, operation string) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTemporaryIfNeeded(operation, fmt.Errorf("huggingface %s request: %w", operation, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}
	if resp.StatusCode >= 300 {
		return nil, wrapTemporaryIfNeeded(operation, &HTTPStatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(raw)),
		})
	}
	return raw, nil
}

// flattenVector accepts [0.1, ...] or [[0.1, ...]] and returns the flat form.
func flattenVector(raw []byte) ([]float32, error) {
	var flat []float32
	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	var nested [][]float32
	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, fmt.Errorf("feature extraction returned no vectors")
		}
		return nested[0], nil
	}

	return nil, fmt.Errorf("feature extraction returned unexpected shape: %s", truncateForError(raw))
}

// parseRerankScores accepts either a bare score list or the
// [{"index":i,"score":s}] shape.
func parseRerankScores(raw []byte) ([]float64, error) {
	var plain []float64
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain, nil
	}

	var indexed []struct {
		Index int     `json:"index"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(raw, &indexed); err == nil {
		sort.Slice(indexed, func(i, j int) bool { return indexed[i].Index < indexed[j].Index })
		scores := make([]float64, 0, len(indexed))
		for _, entry := range indexed {
			scores = append(scores, entry.Score)
		}
		return scores, nil
	}

	return nil, fmt.Errorf("rerank returned unexpected shape: %s", truncateForError(raw))
}

func truncateForError(raw []byte) string {
	const max = 256
	s := string(raw)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
