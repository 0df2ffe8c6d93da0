package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/laukik86/chatmate/internal/core/domain"
)

const textMetadataKey = "text_chunk"

// Client talks to one Pinecone index over its data-plane REST API.
// Every vector crossing this boundary is checked against the configured
// dimensionality; a mismatch would silently poison the index, so it is a hard
// error on both query and upsert.
type Client struct {
	indexHost  string
	apiKey     string
	namespace  string
	dimension  int
	httpClient *http.Client
}

func New(indexHost, apiKey, namespace string, dimension int) *Client {
	return &Client{
		indexHost:  strings.TrimRight(indexHost, "/"),
		apiKey:     apiKey,
		namespace:  namespace,
		dimension:  dimension,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Query(ctx context.Context, vector []float32, topK int) ([]domain.Match, error) {
	if err := c.checkDimension(vector, "query"); err != nil {
		return nil, err
	}

	reqBody := map[string]any{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": true,
	}
	if c.namespace != "" {
		reqBody["namespace"] = c.namespace
	}

	var queryResp struct {
		Matches []struct {
			ID       string         `json:"id"`
			Score    float64        `json:"score"`
			Metadata map[string]any `json:"metadata"`
		} `json:"matches"`
	}
	if err := c.postJSON(ctx, "/query", reqBody, &queryResp, "query"); err != nil {
		return nil, err
	}

	out := make([]domain.Match, 0, len(queryResp.Matches))
	for _, m := range queryResp.Matches {
		out = append(out, domain.Match{
			ID:    m.ID,
			Text:  metadataString(m.Metadata, textMetadataKey),
			Score: m.Score,
		})
	}
	return out, nil
}

func (c *Client) Upsert(ctx context.Context, id string, vector []float32, text string) error {
	if err := c.checkDimension(vector, "upsert"); err != nil {
		return err
	}

	reqBody := map[string]any{
		"vectors": []map[string]any{
			{
				"id":     id,
				"values": vector,
				"metadata": map[string]any{
					textMetadataKey: text,
				},
			},
		},
	}
	if c.namespace != "" {
		reqBody["namespace"] = c.namespace
	}

	var upsertResp struct {
		UpsertedCount int `json:"upsertedCount"`
	}
	return c.postJSON(ctx, "/vectors/upsert", reqBody, &upsertResp, "upsert")
}

func (c *Client) checkDimension(vector []float32, operation string) error {
	if c.dimension > 0 && len(vector) != c.dimension {
		return domain.WrapError(
			domain.ErrDimensionMismatch,
			"pinecone "+operation,
			fmt.Errorf("got %d, index expects %d", len(vector), c.dimension),
		)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, out any, operation string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s body: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.indexHost+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinecone %s request: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if msg := strings.TrimSpace(string(raw)); msg != "" {
			return fmt.Errorf("pinecone %s status: %s: %s", operation, resp.Status, msg)
		}
		return fmt.Errorf("pinecone %s status: %s", operation, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", operation, err)
	}
	return nil
}

func metadataString(metadata map[string]any, key string) string {
	v, ok := metadata[key]
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
