// Package media provides the client for the external hosted-image
// service. Posts reference images by the host's canonical secure URL;
// deletion addresses them by public id (the last URL path segment with
// the extension stripped).
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUploadFailed is returned when the media host rejects or fails an upload.
// Surfaces to clients as a 400, matching the create-post contract.
var ErrUploadFailed = errors.New("image upload failed")

// Store defines the media host operations the post service depends on
type Store interface {
	// Upload sends an image payload (data URI or remote reference) to
	// the media host and returns the canonical secure URL.
	Upload(ctx context.Context, payload string) (string, error)

	// Destroy deletes a hosted image by public id. Callers on the
	// post-delete path treat failures as best-effort cleanup.
	Destroy(ctx context.Context, publicID string) error
}

// Client talks to the media host over HTTPS+JSON
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ Store = (*Client)(nil)

// NewClient creates a media host client.
// baseURL is the host's API root; apiKey authenticates every call.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		// 30s accommodates large payloads and slow CDN-backed hosts
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadRequest struct {
	File string `json:"file"`
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// Upload sends the payload to the media host's upload endpoint.
// Any failure (transport, non-2xx status, missing URL in the response)
// wraps ErrUploadFailed so callers can classify it with errors.Is.
func (c *Client) Upload(ctx context.Context, payload string) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("%w: empty payload", ErrUploadFailed)
	}

	body, err := json.Marshal(uploadRequest{File: payload})
	if err != nil {
		return "", fmt.Errorf("%w: encoding upload request: %v", ErrUploadFailed, err)
	}

	resp, err := c.post(ctx, "/image/upload", body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: media host returned HTTP %d", ErrUploadFailed, resp.StatusCode)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decoding upload response: %v", ErrUploadFailed, err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("%w: media host returned no secure URL", ErrUploadFailed)
	}

	return result.SecureURL, nil
}

type destroyRequest struct {
	PublicID string `json:"public_id"`
}

// Destroy deletes a hosted image by its public id
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return fmt.Errorf("public id cannot be empty")
	}

	body, err := json.Marshal(destroyRequest{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("encoding destroy request: %w", err)
	}

	resp, err := c.post(ctx, "/image/destroy", body)
	if err != nil {
		return fmt.Errorf("destroying image %s: %w", publicID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("destroying image %s: media host returned HTTP %d", publicID, resp.StatusCode)
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (c *Client) post(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling media host: %w", err)
	}
	return resp, nil
}

// PublicIDFromURL derives the media host's public id from a stored
// secure URL: the last path segment, stripped of everything after the
// first dot ("https://host/v1/abc123.jpg" -> "abc123").
func PublicIDFromURL(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		p = u.Path
	}

	segments := strings.Split(strings.TrimRight(p, "/"), "/")
	id := segments[len(segments)-1]
	if i := strings.IndexByte(id, '.'); i >= 0 {
		id = id[:i]
	}
	return id
}
