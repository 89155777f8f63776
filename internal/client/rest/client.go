package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/Yussef-Makhlouf/admin-dashboard-macc/internal/domain"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/apperror"
	"github.com/Yussef-Makhlouf/admin-dashboard-macc/pkg/logger"
)

// Client is the shared transport under every resource client. It attaches
// the bearer token from the request context, performs exactly one attempt
// per call (no retries), and maps any non-2xx response into an
// apperror.AppError carrying the server message when one is present.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// do issues one request and returns the raw response body. A missing token
// simply sends the request unauthenticated; the upstream API rejects it.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := domain.TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log.Error("upstream request failed", "method", method, "path", path, "error", err)
		return nil, apperror.New(http.StatusBadGateway, "Could not reach the API server", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperror.FromStatus(resp.StatusCode, serverMessage(data))
	}
	return data, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		body = bytes.NewReader(encoded)
	}
	return c.do(ctx, method, path, body, "application/json")
}

// doMultipart encodes field values plus an optional single file part named
// fileField. Used wherever an image may accompany the request.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField string, file *domain.Upload) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if file != nil {
		part, err := createFilePart(w, fileField, file)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, apperror.Internal(err)
	}
	return c.do(ctx, method, path, &buf, w.FormDataContentType())
}

func createFilePart(w *multipart.Writer, field string, file *domain.Upload) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, file.Filename))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	return w.CreatePart(header)
}

// serverMessage extracts a human-readable message from an upstream error
// body. The API is inconsistent about the key, so both are tried.
func serverMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

// decodeList tolerates both shapes the API returns for collections: an
// envelope keyed by the resource name (or "data") and a bare array.
func decodeList[T any](data []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, apperror.Internal(err)
		}
		return items, nil
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, apperror.Internal(err)
	}
	raw, ok := envelope[key]
	if !ok {
		raw, ok = envelope["data"]
	}
	if !ok {
		return nil, apperror.Internal(fmt.Errorf("response has no %q key", key))
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

// decodeObject unwraps a single entity from an envelope keyed by the
// resource name (or "data"), falling back to the bare object.
func decodeObject[T any](data []byte, key string) (*T, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(data), &envelope); err != nil {
		return nil, apperror.Internal(err)
	}
	raw, ok := envelope[key]
	if !ok {
		raw, ok = envelope["data"]
	}
	if !ok {
		// Bare object: the envelope map itself was the entity.
		raw = json.RawMessage(data)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperror.Internal(err)
	}
	return &out, nil
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}
