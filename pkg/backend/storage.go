package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxObjectSize caps uploads at 5MB.
const MaxObjectSize = 5 * 1024 * 1024

// allowedImageTypes is the MIME allow-list for avatar uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	ErrObjectTooLarge        = errors.New("object exceeds the 5MB upload limit")
	ErrUnsupportedObjectType = errors.New("unsupported object content type")
)

// UploadObject stores a binary object and returns its public URL.
func (c *Client) UploadObject(ctx context.Context, bucket, path, contentType string, data []byte) (string, error) {
	if len(data) > MaxObjectSize {
		return "", ErrObjectTooLarge
	}
	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedObjectType
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.bearerToken())
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return "", classifyStatus(resp.StatusCode, string(raw))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path), nil
}
