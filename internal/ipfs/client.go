package ipfs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"
)

// AddResponse is the pinning service reply to a content add call.
type AddResponse struct {
	Cid       string   `json:"cid"`
	Providers []string `json:"providers"`
}

type PinClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewPinClient(baseURL, token string) *PinClient {
	return &PinClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// AddFile ships the staged file to the pinning service and returns the
// content address it reports.
func (c *PinClient) AddFile(ctx context.Context, filePath, name string) (AddResponse, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return AddResponse{}, fmt.Errorf("open staged file: %w", err)
	}
	defer file.Close()

	payload := &bytes.Buffer{}
	writer := multipart.NewWriter(payload)

	part, err := writer.CreateFormFile("data", name)
	if err != nil {
		return AddResponse{}, fmt.Errorf("create form file: %w", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return AddResponse{}, fmt.Errorf("copy staged file: %w", err)
	}
	if err = writer.Close(); err != nil {
		return AddResponse{}, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/content/add", payload)
	if err != nil {
		return AddResponse{}, fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return AddResponse{}, fmt.Errorf("storage service call: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return AddResponse{}, fmt.Errorf("read storage response: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return AddResponse{}, fmt.Errorf("storage service returned %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var addResponse AddResponse
	if err := json.Unmarshal(body, &addResponse); err != nil {
		return AddResponse{}, fmt.Errorf("decode storage response: %w", err)
	}

	return addResponse, nil
}

// Ping checks the pinning service is reachable.
func (c *PinClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("storage service call: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("storage service returned %d", res.StatusCode)
	}

	return nil
}
