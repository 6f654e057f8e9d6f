package automation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/legworkmedia/rnotes/api/internal/contact"
)

var (
	// ErrNotConfigured is returned when no endpoint URL is set.
	ErrNotConfigured = errors.New("automation endpoint not configured")
	// ErrJobRejected is returned when the endpoint answers without status "success".
	ErrJobRejected = errors.New("automation endpoint rejected job")
)

// Payload is the job-creation body: every scraped field plus the two
// convenience strings the folder templates use.
type Payload struct {
	contact.SourceFields
	FullAddress string `json:"fullAddress"`
	FullPhones  string `json:"fullPhones"`
}

// NewPayload derives the convenience strings from the scraped fields.
func NewPayload(fields contact.SourceFields) Payload {
	phones := fields.Phone + " "
	if fields.Phone2 != "" {
		phones += ", " + fields.Phone2
	}
	return Payload{
		SourceFields: fields,
		FullAddress:  fmt.Sprintf("%s, %s, %s %s", fields.Address, fields.City, fields.State, fields.Zip),
		FullPhones:   phones,
	}
}

// RejectionError carries the endpoint's explanation for a refused job.
type RejectionError struct {
	Message string
}

func (e *RejectionError) Error() string {
	return ErrJobRejected.Error() + ": " + e.Message
}

func (e *RejectionError) Unwrap() error {
	return ErrJobRejected
}

// Result is the endpoint's answer for a created job folder.
type Result struct {
	Status     string `json:"status"`
	FolderLink string `json:"folder_link,omitempty"`
	Message    string `json:"message,omitempty"`
}

// JobCreator creates job folders on the remote automation endpoint.
type JobCreator interface {
	CreateJob(ctx context.Context, payload Payload, requestID string) (Result, error)
}

// Client posts job payloads to the WordPress automation route.
type Client struct {
	client   *http.Client
	endpoint string
}

// NewClient builds a client for the given endpoint URL.
func NewClient(client *http.Client, endpoint string) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{client: client, endpoint: strings.TrimSpace(endpoint)}
}

// CreateJob posts the payload and returns the folder link on success.
func (c *Client) CreateJob(ctx context.Context, payload Payload, requestID string) (Result, error) {
	if c.endpoint == "" {
		return Result{}, ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create automation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("automation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Result{}, &RejectionError{Message: extractError(resp.Body)}
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil && err != io.EOF {
		return Result{}, fmt.Errorf("could not decode automation response: %w", err)
	}
	if result.Status != "success" {
		msg := result.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return result, &RejectionError{Message: msg}
	}
	return result, nil
}

func extractError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "Unknown error"
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(data)
}

var _ JobCreator = (*Client)(nil)
