package mpesa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// IClient lists transactions from the M-Pesa API.
//
//go:generate mockery --name IClient --output mock_IClient.go
type IClient interface {
	ListTransactions(ctx context.Context, request ListTransactionsRequest) (*TransactionBatch, error)
}

// Client handles communication with the M-Pesa API.
type Client struct {
	httpClient *http.Client
	url        string
	location   *time.Location
}

var _ IClient = (*Client)(nil)

// NewClient creates a client that posts to the given transaction endpoint. location is the
// zone the provider reports zone-less timestamps in.
func NewClient(url string, timeout time.Duration, location *time.Location) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:      url,
		location: location,
	}
}

// ListTransactionsRequest carries the credential material for one listing call.
type ListTransactionsRequest struct {
	AccessToken string
	ShortCode   string
}

type listTransactionsBody struct {
	ShortCode string `json:"ShortCode,omitempty"`
}

// ErrorResponse is the error body returned by the Daraja API.
type ErrorResponse struct {
	RequestID    string `json:"requestId"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return e.Status
	}
	return fmt.Sprintf("%s: %s", e.Status, e.Message)
}

// ListTransactions posts to the transaction endpoint with the access token as a bearer token
// and validates the returned entries.
func (c *Client) ListTransactions(ctx context.Context, request ListTransactionsRequest) (*TransactionBatch, error) {
	payload, err := json.Marshal(listTransactionsBody{ShortCode: request.ShortCode})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", request.AccessToken))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
		var errResp ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			statusErr.Message = errResp.ErrorMessage
		}
		return nil, statusErr
	}

	return ParseTransactions(body, c.location)
}
