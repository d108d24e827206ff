package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
)

var ErrMissingUserID = errors.New("userId is required")

// SyncRequest is the body accepted by every sync entry point. Unknown fields are ignored.
type SyncRequest struct {
	UserID string `json:"userId"`
}

// ParseSyncRequest decodes a sync request body and returns the user to sync.
func ParseSyncRequest(body []byte) (string, error) {
	var request SyncRequest
	if err := json.Unmarshal(body, &request); err != nil {
		return "", fmt.Errorf("invalid request body: %w", err)
	}
	if request.UserID == "" {
		return "", ErrMissingUserID
	}
	return request.UserID, nil
}

// SyncResult summarizes one sync invocation.
type SyncResult struct {
	UserID      string
	SyncID      uuid.UUID
	Fetched     int
	Inserted    int
	Quarantined []QuarantinedTransaction
}

// QuarantinedTransaction is a provider entry that failed validation and was not stored.
type QuarantinedTransaction struct {
	Index  int
	Reason string
}
