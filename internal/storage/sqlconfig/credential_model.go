package sqlconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrCredentialNotFound = errors.New("no credentials found for user")
	ErrMissingAccessToken = errors.New("credentials have no access_token")
)

// Credential holds a user's M-Pesa credential material.
type Credential struct {
	UserID      string
	AccessToken string
	ShortCode   string
	Raw         json.RawMessage
}

type mpesaCredentials struct {
	AccessToken string `json:"access_token"`
	ShortCode   string `json:"shortcode"`
}

// ICredentialTable defines the interface for credential lookups.
//
//go:generate mockery --name ICredentialTable --output mock_ICredentialTable.go
type ICredentialTable interface {
	// FindByUserID returns ErrCredentialNotFound when the user has no stored credentials.
	FindByUserID(ctx context.Context, userID string) (*Credential, error)
}

// CredentialFromJSON decodes the mpesa_credentials document stored for a user.
func CredentialFromJSON(userID string, raw []byte) (*Credential, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ErrCredentialNotFound
	}

	var creds mpesaCredentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("invalid mpesa_credentials: %w", err)
	}

	return &Credential{
		UserID:      userID,
		AccessToken: creds.AccessToken,
		ShortCode:   creds.ShortCode,
		Raw:         json.RawMessage(raw),
	}, nil
}
