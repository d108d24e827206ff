package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/carson-networks/mpesa-sync/internal/storage/sqlconfig"
)

var _ sqlconfig.ICredentialTable = (*CredentialsTable)(nil)

// CredentialsTable reads user_secrets through PostgREST.
type CredentialsTable struct {
	client *Client
}

func NewCredentialsTable(client *Client) *CredentialsTable {
	return &CredentialsTable{client: client}
}

type userSecretRow struct {
	MpesaCredentials json.RawMessage `json:"mpesa_credentials"`
}

// FindByUserID selects mpesa_credentials for exactly one user_secrets row.
func (t *CredentialsTable) FindByUserID(ctx context.Context, userID string) (*sqlconfig.Credential, error) {
	query, err := t.client.from(ctx, "user_secrets")
	if err != nil {
		return nil, err
	}

	body, _, err := query.
		Select("mpesa_credentials", "", false).
		Eq("user_id", userID).
		Single().
		Execute()
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: %w", sqlconfig.ErrCredentialNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	var row userSecretRow
	if err := json.Unmarshal(body, &row); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return sqlconfig.CredentialFromJSON(userID, row.MpesaCredentials)
}
