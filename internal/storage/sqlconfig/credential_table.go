package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ ICredentialTable = (*CredentialsTable)(nil)

// CredentialsTable reads the user_secrets table.
type CredentialsTable struct {
	exec bob.Executor
}

func NewCredentialsTable(db *sql.DB) *CredentialsTable {
	return &CredentialsTable{exec: bob.NewDB(db)}
}

// FindByUserID retrieves the mpesa_credentials document for a user.
func (t *CredentialsTable) FindByUserID(ctx context.Context, userID string) (*Credential, error) {
	query := psql.Select(
		sm.Columns(psql.Quote("mpesa_credentials")),
		sm.From(psql.Quote("user_secrets")),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Limit(1),
	)

	raw, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[[]byte])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCredentialNotFound
	}
	if err != nil {
		return nil, err
	}

	return CredentialFromJSON(userID, raw)
}
