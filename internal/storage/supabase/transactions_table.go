package supabase

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/mpesa-sync/internal/storage/sqlconfig"
)

var _ sqlconfig.ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable writes the transactions table through PostgREST.
type TransactionsTable struct {
	client *Client
}

func NewTransactionsTable(client *Client) *TransactionsTable {
	return &TransactionsTable{client: client}
}

type transactionRow struct {
	ID          uuid.UUID       `json:"id"`
	SyncID      uuid.UUID       `json:"sync_id"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CategoryID  *string         `json:"category_id"`
}

// BulkInsert posts every record in one request; PostgREST inserts them in one statement.
// An empty batch sends nothing.
func (t *TransactionsTable) BulkInsert(ctx context.Context, records []*sqlconfig.TransactionCreate) error {
	if len(records) == 0 {
		return nil
	}
	query, err := t.client.from(ctx, "transactions")
	if err != nil {
		return err
	}

	rows := make([]transactionRow, len(records))
	for i, record := range records {
		rows[i] = transactionRow{
			ID:          record.ID,
			SyncID:      record.SyncID,
			UserID:      record.UserID,
			Description: record.Description,
			Amount:      record.Amount,
			Date:        record.OccurredAt,
			CategoryID:  record.CategoryID,
		}
	}

	_, _, err = query.Insert(rows, false, "", "minimal", "").Execute()
	return err
}
