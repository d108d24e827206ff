package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionCreate is one row of a bulk insert into the transactions table.
type TransactionCreate struct {
	ID          uuid.UUID
	SyncID      uuid.UUID
	UserID      string
	Description string
	Amount      decimal.Decimal
	OccurredAt  time.Time
	CategoryID  *string // nil is stored as NULL
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	// BulkInsert writes all records in one statement. An empty batch is a no-op.
	BulkInsert(ctx context.Context, records []*TransactionCreate) error
}
