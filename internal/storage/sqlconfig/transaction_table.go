package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

var transactionColumns = []string{"id", "sync_id", "user_id", "description", "amount", "date", "category_id"}

// maxRowsPerInsert keeps one INSERT under the Postgres limit of 65535 bind parameters.
var maxRowsPerInsert = 65535 / len(transactionColumns)

type TransactionsTable struct {
	db *sql.DB
}

func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: db}
}

// BulkInsert stores every record or none. A batch that fits one statement is a single
// multi-row INSERT; larger batches are split and run inside one transaction.
func (t *TransactionsTable) BulkInsert(ctx context.Context, records []*TransactionCreate) error {
	if len(records) == 0 {
		return nil
	}

	chunks := chunkRecords(records, maxRowsPerInsert)
	if len(chunks) == 1 {
		return insertTransactions(ctx, bob.NewDB(t.db), chunks[0])
	}

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	exec := bob.NewTx(tx)
	for _, chunk := range chunks {
		if err := insertTransactions(ctx, exec, chunk); err != nil {
			return errors.Join(err, rollback(tx))
		}
	}
	return tx.Commit()
}

func rollback(tx *sql.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func insertTransactions(ctx context.Context, exec bob.Executor, records []*TransactionCreate) error {
	queryMods := make([]bob.Mod[*dialect.InsertQuery], 0, len(records)+1)
	queryMods = append(queryMods, im.Into(psql.Quote("transactions"), transactionColumns...))
	for _, record := range records {
		queryMods = append(queryMods, im.Values(psql.Arg(
			record.ID,
			record.SyncID,
			record.UserID,
			record.Description,
			record.Amount,
			record.OccurredAt,
			record.CategoryID,
		)))
	}

	_, err := psql.Insert(queryMods...).Exec(ctx, exec)
	return err
}

func chunkRecords(records []*TransactionCreate, size int) [][]*TransactionCreate {
	chunks := make([][]*TransactionCreate, 0, (len(records)+size-1)/size)
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		chunks = append(chunks, records[start:end])
	}
	return chunks
}
