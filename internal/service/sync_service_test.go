package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/mpesa-sync/internal/config"
	"github.com/carson-networks/mpesa-sync/internal/provider/mpesa"
	"github.com/carson-networks/mpesa-sync/internal/storage"
	"github.com/carson-networks/mpesa-sync/internal/storage/sqlconfig"
)

type syncTestDeps struct {
	credentials  *sqlconfig.MockICredentialTable
	transactions *sqlconfig.MockITransactionTable
	provider     *mpesa.MockIClient
	logHook      *test.Hook
}

func newSyncTestService(t *testing.T, defaultCategoryID *string) (*SyncService, syncTestDeps) {
	t.Helper()
	deps := syncTestDeps{
		credentials:  sqlconfig.NewMockICredentialTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		provider:     mpesa.NewMockIClient(t),
	}
	logger, hook := test.NewNullLogger()
	deps.logHook = hook

	store := &storage.Storage{
		Credentials:  deps.credentials,
		Transactions: deps.transactions,
	}
	return NewSyncService(store, deps.provider, defaultCategoryID, logger), deps
}

func uncategorized() *string {
	category := config.UncategorizedCategoryID
	return &category
}

func makeProviderTransactions(n int) []mpesa.Transaction {
	txs := make([]mpesa.Transaction, n)
	for i := range txs {
		txs[i] = mpesa.Transaction{
			Description: "Paybill",
			Amount:      decimal.NewFromInt(int64(100 * (i + 1))),
			OccurredAt:  time.Date(2025, 6, 1, 12, i, 0, 0, time.UTC),
		}
	}
	return txs
}

func validCredential(userID string) *sqlconfig.Credential {
	return &sqlconfig.Credential{UserID: userID, AccessToken: "token-123", ShortCode: "600999"}
}

func TestSyncTransactions_Success(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())
	providerTxs := makeProviderTransactions(3)

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mpesa.ListTransactionsRequest{
		AccessToken: "token-123",
		ShortCode:   "600999",
	}).Return(&mpesa.TransactionBatch{Transactions: providerTxs}, nil)

	var inserted []*sqlconfig.TransactionCreate
	deps.transactions.EXPECT().BulkInsert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, records []*sqlconfig.TransactionCreate) error {
			inserted = records
			return nil
		})

	result, err := svc.SyncTransactions(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 3, result.Inserted)
	assert.Empty(t, result.Quarantined)

	require.Len(t, inserted, 3)
	for i, record := range inserted {
		assert.Equal(t, "user-1", record.UserID)
		require.NotNil(t, record.CategoryID)
		assert.Equal(t, "uncategorized", *record.CategoryID)
		assert.Equal(t, providerTxs[i].Description, record.Description)
		assert.True(t, providerTxs[i].Amount.Equal(record.Amount))
		assert.True(t, providerTxs[i].OccurredAt.Equal(record.OccurredAt))
		assert.Equal(t, result.SyncID, record.SyncID)
		assert.False(t, record.ID.IsNil())
	}
	assert.NotEqual(t, inserted[0].ID, inserted[1].ID)
}

func TestSyncTransactions_NullCategoryMode(t *testing.T) {
	svc, deps := newSyncTestService(t, nil)

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mock.Anything).
		Return(&mpesa.TransactionBatch{Transactions: makeProviderTransactions(2)}, nil)
	deps.transactions.EXPECT().BulkInsert(mock.Anything, mock.MatchedBy(func(records []*sqlconfig.TransactionCreate) bool {
		return len(records) == 2 && records[0].CategoryID == nil && records[1].CategoryID == nil
	})).Return(nil)

	_, err := svc.SyncTransactions(context.Background(), "user-1")
	assert.NoError(t, err)
}

func TestSyncTransactions_CredentialLookupFails(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "missing-user").
		Return(nil, sqlconfig.ErrCredentialNotFound)

	result, err := svc.SyncTransactions(context.Background(), "missing-user")
	assert.Nil(t, result)

	var lookupErr *CredentialLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "missing-user", lookupErr.UserID)
	assert.ErrorIs(t, err, sqlconfig.ErrCredentialNotFound)
	assert.Equal(t, "failed to retrieve M-Pesa credentials: no credentials found for user", err.Error())

	deps.provider.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything)
	deps.transactions.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
}

func TestSyncTransactions_CredentialStorageError(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").
		Return(nil, errors.New("connection refused"))

	_, err := svc.SyncTransactions(context.Background(), "user-1")

	var lookupErr *CredentialLookupError
	assert.True(t, errors.As(err, &lookupErr))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSyncTransactions_CredentialWithoutAccessToken(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").
		Return(&sqlconfig.Credential{UserID: "user-1"}, nil)

	_, err := svc.SyncTransactions(context.Background(), "user-1")
	assert.ErrorIs(t, err, sqlconfig.ErrMissingAccessToken)
}

func TestSyncTransactions_NilCredential(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(nil, nil)

	_, err := svc.SyncTransactions(context.Background(), "user-1")
	assert.ErrorIs(t, err, sqlconfig.ErrCredentialNotFound)
}

func TestSyncTransactions_ProviderUnauthorized(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mock.Anything).
		Return(nil, &mpesa.StatusError{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized"})

	result, err := svc.SyncTransactions(context.Background(), "user-1")
	assert.Nil(t, result)

	var providerErr *ProviderRequestError
	require.True(t, errors.As(err, &providerErr))
	var statusErr *mpesa.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "M-Pesa API request failed: 401 Unauthorized", err.Error())

	deps.transactions.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
}

func TestSyncTransactions_InsertFails(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mock.Anything).
		Return(&mpesa.TransactionBatch{Transactions: makeProviderTransactions(2)}, nil)
	deps.transactions.EXPECT().BulkInsert(mock.Anything, mock.Anything).
		Return(errors.New("relation \"transactions\" does not exist"))

	result, err := svc.SyncTransactions(context.Background(), "user-1")
	assert.Nil(t, result)

	var persistenceErr *PersistenceError
	require.True(t, errors.As(err, &persistenceErr))
	assert.Equal(t, "failed to insert transactions: relation \"transactions\" does not exist", err.Error())
}

func TestSyncTransactions_ZeroTransactions(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mock.Anything).
		Return(&mpesa.TransactionBatch{Transactions: []mpesa.Transaction{}}, nil)
	deps.transactions.EXPECT().BulkInsert(mock.Anything, mock.MatchedBy(func(records []*sqlconfig.TransactionCreate) bool {
		return len(records) == 0
	})).Return(nil)

	result, err := svc.SyncTransactions(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Fetched)
	assert.Equal(t, 0, result.Inserted)
}

func TestSyncTransactions_QuarantinedEntriesAreSkipped(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mock.Anything).
		Return(&mpesa.TransactionBatch{
			Transactions: makeProviderTransactions(2),
			Rejected: []mpesa.RejectedTransaction{
				{Index: 1, Reason: "amount is required"},
			},
		}, nil)
	deps.transactions.EXPECT().BulkInsert(mock.Anything, mock.MatchedBy(func(records []*sqlconfig.TransactionCreate) bool {
		return len(records) == 2
	})).Return(nil)

	result, err := svc.SyncTransactions(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, []QuarantinedTransaction{{Index: 1, Reason: "amount is required"}}, result.Quarantined)

	var warnings int
	for _, entry := range deps.logHook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Message == "SyncService.SyncTransactions.quarantined" {
			warnings++
			assert.Equal(t, "amount is required", entry.Data["reason"])
		}
	}
	assert.Equal(t, 1, warnings)
}

func TestSyncTransactions_RepeatedSyncDoesNotDeduplicate(t *testing.T) {
	svc, deps := newSyncTestService(t, uncategorized())
	providerTxs := makeProviderTransactions(4)

	deps.credentials.EXPECT().FindByUserID(mock.Anything, "user-1").Return(validCredential("user-1"), nil).Times(2)
	deps.provider.EXPECT().ListTransactions(mock.Anything, mock.Anything).
		Return(&mpesa.TransactionBatch{Transactions: providerTxs}, nil).Times(2)

	var persisted []*sqlconfig.TransactionCreate
	deps.transactions.EXPECT().BulkInsert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, records []*sqlconfig.TransactionCreate) error {
			persisted = append(persisted, records...)
			return nil
		}).Times(2)

	first, err := svc.SyncTransactions(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := svc.SyncTransactions(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Len(t, persisted, 2*len(providerTxs))
	assert.NotEqual(t, first.SyncID, second.SyncID)
}
