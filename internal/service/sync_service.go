package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/mpesa-sync/internal/provider/mpesa"
	"github.com/carson-networks/mpesa-sync/internal/storage"
	"github.com/carson-networks/mpesa-sync/internal/storage/sqlconfig"
)

// SyncService pulls a user's M-Pesa transactions and stores them.
type SyncService struct {
	storage           *storage.Storage
	provider          mpesa.IClient
	defaultCategoryID *string
	logger            logrus.FieldLogger
}

// NewSyncService creates a new SyncService. A nil defaultCategoryID stores new
// transactions with a NULL category.
func NewSyncService(store *storage.Storage, provider mpesa.IClient, defaultCategoryID *string, logger logrus.FieldLogger) *SyncService {
	return &SyncService{
		storage:           store,
		provider:          provider,
		defaultCategoryID: defaultCategoryID,
		logger:            logger,
	}
}

// SyncTransactions runs one sync for userID: credential lookup, provider listing, mapping
// and a single bulk insert. Repeated calls insert the same transactions again.
func (s *SyncService) SyncTransactions(ctx context.Context, userID string) (*SyncResult, error) {
	syncID, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	log := s.logger.WithFields(logrus.Fields{
		"userID": userID,
		"syncID": syncID.String(),
	})

	credential, err := s.storage.Credentials.FindByUserID(ctx, userID)
	if err != nil {
		return nil, &CredentialLookupError{UserID: userID, Err: err}
	}
	if credential == nil {
		return nil, &CredentialLookupError{UserID: userID, Err: sqlconfig.ErrCredentialNotFound}
	}
	if credential.AccessToken == "" {
		return nil, &CredentialLookupError{UserID: userID, Err: sqlconfig.ErrMissingAccessToken}
	}

	batch, err := s.provider.ListTransactions(ctx, mpesa.ListTransactionsRequest{
		AccessToken: credential.AccessToken,
		ShortCode:   credential.ShortCode,
	})
	if err != nil {
		return nil, &ProviderRequestError{Err: err}
	}
	if batch == nil {
		return nil, &ProviderRequestError{Err: errors.New("empty response")}
	}

	result := &SyncResult{
		UserID:  userID,
		SyncID:  syncID,
		Fetched: len(batch.Transactions) + len(batch.Rejected),
	}
	for _, rejected := range batch.Rejected {
		log.WithFields(logrus.Fields{
			"index":  rejected.Index,
			"reason": rejected.Reason,
		}).Warn("SyncService.SyncTransactions.quarantined")
		result.Quarantined = append(result.Quarantined, QuarantinedTransaction{
			Index:  rejected.Index,
			Reason: rejected.Reason,
		})
	}

	records := make([]*sqlconfig.TransactionCreate, len(batch.Transactions))
	for i, tx := range batch.Transactions {
		record, err := s.newTransactionCreate(userID, syncID, tx)
		if err != nil {
			return nil, err
		}
		records[i] = record
	}

	if err := s.storage.Transactions.BulkInsert(ctx, records); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	result.Inserted = len(records)

	log.WithFields(logrus.Fields{
		"fetched":     result.Fetched,
		"inserted":    result.Inserted,
		"quarantined": len(result.Quarantined),
	}).Info("SyncService.SyncTransactions.complete")

	return result, nil
}

func (s *SyncService) newTransactionCreate(userID string, syncID uuid.UUID, tx mpesa.Transaction) (*sqlconfig.TransactionCreate, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	var categoryID *string
	if s.defaultCategoryID != nil {
		category := *s.defaultCategoryID
		categoryID = &category
	}

	return &sqlconfig.TransactionCreate{
		ID:          id,
		SyncID:      syncID,
		UserID:      userID,
		Description: tx.Description,
		Amount:      tx.Amount,
		OccurredAt:  tx.OccurredAt,
		CategoryID:  categoryID,
	}, nil
}
