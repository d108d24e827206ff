package transactionsync

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/mpesa-sync/internal/logging"
	"github.com/carson-networks/mpesa-sync/internal/service"
)

type transactionSyncer interface {
	SyncTransactions(ctx context.Context, userID string) (*service.SyncResult, error)
}

// SyncTransactionsInput is the Huma input for a sync. The body is read raw so that a
// missing userId or malformed JSON is answered like any other sync failure.
type SyncTransactionsInput struct {
	RawBody []byte `contentType:"application/json"`
}

// SyncTransactionsResponse is written for both outcomes: success is set on 200,
// error on 500.
type SyncTransactionsResponse struct {
	Success bool   `json:"success,omitempty" doc:"True when every fetched transaction was stored"`
	Error   string `json:"error,omitempty" doc:"Reason the sync failed"`
}

// SyncTransactionsOutput is the Huma output for a sync.
type SyncTransactionsOutput struct {
	Status int
	Body   SyncTransactionsResponse
}

// SyncTransactionsHandler handles POST /v1/transaction/sync.
type SyncTransactionsHandler struct {
	syncer transactionSyncer
}

// NewSyncTransactionsHandler creates a new SyncTransactionsHandler.
func NewSyncTransactionsHandler(syncer transactionSyncer) *SyncTransactionsHandler {
	return &SyncTransactionsHandler{syncer: syncer}
}

// Register registers the sync endpoint with the Huma API.
func (h *SyncTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "sync-transactions",
		Method:        http.MethodPost,
		Path:          "/v1/transaction/sync",
		Summary:       "Sync M-Pesa transactions",
		Description:   "Fetches the user's transactions from M-Pesa and stores all of them.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusOK,
	}, h.handle)
}

func (h *SyncTransactionsHandler) handle(ctx context.Context, input *SyncTransactionsInput) (*SyncTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := service.ParseSyncRequest(input.RawBody)
	if err != nil {
		return failure(logData, err), nil
	}
	logData.AddData("userID", userID)

	endTimer := logData.AddTiming("syncTransactions")
	result, err := h.syncer.SyncTransactions(ctx, userID)
	endTimer()
	if err != nil {
		return failure(logData, err), nil
	}

	logData.AddData("syncID", result.SyncID.String())
	logData.AddData("fetched", result.Fetched)
	logData.AddData("inserted", result.Inserted)
	logData.AddData("quarantined", len(result.Quarantined))

	return &SyncTransactionsOutput{
		Status: http.StatusOK,
		Body:   SyncTransactionsResponse{Success: true},
	}, nil
}

func failure(logData *logging.LogData, err error) *SyncTransactionsOutput {
	logData.AddData("syncError", err.Error())
	return &SyncTransactionsOutput{
		Status: http.StatusInternalServerError,
		Body:   SyncTransactionsResponse{Error: err.Error()},
	}
}
