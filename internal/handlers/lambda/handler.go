package lambda

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/mpesa-sync/internal/logging"
	"github.com/carson-networks/mpesa-sync/internal/service"
)

type transactionSyncer interface {
	SyncTransactions(ctx context.Context, userID string) (*service.SyncResult, error)
}

type responseBody struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SyncHandler serves the sync operation behind an API Gateway HTTP API.
type SyncHandler struct {
	syncer transactionSyncer
	logger *logrus.Logger
}

func NewSyncHandler(syncer transactionSyncer, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{syncer: syncer, logger: logger}
}

// Handle never returns an error to the runtime; every failure becomes a 500
// response carrying {"error": ...}.
func (h *SyncHandler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	logData := logging.NewLogData(h.logger)
	ctx = logging.WithLogData(ctx, logData)
	h.logger.Info("Handler.LambdaSyncTransactions.Start")

	endTimer := logData.AddTiming("duration")
	err := h.sync(ctx, request, logData)
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Error("Handler.LambdaSyncTransactions.Error")
		return newResponse(http.StatusInternalServerError, responseBody{Error: err.Error()}), nil
	}

	logData.Log().Info("Handler.LambdaSyncTransactions.Complete")
	return newResponse(http.StatusOK, responseBody{Success: true}), nil
}

func (h *SyncHandler) sync(ctx context.Context, request events.APIGatewayV2HTTPRequest, logData *logging.LogData) error {
	userID, err := parseUserID(request)
	if err != nil {
		return err
	}
	logData.AddData("userID", userID)

	result, err := h.syncer.SyncTransactions(ctx, userID)
	if err != nil {
		return err
	}

	logData.AddData("syncID", result.SyncID.String())
	logData.AddData("inserted", result.Inserted)
	logData.AddData("quarantined", len(result.Quarantined))
	return nil
}

func parseUserID(request events.APIGatewayV2HTTPRequest) (string, error) {
	body := []byte(request.Body)
	if request.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(request.Body)
		if err != nil {
			return "", fmt.Errorf("failed to decode request body: %w", err)
		}
		body = decoded
	}

	return service.ParseSyncRequest(body)
}

func newResponse(statusCode int, body responseBody) events.APIGatewayV2HTTPResponse {
	encoded, err := json.Marshal(body)
	if err != nil {
		encoded = []byte(`{"error":"failed to encode response"}`)
	}
	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(encoded),
	}
}
