package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/mpesa-sync/internal/logging"
)

type storagePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Storage storagePinger
}

func NewHandler(store storagePinger) Handler {
	return Handler{Storage: store}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	endTimer := logData.AddTiming("storagePing")
	err := h.Storage.Ping(req.Context())
	endTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: storage unreachable: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
