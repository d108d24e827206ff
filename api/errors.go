package api

import (
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

var useErrorBodyOnce sync.Once

// errorBody replaces huma's problem+json errors so every failure, including ones huma
// raises before a handler runs, is answered as 500 {"error": "..."}.
type errorBody struct {
	Message string `json:"error"`
}

func (e *errorBody) Error() string {
	return e.Message
}

func (e *errorBody) GetStatus() int {
	return http.StatusInternalServerError
}

func newErrorBody(status int, msg string, errs ...error) huma.StatusError {
	for _, err := range errs {
		if err != nil {
			msg += ": " + err.Error()
			break
		}
	}
	return &errorBody{Message: msg}
}

func useErrorBody() {
	useErrorBodyOnce.Do(func() {
		huma.NewError = newErrorBody
	})
}
