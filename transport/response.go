package transport

import (
	"encoding/json"
	"net/http"

	"github.com/muhammadheryan/kidswear/constant"
	"github.com/muhammadheryan/kidswear/utils/errors"
	"github.com/muhammadheryan/kidswear/utils/logger"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Code           string              `json:"code"`
	Message        string              `json:"message"`
	Fields         []errors.FieldError `json:"fields,omitempty"`
	Service        string              `json:"service,omitempty"`
	UpstreamStatus int                 `json:"upstream_status,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.Error(err))
	}
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

// writeError classifies err and writes it as an ErrorResponse. Unclassified
// errors never leak their text.
func writeError(w http.ResponseWriter, err error) {
	ce := errors.Classify(err)
	if ce.Type() == constant.ErrInternal {
		logger.Error("[writeError] internal error", zap.Error(err))
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Code:           ce.ErrorCode(),
		Message:        ce.Error(),
		Fields:         ce.Fields(),
		Service:        ce.Service(),
		UpstreamStatus: ce.UpstreamStatus(),
	})
}
