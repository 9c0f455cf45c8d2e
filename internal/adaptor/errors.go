package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service failures onto console responses. Backend
// errors keep their upstream status and message verbatim; everything else
// falls back to the message-shape conventions of the usecase layer.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			log.Warn(operation+" failed - not found", zap.Error(err))
			utils.ResponseNotFound(w, apiErr.Message)
		case apiErr.StatusCode == http.StatusUnauthorized:
			// The 401 hook has already cleared the session
			utils.ResponseUnauthorized(w, apiErr.Message)
		case apiErr.StatusCode == http.StatusForbidden:
			log.Warn(operation+" failed - forbidden", zap.Error(err))
			utils.ResponseForbidden(w, apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			log.Warn(operation+" rejected by backend", zap.Error(err))
			utils.ResponseBadRequest(w, apiErr.Message, nil)
		default:
			log.Error(operation+" failed upstream", zap.Error(err), zap.Int("status", apiErr.StatusCode))
			utils.ResponseBadGateway(w, apiErr.Message)
		}
		return
	}

	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "closed"),
		strings.Contains(errMsg, "not editable"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "backend unreachable"):
		log.Error(operation+" failed - backend unreachable", zap.Error(err))
		utils.ResponseBadGateway(w, errMsg)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// normalizeFilter treats the UI's "all" sentinel as no constraint
func normalizeFilter(value string) string {
	if value == "all" {
		return ""
	}
	return value
}
