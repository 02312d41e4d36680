package api

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"time-travel-tasks/internal/errors"
	"time-travel-tasks/internal/validation"
)

// writeErr maps an error to its HTTP status and body. Field validation
// failures become 422 with a detail list; other errors carry a single
// detail string.
func (a *API) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		writeJSON(w, validationResponse(validationErr), http.StatusUnprocessableEntity)
		return
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		appErr = errors.NewInternalError(r.Method+" "+r.URL.Path, err)
	}

	if errors.ShouldLogError(appErr) {
		a.log.ErrorContext(r.Context(), "request failed",
			slog.String("type", appErr.Type.String()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", appErr),
		)
	}

	writeJSON(w, errorResponse{Detail: errors.GetUserMessage(appErr)}, statusFor(appErr))
}

func statusFor(err *errors.AppError) int {
	switch err.Type {
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func validationResponse(ve *validation.ValidationError) validationErrorResponse {
	details := make([]errorDetail, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		details = append(details, errorDetail{
			Loc:  fe.Loc(),
			Msg:  fe.Message,
			Type: string(fe.Type),
		})
	}
	return validationErrorResponse{Detail: details}
}
