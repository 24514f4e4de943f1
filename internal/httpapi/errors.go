package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/prepquest/internal/app"
	"github.com/abhisek/prepquest/internal/content"
	"github.com/abhisek/prepquest/internal/progress"
	"github.com/abhisek/prepquest/internal/roadmap"
	"github.com/abhisek/prepquest/internal/syncer"
)

// Error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest   = "bad_request"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeSyncDisabled = "sync_disabled"
	CodeUpstream     = "upstream_error"
	CodeInternal     = "internal"
)

// ErrorResponse is the error envelope every endpoint returns.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// ToStatusCode maps an error code to its HTTP status.
func ToStatusCode(code string) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeSyncDisabled:
		return http.StatusConflict
	case CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MutationResponse reports the outcome of a command plus whatever it created.
type MutationResponse struct {
	progress.Result
	Data any `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeResult(w http.ResponseWriter, r progress.Result, data any) {
	if !r.Applied() {
		data = nil
	}
	writeJSON(w, http.StatusOK, MutationResponse{Result: r, Data: data})
}

func writeError(w http.ResponseWriter, r *http.Request, code, message string) {
	writeJSON(w, ToStatusCode(code), ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// respondError maps domain errors onto the envelope.
func (h *handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		unavailable *syncer.ErrUnavailable
		rejected    *syncer.ErrRejected
	)
	switch {
	case errors.Is(err, content.ErrUnknownSet), errors.Is(err, content.ErrUnknownItem):
		writeError(w, r, CodeNotFound, err.Error())
	case errors.Is(err, roadmap.ErrNoRoadmap):
		writeError(w, r, CodeConflict, err.Error())
	case errors.Is(err, roadmap.ErrDayOutOfRange),
		errors.Is(err, roadmap.ErrInvalidRole),
		errors.Is(err, roadmap.ErrInvalidTimeframe),
		errors.Is(err, roadmap.ErrInvalidCompanyType):
		writeError(w, r, CodeBadRequest, err.Error())
	case errors.Is(err, app.ErrSyncDisabled):
		writeError(w, r, CodeSyncDisabled, err.Error())
	case errors.As(err, &unavailable), errors.As(err, &rejected):
		writeError(w, r, CodeUpstream, err.Error())
	default:
		h.log.Error().Err(err).Str("request_id", middleware.GetReqID(r.Context())).Msg("request failed")
		writeError(w, r, CodeInternal, "internal server error")
	}
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
