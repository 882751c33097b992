package ui

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	apperrors "focusflow/internal/errors"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps an application error onto an HTTP status and the error
// envelope. Unknown errors are logged and reported as 500 without leaking
// internals.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		log.Printf("Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: errorDetail{
			Code:    apperrors.CodeInternalError,
			Message: "internal error",
		}})
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeValidationError, apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.CodeConflict:
		status = http.StatusConflict
	default:
		log.Printf("Internal error: %v", err)
	}

	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:    appErr.Code,
		Message: appErr.Message,
	}})
}

// decodeJSON reads a JSON request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.InvalidInput("malformed JSON request body")
	}
	return nil
}
