package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

const (
	codeForbidden = "ForbiddenOperationException"
	codeNotFound  = "NotFoundException"
	codeBadInput  = "IllegalArgumentException"
	codeInternal  = "InternalServerError"
)

// errorBody is the error envelope authlib clients parse.
type errorBody struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"errorMessage"`
}

type httpError struct {
	status int
	body   errorBody
}

func (e *httpError) Error() string {
	return e.body.ErrorMessage
}

func badRequest(msg string) error {
	return &httpError{http.StatusBadRequest, errorBody{codeBadInput, msg}}
}

func writeError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	writeJSON(w, he.status, he.body)
}

func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		return &httpError{http.StatusForbidden, errorBody{codeForbidden, "Invalid credentials."}}
	case errors.Is(err, common.ErrorAuthenticationFailed):
		return &httpError{http.StatusForbidden, errorBody{codeForbidden, "Authentication failed."}}
	case errors.Is(err, common.ErrorInvalidSession):
		return &httpError{http.StatusForbidden, errorBody{codeForbidden, "Invalid session."}}
	case errors.Is(err, common.ErrorTooManyNames):
		return &httpError{http.StatusBadRequest, errorBody{codeBadInput, "Too many names."}}
	case errors.Is(err, common.ErrorNotFound):
		return &httpError{http.StatusNotFound, errorBody{codeNotFound, "Not found."}}
	default:
		return &httpError{http.StatusInternalServerError, errorBody{codeInternal, "Internal server error."}}
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}
