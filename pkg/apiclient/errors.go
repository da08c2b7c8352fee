package apiclient

import (
	"FoodShare-Backend/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

const messagePermissionDenied = "Permission denied - you may not have the required role for this action"

var (
	ErrSessionExpired = errors.New("session expired - please login again")
	ErrNotSignedIn    = errors.New("not signed in")
	ErrNetwork        = errors.New("network error")
)

// APIError is a non-2xx answer from the server, reduced to one
// user-facing message.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// DegradedError reports that a write was kept locally because the server
// could not be reached. Item is the locally stored copy.
type DegradedError struct {
	Item  domain.FoodItem
	Cause error
}

func (e *DegradedError) Error() string {
	return fmt.Sprintf("%s: %v", domain.MessageWarningLocalOnly, e.Cause)
}

func (e *DegradedError) Unwrap() error {
	return e.Cause
}

type errorBody struct {
	Message string              `json:"message"`
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Detail  string              `json:"detail"`
	Errors  map[string][]string `json:"errors"`
}

func decodeError(status int, body []byte) *APIError {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	apiErr := &APIError{Status: status, Code: eb.Code}
	switch {
	case status == http.StatusForbidden:
		apiErr.Message = eb.Detail
		if apiErr.Message == "" {
			apiErr.Message = messagePermissionDenied
		}
	case len(eb.Errors) > 0:
		apiErr.Message = flattenFieldErrors(eb.Errors)
	case eb.Code != "" && eb.Detail != "":
		apiErr.Message = eb.Detail
	case eb.Message != "":
		apiErr.Message = eb.Message
	case eb.Detail != "":
		apiErr.Message = eb.Detail
	default:
		apiErr.Message = fmt.Sprintf("HTTP %d", status)
	}
	return apiErr
}

// flattenFieldErrors joins the first error of each field as
// "field: error", fields in sorted order.
func flattenFieldErrors(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name, errs := range fields {
		if len(errs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+fields[name][0])
	}
	return strings.Join(parts, ", ")
}
