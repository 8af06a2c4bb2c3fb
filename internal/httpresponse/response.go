// Package httpresponse writes the JSON envelope used by every handler.
package httpresponse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Response struct {
	Status int `json:"status"`
	Body   any `json:"body,omitempty"`
}

type ErrorBody struct {
	Error string `json:"error"`
}

const internalErrorJSON = `{"status":500,"body":{"error":"internal server error"}}`

// WriteResponseWithStatus writes body inside the standard envelope.
// The HTTP status code matches the envelope status.
func WriteResponseWithStatus(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(Response{Status: status, Body: body})
	if err != nil {
		WriteInternalErrorResponse(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// WriteError writes an error message inside the standard envelope.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteResponseWithStatus(w, status, ErrorBody{Error: msg})
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, internalErrorJSON)
}
