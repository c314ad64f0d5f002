// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the catalog API.
// Handlers are thin marshaling glue: they decode requests, call a use
// case, and translate domain errors into status codes. Business rules
// live in the domain and application layers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"catalog/internal/domain"
)

// dataEnvelope wraps every successful response body.
type dataEnvelope struct {
	Data any `json:"data"`
	Meta any `json:"meta,omitempty"`
}

// errorResponse is the uniform error body.
type errorResponse struct {
	StatusCode int                 `json:"status_code"`
	Error      string              `json:"error"`
	Message    string              `json:"message,omitempty"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeDomainError maps a domain error onto its HTTP status. Anything
// unrecognized is an infrastructure failure and stays opaque to clients.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		invalidID  domain.InvalidIDError
		notFound   domain.NotFoundError
		validation domain.ValidationError
	)
	switch {
	case errors.As(err, &invalidID):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			StatusCode: http.StatusBadRequest,
			Error:      "Bad Request",
			Message:    invalidID.Error(),
		})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			StatusCode: http.StatusNotFound,
			Error:      "Not Found",
			Message:    notFound.Error(),
		})
	case errors.As(err, &validation):
		writeValidationErrors(w, validation.Fields)
	default:
		slog.Error("category request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			StatusCode: http.StatusInternalServerError,
			Error:      "Internal Server Error",
		})
	}
}

// writeValidationErrors reports a 422 with the full field→messages detail.
func writeValidationErrors(w http.ResponseWriter, fields map[string][]string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		StatusCode: http.StatusUnprocessableEntity,
		Error:      "Unprocessable Entity",
		Message:    "entity validation failed",
		Errors:     fields,
	})
}
