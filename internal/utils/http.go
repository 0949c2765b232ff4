// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteXML serializes data as an XML document with the standard header and
// writes it with Content-Type "text/xml". headers are set before the status
// line; they are used for counters such as X-Length.
func WriteXML(w http.ResponseWriter, data any, statusCode int, headers map[string]string) (int, error) {
	xmlData, err := xml.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to XML", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to XML: %w", err)
	}

	body := append([]byte(xml.Header), xmlData...)

	w.Header().Set("Content-Type", "text/xml")
	for k, v := range headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(statusCode)

	return w.Write(body)
}
