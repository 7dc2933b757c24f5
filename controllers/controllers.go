// Package controllers holds the HTTP handlers: decode the request, call the
// service, encode the response. Every failure is written through the apierr
// taxonomy; nothing is retried or recovered here.
package controllers

import (
	"encoding/json"
	"net/http"

	"petnet_server/apierr"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apierr.Validation("Invalid request payload")
	}
	return nil
}
