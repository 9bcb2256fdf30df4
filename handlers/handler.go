package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"bloglist/storage"
)

const INTERNAL_ERROR_MESSAGE = "internal server error"

type HTTPHandler struct {
	Storage storage.Storage
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	rawResponse, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to dump response to json: %s", err.Error())
		writeError(w, http.StatusInternalServerError, INTERNAL_ERROR_MESSAGE)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(rawResponse); err != nil {
		log.Printf("Failed to write response: %s", err.Error())
	}
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("pong"))
}

func (h *HTTPHandler) UnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "unknown endpoint")
}
