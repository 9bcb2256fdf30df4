package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"bloglist/storage"
)

var (
	ValidationError    = errors.New("validation failed")
	MalformedBodyError = errors.New("malformatted request body")
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// errorStatus maps an error to its status code and the message that is safe
// to send back to the client.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ValidationError):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, MalformedBodyError):
		return http.StatusBadRequest, MalformedBodyError.Error()
	case errors.Is(err, storage.InvalidIdError):
		return http.StatusBadRequest, "malformatted id"
	case errors.Is(err, storage.NotFoundError):
		return http.StatusNotFound, "blog not found"
	case errors.Is(err, storage.ClientError):
		return http.StatusBadRequest, "invalid request"
	default:
		return http.StatusInternalServerError, INTERNAL_ERROR_MESSAGE
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	rawResponse, _ := json.Marshal(ErrorResponse{Error: message})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(rawResponse)
}

func handleError(w http.ResponseWriter, action string, err error) {
	status, message := errorStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error while %s: %s", action, err.Error())
	} else {
		log.Printf("Client error while %s: %s", action, err.Error())
	}
	writeError(w, status, message)
}
