package mux

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// maxBodySize limits request bodies
const maxBodySize = 1 << 20

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, r, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(payload); err != nil {
		writeJSONError(w, r, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func writeJSONError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		requestLogger(r).WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
