package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendJSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}

func sendJSONOrLog(w http.ResponseWriter, log logrus.FieldLogger, status int, v any) {
	if err := SendJSON(w, status, v); err != nil {
		log.WithFields(logrus.Fields{
			"response": v,
			"error":    err,
		}).Error("unable to send response")
	}
}

func sendErrorOrLog(w http.ResponseWriter, log logrus.FieldLogger, status int, err error) {
	sendJSONOrLog(w, log, status, wrapError(err))
}

func wrapError(err error) map[string]string {
	return map[string]string{
		"error": err.Error(),
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
