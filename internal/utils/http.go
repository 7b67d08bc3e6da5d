package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes data as a JSON response with the given status. HTML
// escaping is off: vault ciphers are passed through byte for byte.
//
// Marshaling happens before anything is written, so a failure still yields
// a clean 500.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) error {
	body, err := marshalJSON(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(body)
	return err
}

func marshalJSON(data any) ([]byte, error) {
	var buf jsonBuffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.b, nil
}

type jsonBuffer struct{ b []byte }

func (j *jsonBuffer) Write(p []byte) (int, error) {
	j.b = append(j.b, p...)
	return len(p), nil
}
