package respond

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every message-only response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Success writes {success:true, message}.
func Success(w http.ResponseWriter, message string) {
	JSON(w, Envelope{Success: true, Message: message})
}

// Failure writes {success:false, message}. Failures are reported in the body,
// the status stays 200.
func Failure(w http.ResponseWriter, message string) {
	JSON(w, Envelope{Success: false, Message: message})
}

// JSON writes payload with status 200.
func JSON(w http.ResponseWriter, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":false,"message":"Server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}
