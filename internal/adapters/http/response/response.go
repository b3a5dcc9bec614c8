package response

import (
	"encoding/json"
	"net/http"
)

// ValidationErrorResponse carries one message per failing field.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

func RespondValidationError(w http.ResponseWriter, status int, err error, fields map[string]string) {
	if fields == nil {
		fields = map[string]string{}
	}
	RespondJSON(w, status, ValidationErrorResponse{Error: err.Error(), Errors: fields})
}
