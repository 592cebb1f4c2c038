package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"protrain-backend-go/internal/app"
	"protrain-backend-go/internal/services"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// writeResult answers an intent: the new state on success, the mapped
// ServiceError otherwise. Anything else is a storage failure.
func writeResult(w http.ResponseWriter, snap app.Snapshot, err error) {
	if err == nil {
		WriteJSON(w, http.StatusOK, buildState(snap))
		return
	}
	if status, message, ok := services.StatusOf(err); ok {
		WriteError(w, status, message)
		return
	}
	log.Printf("intent failed: %v", err)
	WriteError(w, http.StatusInternalServerError, "Session storage failed")
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.ErrBadRequest("Invalid payload")
	}
	return nil
}
