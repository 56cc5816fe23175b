package httpx

import (
	"net/http"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/types"
	"github.com/goccy/go-json"
)

const (
	HeaderContentType   = "Content-Type"
	MIMEApplicationJSON = "application/json"
)

// WriteJSON writes v as the JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": message}.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, types.ErrorResponse{Error: message})
}
