package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError matches the handlers' {ok:false,error} envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": message})
}
