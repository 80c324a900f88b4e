package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint. It deliberately does
// not probe the database or providers: the service degrades to fallbacks
// instead of going unhealthy when an upstream is down.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := map[string]string{
		"status":  "ok",
		"service": "fuel-route-service",
	}
	writeJSON(w, r, http.StatusOK, res)
}
