package handlers

import "net/http"

// Healthz reports that the process is serving requests. It does not probe
// the text generator.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
