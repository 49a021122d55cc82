package handlers

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/vivek-dahikar/AutoRegisterAgent/internal/logging"
)

// Recoverer turns a panic in a downstream handler into a logged 500 with the
// usual JSON error body.
func Recoverer(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}
				logger.Error(r.Context(), "panic while serving request",
					"path", r.URL.Path,
					"request_id", middleware.GetReqID(r.Context()),
					"panic", fmt.Sprint(rvr),
					"stack", string(debug.Stack()),
				)
				if r.Header.Get("Connection") != "Upgrade" {
					writeError(w, http.StatusInternalServerError, msgInternal)
				}
			}()
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
