package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// DebugHandler serves GET /debug/{level}: 1 switches the process to debug
// logging, anything else back to info. Responds with the active level.
func DebugHandler(level *slog.LevelVar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := strconv.Atoi(chi.URLParam(r, "level"))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, envelope{
				Code:    http.StatusBadRequest,
				Message: "invalid log level",
			})
			return
		}

		if n == 1 {
			level.Set(slog.LevelDebug)
		} else {
			level.Set(slog.LevelInfo)
		}

		writeJSON(w, http.StatusCreated, map[string]int{"log_mode": int(level.Level())})
	}
}
