package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rentrisk/internal/service"
)

// Predictor is the decision the handler exposes.
type Predictor interface {
	Predict(ctx context.Context, id int64) (service.Result, error)
}

type predictData struct {
	Result int `json:"result"`
}

// PredictHandler serves GET /ml_result/{order_id}. The result field carries
// 0 reject, 1 approve, or 2 unknown inside the standard envelope. A fetch or
// classifier failure is a 500, never silently reported as unknown.
func PredictHandler(gate Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "order_id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, envelope{
				Code:    http.StatusBadRequest,
				Message: "invalid order id",
			})
			return
		}

		slog.Debug("prediction requested", "order_id", id)

		res, err := gate.Predict(r.Context(), id)
		if err != nil {
			slog.Error("prediction failed", "order_id", id, "error", err)
			writeJSON(w, http.StatusInternalServerError, envelope{
				Code:    http.StatusInternalServerError,
				Message: "FAIL",
			})
			return
		}

		slog.Debug("prediction served", "order_id", id, "result", res.String())
		writeJSON(w, http.StatusOK, envelope{
			Code:    http.StatusOK,
			Data:    predictData{Result: res.Code()},
			Message: "SUCCESS",
		})
	}
}
