package notifications_read_post

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "delivery/internal/pkg/middlewares/auth"
	"delivery/internal/service/notification"
	"delivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

type request struct {
	IDs []int64 `json:"ids"`
}

type response struct {
	Marked int64 `json:"marked"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := authmw.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	marked, err := h.service.MarkRead(r.Context(), claims.UserID, req.IDs)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidUserID),
			errors.Is(err, notification.ErrEmptyIDList):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response{Marked: marked})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
