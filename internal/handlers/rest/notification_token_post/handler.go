package notification_token_post

import (
	"encoding/json"
	"errors"
	"net/http"

	authmw "delivery/internal/pkg/middlewares/auth"
	"delivery/internal/service/notification"
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
	Token string `json:"token"`
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

	err = h.service.RegisterToken(r.Context(), claims.UserID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrInvalidUserID),
			errors.Is(err, notification.ErrInvalidPushToken):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
