package signin_google_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery/internal/dto"
	"delivery/internal/service/auth"
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
	IDToken string `json:"id_token"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.IDToken == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	user, token, err := h.service.SignInGoogle(r.Context(), req.IDToken)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidGoogleToken):
			w.WriteHeader(http.StatusUnauthorized)
		case errors.Is(err, auth.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.AuthResponse{
		User:  dto.FromUser(user),
		Token: token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
