package contact_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery/internal/entities"
	"delivery/internal/service/marketing"
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
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	message := entities.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	_, err = h.service.SubmitContact(r.Context(), message)
	if err != nil {
		switch {
		case errors.Is(err, marketing.ErrInvalidEmail),
			errors.Is(err, marketing.ErrInvalidName),
			errors.Is(err, marketing.ErrInvalidSubject),
			errors.Is(err, marketing.ErrInvalidMessage):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}
