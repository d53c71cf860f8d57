package notification_send_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery/internal/dto"
	"delivery/internal/entities"
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
	UserID    int64             `json:"user_id"`
	Broadcast bool              `json:"broadcast"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Payload   map[string]string `json:"payload"`
}

type broadcastResponse struct {
	Delivered int64 `json:"delivered"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ntype := entities.NotificationType(req.Type)

	if req.Broadcast {
		delivered, err := h.service.BroadcastToAdmins(r.Context(), req.Title, req.Message, ntype, req.Payload)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		err = json.NewEncoder(w).Encode(broadcastResponse{Delivered: delivered})
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	delivery, err := h.service.Send(r.Context(), req.UserID, req.Title, req.Message, ntype, req.Payload)
	if err != nil {
		writeError(w, err)
		return
	}

	response := dto.NotificationDelivery{
		Delivered: delivery.Delivered,
		Reason:    delivery.Reason,
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

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, notification.ErrInvalidUserID),
		errors.Is(err, notification.ErrInvalidTitle),
		errors.Is(err, notification.ErrInvalidMessage),
		errors.Is(err, notification.ErrInvalidType):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, notification.ErrNoAdmins):
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
