package notifications_get

import (
	"encoding/json"
	"net/http"

	"delivery/internal/dto"
	authmw "delivery/internal/pkg/middlewares/auth"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := authmw.ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notificationEntities, err := h.service.ListUserNotifications(r.Context(), claims.UserID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	notificationDTOs := make([]dto.Notification, len(notificationEntities))
	for i := range notificationEntities {
		notificationDTOs[i] = dto.FromNotification(&notificationEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(notificationDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
