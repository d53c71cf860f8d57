package feedback_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery/internal/dto"
	"delivery/internal/entities"
	authmw "delivery/internal/pkg/middlewares/auth"
	"delivery/internal/service/feedback"
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
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
	Rating    int64  `json:"rating"`
	Comment   string `json:"comment"`
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

	draft := entities.FeedbackDraft{
		OrderID:   req.OrderID,
		CourierID: req.CourierID,
		ClientID:  claims.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	feedbackEntity, err := h.service.Submit(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrInvalidOrderID),
			errors.Is(err, feedback.ErrInvalidCourierID),
			errors.Is(err, feedback.ErrInvalidRating):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, feedback.ErrOrderNotFound),
			errors.Is(err, feedback.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, feedback.ErrNotOrderClient):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, feedback.ErrOrderNotDelivered),
			errors.Is(err, feedback.ErrDuplicateFeedback):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromFeedback(feedbackEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
