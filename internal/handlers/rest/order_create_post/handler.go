package order_create_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"delivery/internal/dto"
	"delivery/internal/entities"
	authmw "delivery/internal/pkg/middlewares/auth"
	"delivery/internal/service/order"
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
	Pickup              dto.Address `json:"pickup"`
	Dropoff             dto.Address `json:"dropoff"`
	PackageSize         string      `json:"package_size"`
	Weight              float64     `json:"weight"`
	Urgency             string      `json:"urgency"`
	ScheduledDate       string      `json:"scheduled_date"`
	SpecialInstructions string      `json:"special_instructions"`
	Insurance           bool        `json:"insurance"`
	Amount              float64     `json:"amount"`
	Distance            float64     `json:"distance"`
	EstimatedTime       string      `json:"estimated_time"`
	CourierID           int64       `json:"courier_id"`
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

	var scheduledDate time.Time
	if req.ScheduledDate != "" {
		scheduledDate, err = time.Parse(time.RFC3339, req.ScheduledDate)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	draft := entities.OrderDraft{
		ClientID:            claims.UserID,
		Pickup:              entities.Address{Text: req.Pickup.Text, Lat: req.Pickup.Lat, Lng: req.Pickup.Lng},
		Dropoff:             entities.Address{Text: req.Dropoff.Text, Lat: req.Dropoff.Lat, Lng: req.Dropoff.Lng},
		PackageSize:         entities.PackageSizeType(req.PackageSize),
		Weight:              req.Weight,
		Urgency:             entities.UrgencyType(req.Urgency),
		ScheduledDate:       scheduledDate,
		SpecialInstructions: req.SpecialInstructions,
		Insurance:           req.Insurance,
		Amount:              req.Amount,
		Distance:            req.Distance,
		EstimatedTime:       req.EstimatedTime,
		CourierID:           req.CourierID,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidClientID),
			errors.Is(err, order.ErrInvalidPickup),
			errors.Is(err, order.ErrInvalidDropoff),
			errors.Is(err, order.ErrInvalidPackageSize),
			errors.Is(err, order.ErrInvalidWeight),
			errors.Is(err, order.ErrInvalidUrgency),
			errors.Is(err, order.ErrInvalidScheduledDate),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrInvalidDistance),
			errors.Is(err, order.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrCourierUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(orderEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
