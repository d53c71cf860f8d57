package courier_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"delivery/internal/dto"
	"delivery/internal/entities"
	"delivery/internal/service/courier"
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
	UserID     *int64  `json:"user_id"`
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Experience *string `json:"experience"`
	Transport  *string `json:"transport"`
	Available  *bool   `json:"available"`
	Motivation *string `json:"motivation"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	collection := entities.CourierCollection(mux.Vars(r)["collection"])
	if collection == "" {
		collection = entities.CollectionActive
	}

	var req request
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	courierModify := entities.CourierModify{
		ID:         &id,
		UserID:     req.UserID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Experience: req.Experience,
		Available:  req.Available,
		Motivation: req.Motivation,
	}
	if req.Transport != nil {
		transport := entities.CourierTransportType(*req.Transport)
		courierModify.Transport = &transport
	}

	courierEntity, err := h.service.UpdateCourier(r.Context(), collection, courierModify)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCollection),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidEmail),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidTransport):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCourier(courierEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
