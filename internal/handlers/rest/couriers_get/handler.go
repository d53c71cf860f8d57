package couriers_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	collection := entities.CourierCollection(mux.Vars(r)["collection"])
	if collection == "" {
		collection = entities.CollectionActive
	}

	courierEntities, err := h.service.GetCouriers(r.Context(), collection)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCollection):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCourierList(courierEntities))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
