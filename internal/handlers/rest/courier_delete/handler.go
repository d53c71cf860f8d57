package courier_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"delivery/internal/entities"
	"delivery/internal/service/courier"
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

	err = h.service.DeleteCourier(r.Context(), collection, id)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrInvalidCourierID),
			errors.Is(err, courier.ErrInvalidCollection):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrCourierNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
