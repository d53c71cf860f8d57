package client_orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"delivery/internal/dto"
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
	idStr := mux.Vars(r)["id"]

	clientID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || clientID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderEntities, err := h.service.ListClientOrders(r.Context(), clientID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrderList(orderEntities))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
