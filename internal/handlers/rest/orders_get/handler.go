package orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	page := parseQueryInt(r, "page")
	limit := parseQueryInt(r, "limit")

	orderPage, err := h.service.ListOrders(r.Context(), page, limit)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.OrderPage{
		Orders: dto.FromOrderList(orderPage.Orders),
		Total:  orderPage.Total,
		Page:   orderPage.Page,
		Limit:  orderPage.Limit,
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

// parseQueryInt возвращает 0 для пустых и некорректных значений,
// нормализацию делает сервис.
func parseQueryInt(r *http.Request, name string) int64 {
	val, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil {
		return 0
	}
	return val
}
