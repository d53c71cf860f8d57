package settings_patch

import (
	"encoding/json"
	"errors"
	"net/http"

	"delivery/internal/dto"
	"delivery/internal/entities"
	"delivery/internal/service/settings"
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
	BasePrice             *float64  `json:"base_price"`
	PricePerKm            *float64  `json:"price_per_km"`
	ExpressMultiplier     *float64  `json:"express_multiplier"`
	UrgentMultiplier      *float64  `json:"urgent_multiplier"`
	LargePackageSurcharge *float64  `json:"large_package_surcharge"`
	DeliveryZones         *[]string `json:"delivery_zones"`
	VehicleTypes          *[]string `json:"vehicle_types"`
	CompanyName           *string   `json:"company_name"`
	CompanyEmail          *string   `json:"company_email"`
	CompanyPhone          *string   `json:"company_phone"`
	CompanyAddress        *string   `json:"company_address"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	settingsModify := entities.SettingsModify{
		BasePrice:             req.BasePrice,
		PricePerKm:            req.PricePerKm,
		ExpressMultiplier:     req.ExpressMultiplier,
		UrgentMultiplier:      req.UrgentMultiplier,
		LargePackageSurcharge: req.LargePackageSurcharge,
		DeliveryZones:         req.DeliveryZones,
		VehicleTypes:          req.VehicleTypes,
		CompanyName:           req.CompanyName,
		CompanyEmail:          req.CompanyEmail,
		CompanyPhone:          req.CompanyPhone,
		CompanyAddress:        req.CompanyAddress,
	}

	settingsEntity, err := h.service.Update(r.Context(), settingsModify)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrNothingToSet),
			errors.Is(err, settings.ErrNegativePrice):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromSettings(settingsEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
