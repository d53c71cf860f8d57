package courier_apply_post

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"delivery/internal/entities"
	"delivery/internal/service/courier"
	"delivery/pkg/logger"
)

const maxFormMemory = 32 << 20

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

type response struct {
	ID int64 `json:"id"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	fullName := r.FormValue("full_name")
	email := r.FormValue("email")
	phone := r.FormValue("phone")
	address := r.FormValue("address")
	experience := r.FormValue("experience")
	transport := entities.CourierTransportType(r.FormValue("transport"))
	motivation := r.FormValue("motivation")

	courierModify := entities.CourierModify{
		FullName:   &fullName,
		Email:      &email,
		Phone:      &phone,
		Address:    &address,
		Experience: &experience,
		Transport:  &transport,
		Motivation: &motivation,
	}

	idDocument, err := readFormFile(r, "id_document")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	drivingLicense, err := readFormFile(r, "driving_license")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	profilePicture, err := readFormFile(r, "profile_picture")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	files := entities.ApplicationFiles{
		IDDocument:     *idDocument,
		DrivingLicense: *drivingLicense,
		ProfilePicture: *profilePicture,
	}

	id, err := h.service.SubmitApplication(r.Context(), courierModify, files)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidName),
			errors.Is(err, courier.ErrInvalidEmail),
			errors.Is(err, courier.ErrInvalidPhone),
			errors.Is(err, courier.ErrInvalidTransport),
			errors.Is(err, courier.ErrMissingDocuments):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, courier.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response{ID: id})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func readFormFile(r *http.Request, field string) (*entities.FileUpload, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &entities.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
