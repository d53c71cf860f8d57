package upload_post

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"delivery/internal/dto"
	"delivery/internal/entities"
	"delivery/internal/service/courier"
	"delivery/pkg/logger"
)

// максимальный размер файла и разрешенные mimetype
const maxFileBytes = 5 << 20

var allowedContentTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/pdf": {},
}

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
	r.Body = http.MaxBytesReader(w, r.Body, maxFileBytes)

	err := r.ParseMultipartForm(maxFileBytes)
	if err != nil {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}

	upload, err := readFormFile(r, "file")
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if _, ok := allowedContentTypes[upload.ContentType]; !ok {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	ref, err := h.service.UploadFile(r.Context(), *upload)
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrEmptyFile):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FileRef{
		URL:       ref.URL,
		StorageID: ref.StorageID,
	})
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
