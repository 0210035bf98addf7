package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/thirawat/librarium/internal/platform/respond"
	"github.com/thirawat/librarium/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/covers", handler.upload(KindCover))
	router.Post("/ebooks", handler.upload(KindEbook))
}

func (handler *Handler) upload(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		request.Body = http.MaxBytesReader(writer, request.Body, MaxUploadSize)

		file, header, err := request.FormFile("file")
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("file", "A file part named 'file' is required"))
			return
		}
		defer file.Close()

		result, err := handler.service.Save(kind, header, file)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, result)
	}
}
