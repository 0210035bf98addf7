package filetype

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/thirawat/librarium/internal/platform/request"
	"github.com/thirawat/librarium/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listFileTypes)
	router.Get("/{id}", handler.getFileType)
	router.Post("/", handler.createFileType)
	router.Patch("/{id}", handler.updateFileType)
	router.Delete("/{id}", handler.deleteFileType)
}

func (handler *Handler) listFileTypes(writer http.ResponseWriter, request *http.Request) {
	types, err := handler.service.ListFileTypes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, types)
}

func (handler *Handler) getFileType(writer http.ResponseWriter, request *http.Request) {
	fileTypeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	fileType, err := handler.service.GetFileType(request.Context(), fileTypeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, fileType)
}

func (handler *Handler) createFileType(writer http.ResponseWriter, request *http.Request) {
	var input FileType
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateFileType(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateFileType(writer http.ResponseWriter, request *http.Request) {
	fileTypeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input FileType
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFileType(request.Context(), fileTypeID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteFileType(writer http.ResponseWriter, request *http.Request) {
	fileTypeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFileType(request.Context(), fileTypeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
