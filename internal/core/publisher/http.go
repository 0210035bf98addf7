package publisher

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
	router.Get("/", handler.listPublishers)
	router.Get("/{id}", handler.getPublisher)
	router.Post("/", handler.createPublisher)
	router.Patch("/{id}", handler.updatePublisher)
	router.Delete("/{id}", handler.deletePublisher)
}

func (handler *Handler) listPublishers(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	publishers, err := handler.service.ListPublishers(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) getPublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	publisher, err := handler.service.GetPublisher(request.Context(), publisherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publisher)
}

func (handler *Handler) createPublisher(writer http.ResponseWriter, request *http.Request) {
	var input Publisher
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePublisher(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Publisher
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePublisher(request.Context(), publisherID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePublisher(request.Context(), publisherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
