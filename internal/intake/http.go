package intake

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/thirawat/librarium/internal/platform/request"
	"github.com/thirawat/librarium/internal/platform/respond"
)

// Handler exposes the submission engine over the admin API. Each request
// gets its own session and orchestrator, mirroring the one-session-per-form
// ownership model.
type Handler struct {
	catalog Catalog
	logger  *slog.Logger
}

func NewHandler(catalog Catalog, logger *slog.Logger) *Handler {
	return &Handler{catalog: catalog, logger: logger}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/books", handler.submitNew)
	router.Put("/books/{id}", handler.submitEdit)
}

// submissionInput is the raw admin form payload. Reference fields arrive as
// token lists: numeric strings are existing ids, anything else is a name.
type submissionInput struct {
	Title         string `json:"title"`
	ISBN          string `json:"isbn"`
	TotalPage     int    `json:"total_page"`
	Synopsis      string `json:"synopsis"`
	PublishedYear int    `json:"published_year"`
	CoverImage    string `json:"cover_image"`
	EbookFile     string `json:"ebook_file"`

	Authors   []string `json:"authors"`
	Publisher []string `json:"publisher"`
	Language  []string `json:"language"`

	FileType string `json:"file_type"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
}

func (input submissionInput) toSubmission(bookID int) Submission {
	submission := Submission{
		BookID:        bookID,
		Title:         input.Title,
		ISBN:          input.ISBN,
		TotalPage:     input.TotalPage,
		Synopsis:      input.Synopsis,
		PublishedYear: input.PublishedYear,
		CoverImage:    input.CoverImage,
		EbookFile:     input.EbookFile,
		Authors:       input.Authors,
		Publisher:     input.Publisher,
		Language:      input.Language,
		FileType:      input.FileType,
	}
	if input.FileName != "" || input.MimeType != "" {
		submission.File = &FileInfo{MimeType: input.MimeType, Name: input.FileName}
	}
	return submission
}

func (handler *Handler) submitNew(writer http.ResponseWriter, request *http.Request) {
	var input submissionInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	outcome, err := handler.run(request, input.toSubmission(0))
	if err != nil {
		respond.Error(writer, request, MapError(err))
		return
	}
	respond.CreatedWithWarnings(writer, outcome, outcome.Warnings)
}

func (handler *Handler) submitEdit(writer http.ResponseWriter, request *http.Request) {
	bookID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input submissionInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	outcome, err := handler.run(request, input.toSubmission(bookID))
	if err != nil {
		respond.Error(writer, request, MapError(err))
		return
	}
	respond.OKWithWarnings(writer, outcome, outcome.Warnings)
}

func (handler *Handler) run(request *http.Request, submission Submission) (*Outcome, error) {
	ctx := request.Context()

	session, err := NewSession(ctx, handler.catalog)
	if err != nil {
		return nil, err
	}

	orchestrator := NewOrchestrator(handler.catalog, session, handler.logger)
	outcome, err := orchestrator.Submit(ctx, submission)
	if err != nil {
		handler.logger.Warn("submission_failed",
			slog.String("state", string(orchestrator.State())),
			slog.Any("error", err),
		)
		return nil, err
	}

	handler.logger.Info("submission_done",
		slog.Int("book_id", outcome.BookID),
		slog.Bool("created", outcome.Created),
		slog.Int("warnings", len(outcome.Warnings)),
	)
	return outcome, nil
}
