package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thirawat/librarium/internal/platform/apperr"
)

// nameAliases lists the JSON keys a reference name may arrive under, in
// priority order. The catalog API kept its historical per-kind field names
// ("author_name", "publisher_name", "type_name") for frontend
// compatibility; older deployments also emitted PascalCase keys.
var nameAliases = []string{
	"author_name", "publisher_name", "type_name", "name",
	"AuthorName", "PublisherName", "TypeName", "Name",
}

// Client is the remote implementation of [Catalog] over the catalog HTTP
// API. Timeouts belong to the injected http.Client, not to this layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// referencePayload decodes a reference row regardless of which historical
// name key the server used.
type referencePayload struct {
	ID   int
	Name string
}

func (payload *referencePayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if idRaw, ok := raw["id"]; ok {
		if err := json.Unmarshal(idRaw, &payload.ID); err != nil {
			return err
		}
	}

	for _, alias := range nameAliases {
		nameRaw, ok := raw[alias]
		if !ok {
			continue
		}
		var name string
		if err := json.Unmarshal(nameRaw, &name); err != nil {
			continue
		}
		if name != "" {
			payload.Name = name
			return nil
		}
	}

	return nil
}

func (client *Client) ListAuthors(ctx context.Context) ([]Reference, error) {
	return client.listReferences(ctx, "/api/v1/authors")
}

func (client *Client) ListPublishers(ctx context.Context) ([]Reference, error) {
	return client.listReferences(ctx, "/api/v1/publishers")
}

func (client *Client) ListLanguages(ctx context.Context) ([]Reference, error) {
	return client.listReferences(ctx, "/api/v1/languages")
}

func (client *Client) ListFileTypes(ctx context.Context) ([]Reference, error) {
	return client.listReferences(ctx, "/api/v1/filetypes")
}

func (client *Client) CreateAuthor(ctx context.Context, name string) (Reference, error) {
	return client.createReference(ctx, "/api/v1/authors", "author_name", name)
}

func (client *Client) CreatePublisher(ctx context.Context, name string) (Reference, error) {
	return client.createReference(ctx, "/api/v1/publishers", "publisher_name", name)
}

func (client *Client) CreateLanguage(ctx context.Context, name string) (Reference, error) {
	return client.createReference(ctx, "/api/v1/languages", "name", name)
}

func (client *Client) CreateFileType(ctx context.Context, name string) (Reference, error) {
	return client.createReference(ctx, "/api/v1/filetypes", "type_name", name)
}

// draftPayload is the wire shape of a book draft.
type draftPayload struct {
	Title         string `json:"title"`
	ISBN          string `json:"isbn"`
	TotalPage     int    `json:"total_page"`
	Synopsis      string `json:"synopsis"`
	PublishedYear int    `json:"published_year"`
	CoverImage    string `json:"cover_image"`
	EbookFile     string `json:"ebook_file"`
	PublisherID   *int   `json:"publisher_id"`
	LanguageID    int    `json:"language_id"`
	FileTypeID    int    `json:"file_type_id"`
}

func draftToPayload(draft Draft) draftPayload {
	return draftPayload{
		Title:         draft.Title,
		ISBN:          draft.ISBN,
		TotalPage:     draft.TotalPage,
		Synopsis:      draft.Synopsis,
		PublishedYear: draft.PublishedYear,
		CoverImage:    draft.CoverImage,
		EbookFile:     draft.EbookFile,
		PublisherID:   draft.PublisherID,
		LanguageID:    draft.LanguageID,
		FileTypeID:    draft.FileTypeID,
	}
}

func (client *Client) CreateBook(ctx context.Context, draft Draft) (int, error) {
	var created struct {
		ID int `json:"id"`
	}
	if err := client.do(ctx, http.MethodPost, "/api/v1/books", draftToPayload(draft), &created); err != nil {
		return 0, err
	}
	return created.ID, nil
}

func (client *Client) UpdateBook(ctx context.Context, id int, draft Draft) (int, error) {
	var updated struct {
		ID int `json:"id"`
	}
	path := fmt.Sprintf("/api/v1/books/%d", id)
	if err := client.do(ctx, http.MethodPatch, path, draftToPayload(draft), &updated); err != nil {
		return 0, err
	}
	if updated.ID == 0 {
		updated.ID = id
	}
	return updated.ID, nil
}

func (client *Client) ListBookAuthors(ctx context.Context, bookID int) ([]int, error) {
	var ids []int
	path := fmt.Sprintf("/api/v1/books/%d/authors", bookID)
	if err := client.do(ctx, http.MethodGet, path, nil, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (client *Client) LinkAuthor(ctx context.Context, bookID, authorID int) error {
	path := fmt.Sprintf("/api/v1/books/%d/authors", bookID)
	body := map[string]int{"author_id": authorID}
	return client.do(ctx, http.MethodPost, path, body, nil)
}

func (client *Client) UnlinkAuthor(ctx context.Context, bookID, authorID int) error {
	path := fmt.Sprintf("/api/v1/books/%d/authors/%d", bookID, authorID)
	return client.do(ctx, http.MethodDelete, path, nil, nil)
}

func (client *Client) listReferences(ctx context.Context, path string) ([]Reference, error) {
	var payloads []referencePayload
	if err := client.do(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, err
	}

	references := make([]Reference, 0, len(payloads))
	for _, payload := range payloads {
		references = append(references, Reference{ID: payload.ID, Name: payload.Name})
	}
	return references, nil
}

func (client *Client) createReference(ctx context.Context, path, field, name string) (Reference, error) {
	var payload referencePayload
	body := map[string]string{field: name}
	if err := client.do(ctx, http.MethodPost, path, body, &payload); err != nil {
		return Reference{}, err
	}
	return Reference{ID: payload.ID, Name: payload.Name}, nil
}

// do issues one API call and decodes the success envelope's data field into
// target. API errors are rebuilt as [apperr.AppError] values with the
// server's code and status; transport failures map to an upstream error.
func (client *Client) do(ctx context.Context, method, path string, body, target interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperr.Internal(err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return apperr.Internal(err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return apperr.Upstream(err)
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		return client.decodeError(response)
	}

	if target == nil || response.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil {
		return apperr.Upstream(err)
	}
	if err := json.Unmarshal(envelope.Data, target); err != nil {
		return apperr.Upstream(err)
	}
	return nil
}

func (client *Client) decodeError(response *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
		Code  string `json:"code"`
	}
	if err := json.NewDecoder(response.Body).Decode(&envelope); err != nil || envelope.Code == "" {
		client.logger.Warn("catalog_error_undecodable",
			slog.Int("status", response.StatusCode),
		)
		return apperr.Upstream(fmt.Errorf("catalog returned status %d", response.StatusCode))
	}

	return &apperr.AppError{
		Code:       envelope.Code,
		Message:    envelope.Error,
		HTTPStatus: response.StatusCode,
	}
}
