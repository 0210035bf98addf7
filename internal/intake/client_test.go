package intake_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirawat/librarium/internal/intake"
	"github.com/thirawat/librarium/internal/platform/apperr"
)

func newTestClient(t *testing.T, handler http.Handler) (*intake.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return intake.NewClient(server.URL, server.Client(), logger), server
}

/*
TestClient_ListAuthors_NameAliases decodes reference rows published under
the historical per-kind name keys.
*/
func TestClient_ListAuthors_NameAliases(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/authors", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"author_name":"Jane Doe"},
			{"id":2,"AuthorName":"John Roe"},
			{"id":3,"name":"Anonymous"}
		]}`))
	}))

	authors, err := client.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 3)
	assert.Equal(t, intake.Reference{ID: 1, Name: "Jane Doe"}, authors[0])
	assert.Equal(t, intake.Reference{ID: 2, Name: "John Roe"}, authors[1])
	assert.Equal(t, intake.Reference{ID: 3, Name: "Anonymous"}, authors[2])
}

/*
TestClient_CreateAuthor posts the historical field name and decodes the
created row from the envelope.
*/
func TestClient_CreateAuthor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jane Doe", body["author_name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":55,"author_name":"Jane Doe"}}`))
	}))

	created, err := client.CreateAuthor(context.Background(), "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, intake.Reference{ID: 55, Name: "Jane Doe"}, created)
}

/*
TestClient_APIError rebuilds the server's error envelope as an AppError.
*/
func TestClient_APIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"A record with this value already exists","code":"CONFLICT"}`))
	}))

	_, err := client.CreateBook(context.Background(), intake.Draft{Title: "Dup"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
}

/*
TestClient_TransportError maps a connection failure to an upstream error.
*/
func TestClient_TransportError(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.ListAuthors(context.Background())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPSTREAM_ERROR", ae.Code)
}

/*
TestClient_UnlinkAuthor issues a DELETE against the pivot route.
*/
func TestClient_UnlinkAuthor(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/books/7/authors/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.UnlinkAuthor(context.Background(), 7, 5))
}
