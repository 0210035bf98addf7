package intake_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirawat/librarium/internal/intake"
	"github.com/thirawat/librarium/internal/platform/apperr"
)

// fakeCatalog is an in-memory, call-recording Catalog.
type fakeCatalog struct {
	mu sync.Mutex

	authors    []intake.Reference
	publishers []intake.Reference
	languages  []intake.Reference
	fileTypes  []intake.Reference
	nextRefID  int

	books      map[int]intake.Draft
	nextBookID int
	links      map[int][]int

	createAuthorCalls []string
	createBookCalls   int
	linkCalls         [][2]int
	unlinkCalls       [][2]int

	failCreateBook bool
	failLinkIDs    map[int]bool
	failUnlinkIDs  map[int]bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		nextRefID:     1000,
		nextBookID:    1,
		books:         map[int]intake.Draft{},
		links:         map[int][]int{},
		failLinkIDs:   map[int]bool{},
		failUnlinkIDs: map[int]bool{},
	}
}

func (f *fakeCatalog) ListAuthors(context.Context) ([]intake.Reference, error) {
	return f.authors, nil
}
func (f *fakeCatalog) ListPublishers(context.Context) ([]intake.Reference, error) {
	return f.publishers, nil
}
func (f *fakeCatalog) ListLanguages(context.Context) ([]intake.Reference, error) {
	return f.languages, nil
}
func (f *fakeCatalog) ListFileTypes(context.Context) ([]intake.Reference, error) {
	return f.fileTypes, nil
}

func (f *fakeCatalog) newReference(name string) intake.Reference {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextRefID++
	return intake.Reference{ID: f.nextRefID, Name: name}
}

func (f *fakeCatalog) CreateAuthor(_ context.Context, name string) (intake.Reference, error) {
	f.mu.Lock()
	f.createAuthorCalls = append(f.createAuthorCalls, name)
	f.mu.Unlock()
	return f.newReference(name), nil
}

func (f *fakeCatalog) CreatePublisher(_ context.Context, name string) (intake.Reference, error) {
	return f.newReference(name), nil
}

func (f *fakeCatalog) CreateLanguage(_ context.Context, name string) (intake.Reference, error) {
	return f.newReference(name), nil
}

func (f *fakeCatalog) CreateFileType(_ context.Context, name string) (intake.Reference, error) {
	return f.newReference(name), nil
}

func (f *fakeCatalog) CreateBook(_ context.Context, draft intake.Draft) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createBookCalls++
	if f.failCreateBook {
		return 0, apperr.Conflict("A record with this value already exists")
	}
	id := f.nextBookID
	f.nextBookID++
	f.books[id] = draft
	return id, nil
}

func (f *fakeCatalog) UpdateBook(_ context.Context, id int, draft intake.Draft) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.books[id]; !ok {
		return 0, apperr.NotFound("Book")
	}
	f.books[id] = draft
	return id, nil
}

func (f *fakeCatalog) ListBookAuthors(_ context.Context, bookID int) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int{}, f.links[bookID]...), nil
}

func (f *fakeCatalog) LinkAuthor(_ context.Context, bookID, authorID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.linkCalls = append(f.linkCalls, [2]int{bookID, authorID})
	if f.failLinkIDs[authorID] {
		return errors.New("link failed")
	}
	f.links[bookID] = append(f.links[bookID], authorID)
	return nil
}

func (f *fakeCatalog) UnlinkAuthor(_ context.Context, bookID, authorID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlinkCalls = append(f.unlinkCalls, [2]int{bookID, authorID})
	if f.failUnlinkIDs[authorID] {
		return errors.New("unlink failed")
	}
	ids := f.links[bookID]
	for i, id := range ids {
		if id == authorID {
			f.links[bookID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

func newTestOrchestrator(t *testing.T, catalog *fakeCatalog) *intake.Orchestrator {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session, err := intake.NewSession(context.Background(), catalog)
	require.NoError(t, err)
	return intake.NewOrchestrator(catalog, session, logger)
}

func validSubmission() intake.Submission {
	return intake.Submission{
		Title:         "Kafka on the Shore",
		ISBN:          "9781400079278",
		TotalPage:     505,
		PublishedYear: 2002,
		Authors:       []string{"123", "Haruki Murakami"},
		Language:      []string{"English"},
		File:          &intake.FileInfo{MimeType: "application/pdf", Name: "kafka.pdf"},
	}
}

/*
TestOrchestrator_NewBook submits a new book mixing an existing author id
with a brand-new name: exactly one author is created and the book links both.
*/
func TestOrchestrator_NewBook(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.authors = []intake.Reference{{ID: 123, Name: "Someone Known"}}
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	catalog.fileTypes = []intake.Reference{{ID: 1, Name: "pdf"}}
	orchestrator := newTestOrchestrator(t, catalog)

	outcome, err := orchestrator.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, outcome)

	assert.Equal(t, []string{"Haruki Murakami"}, catalog.createAuthorCalls)
	assert.True(t, outcome.Created)
	assert.Len(t, outcome.AuthorIDs, 2)
	assert.Equal(t, 123, outcome.AuthorIDs[0])
	assert.ElementsMatch(t, outcome.AuthorIDs, catalog.links[outcome.BookID])
	assert.Empty(t, outcome.Warnings)
	assert.Equal(t, intake.StateDone, orchestrator.State())
}

/*
TestOrchestrator_EditDiffsAssociations edits a book whose persisted authors
are {5, 9} toward {9, 12}: one link and one unlink, nothing else.
*/
func TestOrchestrator_EditDiffsAssociations(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	catalog.fileTypes = []intake.Reference{{ID: 1, Name: "pdf"}}
	catalog.books[42] = intake.Draft{}
	catalog.links[42] = []int{5, 9}
	orchestrator := newTestOrchestrator(t, catalog)

	submission := validSubmission()
	submission.BookID = 42
	submission.Authors = []string{"9", "12"}

	outcome, err := orchestrator.Submit(context.Background(), submission)
	require.NoError(t, err)

	require.Len(t, catalog.linkCalls, 1)
	assert.Equal(t, [2]int{42, 12}, catalog.linkCalls[0])
	require.Len(t, catalog.unlinkCalls, 1)
	assert.Equal(t, [2]int{42, 5}, catalog.unlinkCalls[0])
	assert.ElementsMatch(t, []int{9, 12}, catalog.links[42])
	assert.False(t, outcome.Created)
}

/*
TestOrchestrator_KeepLastForSingleFields submits several language tokens;
only the last one is resolved.
*/
func TestOrchestrator_KeepLastForSingleFields(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{
		{ID: 1, Name: "English"},
		{ID: 2, Name: "Japanese"},
	}
	catalog.fileTypes = []intake.Reference{{ID: 1, Name: "pdf"}}
	orchestrator := newTestOrchestrator(t, catalog)

	submission := validSubmission()
	submission.Language = []string{"English", "Japanese"}

	outcome, err := orchestrator.Submit(context.Background(), submission)
	require.NoError(t, err)

	draft := catalog.books[outcome.BookID]
	assert.Equal(t, 2, draft.LanguageID)
}

/*
TestOrchestrator_ClassificationFailure submits a file with no recognizable
type: the machine fails at Detecting and no book write happens.
*/
func TestOrchestrator_ClassificationFailure(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	orchestrator := newTestOrchestrator(t, catalog)

	submission := validSubmission()
	submission.File = &intake.FileInfo{MimeType: "application/zip", Name: "archive.zip"}

	_, err := orchestrator.Submit(context.Background(), submission)
	require.Error(t, err)

	var classErr *intake.ClassificationError
	assert.ErrorAs(t, err, &classErr)
	assert.Equal(t, 0, catalog.createBookCalls)
	assert.Equal(t, intake.StateFailed, orchestrator.State())
}

/*
TestOrchestrator_PersistFailureSkipsAssociations checks that a rejected
book write surfaces as a PersistError and no link calls are issued.
*/
func TestOrchestrator_PersistFailureSkipsAssociations(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	catalog.fileTypes = []intake.Reference{{ID: 1, Name: "pdf"}}
	catalog.failCreateBook = true
	orchestrator := newTestOrchestrator(t, catalog)

	_, err := orchestrator.Submit(context.Background(), validSubmission())
	require.Error(t, err)

	var persistErr *intake.PersistError
	assert.ErrorAs(t, err, &persistErr)
	assert.Empty(t, catalog.linkCalls)
	assert.Equal(t, intake.StateFailed, orchestrator.State())
}

/*
TestOrchestrator_AssociationPartialFailure fails one of two link calls: the
submission still completes with the failure reported as a warning.
*/
func TestOrchestrator_AssociationPartialFailure(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	catalog.fileTypes = []intake.Reference{{ID: 1, Name: "pdf"}}
	catalog.failLinkIDs[123] = true
	orchestrator := newTestOrchestrator(t, catalog)

	outcome, err := orchestrator.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0], "123")
	require.Len(t, catalog.links[outcome.BookID], 1, "the successful link stays applied")
	assert.Equal(t, intake.StateDone, orchestrator.State())
}

/*
TestOrchestrator_RetryReusesSession fails the first attempt at the book
write, then retries: the author created during the failed attempt is found
in the session cache instead of being created again.
*/
func TestOrchestrator_RetryReusesSession(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	catalog.fileTypes = []intake.Reference{{ID: 1, Name: "pdf"}}
	catalog.failCreateBook = true
	orchestrator := newTestOrchestrator(t, catalog)

	_, err := orchestrator.Submit(context.Background(), validSubmission())
	require.Error(t, err)
	require.Len(t, catalog.createAuthorCalls, 1)

	catalog.failCreateBook = false
	outcome, err := orchestrator.Submit(context.Background(), validSubmission())
	require.NoError(t, err)

	assert.Len(t, catalog.createAuthorCalls, 1, "retry must not recreate the author")
	assert.Len(t, outcome.AuthorIDs, 2)
}

/*
TestOrchestrator_MissingAuthorsRejected submits with an empty author list.
*/
func TestOrchestrator_MissingAuthorsRejected(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	orchestrator := newTestOrchestrator(t, catalog)

	submission := validSubmission()
	submission.Authors = []string{"", "  "}

	_, err := orchestrator.Submit(context.Background(), submission)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, 0, catalog.createBookCalls)
}

/*
TestOrchestrator_KnownFileTypeSkipsDetection edits with an already-known
file type and no file: no classification is attempted.
*/
func TestOrchestrator_KnownFileTypeSkipsDetection(t *testing.T) {
	catalog := newFakeCatalog()
	catalog.languages = []intake.Reference{{ID: 1, Name: "English"}}
	catalog.fileTypes = []intake.Reference{{ID: 4, Name: "epub"}}
	orchestrator := newTestOrchestrator(t, catalog)

	submission := validSubmission()
	submission.File = nil
	submission.FileType = "epub"

	outcome, err := orchestrator.Submit(context.Background(), submission)
	require.NoError(t, err)

	draft := catalog.books[outcome.BookID]
	assert.Equal(t, 4, draft.FileTypeID)
}
