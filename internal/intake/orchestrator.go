/*
Package intake is the metadata resolution and association-synchronization
engine behind the admin book forms.

A submitted form carries loosely structured reference values: an author tag
list mixing numeric ids with freshly typed names, publisher and language
picked through the same tag control, and a file whose type must be inferred.
The engine resolves every value to a foreign key (creating reference rows on
demand, without duplicating ones it already knows), classifies the upload,
saves the book, and reconciles the book-author pivot with a minimal set of
link/unlink calls.

# Architecture

  - Token: classifies each raw value once, at the boundary.
  - Cache/Session: per-form-session snapshots of the reference collections.
  - ResolveOne/ResolveMany: match-or-create against a session cache.
  - DetectType: MIME-then-extension file classification.
  - Diff: set difference over the author association.
  - Orchestrator: sequences the phases and aggregates failures.

Matching is exact (case-insensitive, trimmed); there is no fuzzy matching.
Concurrent submissions of the same brand-new name from different sessions
can still create duplicate rows, a known limitation accepted here because
the store does not enforce name uniqueness.
*/
package intake

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/thirawat/librarium/internal/platform/apperr"
	"github.com/thirawat/librarium/internal/platform/validate"
	"github.com/thirawat/librarium/pkg/pointer"
)

// State names the phase a submission is in. Exposed for logging and for the
// admin UI's progress indicator.
type State string

const (
	StateIdle      State = "idle"
	StateResolving State = "resolving"
	StateDetecting State = "detecting"
	StateUpserting State = "upserting"
	StateSyncing   State = "syncing_associations"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission on the same orchestrator has not finished.
var ErrSubmissionInFlight = apperr.Conflict("A submission is already in progress")

// Submission is one book form as submitted: scalar fields plus the raw,
// still-unresolved reference field values.
type Submission struct {
	BookID        int // zero means create
	Title         string
	ISBN          string
	TotalPage     int
	Synopsis      string
	PublishedYear int
	CoverImage    string
	EbookFile     string

	Authors   []string
	Publisher []string
	Language  []string

	// FileType carries an already-known type name (unchanged on edit).
	// When empty, the type is detected from File.
	FileType string
	File     *FileInfo
}

// Outcome reports a finished submission. Warnings list association calls
// that failed after the book itself was saved.
type Outcome struct {
	BookID    int      `json:"book_id"`
	Created   bool     `json:"created"`
	AuthorIDs []int    `json:"author_ids"`
	Warnings  []string `json:"-"`
}

// Orchestrator drives one form session through the submission phases:
// resolve reference fields, detect the file type, save the book, then
// reconcile the author associations.
//
// The orchestrator is re-entrant per attempt: a retry after a failure
// reuses the session caches, so entities created during the failed attempt
// resolve instead of being created again.
type Orchestrator struct {
	catalog Catalog
	session *Session
	logger  *slog.Logger

	inFlight atomic.Bool
	state    atomic.Value // State
}

func NewOrchestrator(catalog Catalog, session *Session, logger *slog.Logger) *Orchestrator {
	orchestrator := &Orchestrator{
		catalog: catalog,
		session: session,
		logger:  logger,
	}
	orchestrator.state.Store(StateIdle)
	return orchestrator
}

// State returns the phase of the current (or last) submission.
func (orchestrator *Orchestrator) State() State {
	return orchestrator.state.Load().(State)
}

// Submit runs one submission attempt to completion.
//
// FieldResolutionError, ClassificationError and PersistError abort before
// or at the book write. Association failures never abort: they are
// collected into the outcome's warnings while the book stays saved.
func (orchestrator *Orchestrator) Submit(ctx context.Context, submission Submission) (*Outcome, error) {
	if !orchestrator.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer orchestrator.inFlight.Store(false)

	authorIDs, publisherID, languageID, err := orchestrator.resolveFields(ctx, submission)
	if err != nil {
		return nil, orchestrator.fail(err)
	}

	fileTypeID, err := orchestrator.detectFileType(ctx, submission)
	if err != nil {
		return nil, orchestrator.fail(err)
	}

	bookID, created, err := orchestrator.upsertBook(ctx, submission, publisherID, languageID, fileTypeID)
	if err != nil {
		return nil, orchestrator.fail(err)
	}

	warnings := orchestrator.syncAssociations(ctx, submission, bookID, authorIDs)

	orchestrator.setState(StateDone)
	return &Outcome{
		BookID:    bookID,
		Created:   created,
		AuthorIDs: authorIDs,
		Warnings:  warnings,
	}, nil
}

// resolveFields resolves the three reference fields concurrently. Each
// field owns its own cache, so the goroutines share nothing mutable.
func (orchestrator *Orchestrator) resolveFields(ctx context.Context, submission Submission) (authorIDs []int, publisherID *int, languageID int, err error) {
	orchestrator.setState(StateResolving)

	authorTokens := ParseTokens(submission.Authors)
	if len(authorTokens) == 0 {
		return nil, nil, 0, validate.RequiredError("authors", "At least one author is required")
	}

	publisherTokens := KeepLast(ParseTokens(submission.Publisher))
	languageTokens := KeepLast(ParseTokens(submission.Language))
	if len(languageTokens) == 0 {
		return nil, nil, 0, validate.RequiredError("language", "A language is required")
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		ids, resolveErr := ResolveMany(groupCtx, authorTokens, orchestrator.session.Authors, orchestrator.createAuthor)
		if resolveErr != nil {
			return fieldError("authors", authorTokens, resolveErr)
		}
		authorIDs = ids
		return nil
	})

	group.Go(func() error {
		if len(publisherTokens) == 0 {
			return nil
		}
		id, resolveErr := ResolveOne(groupCtx, publisherTokens[0], orchestrator.session.Publishers, orchestrator.createPublisher)
		if resolveErr != nil {
			return fieldError("publisher", publisherTokens, resolveErr)
		}
		publisherID = pointer.To(id)
		return nil
	})

	group.Go(func() error {
		id, resolveErr := ResolveOne(groupCtx, languageTokens[0], orchestrator.session.Languages, orchestrator.createLanguage)
		if resolveErr != nil {
			return fieldError("language", languageTokens, resolveErr)
		}
		languageID = id
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, nil, 0, err
	}
	return authorIDs, publisherID, languageID, nil
}

// detectFileType produces the resolved file type id, detecting the type
// from the upload when the form did not carry one.
func (orchestrator *Orchestrator) detectFileType(ctx context.Context, submission Submission) (int, error) {
	orchestrator.setState(StateDetecting)

	typeName := submission.FileType
	if typeName == "" {
		if submission.File == nil {
			return 0, &ClassificationError{}
		}
		typeName = orchestrator.session.DetectType(*submission.File)
		if typeName == "" {
			return 0, &ClassificationError{
				FileName: submission.File.Name,
				MimeType: submission.File.MimeType,
			}
		}
	}

	token, ok := ParseToken(typeName)
	if !ok {
		return 0, &ClassificationError{}
	}

	id, err := ResolveOne(ctx, token, orchestrator.session.FileTypes, orchestrator.createFileType)
	if err != nil {
		return 0, fieldError("file_type", []Token{token}, err)
	}
	return id, nil
}

func (orchestrator *Orchestrator) upsertBook(ctx context.Context, submission Submission, publisherID *int, languageID, fileTypeID int) (int, bool, error) {
	orchestrator.setState(StateUpserting)

	draft := Draft{
		Title:         submission.Title,
		ISBN:          submission.ISBN,
		TotalPage:     submission.TotalPage,
		Synopsis:      submission.Synopsis,
		PublishedYear: submission.PublishedYear,
		CoverImage:    submission.CoverImage,
		EbookFile:     submission.EbookFile,
		PublisherID:   publisherID,
		LanguageID:    languageID,
		FileTypeID:    fileTypeID,
	}

	if submission.BookID > 0 {
		bookID, err := orchestrator.catalog.UpdateBook(ctx, submission.BookID, draft)
		if err != nil {
			return 0, false, &PersistError{Cause: err}
		}
		return bookID, false, nil
	}

	bookID, err := orchestrator.catalog.CreateBook(ctx, draft)
	if err != nil {
		return 0, false, &PersistError{Cause: err}
	}
	return bookID, true, nil
}

// syncAssociations reconciles the book's author links with settle-all
// semantics: every link and unlink call runs regardless of the others'
// outcomes, and failures become warnings rather than errors.
func (orchestrator *Orchestrator) syncAssociations(ctx context.Context, submission Submission, bookID int, desired []int) []string {
	orchestrator.setState(StateSyncing)

	current := []int{}
	if submission.BookID > 0 {
		persisted, err := orchestrator.catalog.ListBookAuthors(ctx, bookID)
		if err != nil {
			orchestrator.logger.Warn("association_state_unavailable",
				slog.Int("book_id", bookID),
				slog.Any("error", err),
			)
			return []string{"could not load current author links; associations were not updated"}
		}
		current = persisted
	}

	result := Diff(current, desired)

	var (
		mutex    sync.Mutex
		warnings []string
		wait     sync.WaitGroup
	)
	record := func(assocErr *AssociationError) {
		orchestrator.logger.Warn("association_sync_failed",
			slog.String("op", assocErr.Op),
			slog.Int("book_id", assocErr.BookID),
			slog.Int("author_id", assocErr.AuthorID),
			slog.Any("error", assocErr.Cause),
		)
		mutex.Lock()
		warnings = append(warnings, assocErr.Error())
		mutex.Unlock()
	}

	for _, authorID := range result.ToAdd {
		wait.Add(1)
		go func(authorID int) {
			defer wait.Done()
			if err := orchestrator.catalog.LinkAuthor(ctx, bookID, authorID); err != nil {
				record(&AssociationError{Op: "link", BookID: bookID, AuthorID: authorID, Cause: err})
			}
		}(authorID)
	}
	for _, authorID := range result.ToRemove {
		wait.Add(1)
		go func(authorID int) {
			defer wait.Done()
			if err := orchestrator.catalog.UnlinkAuthor(ctx, bookID, authorID); err != nil {
				record(&AssociationError{Op: "unlink", BookID: bookID, AuthorID: authorID, Cause: err})
			}
		}(authorID)
	}
	wait.Wait()

	return warnings
}

func (orchestrator *Orchestrator) fail(err error) error {
	orchestrator.setState(StateFailed)
	return err
}

func (orchestrator *Orchestrator) setState(state State) {
	orchestrator.state.Store(state)
	orchestrator.logger.Debug("submission_state", slog.String("state", string(state)))
}

func (orchestrator *Orchestrator) createAuthor(ctx context.Context, name string) (Reference, error) {
	return orchestrator.catalog.CreateAuthor(ctx, name)
}

func (orchestrator *Orchestrator) createPublisher(ctx context.Context, name string) (Reference, error) {
	return orchestrator.catalog.CreatePublisher(ctx, name)
}

func (orchestrator *Orchestrator) createLanguage(ctx context.Context, name string) (Reference, error) {
	return orchestrator.catalog.CreateLanguage(ctx, name)
}

func (orchestrator *Orchestrator) createFileType(ctx context.Context, name string) (Reference, error) {
	return orchestrator.catalog.CreateFileType(ctx, name)
}

// fieldError names the failed field and a representative token for the
// user-facing message.
func fieldError(field string, tokens []Token, cause error) error {
	token := ""
	if len(tokens) > 0 {
		if tokens[0].Kind == TokenID {
			token = strconv.Itoa(tokens[0].ID)
		} else {
			token = tokens[0].Name
		}
	}
	return &FieldResolutionError{Field: field, Token: token, Cause: cause}
}
