package intake

import (
	"errors"
	"fmt"

	"github.com/thirawat/librarium/internal/platform/apperr"
)

// The submission error taxonomy. The first three are fatal and abort the
// submission; AssociationError is collected as a warning because the book
// write has already succeeded when it can occur.

// FieldResolutionError reports a reference field that could not be matched
// or created. Fatal: no book mutation happens after one.
type FieldResolutionError struct {
	Field string
	Token string
	Cause error
}

func (e *FieldResolutionError) Error() string {
	return fmt.Sprintf("could not resolve %s value %q", e.Field, e.Token)
}

func (e *FieldResolutionError) Unwrap() error { return e.Cause }

// ClassificationError reports an upload whose file type could not be
// detected from either MIME type or extension. Fatal.
type ClassificationError struct {
	FileName string
	MimeType string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("could not classify file %q as pdf or epub", e.FileName)
}

// PersistError reports a rejected book create or update. Fatal: no
// association sync is attempted after one.
type PersistError struct {
	Cause error
}

func (e *PersistError) Error() string { return "book could not be saved: " + e.Cause.Error() }
func (e *PersistError) Unwrap() error { return e.Cause }

// AssociationError reports one failed link or unlink call. Non-fatal:
// surfaced as a warning while the successful calls remain applied.
type AssociationError struct {
	Op       string // "link" or "unlink"
	BookID   int
	AuthorID int
	Cause    error
}

func (e *AssociationError) Error() string {
	return fmt.Sprintf("could not %s author %d: %v", e.Op, e.AuthorID, e.Cause)
}

func (e *AssociationError) Unwrap() error { return e.Cause }

// MapError converts an engine error into the API error taxonomy.
//
// Errors already carrying an [apperr.AppError] in their chain keep it, so a
// catalog 409 on duplicate ISBN still surfaces as a conflict.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErr *FieldResolutionError
	if errors.As(err, &fieldErr) {
		if underlying := apperr.As(fieldErr.Cause); underlying != nil && underlying.HTTPStatus < 500 {
			return underlying
		}
		return apperr.ValidationError("Could not resolve reference fields", apperr.FieldError{
			Field:   fieldErr.Field,
			Message: fieldErr.Error(),
		})
	}

	var classErr *ClassificationError
	if errors.As(err, &classErr) {
		return apperr.Unprocessable("File type could not be detected; expected a PDF or EPUB file")
	}

	var persistErr *PersistError
	if errors.As(err, &persistErr) {
		if underlying := apperr.As(persistErr.Cause); underlying != nil {
			return underlying
		}
		return apperr.Internal(persistErr)
	}

	if apperr.IsAppError(err) {
		return err
	}
	return apperr.Internal(err)
}
