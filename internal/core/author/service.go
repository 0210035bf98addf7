package author

import (
	"context"
	"log/slog"

	"github.com/thirawat/librarium/internal/platform/refcache"
	"github.com/thirawat/librarium/internal/platform/validate"
)

type Service struct {
	repo   Repository
	cache  *refcache.Cache
	logger *slog.Logger
}

func NewService(repo Repository, cache *refcache.Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// ListAuthors returns the full author collection, serving unfiltered reads
// from the reference cache when possible.
func (service *Service) ListAuthors(context context.Context, filter Filter) ([]*Author, error) {
	if filter.Query == "" && service.cache != nil {
		var cached []*Author
		if service.cache.GetList(context, Collection, &cached) {
			return cached, nil
		}
	}

	authors, err := service.repo.ListAuthors(context, filter)
	if err != nil {
		return nil, err
	}

	if filter.Query == "" && service.cache != nil {
		service.cache.SetList(context, Collection, authors)
	}

	return authors, nil
}

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("author_created", slog.String("name", author.Name))
	return nil
}

func (service *Service) UpdateAuthor(context context.Context, id int, author *Author) error {
	author.ID = id
	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("author_updated", slog.Int("author_id", author.ID))
	return nil
}

func (service *Service) DeleteAuthor(context context.Context, id int) error {
	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))
	return nil
}
