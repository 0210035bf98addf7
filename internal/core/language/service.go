package language

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

func (service *Service) ListLanguages(context context.Context) ([]*Language, error) {
	if service.cache != nil {
		var cached []*Language
		if service.cache.GetList(context, Collection, &cached) {
			return cached, nil
		}
	}

	languages, err := service.repo.ListLanguages(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.SetList(context, Collection, languages)
	}

	return languages, nil
}

func (service *Service) GetLanguage(context context.Context, id int) (*Language, error) {
	return service.repo.GetLanguage(context, id)
}

func (service *Service) CreateLanguage(context context.Context, lang *Language) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, lang.Name).MaxLen(FieldName, lang.Name, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateLanguage(context, lang); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("language_created", slog.String("name", lang.Name))
	return nil
}

func (service *Service) UpdateLanguage(context context.Context, id int, lang *Language) error {
	lang.ID = id
	validator := &validate.Validator{}
	validator.Required(FieldName, lang.Name).MaxLen(FieldName, lang.Name, 100)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateLanguage(context, lang); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("language_updated", slog.Int("language_id", lang.ID))
	return nil
}

func (service *Service) DeleteLanguage(context context.Context, id int) error {
	if err := service.repo.DeleteLanguage(context, id); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Warn("language_deleted", slog.Int("language_id", id))
	return nil
}
