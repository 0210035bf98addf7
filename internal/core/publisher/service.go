package publisher

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

func (service *Service) ListPublishers(context context.Context, filter Filter) ([]*Publisher, error) {
	if filter.Query == "" && service.cache != nil {
		var cached []*Publisher
		if service.cache.GetList(context, Collection, &cached) {
			return cached, nil
		}
	}

	publishers, err := service.repo.ListPublishers(context, filter)
	if err != nil {
		return nil, err
	}

	if filter.Query == "" && service.cache != nil {
		service.cache.SetList(context, Collection, publishers)
	}

	return publishers, nil
}

func (service *Service) GetPublisher(context context.Context, id int) (*Publisher, error) {
	return service.repo.GetPublisher(context, id)
}

func (service *Service) CreatePublisher(context context.Context, publisher *Publisher) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, publisher.Name).MaxLen(FieldName, publisher.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreatePublisher(context, publisher); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("publisher_created", slog.String("name", publisher.Name))
	return nil
}

func (service *Service) UpdatePublisher(context context.Context, id int, publisher *Publisher) error {
	publisher.ID = id
	validator := &validate.Validator{}
	validator.Required(FieldName, publisher.Name).MaxLen(FieldName, publisher.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdatePublisher(context, publisher); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("publisher_updated", slog.Int("publisher_id", publisher.ID))
	return nil
}

func (service *Service) DeletePublisher(context context.Context, id int) error {
	if err := service.repo.DeletePublisher(context, id); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Warn("publisher_deleted", slog.Int("publisher_id", id))
	return nil
}
