package filetype

import (
	"context"
	"log/slog"
	"strings"

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

func (service *Service) ListFileTypes(context context.Context) ([]*FileType, error) {
	if service.cache != nil {
		var cached []*FileType
		if service.cache.GetList(context, Collection, &cached) {
			return cached, nil
		}
	}

	types, err := service.repo.ListFileTypes(context)
	if err != nil {
		return nil, err
	}

	if service.cache != nil {
		service.cache.SetList(context, Collection, types)
	}

	return types, nil
}

func (service *Service) GetFileType(context context.Context, id int) (*FileType, error) {
	return service.repo.GetFileType(context, id)
}

func (service *Service) CreateFileType(context context.Context, fileType *FileType) error {
	// Type names are a controlled vocabulary; store them lowercased.
	fileType.Name = strings.ToLower(strings.TrimSpace(fileType.Name))

	validator := &validate.Validator{}
	validator.Required(FieldName, fileType.Name).MaxLen(FieldName, fileType.Name, 20)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.CreateFileType(context, fileType); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("filetype_created", slog.String("name", fileType.Name))
	return nil
}

func (service *Service) UpdateFileType(context context.Context, id int, fileType *FileType) error {
	fileType.ID = id
	fileType.Name = strings.ToLower(strings.TrimSpace(fileType.Name))

	validator := &validate.Validator{}
	validator.Required(FieldName, fileType.Name).MaxLen(FieldName, fileType.Name, 20)

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.UpdateFileType(context, fileType); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Info("filetype_updated", slog.Int("file_type_id", fileType.ID))
	return nil
}

func (service *Service) DeleteFileType(context context.Context, id int) error {
	if err := service.repo.DeleteFileType(context, id); err != nil {
		return err
	}

	if service.cache != nil {
		service.cache.Invalidate(context, Collection)
	}

	service.logger.Warn("filetype_deleted", slog.Int("file_type_id", id))
	return nil
}
