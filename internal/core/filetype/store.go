package filetype

import "context"

type Repository interface {
	ListFileTypes(context context.Context) ([]*FileType, error)
	GetFileType(context context.Context, id int) (*FileType, error)
	CreateFileType(context context.Context, t *FileType) error
	UpdateFileType(context context.Context, t *FileType) error
	DeleteFileType(context context.Context, id int) error
}
