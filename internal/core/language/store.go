package language

import "context"

type Repository interface {
	ListLanguages(context context.Context) ([]*Language, error)
	GetLanguage(context context.Context, id int) (*Language, error)
	CreateLanguage(context context.Context, l *Language) error
	UpdateLanguage(context context.Context, l *Language) error
	DeleteLanguage(context context.Context, id int) error
}
