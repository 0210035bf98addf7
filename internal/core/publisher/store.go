package publisher

import "context"

type Repository interface {
	ListPublishers(context context.Context, f Filter) ([]*Publisher, error)
	GetPublisher(context context.Context, id int) (*Publisher, error)
	CreatePublisher(context context.Context, p *Publisher) error
	UpdatePublisher(context context.Context, p *Publisher) error
	DeletePublisher(context context.Context, id int) error
}
