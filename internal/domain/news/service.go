package news

import "context"

type NewsService interface {
	Create(ctx context.Context, req CreateNewsRequest) (NewsResponse, error)
	Get(ctx context.Context, id string) (NewsResponse, error)
	List(ctx context.Context) ([]NewsResponse, error)
	Update(ctx context.Context, req UpdateNewsRequest) (NewsResponse, error)
	Delete(ctx context.Context, id string) error
}
