package news

import (
	"context"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/news"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/google/uuid"
)

type NewsServiceImpl struct {
	news.NewsRepository
}

func NewNewsService(newsRepo news.NewsRepository) news.NewsService {
	return &NewsServiceImpl{NewsRepository: newsRepo}
}

// Create implements news.NewsService.
func (s *NewsServiceImpl) Create(ctx context.Context, req news.CreateNewsRequest) (news.NewsResponse, error) {
	if err := req.Validate(); err != nil {
		return news.NewsResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return news.NewsResponse{}, ability.ErrNotAMember
	}

	item, err := s.NewsRepository.Create(ctx, news.News{
		ID:               uuid.NewString(),
		OrganizationID:   actor.OrganizationID,
		AuthorEmployeeID: actor.ID,
		Title:            req.Title,
		Body:             req.Body,
	})
	if err != nil {
		return news.NewsResponse{}, err
	}
	return toNewsResponse(item), nil
}

// Get implements news.NewsService.
func (s *NewsServiceImpl) Get(ctx context.Context, id string) (news.NewsResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return news.NewsResponse{}, ability.ErrNotAMember
	}

	item, err := s.NewsRepository.GetByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return news.NewsResponse{}, err
	}
	return toNewsResponse(item), nil
}

// List implements news.NewsService.
func (s *NewsServiceImpl) List(ctx context.Context) ([]news.NewsResponse, error) {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return nil, ability.ErrNotAMember
	}

	items, err := s.NewsRepository.ListByOrganization(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]news.NewsResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toNewsResponse(item))
	}
	return responses, nil
}

// Update implements news.NewsService. Authors edit their own posts;
// an unconditional update grant covers any post.
func (s *NewsServiceImpl) Update(ctx context.Context, req news.UpdateNewsRequest) (news.NewsResponse, error) {
	if err := req.Validate(); err != nil {
		return news.NewsResponse{}, err
	}

	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return news.NewsResponse{}, ability.ErrNotAMember
	}

	item, err := s.NewsRepository.GetByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return news.NewsResponse{}, err
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityUpdate, ability.SubjectNews) && item.AuthorEmployeeID != actor.ID {
		return news.NewsResponse{}, ability.ErrForbidden
	}

	if err := s.NewsRepository.Update(ctx, actor.OrganizationID, req); err != nil {
		return news.NewsResponse{}, err
	}

	updated, err := s.NewsRepository.GetByID(ctx, req.ID, actor.OrganizationID)
	if err != nil {
		return news.NewsResponse{}, err
	}
	return toNewsResponse(updated), nil
}

// Delete implements news.NewsService.
func (s *NewsServiceImpl) Delete(ctx context.Context, id string) error {
	actor, ok := requestctx.Employee(ctx)
	if !ok {
		return ability.ErrNotAMember
	}

	item, err := s.NewsRepository.GetByID(ctx, id, actor.OrganizationID)
	if err != nil {
		return err
	}

	ab := requestctx.Ability(ctx)
	if !ab.Can(ability.CapabilityDelete, ability.SubjectNews) && item.AuthorEmployeeID != actor.ID {
		return ability.ErrForbidden
	}
	return s.NewsRepository.Delete(ctx, id, actor.OrganizationID)
}

func toNewsResponse(item news.News) news.NewsResponse {
	return news.NewsResponse{
		ID:         item.ID,
		Title:      item.Title,
		Body:       item.Body,
		AuthorID:   item.AuthorEmployeeID,
		AuthorName: item.AuthorName,
		CreatedAt:  item.CreatedAt.Format(time.RFC3339),
	}
}
