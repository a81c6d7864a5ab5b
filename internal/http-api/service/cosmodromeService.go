package service

import (
	"context"

	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

type CosmodromeDetail struct {
	Cosmodrome models.Cosmodrome
	Launches   []models.Launch
}

type CosmodromeService interface {
	List(ctx context.Context, sort string, desc bool) ([]models.Cosmodrome, error)
	Find(ctx context.Context, f repository.CosmodromeFilter) ([]models.Cosmodrome, error)
	GetByID(ctx context.Context, id int64) (*models.Cosmodrome, error)
	Detail(ctx context.Context, id int64) (*CosmodromeDetail, error)
	Create(ctx context.Context, c *models.Cosmodrome) error
	Update(ctx context.Context, id int64, c *models.Cosmodrome) error
	Delete(ctx context.Context, id int64) error
}

type cosmodromeService struct {
	repo       repository.CosmodromeRepository
	launchRepo repository.LaunchRepository
}

func NewCosmodromeService(repo repository.CosmodromeRepository, launchRepo repository.LaunchRepository) CosmodromeService {
	return &cosmodromeService{repo: repo, launchRepo: launchRepo}
}

func (s *cosmodromeService) List(ctx context.Context, sort string, desc bool) ([]models.Cosmodrome, error) {
	return s.repo.List(ctx, sort, desc)
}

func (s *cosmodromeService) Find(ctx context.Context, f repository.CosmodromeFilter) ([]models.Cosmodrome, error) {
	return s.repo.Find(ctx, f)
}

func (s *cosmodromeService) GetByID(ctx context.Context, id int64) (*models.Cosmodrome, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return c, nil
}

func (s *cosmodromeService) Detail(ctx context.Context, id int64) (*CosmodromeDetail, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	launches, err := s.launchRepo.ByCosmodrome(ctx, id, DetailLaunchLimit)
	if err != nil {
		return nil, err
	}
	return &CosmodromeDetail{Cosmodrome: *c, Launches: launches}, nil
}

func (s *cosmodromeService) Create(ctx context.Context, c *models.Cosmodrome) error {
	c.ID = 0
	return s.repo.Create(ctx, c)
}

func (s *cosmodromeService) Update(ctx context.Context, id int64, c *models.Cosmodrome) error {
	c.ID = id
	return mapNotFound(s.repo.Update(ctx, c))
}

func (s *cosmodromeService) Delete(ctx context.Context, id int64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}
