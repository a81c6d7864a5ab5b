package service

import (
	"context"

	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

// DetailLaunchLimit caps the launches shown on a rocket or cosmodrome page.
const DetailLaunchLimit = 10

type RocketDetail struct {
	Rocket   models.Rocket
	Launches []models.Launch
}

type RocketService interface {
	List(ctx context.Context, sort string, desc bool) ([]models.Rocket, error)
	Find(ctx context.Context, f repository.RocketFilter) ([]models.Rocket, error)
	GetByID(ctx context.Context, id int64) (*models.Rocket, error)
	Detail(ctx context.Context, id int64) (*RocketDetail, error)
	Create(ctx context.Context, r *models.Rocket) error
	Update(ctx context.Context, id int64, r *models.Rocket) error
	Delete(ctx context.Context, id int64) error
}

type rocketService struct {
	repo       repository.RocketRepository
	launchRepo repository.LaunchRepository
}

func NewRocketService(repo repository.RocketRepository, launchRepo repository.LaunchRepository) RocketService {
	return &rocketService{repo: repo, launchRepo: launchRepo}
}

func (s *rocketService) List(ctx context.Context, sort string, desc bool) ([]models.Rocket, error) {
	return s.repo.List(ctx, sort, desc)
}

func (s *rocketService) Find(ctx context.Context, f repository.RocketFilter) ([]models.Rocket, error) {
	return s.repo.Find(ctx, f)
}

func (s *rocketService) GetByID(ctx context.Context, id int64) (*models.Rocket, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return r, nil
}

// Detail loads the rocket with its most recent launches.
func (s *rocketService) Detail(ctx context.Context, id int64) (*RocketDetail, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	launches, err := s.launchRepo.ByRocket(ctx, id, DetailLaunchLimit)
	if err != nil {
		return nil, err
	}
	return &RocketDetail{Rocket: *r, Launches: launches}, nil
}

func (s *rocketService) Create(ctx context.Context, r *models.Rocket) error {
	r.ID = 0
	return s.repo.Create(ctx, r)
}

func (s *rocketService) Update(ctx context.Context, id int64, r *models.Rocket) error {
	r.ID = id
	return mapNotFound(s.repo.Update(ctx, r))
}

// Delete removes the rocket together with all of its launches.
func (s *rocketService) Delete(ctx context.Context, id int64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}
