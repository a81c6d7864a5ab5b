package service

import (
	"context"

	"rockethub/internal/http-api/dto"
	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

// LaunchChoices feeds the rocket and cosmodrome selects on the launch form.
type LaunchChoices struct {
	Rockets     []models.Rocket
	Cosmodromes []models.Cosmodrome
}

type LaunchService interface {
	List(ctx context.Context, sort string, desc bool) ([]models.Launch, error)
	Find(ctx context.Context, f repository.LaunchFilter) ([]models.Launch, error)
	GetByID(ctx context.Context, id int64) (*models.Launch, error)
	Choices(ctx context.Context) (*LaunchChoices, error)
	Create(ctx context.Context, l *models.Launch) error
	Update(ctx context.Context, id int64, l *models.Launch) error
	Delete(ctx context.Context, id int64) error
}

type launchService struct {
	repo           repository.LaunchRepository
	rocketRepo     repository.RocketRepository
	cosmodromeRepo repository.CosmodromeRepository
}

func NewLaunchService(repo repository.LaunchRepository, rocketRepo repository.RocketRepository, cosmodromeRepo repository.CosmodromeRepository) LaunchService {
	return &launchService{repo: repo, rocketRepo: rocketRepo, cosmodromeRepo: cosmodromeRepo}
}

func (s *launchService) List(ctx context.Context, sort string, desc bool) ([]models.Launch, error) {
	return s.repo.List(ctx, sort, desc)
}

func (s *launchService) Find(ctx context.Context, f repository.LaunchFilter) ([]models.Launch, error) {
	return s.repo.Find(ctx, f)
}

func (s *launchService) GetByID(ctx context.Context, id int64) (*models.Launch, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return l, nil
}

func (s *launchService) Choices(ctx context.Context) (*LaunchChoices, error) {
	rockets, err := s.rocketRepo.List(ctx, "name", false)
	if err != nil {
		return nil, err
	}
	cosmodromes, err := s.cosmodromeRepo.List(ctx, "name", false)
	if err != nil {
		return nil, err
	}
	return &LaunchChoices{Rockets: rockets, Cosmodromes: cosmodromes}, nil
}

func (s *launchService) Create(ctx context.Context, l *models.Launch) error {
	if err := s.checkReferences(ctx, l); err != nil {
		return err
	}
	l.ID = 0
	return translateWriteError(s.repo.Create(ctx, l))
}

func (s *launchService) Update(ctx context.Context, id int64, l *models.Launch) error {
	if err := s.checkReferences(ctx, l); err != nil {
		return err
	}
	l.ID = id
	return translateWriteError(s.repo.Update(ctx, l))
}

func (s *launchService) Delete(ctx context.Context, id int64) error {
	return mapNotFound(s.repo.Delete(ctx, id))
}

// checkReferences rejects a launch pointing at a missing rocket or cosmodrome.
func (s *launchService) checkReferences(ctx context.Context, l *models.Launch) error {
	fields := dto.FieldErrors{}
	ok, err := s.rocketRepo.Exists(ctx, l.RocketID)
	if err != nil {
		return err
	}
	if !ok {
		fields.Add("rocket", dto.MsgInvalidChoice)
	}
	ok, err = s.cosmodromeRepo.Exists(ctx, l.CosmodromeID)
	if err != nil {
		return err
	}
	if !ok {
		fields.Add("cosmodrome", dto.MsgInvalidChoice)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if field, ok := foreignKeyField(err); ok {
		return newValidationError(field, dto.MsgInvalidChoice)
	}
	return mapNotFound(err)
}
