package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

// --- MOCK REPOSITORIES ---

type MockRocketRepo struct {
	mock.Mock
}

func (m *MockRocketRepo) List(ctx context.Context, sort string, desc bool) ([]models.Rocket, error) {
	args := m.Called(ctx, sort, desc)
	return args.Get(0).([]models.Rocket), args.Error(1)
}

func (m *MockRocketRepo) Find(ctx context.Context, f repository.RocketFilter) ([]models.Rocket, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Rocket), args.Error(1)
}

func (m *MockRocketRepo) GetByID(ctx context.Context, id int64) (*models.Rocket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rocket), args.Error(1)
}

func (m *MockRocketRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRocketRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRocketRepo) Create(ctx context.Context, r *models.Rocket) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRocketRepo) Update(ctx context.Context, r *models.Rocket) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRocketRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCosmodromeRepo struct {
	mock.Mock
}

func (m *MockCosmodromeRepo) List(ctx context.Context, sort string, desc bool) ([]models.Cosmodrome, error) {
	args := m.Called(ctx, sort, desc)
	return args.Get(0).([]models.Cosmodrome), args.Error(1)
}

func (m *MockCosmodromeRepo) Find(ctx context.Context, f repository.CosmodromeFilter) ([]models.Cosmodrome, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Cosmodrome), args.Error(1)
}

func (m *MockCosmodromeRepo) GetByID(ctx context.Context, id int64) (*models.Cosmodrome, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cosmodrome), args.Error(1)
}

func (m *MockCosmodromeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCosmodromeRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCosmodromeRepo) Create(ctx context.Context, c *models.Cosmodrome) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCosmodromeRepo) Update(ctx context.Context, c *models.Cosmodrome) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCosmodromeRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockLaunchRepo struct {
	mock.Mock
}

func (m *MockLaunchRepo) List(ctx context.Context, sort string, desc bool) ([]models.Launch, error) {
	args := m.Called(ctx, sort, desc)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchRepo) Find(ctx context.Context, f repository.LaunchFilter) ([]models.Launch, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchRepo) Recent(ctx context.Context, limit int) ([]models.Launch, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchRepo) ByRocket(ctx context.Context, rocketID int64, limit int) ([]models.Launch, error) {
	args := m.Called(ctx, rocketID, limit)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchRepo) ByCosmodrome(ctx context.Context, cosmodromeID int64, limit int) ([]models.Launch, error) {
	args := m.Called(ctx, cosmodromeID, limit)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchRepo) GetByID(ctx context.Context, id int64) (*models.Launch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Launch), args.Error(1)
}

func (m *MockLaunchRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLaunchRepo) CountByStatus(ctx context.Context) (map[models.LaunchStatus]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[models.LaunchStatus]int64), args.Error(1)
}

func (m *MockLaunchRepo) Create(ctx context.Context, l *models.Launch) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLaunchRepo) Update(ctx context.Context, l *models.Launch) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLaunchRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
