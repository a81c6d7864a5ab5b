package repository

import (
	"context"
	"fmt"

	"rockethub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RocketFilter narrows Find. Zero values mean "no constraint".
type RocketFilter struct {
	Query      string
	RocketType string
	Status     string
	Country    string
}

type RocketRepository interface {
	List(ctx context.Context, sort string, desc bool) ([]models.Rocket, error)
	Find(ctx context.Context, f RocketFilter) ([]models.Rocket, error)
	GetByID(ctx context.Context, id int64) (*models.Rocket, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, r *models.Rocket) error
	Update(ctx context.Context, r *models.Rocket) error
	Delete(ctx context.Context, id int64) error
}

var rocketSortColumns = map[string]clause.Column{
	"name":         {Table: "rockets", Name: "name"},
	"manufacturer": {Table: "rockets", Name: "manufacturer"},
	"country":      {Table: "rockets", Name: "country"},
	"rocket_type":  {Table: "rockets", Name: "rocket_type"},
	"status":       {Table: "rockets", Name: "status"},
}

var rocketSearchColumns = []string{"name", "manufacturer", "country", "description"}

type rocketRepository struct {
	db *gorm.DB
}

func NewRocketRepository(db *gorm.DB) RocketRepository {
	return &rocketRepository{db: db}
}

func (r *rocketRepository) List(ctx context.Context, sort string, desc bool) ([]models.Rocket, error) {
	q, err := orderBy(r.db.WithContext(ctx), rocketSortColumns, "rockets", sort, desc)
	if err != nil {
		return nil, err
	}
	var list []models.Rocket
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list rockets: %w", err)
	}
	return list, nil
}

// Find returns rockets matching every set field of f, ordered by name.
func (r *rocketRepository) Find(ctx context.Context, f RocketFilter) ([]models.Rocket, error) {
	db := r.db.WithContext(ctx)
	if f.Query != "" {
		where, args := anyILike(rocketSearchColumns, containsPattern(f.Query))
		db = db.Where(where, args...)
	}
	if f.RocketType != "" {
		db = db.Where("rocket_type = ?", f.RocketType)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}

	var list []models.Rocket
	if err := db.Order("name").Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find rockets: %w", err)
	}
	return list, nil
}

func (r *rocketRepository) GetByID(ctx context.Context, id int64) (*models.Rocket, error) {
	var m models.Rocket
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *rocketRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Rocket{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check rocket: %w", err)
	}
	return n > 0, nil
}

func (r *rocketRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Rocket{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count rockets: %w", err)
	}
	return n, nil
}

func (r *rocketRepository) Create(ctx context.Context, m *models.Rocket) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create rocket: %w", err)
	}
	return nil
}

// Update writes every column of m. A vanished row yields gorm.ErrRecordNotFound.
func (r *rocketRepository) Update(ctx context.Context, m *models.Rocket) error {
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit("id").Updates(m)
	if res.Error != nil {
		return fmt.Errorf("update rocket: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the rocket; the launches FK cascades.
func (r *rocketRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Rocket{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete rocket: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
