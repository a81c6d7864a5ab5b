package repository

import (
	"context"
	"fmt"

	"rockethub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CosmodromeFilter struct {
	Query    string
	Country  string
	IsActive *bool
}

type CosmodromeRepository interface {
	List(ctx context.Context, sort string, desc bool) ([]models.Cosmodrome, error)
	Find(ctx context.Context, f CosmodromeFilter) ([]models.Cosmodrome, error)
	GetByID(ctx context.Context, id int64) (*models.Cosmodrome, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, c *models.Cosmodrome) error
	Update(ctx context.Context, c *models.Cosmodrome) error
	Delete(ctx context.Context, id int64) error
}

var cosmodromeSortColumns = map[string]clause.Column{
	"name":         {Table: "cosmodromes", Name: "name"},
	"country":      {Table: "cosmodromes", Name: "country"},
	"location":     {Table: "cosmodromes", Name: "location"},
	"founded_year": {Table: "cosmodromes", Name: "founded_year"},
	"is_active":    {Table: "cosmodromes", Name: "is_active"},
}

var cosmodromeSearchColumns = []string{"name", "country", "location", "description"}

type cosmodromeRepository struct {
	db *gorm.DB
}

func NewCosmodromeRepository(db *gorm.DB) CosmodromeRepository {
	return &cosmodromeRepository{db: db}
}

func (r *cosmodromeRepository) List(ctx context.Context, sort string, desc bool) ([]models.Cosmodrome, error) {
	q, err := orderBy(r.db.WithContext(ctx), cosmodromeSortColumns, "cosmodromes", sort, desc)
	if err != nil {
		return nil, err
	}
	var list []models.Cosmodrome
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list cosmodromes: %w", err)
	}
	return list, nil
}

func (r *cosmodromeRepository) Find(ctx context.Context, f CosmodromeFilter) ([]models.Cosmodrome, error) {
	db := r.db.WithContext(ctx)
	if f.Query != "" {
		where, args := anyILike(cosmodromeSearchColumns, containsPattern(f.Query))
		db = db.Where(where, args...)
	}
	if f.Country != "" {
		db = db.Where("country = ?", f.Country)
	}
	if f.IsActive != nil {
		db = db.Where("is_active = ?", *f.IsActive)
	}

	var list []models.Cosmodrome
	if err := db.Order("name").Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find cosmodromes: %w", err)
	}
	return list, nil
}

func (r *cosmodromeRepository) GetByID(ctx context.Context, id int64) (*models.Cosmodrome, error) {
	var m models.Cosmodrome
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *cosmodromeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Cosmodrome{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check cosmodrome: %w", err)
	}
	return n > 0, nil
}

func (r *cosmodromeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Cosmodrome{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count cosmodromes: %w", err)
	}
	return n, nil
}

func (r *cosmodromeRepository) Create(ctx context.Context, m *models.Cosmodrome) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create cosmodrome: %w", err)
	}
	return nil
}

func (r *cosmodromeRepository) Update(ctx context.Context, m *models.Cosmodrome) error {
	res := r.db.WithContext(ctx).Model(m).Select("*").Omit("id").Updates(m)
	if res.Error != nil {
		return fmt.Errorf("update cosmodrome: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cosmodromeRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Cosmodrome{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete cosmodrome: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
