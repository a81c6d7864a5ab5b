package repository

import (
	"context"
	"fmt"

	"rockethub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LaunchFilter narrows Find. Year and Month drill down on launch_date (UTC).
type LaunchFilter struct {
	Query        string
	Status       string
	RocketID     int64
	CosmodromeID int64
	Year         int
	Month        int
}

type LaunchRepository interface {
	List(ctx context.Context, sort string, desc bool) ([]models.Launch, error)
	Find(ctx context.Context, f LaunchFilter) ([]models.Launch, error)
	Recent(ctx context.Context, limit int) ([]models.Launch, error)
	ByRocket(ctx context.Context, rocketID int64, limit int) ([]models.Launch, error)
	ByCosmodrome(ctx context.Context, cosmodromeID int64, limit int) ([]models.Launch, error)
	GetByID(ctx context.Context, id int64) (*models.Launch, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[models.LaunchStatus]int64, error)
	Create(ctx context.Context, l *models.Launch) error
	Update(ctx context.Context, l *models.Launch) error
	Delete(ctx context.Context, id int64) error
}

// "Rocket" and "Cosmodrome" are the aliases gorm gives joined belongs-to tables.
var launchSortColumns = map[string]clause.Column{
	"mission_name":     {Table: "launches", Name: "mission_name"},
	"rocket__name":     {Table: "Rocket", Name: "name"},
	"cosmodrome__name": {Table: "Cosmodrome", Name: "name"},
	"launch_date":      {Table: "launches", Name: "launch_date"},
	"status":           {Table: "launches", Name: "status"},
}

var launchSearchColumns = []string{
	"launches.mission_name",
	"launches.payload",
	"launches.description",
	`"Rocket".name`,
	`"Cosmodrome".name`,
}

var launchDefaultOrder = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Table: "launches", Name: "launch_date"}, Desc: true},
	{Column: clause.Column{Table: "launches", Name: "id"}, Desc: true},
}}

type launchRepository struct {
	db *gorm.DB
}

func NewLaunchRepository(db *gorm.DB) LaunchRepository {
	return &launchRepository{db: db}
}

// withParents joins rocket and cosmodrome so list views can show their names.
func (r *launchRepository) withParents(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Joins("Rocket").Joins("Cosmodrome")
}

func (r *launchRepository) List(ctx context.Context, sort string, desc bool) ([]models.Launch, error) {
	q, err := orderBy(r.withParents(ctx), launchSortColumns, "launches", sort, desc)
	if err != nil {
		return nil, err
	}
	var list []models.Launch
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list launches: %w", err)
	}
	return list, nil
}

func (r *launchRepository) Find(ctx context.Context, f LaunchFilter) ([]models.Launch, error) {
	db := r.withParents(ctx)
	if f.Query != "" {
		where, args := anyILike(launchSearchColumns, containsPattern(f.Query))
		db = db.Where(where, args...)
	}
	if f.Status != "" {
		db = db.Where("launches.status = ?", f.Status)
	}
	if f.RocketID != 0 {
		db = db.Where("launches.rocket_id = ?", f.RocketID)
	}
	if f.CosmodromeID != 0 {
		db = db.Where("launches.cosmodrome_id = ?", f.CosmodromeID)
	}
	if f.Year != 0 {
		db = db.Where("EXTRACT(YEAR FROM launches.launch_date AT TIME ZONE 'UTC') = ?", f.Year)
	}
	if f.Month != 0 {
		db = db.Where("EXTRACT(MONTH FROM launches.launch_date AT TIME ZONE 'UTC') = ?", f.Month)
	}

	var list []models.Launch
	if err := db.Order(launchDefaultOrder).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find launches: %w", err)
	}
	return list, nil
}

func (r *launchRepository) Recent(ctx context.Context, limit int) ([]models.Launch, error) {
	var list []models.Launch
	if err := r.withParents(ctx).Order(launchDefaultOrder).Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recent launches: %w", err)
	}
	return list, nil
}

func (r *launchRepository) ByRocket(ctx context.Context, rocketID int64, limit int) ([]models.Launch, error) {
	var list []models.Launch
	err := r.withParents(ctx).
		Where("launches.rocket_id = ?", rocketID).
		Order(launchDefaultOrder).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("launches by rocket: %w", err)
	}
	return list, nil
}

func (r *launchRepository) ByCosmodrome(ctx context.Context, cosmodromeID int64, limit int) ([]models.Launch, error) {
	var list []models.Launch
	err := r.withParents(ctx).
		Where("launches.cosmodrome_id = ?", cosmodromeID).
		Order(launchDefaultOrder).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("launches by cosmodrome: %w", err)
	}
	return list, nil
}

func (r *launchRepository) GetByID(ctx context.Context, id int64) (*models.Launch, error) {
	var m models.Launch
	if err := r.withParents(ctx).First(&m, "launches.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *launchRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Launch{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count launches: %w", err)
	}
	return n, nil
}

func (r *launchRepository) CountByStatus(ctx context.Context) (map[models.LaunchStatus]int64, error) {
	var rows []struct {
		Status models.LaunchStatus
		Total  int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Launch{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count launches by status: %w", err)
	}

	counts := make(map[models.LaunchStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

// Create inserts l without touching the referenced rocket/cosmodrome rows.
func (r *launchRepository) Create(ctx context.Context, l *models.Launch) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(l).Error; err != nil {
		return fmt.Errorf("create launch: %w", err)
	}
	return nil
}

// Update never writes created_at (the field is create-only).
func (r *launchRepository) Update(ctx context.Context, l *models.Launch) error {
	res := r.db.WithContext(ctx).Model(l).Select("*").Omit("id", "created_at", clause.Associations).Updates(l)
	if res.Error != nil {
		return fmt.Errorf("update launch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *launchRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Launch{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete launch: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
