package dto

import (
	"strings"
	"time"

	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

// Admin API query strings. Bound with ShouldBindQuery; bad values are a 400.

type AdminRocketQuery struct {
	Q          string `form:"q"`
	RocketType string `form:"rocket_type" binding:"omitempty,oneof=orbital suborbital heavy super_heavy"`
	Status     string `form:"status" binding:"omitempty,oneof=active retired development"`
	Country    string `form:"country"`
}

func (q AdminRocketQuery) Filter() repository.RocketFilter {
	return repository.RocketFilter{
		Query:      strings.TrimSpace(q.Q),
		RocketType: q.RocketType,
		Status:     q.Status,
		Country:    strings.TrimSpace(q.Country),
	}
}

type AdminCosmodromeQuery struct {
	Q        string `form:"q"`
	Country  string `form:"country"`
	IsActive *bool  `form:"is_active"`
}

func (q AdminCosmodromeQuery) Filter() repository.CosmodromeFilter {
	return repository.CosmodromeFilter{
		Query:    strings.TrimSpace(q.Q),
		Country:  strings.TrimSpace(q.Country),
		IsActive: q.IsActive,
	}
}

type AdminLaunchQuery struct {
	Q           string `form:"q"`
	Status      string `form:"status" binding:"omitempty,oneof=success failure partial planned"`
	Rocket      int64  `form:"rocket" binding:"omitempty,min=1"`
	Cosmodrome  int64  `form:"cosmodrome" binding:"omitempty,min=1"`
	LaunchYear  int    `form:"launch_year" binding:"omitempty,min=1,max=9999"`
	LaunchMonth int    `form:"launch_month" binding:"omitempty,min=1,max=12"`
}

func (q AdminLaunchQuery) Filter() repository.LaunchFilter {
	return repository.LaunchFilter{
		Query:        strings.TrimSpace(q.Q),
		Status:       q.Status,
		RocketID:     q.Rocket,
		CosmodromeID: q.Cosmodrome,
		Year:         q.LaunchYear,
		Month:        q.LaunchMonth,
	}
}

// LaunchResponse is a launch with the names of its rocket and cosmodrome
// instead of the nested records.
type LaunchResponse struct {
	ID             int64               `json:"id"`
	MissionName    string              `json:"mission_name"`
	RocketID       int64               `json:"rocket_id"`
	RocketName     string              `json:"rocket_name"`
	CosmodromeID   int64               `json:"cosmodrome_id"`
	CosmodromeName string              `json:"cosmodrome_name"`
	LaunchDate     time.Time           `json:"launch_date"`
	Status         models.LaunchStatus `json:"status"`
	Payload        string              `json:"payload"`
	Orbit          string              `json:"orbit"`
	Description    string              `json:"description"`
	CreatedAt      time.Time           `json:"created_at"`
}

func FromModelToLaunchResponse(l models.Launch) LaunchResponse {
	return LaunchResponse{
		ID:             l.ID,
		MissionName:    l.MissionName,
		RocketID:       l.RocketID,
		RocketName:     l.Rocket.Name,
		CosmodromeID:   l.CosmodromeID,
		CosmodromeName: l.Cosmodrome.Name,
		LaunchDate:     l.LaunchDate,
		Status:         l.Status,
		Payload:        l.Payload,
		Orbit:          l.Orbit,
		Description:    l.Description,
		CreatedAt:      l.CreatedAt,
	}
}
