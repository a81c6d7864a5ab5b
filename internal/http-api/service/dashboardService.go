package service

import (
	"context"

	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

// RecentLaunchLimit is how many launches the home page lists.
const RecentLaunchLimit = 5

type StatusCount struct {
	Status models.LaunchStatus
	Label  string
	Count  int64
}

type Dashboard struct {
	TotalRockets     int64
	TotalCosmodromes int64
	TotalLaunches    int64

	// one entry per launch status, in declaration order, zeros included
	StatusCounts   []StatusCount
	RecentLaunches []models.Launch
}

// Count returns the number of launches with status st.
func (d *Dashboard) Count(st models.LaunchStatus) int64 {
	for _, sc := range d.StatusCounts {
		if sc.Status == st {
			return sc.Count
		}
	}
	return 0
}

type DashboardService interface {
	Stats(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	rocketRepo     repository.RocketRepository
	cosmodromeRepo repository.CosmodromeRepository
	launchRepo     repository.LaunchRepository
}

func NewDashboardService(rocketRepo repository.RocketRepository, cosmodromeRepo repository.CosmodromeRepository, launchRepo repository.LaunchRepository) DashboardService {
	return &dashboardService{rocketRepo: rocketRepo, cosmodromeRepo: cosmodromeRepo, launchRepo: launchRepo}
}

func (s *dashboardService) Stats(ctx context.Context) (*Dashboard, error) {
	var (
		d   Dashboard
		err error
	)
	if d.TotalRockets, err = s.rocketRepo.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalCosmodromes, err = s.cosmodromeRepo.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalLaunches, err = s.launchRepo.Count(ctx); err != nil {
		return nil, err
	}

	byStatus, err := s.launchRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	d.StatusCounts = make([]StatusCount, 0, len(models.LaunchStatuses))
	for _, ch := range models.LaunchStatuses {
		st := models.LaunchStatus(ch.Value)
		d.StatusCounts = append(d.StatusCounts, StatusCount{Status: st, Label: ch.Label, Count: byStatus[st]})
	}

	if d.RecentLaunches, err = s.launchRepo.Recent(ctx, RecentLaunchLimit); err != nil {
		return nil, err
	}
	return &d, nil
}
