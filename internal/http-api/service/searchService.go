package service

import (
	"context"
	"strings"

	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

type SearchResult struct {
	Query       string
	Rockets     []models.Rocket
	Cosmodromes []models.Cosmodrome
	Launches    []models.Launch
}

// Total is the number of hits across all three entity kinds.
func (r *SearchResult) Total() int {
	return len(r.Rockets) + len(r.Cosmodromes) + len(r.Launches)
}

type SearchService interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}

type searchService struct {
	rocketRepo     repository.RocketRepository
	cosmodromeRepo repository.CosmodromeRepository
	launchRepo     repository.LaunchRepository
}

func NewSearchService(rocketRepo repository.RocketRepository, cosmodromeRepo repository.CosmodromeRepository, launchRepo repository.LaunchRepository) SearchService {
	return &searchService{rocketRepo: rocketRepo, cosmodromeRepo: cosmodromeRepo, launchRepo: launchRepo}
}

// Search matches query case-insensitively as a substring. A blank query
// matches nothing and does not touch the database.
func (s *searchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	res := &SearchResult{
		Query:       strings.TrimSpace(query),
		Rockets:     []models.Rocket{},
		Cosmodromes: []models.Cosmodrome{},
		Launches:    []models.Launch{},
	}
	if res.Query == "" {
		return res, nil
	}

	var err error
	if res.Rockets, err = s.rocketRepo.Find(ctx, repository.RocketFilter{Query: res.Query}); err != nil {
		return nil, err
	}
	if res.Cosmodromes, err = s.cosmodromeRepo.Find(ctx, repository.CosmodromeFilter{Query: res.Query}); err != nil {
		return nil, err
	}
	if res.Launches, err = s.launchRepo.Find(ctx, repository.LaunchFilter{Query: res.Query}); err != nil {
		return nil, err
	}
	return res, nil
}
