package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"rockethub/database"
	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
)

// RepositoryIntegrationTestSuite runs the repositories against a real PostgreSQL.
// Point ROCKETHUB_TEST_DATABASE_URL at a disposable database to enable it.
type RepositoryIntegrationTestSuite struct {
	suite.Suite
	db          *gorm.DB
	rockets     repository.RocketRepository
	cosmodromes repository.CosmodromeRepository
	launches    repository.LaunchRepository
	ctx         context.Context
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	dsn := os.Getenv("ROCKETHUB_TEST_DATABASE_URL")
	if dsn == "" {
		s.T().Skip("ROCKETHUB_TEST_DATABASE_URL not set, skipping integration tests")
		return
	}
	db, err := database.Connect(dsn, zap.NewNop())
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(db))

	s.db = db
	s.rockets = repository.NewRocketRepository(db)
	s.cosmodromes = repository.NewCosmodromeRepository(db)
	s.launches = repository.NewLaunchRepository(db)
	s.ctx = context.Background()
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	if s.db != nil {
		database.Close(s.db)
	}
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE launches, rockets, cosmodromes RESTART IDENTITY CASCADE").Error)
}

func (s *RepositoryIntegrationTestSuite) rocket(name, manufacturer, country string) *models.Rocket {
	r := &models.Rocket{
		Name:         name,
		Manufacturer: manufacturer,
		Country:      country,
		RocketType:   models.RocketTypeOrbital,
		Status:       models.RocketStatusActive,
		Stages:       models.DefaultRocketStages,
	}
	s.Require().NoError(s.rockets.Create(s.ctx, r))
	return r
}

func (s *RepositoryIntegrationTestSuite) cosmodrome(name, country string) *models.Cosmodrome {
	c := &models.Cosmodrome{Name: name, Country: country, IsActive: true}
	s.Require().NoError(s.cosmodromes.Create(s.ctx, c))
	return c
}

func (s *RepositoryIntegrationTestSuite) launch(mission string, r *models.Rocket, c *models.Cosmodrome, date time.Time, status models.LaunchStatus) *models.Launch {
	l := &models.Launch{
		MissionName:  mission,
		RocketID:     r.ID,
		CosmodromeID: c.ID,
		LaunchDate:   date,
		Status:       status,
	}
	s.Require().NoError(s.launches.Create(s.ctx, l))
	return l
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func (s *RepositoryIntegrationTestSuite) TestRocketRoundTrip() {
	h := 70.0
	r := &models.Rocket{
		Name: "Falcon 9", Manufacturer: "SpaceX", Country: "USA",
		RocketType: models.RocketTypeOrbital, Status: models.RocketStatusActive,
		Height: &h, Stages: 2,
	}
	s.Require().NoError(s.rockets.Create(s.ctx, r))
	s.NotZero(r.ID)

	got, err := s.rockets.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal("Falcon 9", got.Name)
	s.Require().NotNil(got.Height)
	s.InDelta(70.0, *got.Height, 1e-9)

	got.Height = nil
	got.Status = models.RocketStatusRetired
	s.Require().NoError(s.rockets.Update(s.ctx, got))

	got, err = s.rockets.GetByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Nil(got.Height, "cleared optional column is written as NULL")
	s.Equal(models.RocketStatusRetired, got.Status)

	exists, err := s.rockets.Exists(s.ctx, r.ID)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *RepositoryIntegrationTestSuite) TestMissingRows() {
	_, err := s.rockets.GetByID(s.ctx, 404)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	err = s.cosmodromes.Update(s.ctx, &models.Cosmodrome{ID: 404, Name: "Ghost", Country: "Nowhere"})
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	s.ErrorIs(s.launches.Delete(s.ctx, 404), gorm.ErrRecordNotFound)

	exists, err := s.cosmodromes.Exists(s.ctx, 404)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *RepositoryIntegrationTestSuite) TestDeleteCascadesToLaunches() {
	falcon := s.rocket("Falcon 9", "SpaceX", "USA")
	soyuz := s.rocket("Soyuz-2", "Progress", "Russia")
	cape := s.cosmodrome("Cape Canaveral", "USA")
	baikonur := s.cosmodrome("Baikonur", "Kazakhstan")
	s.launch("Starlink-1", falcon, cape, day(2019, 11, 11), models.LaunchStatusSuccess)
	s.launch("Progress MS-20", soyuz, baikonur, day(2022, 6, 3), models.LaunchStatusSuccess)
	s.launch("Starlink-2", falcon, baikonur, day(2020, 1, 7), models.LaunchStatusSuccess)

	s.Require().NoError(s.rockets.Delete(s.ctx, falcon.ID))

	n, err := s.launches.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	s.Require().NoError(s.cosmodromes.Delete(s.ctx, baikonur.ID))
	n, err = s.launches.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(n)

	rockets, err := s.rockets.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), rockets, "deleting a cosmodrome leaves rockets alone")
}

func (s *RepositoryIntegrationTestSuite) TestLaunchForeignKeyViolation() {
	cape := s.cosmodrome("Cape Canaveral", "USA")

	err := s.launches.Create(s.ctx, &models.Launch{
		MissionName: "Orphan", RocketID: 999, CosmodromeID: cape.ID,
		LaunchDate: day(2024, 1, 1), Status: models.LaunchStatusPlanned,
	})

	var pgErr *pgconn.PgError
	s.Require().True(errors.As(err, &pgErr))
	s.Equal("23503", pgErr.Code)
}

func (s *RepositoryIntegrationTestSuite) TestListSorting() {
	s.rocket("Soyuz-2", "Progress", "Russia")
	s.rocket("Angara", "Khrunichev", "Russia")
	s.rocket("Falcon 9", "SpaceX", "USA")

	asc, err := s.rockets.List(s.ctx, "name", false)
	s.Require().NoError(err)
	s.Equal([]string{"Angara", "Falcon 9", "Soyuz-2"}, rocketNames(asc))

	desc, err := s.rockets.List(s.ctx, "manufacturer", true)
	s.Require().NoError(err)
	s.Equal([]string{"Falcon 9", "Soyuz-2", "Angara"}, rocketNames(desc))

	_, err = s.rockets.List(s.ctx, "name; DROP TABLE rockets", false)
	s.Error(err)
}

func (s *RepositoryIntegrationTestSuite) TestLaunchListByRelatedName() {
	falcon := s.rocket("Falcon 9", "SpaceX", "USA")
	angara := s.rocket("Angara", "Khrunichev", "Russia")
	plesetsk := s.cosmodrome("Plesetsk", "Russia")
	s.launch("B", falcon, plesetsk, day(2020, 1, 1), models.LaunchStatusSuccess)
	s.launch("A", angara, plesetsk, day(2021, 1, 1), models.LaunchStatusFailure)

	list, err := s.launches.List(s.ctx, "rocket__name", false)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("Angara", list[0].Rocket.Name)
	s.Equal("Plesetsk", list[0].Cosmodrome.Name)

	list, err = s.launches.List(s.ctx, "launch_date", true)
	s.Require().NoError(err)
	s.Equal("A", list[0].MissionName)
}

func (s *RepositoryIntegrationTestSuite) TestSearch() {
	falcon := s.rocket("Falcon 9", "SpaceX", "USA")
	s.rocket("Falcon Heavy", "SpaceX", "USA")
	s.rocket("100% Electron", "Rocket Lab", "New Zealand")
	cape := s.cosmodrome("Cape Canaveral", "USA")
	s.launch("Starlink-1", falcon, cape, day(2019, 11, 11), models.LaunchStatusSuccess)

	rockets, err := s.rockets.Find(s.ctx, repository.RocketFilter{Query: "falcon"})
	s.Require().NoError(err)
	s.Len(rockets, 2)

	rockets, err = s.rockets.Find(s.ctx, repository.RocketFilter{Query: "100%"})
	s.Require().NoError(err)
	s.Equal([]string{"100% Electron"}, rocketNames(rockets))

	rockets, err = s.rockets.Find(s.ctx, repository.RocketFilter{Query: "%"})
	s.Require().NoError(err)
	s.Len(rockets, 1, "a literal percent sign is not a wildcard")

	launches, err := s.launches.Find(s.ctx, repository.LaunchFilter{Query: "FALCON"})
	s.Require().NoError(err)
	s.Len(launches, 1, "launches match on their rocket's name")

	cosmodromes, err := s.cosmodromes.Find(s.ctx, repository.CosmodromeFilter{Query: "canaveral"})
	s.Require().NoError(err)
	s.Len(cosmodromes, 1)
}

func (s *RepositoryIntegrationTestSuite) TestLaunchFiltersAndStats() {
	falcon := s.rocket("Falcon 9", "SpaceX", "USA")
	cape := s.cosmodrome("Cape Canaveral", "USA")
	s.launch("Starlink-1", falcon, cape, day(2019, 11, 11), models.LaunchStatusSuccess)
	s.launch("Crew-1", falcon, cape, day(2020, 11, 16), models.LaunchStatusSuccess)
	s.launch("Amos-6", falcon, cape, day(2016, 9, 1), models.LaunchStatusFailure)
	s.launch("Crew-9", falcon, cape, day(2030, 1, 1), models.LaunchStatusPlanned)

	byYear, err := s.launches.Find(s.ctx, repository.LaunchFilter{Year: 2020, Month: 11})
	s.Require().NoError(err)
	s.Equal([]string{"Crew-1"}, launchNames(byYear))

	byStatus, err := s.launches.Find(s.ctx, repository.LaunchFilter{Status: "success", RocketID: falcon.ID})
	s.Require().NoError(err)
	s.Equal([]string{"Crew-1", "Starlink-1"}, launchNames(byStatus))

	counts, err := s.launches.CountByStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), counts[models.LaunchStatusSuccess])
	s.Equal(int64(1), counts[models.LaunchStatusFailure])
	s.Equal(int64(1), counts[models.LaunchStatusPlanned])
	s.Zero(counts[models.LaunchStatusPartial])

	recent, err := s.launches.Recent(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal([]string{"Crew-9", "Crew-1"}, launchNames(recent))
}

func (s *RepositoryIntegrationTestSuite) TestDetailLaunches() {
	falcon := s.rocket("Falcon 9", "SpaceX", "USA")
	cape := s.cosmodrome("Cape Canaveral", "USA")
	starlink := s.launch("Starlink-1", falcon, cape, day(2019, 11, 11), models.LaunchStatusSuccess)

	byRocket, err := s.launches.ByRocket(s.ctx, falcon.ID, 10)
	s.Require().NoError(err)
	s.Require().Len(byRocket, 1)
	s.Equal(starlink.ID, byRocket[0].ID)
	s.Equal("Cape Canaveral", byRocket[0].Cosmodrome.Name)

	for i := 0; i < 12; i++ {
		s.launch("Batch", falcon, cape, day(2021, 1, i+1), models.LaunchStatusSuccess)
	}
	byCosmodrome, err := s.launches.ByCosmodrome(s.ctx, cape.ID, 10)
	s.Require().NoError(err)
	s.Len(byCosmodrome, 10)
}

func (s *RepositoryIntegrationTestSuite) TestLaunchUpdateKeepsCreatedAt() {
	falcon := s.rocket("Falcon 9", "SpaceX", "USA")
	cape := s.cosmodrome("Cape Canaveral", "USA")
	l := s.launch("Starlink-1", falcon, cape, day(2019, 11, 11), models.LaunchStatusPlanned)

	before, err := s.launches.GetByID(s.ctx, l.ID)
	s.Require().NoError(err)

	update := &models.Launch{
		ID: l.ID, MissionName: "Starlink-1 v1.0", RocketID: falcon.ID, CosmodromeID: cape.ID,
		LaunchDate: day(2019, 11, 11), Status: models.LaunchStatusSuccess,
	}
	s.Require().NoError(s.launches.Update(s.ctx, update))

	after, err := s.launches.GetByID(s.ctx, l.ID)
	s.Require().NoError(err)
	s.Equal("Starlink-1 v1.0", after.MissionName)
	s.True(before.CreatedAt.Equal(after.CreatedAt))
}

func rocketNames(list []models.Rocket) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Name)
	}
	return out
}

func launchNames(list []models.Launch) []string {
	out := make([]string, 0, len(list))
	for _, l := range list {
		out = append(out, l.MissionName)
	}
	return out
}

func TestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}
