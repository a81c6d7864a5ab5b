package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"rockethub/internal/http-api/handler"
	"rockethub/internal/http-api/middleware"
	"rockethub/internal/http-api/models"
	"rockethub/internal/http-api/repository"
	"rockethub/internal/http-api/service"
	"rockethub/internal/session"
)

// --- RECORDING RENDERER ---

type rendered struct {
	Status int
	Name   string
	Data   gin.H
}

// recorder captures what would have been rendered instead of executing templates.
type recorder struct {
	last *rendered
}

func (r *recorder) HTML(c *gin.Context, status int, name string, data gin.H) {
	r.last = &rendered{Status: status, Name: name, Data: data}
	c.Status(status)
}

// --- MOCK SERVICES ---

type MockRocketService struct {
	mock.Mock
}

func (m *MockRocketService) List(ctx context.Context, sort string, desc bool) ([]models.Rocket, error) {
	args := m.Called(ctx, sort, desc)
	return args.Get(0).([]models.Rocket), args.Error(1)
}

func (m *MockRocketService) Find(ctx context.Context, f repository.RocketFilter) ([]models.Rocket, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Rocket), args.Error(1)
}

func (m *MockRocketService) GetByID(ctx context.Context, id int64) (*models.Rocket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rocket), args.Error(1)
}

func (m *MockRocketService) Detail(ctx context.Context, id int64) (*service.RocketDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RocketDetail), args.Error(1)
}

func (m *MockRocketService) Create(ctx context.Context, r *models.Rocket) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRocketService) Update(ctx context.Context, id int64, r *models.Rocket) error {
	args := m.Called(ctx, id, r)
	return args.Error(0)
}

func (m *MockRocketService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCosmodromeService struct {
	mock.Mock
}

func (m *MockCosmodromeService) List(ctx context.Context, sort string, desc bool) ([]models.Cosmodrome, error) {
	args := m.Called(ctx, sort, desc)
	return args.Get(0).([]models.Cosmodrome), args.Error(1)
}

func (m *MockCosmodromeService) Find(ctx context.Context, f repository.CosmodromeFilter) ([]models.Cosmodrome, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Cosmodrome), args.Error(1)
}

func (m *MockCosmodromeService) GetByID(ctx context.Context, id int64) (*models.Cosmodrome, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cosmodrome), args.Error(1)
}

func (m *MockCosmodromeService) Detail(ctx context.Context, id int64) (*service.CosmodromeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CosmodromeDetail), args.Error(1)
}

func (m *MockCosmodromeService) Create(ctx context.Context, c *models.Cosmodrome) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCosmodromeService) Update(ctx context.Context, id int64, c *models.Cosmodrome) error {
	return m.Called(ctx, id, c).Error(0)
}

func (m *MockCosmodromeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockLaunchService struct {
	mock.Mock
}

func (m *MockLaunchService) List(ctx context.Context, sort string, desc bool) ([]models.Launch, error) {
	args := m.Called(ctx, sort, desc)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchService) Find(ctx context.Context, f repository.LaunchFilter) ([]models.Launch, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]models.Launch), args.Error(1)
}

func (m *MockLaunchService) GetByID(ctx context.Context, id int64) (*models.Launch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Launch), args.Error(1)
}

func (m *MockLaunchService) Choices(ctx context.Context) (*service.LaunchChoices, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LaunchChoices), args.Error(1)
}

func (m *MockLaunchService) Create(ctx context.Context, l *models.Launch) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLaunchService) Update(ctx context.Context, id int64, l *models.Launch) error {
	return m.Called(ctx, id, l).Error(0)
}

func (m *MockLaunchService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string) (*service.SearchResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SearchResult), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

// --- SETUP ---

const testSessionID = "0b6a7f2e-7c61-4c55-9d9e-3f1f0d3c2a11"

type testEnv struct {
	router  *gin.Engine
	render  *recorder
	flashes *session.MemoryFlashStore
}

func newTestEnv(register func(v *handler.View, r *gin.Engine)) *testEnv {
	gin.SetMode(gin.TestMode)
	env := &testEnv{
		router:  gin.New(),
		render:  &recorder{},
		flashes: session.NewMemoryFlashStore(time.Minute),
	}
	env.router.Use(middleware.Session(false))
	v := handler.NewView(env.render, env.flashes, zap.NewNop(), time.Second)
	register(v, env.router)
	env.router.NoRoute(v.NotFound)
	return env
}

func (e *testEnv) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: testSessionID})
	w := httptest.NewRecorder()
	e.render.last = nil
	e.router.ServeHTTP(w, req)
	return w
}

// pendingFlashes drains the flashes queued for the test session.
func (e *testEnv) pendingFlashes() []string {
	msgs, _ := e.flashes.Pop(context.Background(), testSessionID)
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}
