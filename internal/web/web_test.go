package web

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goserg/foodlog/auth/password"
	authservice "github.com/goserg/foodlog/auth/service"
	authsqlite "github.com/goserg/foodlog/auth/storage/sqlite"
	"github.com/goserg/foodlog/auth/token"
	"github.com/goserg/foodlog/internal/cache/mem"
	"github.com/goserg/foodlog/internal/config"
	"github.com/goserg/foodlog/internal/search"
	"github.com/goserg/foodlog/internal/service"
	"github.com/goserg/foodlog/internal/storage"
	foodsqlite "github.com/goserg/foodlog/internal/storage/sqlite"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret"

type WebSuite struct {
	suite.Suite
	db       *sql.DB
	provider *httptest.Server
	server   *Server
}

func TestWebSuite(t *testing.T) {
	suite.Run(t, new(WebSuite))
}

func (s *WebSuite) SetupTest() {
	db, err := storage.Open(filepath.Join(s.T().TempDir(), "foodlog.sqlite"))
	s.Require().NoError(err)
	s.db = db

	s.provider = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"id":1,"title":"Apple pie","image":"https://img.example/1.jpg","imageType":"jpg"}]}`))
	}))

	l := logrus.New()
	l.SetOutput(io.Discard)
	issuer := token.NewIssuer(token.Config{Secret: testSecret})
	auth := authservice.New(authsqlite.New(l, db), password.NewHasher(), issuer)
	foodStorage := foodsqlite.New(l, db)
	foods := service.New(foodStorage, foodStorage)
	searcher := search.New(l, search.Config{BaseURL: s.provider.URL, APIKey: "k", Timeout: time.Second}, mem.New(time.Minute))

	s.server = New(l, config.Server{}, issuer, auth, foods, searcher)
}

func (s *WebSuite) TearDownTest() {
	s.provider.Close()
	s.Require().NoError(s.db.Close())
}

// do sends a request and decodes the JSON response into out when out is not nil.
func (s *WebSuite) do(method, path string, body any, authorization string, out any) int {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	resp, err := s.server.app.Test(req, -1)
	s.Require().NoError(err)
	defer resp.Body.Close()
	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *WebSuite) register(name, email, pass string) createdUserResponse {
	var created createdUserResponse
	code := s.do(http.MethodPost, "/api/auth/register", registerRequest{Name: name, Email: email, Password: pass}, "", &created)
	s.Require().Equal(fiber.StatusCreated, code)
	return created
}

func (s *WebSuite) login(email, pass string) string {
	var resp loginResponse
	code := s.do(http.MethodPost, "/api/auth/login", loginRequest{Email: email, Password: pass}, "", &resp)
	s.Require().Equal(fiber.StatusOK, code)
	s.Require().NotEmpty(resp.Token)
	return "Bearer " + resp.Token
}

func (s *WebSuite) TestShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.NoError(s.server.Shutdown(ctx))
	s.NoError(s.server.Shutdown(context.Background()))
}

func (s *WebSuite) TestHealth() {
	var resp map[string]string
	s.Equal(fiber.StatusOK, s.do(http.MethodGet, "/health", nil, "", &resp))
	s.Equal("ok", resp["status"])
}

func (s *WebSuite) TestRegisterLoginProfile() {
	created := s.register("Ann", "Ann@Example.com", "secret1")
	s.NotEmpty(created.ID)
	s.Equal("Ann", created.Name)
	s.Equal("ann@example.com", created.Email)
	s.False(created.CreatedAt.IsZero())

	var msg messageResponse
	code := s.do(http.MethodPost, "/api/auth/register", registerRequest{Name: "Other", Email: "ann@example.com", Password: "x"}, "", &msg)
	s.Equal(fiber.StatusBadRequest, code)
	s.Equal("User already exists", msg.Message)

	code = s.do(http.MethodPost, "/api/auth/login", loginRequest{Email: "ann@example.com", Password: "wrong"}, "", &msg)
	s.Equal(fiber.StatusBadRequest, code)
	s.Equal("Invalid credentials", msg.Message)

	code = s.do(http.MethodPost, "/api/auth/login", loginRequest{Email: "nobody@example.com", Password: "secret1"}, "", &msg)
	s.Equal(fiber.StatusBadRequest, code)
	s.Equal("Invalid credentials", msg.Message)

	var loggedIn loginResponse
	code = s.do(http.MethodPost, "/api/auth/login", loginRequest{Email: "ANN@example.com", Password: "secret1"}, "", &loggedIn)
	s.Require().Equal(fiber.StatusOK, code)
	s.Equal(created.userResponse, loggedIn.User)

	var profile userResponse
	code = s.do(http.MethodGet, "/api/auth/profile", nil, "Bearer "+loggedIn.Token, &profile)
	s.Equal(fiber.StatusOK, code)
	s.Equal(created.userResponse, profile)
}

func (s *WebSuite) TestRegisterValidation() {
	var msg messageResponse
	code := s.do(http.MethodPost, "/api/auth/register", registerRequest{}, "", &msg)
	s.Equal(fiber.StatusBadRequest, code)
	s.ElementsMatch([]string{"name is required", "email is required", "password is required"}, msg.Errors)

	code = s.do(http.MethodPost, "/api/auth/register", registerRequest{Name: "Ann", Email: "ann@example.com", Password: strings.Repeat("p", 80)}, "", &msg)
	s.Equal(fiber.StatusBadRequest, code)
	s.Equal("password must be at most 72 bytes", msg.Message)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte(`{"name":`)))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := s.server.app.Test(req, -1)
	s.Require().NoError(err)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *WebSuite) TestGuard() {
	created := s.register("Bob", "bob@example.com", "pw")
	expired, err := token.NewIssuer(token.Config{Secret: testSecret}).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(created.ID)
	s.Require().NoError(err)
	forged, err := token.NewIssuer(token.Config{Secret: "other"}).Issue(created.ID)
	s.Require().NoError(err)

	tests := []struct {
		name          string
		authorization string
		wantCode      int
		wantMessage   string
	}{
		{name: "no header", wantCode: fiber.StatusUnauthorized, wantMessage: noTokenMessage},
		{name: "no bearer prefix", authorization: "Token abc", wantCode: fiber.StatusUnauthorized, wantMessage: noTokenMessage},
		{name: "garbage", authorization: "Bearer abc.def.ghi", wantCode: fiber.StatusBadRequest, wantMessage: invalidTokenMessage},
		{name: "expired", authorization: "Bearer " + expired, wantCode: fiber.StatusBadRequest, wantMessage: invalidTokenMessage},
		{name: "wrong secret", authorization: "Bearer " + forged, wantCode: fiber.StatusBadRequest, wantMessage: invalidTokenMessage},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			for _, path := range []string{"/api/auth/profile", "/api/auth/daily-summary"} {
				var msg messageResponse
				s.Equal(tt.wantCode, s.do(http.MethodGet, path, nil, tt.authorization, &msg))
				s.Equal(tt.wantMessage, msg.Message)
			}
		})
	}
}

func (s *WebSuite) TestFoodLogging() {
	s.register("Cat", "cat@example.com", "pw")
	auth := s.login("cat@example.com", "pw")

	var food foodResponse
	code := s.do(http.MethodPost, "/api/auth/add-food", addFoodRequest{Name: "Toast", Calories: 100, Protein: 3, Carbs: 20, Fat: 1}, auth, &food)
	s.Require().Equal(fiber.StatusCreated, code)
	s.Equal("Toast", food.Name)

	two := 2.0
	var logged logResponse
	code = s.do(http.MethodPost, "/api/auth/log-food", logFoodRequest{FoodID: food.ID, Quantity: &two, MealType: "brunch"}, auth, &logged)
	s.Require().Equal(fiber.StatusCreated, code)
	s.Equal("snack", logged.MealType)
	s.Equal(2.0, logged.Quantity)
	s.Equal(time.Now().Format("2006-01-02"), logged.LogDate)

	code = s.do(http.MethodPost, "/api/auth/log-food", logFoodRequest{FoodID: food.ID, MealType: "lunch"}, auth, &logged)
	s.Require().Equal(fiber.StatusCreated, code)
	s.Equal(1.0, logged.Quantity)

	var summary summaryResponse
	code = s.do(http.MethodGet, "/api/auth/daily-summary", nil, auth, &summary)
	s.Require().Equal(fiber.StatusOK, code)
	s.Equal(300.0, summary.Total.Calories)
	s.Require().Len(summary.Meals, 2)
	calories := map[string]float64{}
	for _, m := range summary.Meals {
		s.Equal("Toast", m.FoodName)
		calories[m.MealType] = m.Calories
	}
	s.Equal(map[string]float64{"snack": 200, "lunch": 100}, calories)

	// another user sees nothing
	s.register("Dan", "dan@example.com", "pw")
	var empty summaryResponse
	s.Equal(fiber.StatusOK, s.do(http.MethodGet, "/api/auth/daily-summary", nil, s.login("dan@example.com", "pw"), &empty))
	s.Empty(empty.Meals)
	s.Zero(empty.Total.Calories)
}

func (s *WebSuite) TestLogFoodErrors() {
	s.register("Eve", "eve@example.com", "pw")
	auth := s.login("eve@example.com", "pw")

	var msg messageResponse
	code := s.do(http.MethodPost, "/api/auth/log-food", logFoodRequest{FoodID: "6f1c2b8e-1111-4a4a-9b9b-000000000000"}, auth, &msg)
	s.Equal(fiber.StatusNotFound, code)
	s.Equal("food not found", msg.Message)

	var food foodResponse
	s.Require().Equal(fiber.StatusCreated, s.do(http.MethodPost, "/api/auth/add-food", addFoodRequest{Name: "Rice", Calories: 130}, auth, &food))
	negative := -1.0
	code = s.do(http.MethodPost, "/api/auth/log-food", logFoodRequest{FoodID: food.ID, Quantity: &negative}, auth, &msg)
	s.Equal(fiber.StatusBadRequest, code)

	code = s.do(http.MethodPost, "/api/auth/add-food", addFoodRequest{Calories: 1}, auth, &msg)
	s.Equal(fiber.StatusBadRequest, code)
	s.Equal("name is required", msg.Message)
}

func (s *WebSuite) TestSearch() {
	var results []map[string]any
	code := s.do(http.MethodGet, "/api/auth/search?query=apple", nil, "", &results)
	s.Require().Equal(fiber.StatusOK, code)
	s.Require().Len(results, 1)
	s.Equal("Apple pie", results[0]["title"])
	s.Equal(float64(1), results[0]["id"])

	var msg messageResponse
	s.Equal(fiber.StatusBadRequest, s.do(http.MethodGet, "/api/auth/search", nil, "", &msg))
}
