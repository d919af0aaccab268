package web

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goserg/foodlog/auth/guard"
	"github.com/goserg/foodlog/auth/users"
	"github.com/goserg/foodlog/internal/config"
	"github.com/goserg/foodlog/internal/domain"
	"github.com/goserg/foodlog/internal/service"
	"github.com/goserg/foodlog/internal/web/webpath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthService interface {
	SignUp(ctx context.Context, name string, email string, password string) (users.User, error)
	Login(ctx context.Context, email string, password string) (string, users.User, error)
	Profile(ctx context.Context, userID string) (users.User, error)
}

type FoodService interface {
	AddFood(ctx context.Context, userID uuid.UUID, req service.NewFood) (domain.Food, error)
	LogFood(ctx context.Context, userID uuid.UUID, req service.NewLog) (domain.FoodLog, error)
	DailySummary(ctx context.Context, userID uuid.UUID) (domain.DailySummary, error)
}

type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

type Server struct {
	auth     AuthService
	foods    FoodService
	search   Searcher
	verifier guard.Verifier
	app      *fiber.App
	cfg      config.Server
	log      *logrus.Entry
}

func New(
	l *logrus.Logger,
	cfg config.Server,
	verifier guard.Verifier,
	authService AuthService,
	foodService FoodService,
	searcher Searcher,
) *Server {
	server := Server{
		auth:     authService,
		foods:    foodService,
		search:   searcher,
		verifier: verifier,
		cfg:      cfg,
		log:      l.WithField("from", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          server.handleError,
		DisableStartupMessage: true,
	})
	app.Use(requestLogger(server.log))
	app.Use(recover.New())

	app.Get(webpath.Health, server.handleHealth)

	api := app.Group(webpath.Api)
	api.Post(webpath.Register, server.handleRegister)
	api.Post(webpath.Login, server.handleLogin)
	api.Get(webpath.Search, server.handleSearch)
	api.Get(webpath.Profile, server.requireToken, server.handleProfile)
	api.Post(webpath.AddFood, server.requireToken, server.handleAddFood)
	api.Post(webpath.LogFood, server.requireToken, server.handleLogFood)
	api.Get(webpath.DailySummary, server.requireToken, server.handleDailySummary)

	server.app = app
	return &server
}

func (s *Server) Serve() error {
	addr := s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port)
	s.log.WithField("addr", addr).Info("listening")
	return s.app.Listen(addr)
}

// Shutdown stops accepting connections and waits for active ones until the
// ctx deadline, or indefinitely when ctx has none.
func (s *Server) Shutdown(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		return s.app.Shutdown()
	}
	return s.app.ShutdownWithTimeout(time.Until(deadline))
}

func (s *Server) handleHealth(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleRegister(ctx *fiber.Ctx) error {
	var req registerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	user, err := s.auth.SignUp(ctx.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(toCreatedUserResponse(user))
}

func (s *Server) handleLogin(ctx *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	t, user, err := s.auth.Login(ctx.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return ctx.JSON(loginResponse{
		Token: t,
		User:  toUserResponse(user),
	})
}

func (s *Server) handleProfile(ctx *fiber.Ctx) error {
	claims, _ := claimsFrom(ctx)
	user, err := s.auth.Profile(ctx.UserContext(), claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("user %w", domain.ErrNotFound)
		}
		return err
	}
	return ctx.JSON(toUserResponse(user))
}

func (s *Server) handleSearch(ctx *fiber.Ctx) error {
	results, err := s.search.Search(ctx.UserContext(), ctx.Query("query"))
	if err != nil {
		return err
	}
	return ctx.JSON(results)
}

func (s *Server) handleAddFood(ctx *fiber.Ctx) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	var req addFoodRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	food, err := s.foods.AddFood(ctx.UserContext(), userID, req.toNewFood())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(toFoodResponse(food))
}

func (s *Server) handleLogFood(ctx *fiber.Ctx) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	var req logFoodRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	log, err := s.foods.LogFood(ctx.UserContext(), userID, req.toNewLog())
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(toLogResponse(log))
}

func (s *Server) handleDailySummary(ctx *fiber.Ctx) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	summary, err := s.foods.DailySummary(ctx.UserContext(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(toSummaryResponse(summary))
}

// userID reads the subject of the verified token. Tokens are only issued
// for real user ids, so a bad one means the claims were never set.
func (s *Server) userID(ctx *fiber.Ctx) (uuid.UUID, error) {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, noTokenMessage)
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, invalidTokenMessage)
	}
	return id, nil
}
