// Package server contains the HTTP handlers for the application's routes.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/Adryeh/Portfolio-Creator/internal/cache"
	"github.com/Adryeh/Portfolio-Creator/internal/config"
	"github.com/Adryeh/Portfolio-Creator/internal/database"
	"github.com/Adryeh/Portfolio-Creator/internal/middleware"
	"github.com/Adryeh/Portfolio-Creator/internal/repository"
	"github.com/Adryeh/Portfolio-Creator/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config             *config.Config
	db                 *gorm.DB
	redis              *redis.Client
	promMiddleware     *fiberprometheus.FiberPrometheus
	userRepo           repository.UserRepository
	portfolioRepo      repository.PortfolioRepository
	achievementRepo    repository.AchievementRepository
	accountService     *service.AccountService
	portfolioService   *service.PortfolioService
	achievementService *service.AchievementService
	imageService       *service.ImageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  middleware.InitMetrics("portfolio-creator"),
		userRepo:        userRepo,
		portfolioRepo:   portfolioRepo,
		achievementRepo: achievementRepo,
	}
	server.imageService = service.NewImageService(cfg)
	server.accountService = service.NewAccountService(userRepo, server.imageService)
	server.portfolioService = service.NewPortfolioService(portfolioRepo, userRepo)
	server.achievementService = service.NewAchievementService(achievementRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on errors.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Stored profile picture derivatives
	app.Static("/static/profile_pics", s.imageService.UploadDir())

	app.Get("/", s.Home)

	// Public auth routes; credential endpoints get their own limiter on top
	// of the global one.
	app.Get("/register", s.RegisterForm)
	app.Post("/register", middleware.RateLimit("register", 5, time.Minute), s.Register)
	app.Get("/login", s.LoginForm)
	app.Post("/login", middleware.RateLimit("login", 10, time.Minute), s.Login)
	app.Get("/logout", middleware.LoginRequired, s.Logout)

	// Account
	app.Get("/account", middleware.LoginRequired, s.GetAccount)
	app.Post("/account", middleware.LoginRequired, s.UpdateAccount)

	// Achievements
	app.Get("/account/achievements", middleware.LoginRequired, s.ListAchievements)
	app.Post("/account/achievements", middleware.LoginRequired, s.AddAchievement)
	app.Get("/delete/:id", middleware.LoginRequired, s.DeleteAchievement)
	app.Post("/delete/:id", middleware.LoginRequired, s.DeleteAchievement)

	// Portfolio
	app.Get("/create_portfolio", middleware.LoginRequired, s.CreatePortfolioForm)
	app.Post("/create_portfolio", middleware.LoginRequired, s.CreatePortfolio)
	app.Get("/portfolio", middleware.LoginRequired, s.GetPortfolio)
	app.Get("/portfolio/update", middleware.LoginRequired, s.EditPortfolioForm)
	app.Post("/portfolio/update", middleware.LoginRequired, s.UpdatePortfolio)
	app.Post("/port/delete", middleware.LoginRequired, s.DeletePortfolio)
}

// Home handles GET /
func (s *Server) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Portfolio Creator",
	})
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Shutdown releases server resources during graceful shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			middleware.Logger.WarnContext(ctx, "redis close failed", "error", err)
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
