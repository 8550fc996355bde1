package server

import (
	"context"
	"strings"

	"trivia-api/internal/config"
	"trivia-api/internal/domain"
	"trivia-api/internal/handler"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/tracing"
	"trivia-api/internal/util"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
)

// Deps are the collaborators the HTTP server is built from.
type Deps struct {
	Config  *config.Config
	Store   domain.Store
	Cache   domain.Cache // nil when caching is disabled
	Metrics *prometheus.Registry
}

// Server wraps the Fiber app.
type Server struct {
	App *fiber.App
}

// New wires services, handlers and middleware into a Fiber app.
func New(deps Deps) *Server {
	cfg := deps.Config

	categoryService := service.NewCategoryService(deps.Store, deps.Cache,
		cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.CategoryMapping, service.DefaultCategoryMappingTTL))
	questionService := service.NewQuestionService(deps.Store, categoryService)
	quizService := service.NewQuizService(deps.Store)

	v := validation.NewValidator()
	categoryHandler := handler.NewCategoryHandler(categoryService, questionService)
	questionHandler := handler.NewQuestionHandler(questionService, v)
	quizHandler := handler.NewQuizHandler(quizService, v)
	healthHandler := handler.NewHealthHandler(deps.Store, deps.Cache)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  util.NewULID,
		ContextKey: middleware.RequestIDKey,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: strings.Join([]string{fiber.HeaderContentType, fiber.HeaderAuthorization}, ","),
		AllowMethods: strings.Join([]string{
			fiber.MethodGet, fiber.MethodPost, fiber.MethodPatch, fiber.MethodDelete, fiber.MethodOptions,
		}, ","),
	}))
	if cfg.Tracing.Enabled {
		app.Use(tracing.Middleware())
	}

	srv := &Server{App: app}

	if deps.Metrics != nil {
		metrics := middleware.NewMetrics(deps.Metrics)
		app.Use(metrics.Middleware())
		app.Get("/metrics", metrics.Handler())
	}

	app.Get("/health", healthHandler.Check)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes registered above are exempt from rate limiting.
	if cfg.RateLimit.Enabled {
		app.Use(middleware.RateLimit(cfg.RateLimit))
	}

	app.Get("/categories", categoryHandler.GetCategories)
	categoryQuestions := "/categories/:category_id/questions"
	app.Get(categoryQuestions, middleware.ValidateIDParam("category_id"), categoryHandler.GetCategoryQuestions)
	app.Post(categoryQuestions, middleware.ValidateIDParam("category_id"), categoryHandler.GetCategoryQuestions)

	app.Get("/questions", middleware.ValidatePage(), questionHandler.ListQuestions)
	app.Post("/questions", questionHandler.CreateQuestion)
	app.Post("/questions/search", questionHandler.SearchQuestions)
	app.Delete("/questions/:id", middleware.ValidateIDParam("id"), questionHandler.DeleteQuestion)

	app.Post("/quizzes", quizHandler.NextQuestion)

	return srv
}

// Shutdown stops accepting connections and waits for in-flight requests until
// ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
