package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/obondar/creditflow/internal/controller"
	"github.com/obondar/creditflow/internal/metrics"
	"github.com/obondar/creditflow/internal/repository"
	"github.com/obondar/creditflow/internal/service"
)

type App struct {
	cfg    *Config
	Router *chi.Mux
	db     *repository.Database
	Logger *zap.Logger
	Server *http.Server
}

func New(cfg *Config) (*App, error) {
	app := &App{
		cfg:    cfg,
		Router: chi.NewRouter(),
		Logger: zap.L(),
	}

	if err := app.initDB(); err != nil {
		return nil, err
	}

	app.initRouter()
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	a.Server = &http.Server{
		Addr:    a.cfg.RunAddress,
		Handler: a.Router,
	}

	go func() {
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	return a.Shutdown()
}

func (a *App) initDB() error {
	db, err := repository.NewDatabase(repository.DatabaseConfig{
		DSN:            a.cfg.DatabaseURI,
		MigrationsPath: a.cfg.MigrationsPath,
	})
	if err != nil {
		a.Logger.Error("Database initialization failed",
			zap.String("dsn", a.cfg.MaskDBPassword()),
			zap.Error(err))
		return fmt.Errorf("database initialization failed: %w", err)
	}

	a.db = db
	a.Logger.Info("Database initialized successfully",
		zap.String("migrations_path", a.cfg.MigrationsPath))

	return nil
}

func (a *App) initRouter() {
	a.Router.Use(middleware.RequestID)
	a.Router.Use(middleware.RealIP)
	a.Router.Use(middleware.Logger)
	a.Router.Use(middleware.Recoverer)
	a.Router.Use(middleware.Compress(5))
	a.Router.Use(middleware.Heartbeat("/ping"))
	a.Router.Use(metrics.Middleware)

	// Repositories
	creditRepo := repository.NewCreditRepository(a.db)
	paymentRepo := repository.NewPaymentRepository(a.db)
	planRepo := repository.NewPlanRepository(a.db)
	categoryRepo := repository.NewCategoryRepository(a.db)

	// Services
	creditService := service.NewCreditService(creditRepo, paymentRepo, a.Logger)
	planService := service.NewPlanService(categoryRepo, planRepo, a.Logger)
	performanceService := service.NewPerformanceService(creditRepo, paymentRepo, planRepo, categoryRepo, a.Logger)

	// Controllers
	creditController := controller.NewCreditController(creditService, a.Logger)
	planController := controller.NewPlanController(planService, a.Logger)
	performanceController := controller.NewPerformanceController(performanceService, a.Logger)

	a.Router.Get("/user_credits/{user_id}", creditController.GetUserCredits)
	a.Router.Post("/plans_insert", planController.InsertPlans)
	a.Router.Get("/plans_performance/{check_date}", performanceController.GetPlansPerformance)
	a.Router.Get("/year_performance/{year}", performanceController.GetYearPerformance)

	a.Router.Handle("/metrics", promhttp.Handler())
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if a.db != nil {
		defer a.db.Close()
	}
	if a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}
