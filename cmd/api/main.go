package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raminfosys/attendance-backend-go/internal/config"
	"github.com/raminfosys/attendance-backend-go/internal/domain/user"
	appHTTP "github.com/raminfosys/attendance-backend-go/internal/handler/http"
	"github.com/raminfosys/attendance-backend-go/internal/handler/http/middleware"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/cron"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/database"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/jwt"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/logger"
	"github.com/raminfosys/attendance-backend-go/internal/pkg/metrics"
	"github.com/raminfosys/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/raminfosys/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/raminfosys/attendance-backend-go/internal/service/auth"
	dashboardService "github.com/raminfosys/attendance-backend-go/internal/service/dashboard"
	userService "github.com/raminfosys/attendance-backend-go/internal/service/user"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.SetupDefault(os.Stdout, cfg.App.LogLevel, appHTTP.AppName, appHTTP.AppVersion, cfg.App.Env)

	loc, err := cfg.Location()
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dsn := cfg.DatabaseURL()
	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(dsn); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		slog.Info("database migrations applied")
	}

	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	registry := metrics.NewRegistry()
	recorder := metrics.NewCollector(registry)

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)
	authService := serviceAuth.NewAuthService(userRepo, JWTService, recorder)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, recorder, loc)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, recorder, loc)
	userSvc := userService.NewUserService(db, userRepo)

	if cfg.Bootstrap.Enabled() {
		err := userSvc.EnsureBootstrapHR(ctx, user.BootstrapHR{
			Name:     cfg.Bootstrap.Name,
			Email:    cfg.Bootstrap.Email,
			Password: cfg.Bootstrap.Password,
		})
		if err != nil {
			return fmt.Errorf("bootstrap hr account: %w", err)
		}
	}

	scheduler := cron.NewScheduler()
	cron.NewPresenceJobs(dashboardSvc, recorder).RegisterJobs(scheduler, cfg.App.PresenceRefresh)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	authLimiter := middleware.NewRateLimiter(cfg.RateLimit.AuthPerMinute, 5*time.Minute)
	defer authLimiter.Stop()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authLimiter,
		metrics.Handler(registry),
		appHTTP.NewAuthHandler(authService),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewUserHandler(userSvc),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
