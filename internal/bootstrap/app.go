package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/locvowork/hospitality_backoffice/internal/config"
	"github.com/locvowork/hospitality_backoffice/internal/controller"
	"github.com/locvowork/hospitality_backoffice/internal/handler"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
	"github.com/locvowork/hospitality_backoffice/internal/recipe"
	"github.com/locvowork/hospitality_backoffice/internal/schedule"
	"github.com/locvowork/hospitality_backoffice/internal/upstream"
)

type App struct {
	Echo   *echo.Echo
	Poller *controller.Poller
}

func NewApp() *App {
	return &App{
		Echo: echo.New(),
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}

	// Initialize logging
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	// Initialize the upstream suite API client
	client, err := upstream.NewClient(upstream.Config{
		BaseURL:        config.DefaultEnvConfig.UPSTREAM_BASE_URL,
		Timeout:        config.DefaultEnvConfig.UPSTREAM_TIMEOUT,
		SessionCookie:  config.DefaultEnvConfig.UPSTREAM_SESSION_COOKIE,
		CSRFCookieName: config.DefaultEnvConfig.CSRF_COOKIE_NAME,
		CSRFHeaderName: config.DefaultEnvConfig.CSRF_HEADER_NAME,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize upstream client: %w", err)
	}
	logger.InfoLog(ctx, "Upstream client pointed at %s", config.DefaultEnvConfig.UPSTREAM_BASE_URL)

	// Initialize dependencies
	employees := upstream.NewEmployeeDirectory(client)
	shifts := upstream.NewShiftStore(client)
	recipes := upstream.NewRecipeStore(client)

	svc := schedule.NewService(employees, shifts)
	ctrl := controller.New(svc, shifts)
	a.Poller = controller.NewPoller(ctrl, config.DefaultEnvConfig.DASHBOARD_POLL_INTERVAL)

	schedHandler := handler.NewScheduleHandler(ctrl, config.DefaultEnvConfig.EXPORT_LAYOUT_PATH)
	shiftHandler := handler.NewShiftHandler(ctrl)
	recipeHandler := handler.NewRecipeHandler(recipe.NewCalculator(recipes))

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	a.RegisterRoutes(schedHandler, shiftHandler, recipeHandler)

	return nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(sched *handler.ScheduleHandler, shift *handler.ShiftHandler, rec *handler.RecipeHandler) {
	week := a.Echo.Group("/schedule")
	week.GET("/week", sched.GetWeekHandler)
	week.POST("/week/shift", sched.ShiftWeekHandler)
	week.POST("/week/current", sched.CurrentWeekHandler)
	week.GET("/week/export", sched.ExportWeekHandler)

	week.POST("/shifts", shift.CreateHandler)
	week.PATCH("/shifts/:id", shift.UpdateHandler)
	week.DELETE("/shifts/:id", shift.DeleteHandler)

	recipes := a.Echo.Group("/recipes")
	recipes.GET("/costs", rec.ListCostsHandler)
	recipes.GET("/:id/cost", rec.CostHandler)
}

func (a *App) Run(ctx context.Context) error {
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.Poller.Run(pollCtx)

	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
