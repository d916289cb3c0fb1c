package bootstrap

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/sheetpdf/internal/config"
	"github.com/locvowork/sheetpdf/internal/handler"
	"github.com/locvowork/sheetpdf/internal/logger"
	"github.com/locvowork/sheetpdf/internal/repository"
	"github.com/locvowork/sheetpdf/internal/service"
	"github.com/locvowork/sheetpdf/pkg/simplepdf"
)

type App struct {
	Echo *echo.Echo
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

	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH, config.DefaultEnvConfig.LOG_LEVEL, config.DefaultEnvConfig.LOG_FORMAT)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	tableSvc, err := NewTableService(ctx)
	if err != nil {
		return err
	}
	tableHandler := handler.NewTableHandler(tableSvc)

	a.RegisterMiddlewares()
	a.RegisterRoutes(tableHandler)

	return nil
}

// NewTableService wires the storage directories and PDF layout from
// DefaultEnvConfig. Config must already be loaded.
func NewTableService(ctx context.Context) (service.TableService, error) {
	cfg := config.DefaultEnvConfig

	repo, err := repository.NewFileRepository(cfg.UPLOAD_DIR, cfg.OUTPUT_DIR)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	layout := simplepdf.DefaultLayout()
	if cfg.PDF_LAYOUT_FILE != "" {
		layout, err = simplepdf.NewLayoutFromYamlFile(cfg.PDF_LAYOUT_FILE)
		if err != nil {
			return nil, fmt.Errorf("failed to load pdf layout: %w", err)
		}
		logger.InfoLog(ctx, "PDF layout loaded from %s", cfg.PDF_LAYOUT_FILE)
	}

	renderer := simplepdf.NewRenderer(layout)
	logger.DebugLog(ctx, "PDF layout: %+v", renderer.Layout())

	return service.NewTableService(repo, renderer, cfg.KEEP_UPLOADS), nil
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.RequestID())
	a.Echo.Use(requestContext)
	a.Echo.Use(middleware.Logger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
	a.Echo.Use(middleware.BodyLimit(config.DefaultEnvConfig.MAX_UPLOAD_SIZE))
}

// requestContext copies the request id set by middleware.RequestID into the
// request context so service logs carry it.
func requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Response().Header().Get(echo.HeaderXRequestID)
		if id != "" {
			req := c.Request()
			c.SetRequest(req.WithContext(logger.WithRequestID(req.Context(), id)))
		}
		return next(c)
	}
}

func (a *App) RegisterRoutes(tableHandler *handler.TableHandler) {
	a.Echo.Static("/", config.DefaultEnvConfig.STATIC_DIR)
	a.Echo.GET("/healthz", tableHandler.HealthHandler)
	a.Echo.POST("/upload", tableHandler.UploadHandler)
	a.Echo.POST("/generate_pdf", tableHandler.GeneratePDFHandler)
	a.Echo.POST("/generate_xlsx", tableHandler.GenerateXLSXHandler)
	a.Echo.GET("/download/:filename", tableHandler.DownloadHandler)
}

func (a *App) Run() error {
	return a.Echo.Start(":" + config.DefaultEnvConfig.APP_PORT)
}
