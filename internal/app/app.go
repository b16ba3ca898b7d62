package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/livesitter/livesitter-backend/internal/db"
	"github.com/livesitter/livesitter-backend/internal/http/handlers"
	"github.com/livesitter/livesitter-backend/internal/pkg/logger"
	"github.com/livesitter/livesitter-backend/internal/repos"
	"github.com/livesitter/livesitter-backend/internal/server"
	"github.com/livesitter/livesitter-backend/internal/services"
)

type App struct {
	Log    *logger.Logger
	Cfg    Config
	Mongo  *db.MongoService
	Router *gin.Engine
}

// New wires the whole service: logger, config, store, repo, service,
// handlers, router. The store must be reachable or New fails and the
// process should exit without serving traffic.
func New(ctx context.Context) (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfg := LoadConfig(log)

	mongoService, err := db.NewMongoService(ctx, cfg.MongoURI, cfg.MongoDBName, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init mongo: %w", err)
	}

	overlayRepo := repos.NewOverlayRepo(mongoService.Collection(repos.OverlayCollection), log)
	overlayService := services.NewOverlayService(log, overlayRepo)

	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		OverlayHandler: handlers.NewOverlayHandler(log, overlayService),
		MetaHandler:    handlers.NewMetaHandler(),
		CORSOrigins:    cfg.CORSOrigins,
	})

	return &App{
		Log:    log,
		Cfg:    cfg,
		Mongo:  mongoService,
		Router: router,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(fmt.Sprintf(":%d", a.Cfg.Port))
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Mongo.Close(ctx); err != nil {
			a.Log.Warn("Mongo disconnect failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
