package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/notin-app/notin-service/internal/dao"
	"github.com/notin-app/notin-service/internal/domain"
	"github.com/notin-app/notin-service/internal/extractor"
	"github.com/notin-app/notin-service/internal/service"
	"github.com/notin-app/notin-service/internal/synthesizer"
	pkgapp "github.com/notin-app/notin-service/pkg/app"
	"github.com/notin-app/notin-service/pkg/transcript"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App wraps all dependencies and services.
type App struct {
	config *AppConfig
	logger *zap.Logger
	DB     *gorm.DB
	Dao    *dao.Dao

	StartTime time.Time

	NoteRepo domain.NoteRepository
	UserRepo domain.UserRepository

	NoteService service.NoteService
	UserService service.UserService

	TokenManager pkgapp.TokenManager
	Synthesizer  synthesizer.Synthesizer
	Extractors   *extractor.Registry
}

// NewApp builds the application container and injects every
// dependency.
func NewApp(ctx context.Context, cfg *AppConfig, logger *zap.Logger, db *gorm.DB) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		DB:        db,
		StartTime: time.Now(),
	}

	a.Dao = dao.New(db)

	a.TokenManager = pkgapp.NewTokenManager(
		cfg.Security.AuthTokenKey,
		Name,
		cfg.GetTokenExpiry(),
	)

	a.NoteRepo = dao.NewNoteRepository(a.Dao)
	a.UserRepo = dao.NewUserRepository(a.Dao)

	if cfg.AI.Provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider %q", cfg.AI.Provider)
	}
	syn, err := synthesizer.NewGeminiSynthesizer(ctx, synthesizer.Config{
		APIKey:     cfg.AI.APIKey,
		Model:      cfg.AI.Model,
		APIVersion: cfg.AI.APIVersion,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}
	a.Synthesizer = syn

	fetcher := transcript.NewClient(
		&http.Client{Timeout: 30 * time.Second},
		cfg.AI.TranscriptLanguages...,
	)

	a.Extractors = extractor.NewRegistry()
	a.Extractors.Register(domain.SourceTypeYouTube, extractor.NewYouTubeExtractor(fetcher, logger))
	a.Extractors.Register(domain.SourceTypePDF, extractor.NewPDFExtractor(logger))
	a.Extractors.Register(domain.SourceTypeDOCX, extractor.NewDOCXExtractor(logger))

	svcConfig := &service.ServiceConfig{
		User: service.UserServiceConfig{
			RegisterIsEnable: cfg.User.RegisterIsEnable,
		},
	}

	a.NoteService = service.NewNoteService(a.NoteRepo, a.Extractors, a.Synthesizer, logger)
	a.UserService = service.NewUserService(a.UserRepo, a.TokenManager, logger, svcConfig)

	logger.Info("App container initialized",
		zap.String("aiModel", cfg.AI.Model),
		zap.String("dbType", cfg.Database.Type),
	)

	return a, nil
}

// Close releases the container's resources.
func (a *App) Close() error {
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
		a.logger.Info("Database connection closed")
	}
	return nil
}

func (a *App) Config() *AppConfig {
	return a.config
}

func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version returns build information.
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// GetAuthTokenKey returns the token signing secret.
func (a *App) GetAuthTokenKey() string {
	return a.config.Security.AuthTokenKey
}
