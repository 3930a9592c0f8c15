package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bombsimon/team-betting-client/internal/cache"
	"github.com/bombsimon/team-betting-client/internal/config"
	"github.com/bombsimon/team-betting-client/internal/db"
	"github.com/bombsimon/team-betting-client/internal/logger"
	"github.com/bombsimon/team-betting-client/internal/repository"
	"github.com/bombsimon/team-betting-client/internal/repository/dao"
	"github.com/bombsimon/team-betting-client/internal/service"
	"github.com/bombsimon/team-betting-client/internal/session"
	"github.com/bombsimon/team-betting-client/internal/transport"
)

// Start wires the client core together and runs a fetch against the
// configured API, logging what it finds. Embedding view layers do the same
// wiring and drive the services from their own event loops.
func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	sessionDB, err := db.OpenSQLite(conf.Session.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize session database -> %w", err)
	}

	if err = dao.InitTables(sessionDB); err != nil {
		return fmt.Errorf("failed to migrate session database -> %w", err)
	}

	ctx := context.Background()

	store, err := session.NewStore(ctx, repository.NewSessionRepository(dao.NewKeyValueDAO(sessionDB)))
	if err != nil {
		return fmt.Errorf("failed to initialize session store -> %w", err)
	}

	var (
		entityCache = cache.New()
		client      = transport.NewClient(conf.API.BaseURL, conf.API.Timeout, store)
		flash       = func(level service.FlashLevel, message string) {
			zap.L().Info("flash", zap.String("level", string(level)), zap.String("message", message))
		}
		authService    = service.NewAuthService(client, entityCache, store, flash)
		bettingService = service.NewBettingService(client, entityCache, store, flash)
	)

	better, err := authService.CurrentBetter(ctx)
	switch {
	case err == nil:
		zap.L().Info("signed in", zap.String("name", better.Name), zap.String("email", better.Email))
	case errors.Is(err, service.ErrNotSignedIn):
		zap.L().Info("browsing anonymously")
	default:
		return fmt.Errorf("authService.CurrentBetter -> %w", err)
	}

	competitions, err := bettingService.LoadCompetitions(ctx)
	if err != nil {
		return fmt.Errorf("bettingService.LoadCompetitions -> %w", err)
	}

	for _, competition := range competitions {
		zap.L().Info("competition",
			zap.Int("id", competition.ID),
			zap.String("name", competition.Name),
			zap.Int("competitors", len(competition.Competitors)),
			zap.Int("min_score", competition.MinScore),
			zap.Int("max_score", competition.MaxScore),
		)
	}

	return nil
}
