package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/gg"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/thousand/internal/animation"
	"github.com/KirkDiggler/thousand/internal/assets"
	"github.com/KirkDiggler/thousand/internal/common/clock"
	"github.com/KirkDiggler/thousand/internal/common/uuid"
	"github.com/KirkDiggler/thousand/internal/config"
	"github.com/KirkDiggler/thousand/internal/dice"
	"github.com/KirkDiggler/thousand/internal/handlers/terminal"
	"github.com/KirkDiggler/thousand/internal/i18n"
	"github.com/KirkDiggler/thousand/internal/render"
	"github.com/KirkDiggler/thousand/internal/repositories/game"
	gameService "github.com/KirkDiggler/thousand/internal/services/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	gg.SetLogger(logger)

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}
	locale := bundle.Match(cfg.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gameRepo, closeRepo, err := newGameRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}
	defer closeRepo()

	// Initialize game service
	gameSvc, err := gameService.New(&gameService.Config{
		GameRepo:      gameRepo,
		DiceRoller:    dice.New(&dice.Config{Seed: cfg.Seed}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	// The animation only shows noise, so it gets its own roller and never
	// disturbs a seeded game
	animator, err := animation.New(&animation.Config{
		Frames:   cfg.AnimationFrames,
		Interval: cfg.AnimationInterval,
		Roller:   dice.New(&dice.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create animation: %v", err)
	}

	var renderer terminal.FrameRenderer
	var missingImages []string
	if cfg.FramePath != "" {
		faces := assets.Load(cfg.AssetDir, logger)
		placeholder, _ := bundle.Message(locale, "dice.missing_image")

		frames, err := render.New(&render.Config{
			Faces:       faces,
			Path:        cfg.FramePath,
			FontPath:    cfg.FontPath,
			Placeholder: placeholder,
			Logger:      logger,
		})
		if err != nil {
			log.Fatalf("Failed to create frame renderer: %v", err)
		}
		renderer = frames
		missingImages = faces.MissingFiles()
	}

	session, err := terminal.New(&terminal.Config{
		In:            os.Stdin,
		Out:           os.Stdout,
		GameService:   gameSvc,
		Animator:      animator,
		Bundle:        bundle,
		Locale:        locale,
		Renderer:      renderer,
		MissingImages: missingImages,
		Logger:        logger,
	})
	if err != nil {
		log.Fatalf("Failed to create terminal session: %v", err)
	}

	logger.Info("starting game", "locale", locale, "store", cfg.Store)

	err = session.Run(ctx)
	switch {
	case err == nil, errors.Is(err, terminal.ErrInputClosed), errors.Is(err, context.Canceled):
		logger.Info("game finished")
	default:
		log.Fatalf("Game failed: %v", err)
	}
}

// newGameRepository returns the configured game store and a function that releases it
func newGameRepository(cfg *config.Config) (game.Repository, func(), error) {
	if cfg.Store != config.StoreRedis {
		return game.NewMemory(), func() {}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,

		ContextTimeoutEnabled: true,
	})

	repo, err := game.NewRedis(&game.Config{
		RedisClient: redisClient,
		TTL:         cfg.StateTTL,
		PingTimeout: 5 * time.Second,
	})
	if err != nil {
		redisClient.Close()
		return nil, nil, err
	}

	return repo, func() { redisClient.Close() }, nil
}
