package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/ignite-timer/internal/adapters/ids"
	historyadapter "github.com/bnema/ignite-timer/internal/adapters/render/history"
	statusadapter "github.com/bnema/ignite-timer/internal/adapters/render/status"
	jsonrepo "github.com/bnema/ignite-timer/internal/adapters/repo/json"
	tomlrepo "github.com/bnema/ignite-timer/internal/adapters/repo/toml"
	chainstore "github.com/bnema/ignite-timer/internal/adapters/slots/chain"
	"github.com/bnema/ignite-timer/internal/application"
	"github.com/bnema/ignite-timer/internal/config"
	"github.com/bnema/ignite-timer/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg             config.Config
	logger          *slog.Logger
	session         *application.Session
	slots           *chainstore.Store
	statusRenderer  func(application.Snapshot, statusadapter.RenderOptions) (string, error)
	historyRenderer func(historyadapter.Document, time.Time) (string, error)
	now             func() time.Time
}

func wireApp(ctx context.Context, stderr io.Writer, verbose bool) (*app, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	repo, slots, err := wireRepository(cfg)
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	session := application.NewSession(ctx, repo,
		application.WithClock(clock),
		application.WithIDGenerator(ids.UUIDGenerator{}),
		application.WithLogger(logger),
		application.WithTracker(application.NewElapsedTracker(clock, ports.NewSystemTicker, cfg.TickInterval)),
	)

	logger.Debug("session ready", "state_format", cfg.StateFormat, "state_dir", cfg.StateDir, "cycles", len(session.Cycles()))

	return &app{
		cfg:             cfg,
		logger:          logger,
		session:         session,
		slots:           slots,
		statusRenderer:  statusadapter.Render,
		historyRenderer: historyadapter.Render,
		now:             time.Now,
	}, nil
}

func wireRepository(cfg config.Config) (ports.CycleStateRepository, *chainstore.Store, error) {
	switch cfg.StateFormat {
	case config.StateFormatTOML:
		v := viper.New()
		v.Set(config.KeyStatePath, cfg.StatePath)
		repo, err := tomlrepo.NewRepository(v)
		if err != nil {
			return nil, nil, fmt.Errorf("wire cycles repository: %w", err)
		}
		return repo, nil, nil
	default:
		slots, err := chainstore.NewFileFirstWithMemoryFallback(cfg.StateDir)
		if err != nil {
			return nil, nil, fmt.Errorf("wire slot store chain: %w", err)
		}
		return jsonrepo.NewRepository(slots), slots, nil
	}
}

// degraded reports whether this run lost access to durable storage, either
// in the slot chain or in the session itself.
func (a *app) degraded() bool {
	if a.session == nil {
		return false
	}
	if a.slots != nil && a.slots.Degraded() {
		return true
	}
	return a.session.Degraded()
}

func (a *app) close() {
	if a.session == nil {
		return
	}

	if a.slots != nil && a.slots.Degraded() {
		a.logger.Warn("state directory unavailable, changes from this run were kept in memory only", "state_dir", a.cfg.StateDir)
	}
	a.session.Close()
}
