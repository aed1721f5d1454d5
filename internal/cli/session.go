package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/paramlink"
	"github.com/aretw0/paramlink/internal/config"
	"github.com/aretw0/paramlink/pkg/adapters/file"
	"github.com/aretw0/paramlink/pkg/adapters/memory"
	"github.com/aretw0/paramlink/pkg/adapters/redis"
	"github.com/aretw0/paramlink/pkg/adapters/scene"
	"github.com/aretw0/paramlink/pkg/adapters/sqlite"
	"github.com/aretw0/paramlink/pkg/domain"
	"github.com/aretw0/paramlink/pkg/persistence/middleware"
	"github.com/aretw0/paramlink/pkg/ports"
)

// Session is a control mounted on a scene, with its snapshot store.
type Session struct {
	Control *paramlink.Control
	Scene   *scene.Host
	Store   ports.SnapshotStore
}

// Presenter supplies the widgets and error sink of a session.
type Presenter struct {
	Widgets ports.WidgetFactory
	Errors  ports.ErrorSink
	Hooks   domain.LifecycleHooks
}

// LoadScene reads the fixture named by cfg.Scene, or the built-in demo scene.
func LoadScene(cfg config.Config) (*scene.Fixture, error) {
	if cfg.Scene == "" {
		return scene.Demo(), nil
	}
	return scene.LoadFile(cfg.Scene)
}

// OpenStore creates the snapshot store selected by cfg, sealed with
// cfg.EncryptionKey when one is configured.
func OpenStore(cfg config.StoreConfig) (ports.SnapshotStore, error) {
	store, err := openBackend(cfg)
	if err != nil || cfg.EncryptionKey == "" {
		return store, err
	}
	key, err := middleware.ParseKey(cfg.EncryptionKey)
	if err == nil {
		var mw middleware.Middleware
		if mw, err = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}); err == nil {
			return middleware.Chain(store, mw), nil
		}
	}
	if c, ok := store.(io.Closer); ok {
		_ = c.Close()
	}
	return nil, fmt.Errorf("store encryption: %w", err)
}

func openBackend(cfg config.StoreConfig) (ports.SnapshotStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return memory.NewStore(), nil
	case "file":
		return file.New(cfg.Dir), nil
	case "redis":
		return redis.New(cfg.RedisAddr, "", 0, redis.WithPrefix(cfg.RedisPrefix)), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// NewSession builds the scene, opens the store and mounts a control.
// A stored snapshot for cfg.ControlID wins over the fixture's control section.
func NewSession(ctx context.Context, cfg config.Config, p Presenter, logger *slog.Logger) (*Session, error) {
	fixture, err := LoadScene(cfg)
	if err != nil {
		return nil, err
	}
	store, err := OpenStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	host := fixture.Build()
	ctl := paramlink.New(host.Scene.Attachment, paramlink.Host{
		Registry: host.Registry,
		Widgets:  p.Widgets,
		Errors:   p.Errors,
	},
		paramlink.WithID(cfg.ControlID),
		paramlink.WithLabel(cfg.Label),
		paramlink.WithPruneMissingTarget(cfg.PruneMissingTarget),
		paramlink.WithStore(store),
		paramlink.WithLogger(logger),
		paramlink.WithLifecycleHooks(p.Hooks),
	)

	s := &Session{Control: ctl, Scene: host, Store: store}

	switch err := ctl.Load(ctx); {
	case err == nil:
		logger.Info("restored control", "id", cfg.ControlID, "backend", cfg.Store.Backend)
	case errors.Is(err, domain.ErrSnapshotNotFound):
		if fixture.Control != nil {
			ctl.Restore(*fixture.Control)
		}
	default:
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the control and the store.
func (s *Session) Close() error {
	s.Control.Destroy()
	if c, ok := s.Store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
