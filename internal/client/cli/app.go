package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pocketauth/internal/client/config"
	"github.com/dmitrijs2005/pocketauth/internal/filex"
	"github.com/dmitrijs2005/pocketauth/internal/i18n"
	"github.com/dmitrijs2005/pocketauth/internal/kvstore"
	"github.com/dmitrijs2005/pocketauth/internal/logging"
	"github.com/dmitrijs2005/pocketauth/internal/session"
)

// SessionManager is the part of *session.Manager the screens use.
type SessionManager interface {
	RestoreSession(ctx context.Context)
	Register(ctx context.Context, name, email string, password []byte) bool
	Login(ctx context.Context, email string, password []byte) bool
	Logout(ctx context.Context)
	Current() (session.Session, bool)
	State() session.State
}

type App struct {
	sessions SessionManager
	tr       *i18n.Translator
	logger   logging.Logger
	store    io.Closer
	screen   Screen
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the configured store and builds the session manager on top of
// it. The session is not restored until Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	tr, err := i18n.New(c.Lang)
	if err != nil {
		return nil, err
	}

	opts, err := storeOptions(c)
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(ctx, opts)
	if err != nil {
		logger.Error(ctx, "error opening store", "driver", c.StoreDriver, "error", err)
		return nil, err
	}

	sessions := session.NewManager(store, logger)

	return &App{
		sessions: sessions,
		tr:       tr,
		logger:   logger,
		store:    store,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func storeOptions(c *config.Config) (kvstore.Options, error) {
	opts := kvstore.Options{
		Driver:      c.StoreDriver,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisKeyPrefix,
	}
	if c.StoreDriver == kvstore.DriverSQLite {
		path, err := filex.DataFile(c.DataDir, c.StoreFile)
		if err != nil {
			return opts, fmt.Errorf("prepare data dir: %w", err)
		}
		opts.SQLitePath = kvstore.SQLiteDSN(path)
	}
	return opts, nil
}

// Run restores the session, shows the first screen and serves commands from
// stdin until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)
	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		a.logger.Error(ctx, "error closing store", "error", err)
	}
}
