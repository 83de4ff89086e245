package app

import (
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/dayclock/internal/config"
	"github.com/ayoisaiah/dayclock/internal/i18n"
	"github.com/ayoisaiah/dayclock/internal/pathutil"
	"github.com/ayoisaiah/dayclock/internal/ui"
	"github.com/ayoisaiah/dayclock/store"
	"github.com/ayoisaiah/dayclock/timer"
)

// env is the configuration and storage opened for a single command.
type env struct {
	cfg      *config.Config
	kv       store.KV
	sessions *store.Sessions
	runState *store.RunState
	tr       *i18n.Translator
	closed   bool
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(path),
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)
}

func openEnv(ctx *cli.Context) (*env, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(cfg.Storage.Driver, cfg.DBPath())
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.DebugContext(
		ctx.Context,
		"storage opened",
		slog.String("driver", cfg.Storage.Driver),
		slog.String("path", cfg.DBPath()),
	)

	return newEnv(cfg, kv), nil
}

func newEnv(cfg *config.Config, kv store.KV) *env {
	return &env{
		cfg:      cfg,
		kv:       kv,
		sessions: store.NewSessions(kv),
		runState: store.NewRunState(kv),
		tr:       i18n.New(cfg.Display.Language),
	}
}

func (e *env) Close() {
	if e.closed {
		return
	}

	e.closed = true

	err := e.kv.Close()
	if err != nil {
		slog.Warn("closing storage failed", slog.Any("error", err))
	}
}

func (e *env) defaultName() string {
	return e.tr.T(i18n.UnnamedSession)
}

// machine returns a timer machine backed by the opened storage.
func (e *env) machine(opts ...timer.Option) *timer.Machine {
	opts = append([]timer.Option{
		timer.WithDefaults(e.defaultName(), e.cfg.Session.DefaultColor),
	}, opts...)

	return timer.New(e.sessions, e.runState, opts...)
}

// hooks returns the configured post-save hooks.
func (e *env) hooks() ([]timer.Hook, error) {
	var hooks []timer.Hook

	cmdHook, err := timer.SessionCmdHook(e.cfg.Settings.Cmd)
	if err != nil {
		return nil, err
	}

	if cmdHook != nil {
		hooks = append(hooks, cmdHook)
	}

	if e.cfg.Settings.Notify {
		hooks = append(hooks, timer.NotifyHook())
	}

	return hooks, nil
}

func (e *env) timeFormat() string {
	if e.cfg.Display.TwentyFourHour {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}
