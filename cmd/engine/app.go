package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ondemand-engine/internal/api"
	"ondemand-engine/internal/config"
	"ondemand-engine/internal/events"
	"ondemand-engine/internal/form"
	"ondemand-engine/internal/secrets"
	"ondemand-engine/internal/state"
	"ondemand-engine/internal/store"
)

type rootOpts struct {
	dataDir string
	envFile string
	debug   bool
}

// app is everything a command needs, built once per invocation.
type app struct {
	dataDir string
	cfgPath string
	cfg     config.Config
	log     *slog.Logger

	session *secrets.Store
	client  *api.Client
	auth    *api.AuthService
	posts   *api.PostService
	hub     *events.Hub
	state   *state.Store
}

// resolveDataDir prefers the flag, then ONDEMAND_DATA_DIR (the desktop
// shell passes one), then the working directory.
func resolveDataDir(flag string) string {
	if d := strings.TrimSpace(flag); d != "" {
		return d
	}
	if d := strings.TrimSpace(os.Getenv("ONDEMAND_DATA_DIR")); d != "" {
		return d
	}
	return "."
}

func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func newLogger(debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func openApp(opts *rootOpts) (*app, error) {
	if err := loadEnvFile(opts.envFile); err != nil {
		return nil, err
	}
	log := newLogger(opts.debug)
	slog.SetDefault(log)

	dataDir := resolveDataDir(opts.dataDir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	cfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		return nil, fmt.Errorf("config bootstrap failed: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", cfgPath, err)
	}
	config.OverlayEnv(&cfg)

	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Warn("config", slog.String("component", "config"), slog.String("warning", w))
	}
	if !vr.OK() {
		return nil, fmt.Errorf("invalid config %s: %s", cfgPath, strings.Join(vr.Errors, "; "))
	}

	kv, err := secrets.OpenKV(cfg, dataDir)
	if err != nil {
		return nil, err
	}
	session := secrets.NewStore(kv)

	client := api.New(cfg, session, api.WithLogger(log))
	hub := events.NewHub()
	a := &app{
		dataDir: dataDir,
		cfgPath: cfgPath,
		cfg:     cfg,
		log:     log,
		session: session,
		client:  client,
		auth:    api.NewAuthService(client),
		posts:   api.NewPostService(client),
		hub:     hub,
	}
	a.state = state.New(a.auth, a.posts,
		state.WithPublisher(hub),
		state.WithRules(form.RulesFromConfig(cfg)),
		state.WithLogger(log),
	)
	client.SetUnauthorizedHandler(a.state.HandleUnauthorized)
	return a, nil
}

func (a *app) openDirectory(ctx context.Context) (*store.DB, error) {
	return store.OpenDir(ctx, a.dataDir)
}
