package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ondemand-engine/internal/config"
	"ondemand-engine/internal/events"
	"ondemand-engine/internal/httpapi"
	"ondemand-engine/internal/scheduler"
)

func newServeCmd(opts *rootOpts) *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the loopback HTTP engine for UI shells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			if port > 0 {
				a.cfg.App.Port = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port on 127.0.0.1 (overrides app.port)")
	return cmd
}

func serve(ctx context.Context, a *app, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	db, err := a.openDirectory(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := a.state.Bootstrap(ctx); err != nil {
		a.log.Warn("bootstrap incomplete", slog.String("component", "engine"), slog.String("error", err.Error()))
	}

	var cfgVal atomic.Value // stores config.Config
	cfgVal.Store(a.cfg)
	var syncStatus atomic.Value

	mux := httpapi.NewMux(httpapi.Deps{
		State:       a.state,
		Dir:         db,
		Uploader:    a.posts,
		Hub:         a.hub,
		Log:         a.log,
		CfgVal:      &cfgVal,
		SyncStatus:  &syncStatus,
		UserCfgPath: a.cfgPath,
		LoadCfg:     func() (config.Config, error) { return config.Load(a.cfgPath) },
		OnConfigSaved: func(c config.Config) {
			a.hub.Publish(events.MakeEvent("", events.TypeConfigSaved, map[string]string{"path": a.cfgPath}))
			a.log.Info("config saved; api and storage changes apply on next start",
				slog.String("component", "engine"), slog.String("path", a.cfgPath))
		},
	})

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(a.cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	token, err := randomToken(32)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.Recover(a.log),
			httpapi.AccessLog(a.log),
			httpapi.Cors,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}
	// SSE streams end when the hub closes, so Shutdown is not held open by them.
	srv.RegisterOnShutdown(a.hub.Close)
	mux.HandleFunc("/shutdown", shutdownHandler(token, srv, a.log))

	interval := time.Duration(a.cfg.Sync.ProfileRefreshSeconds) * time.Second
	go scheduler.Every(ctx, a.log, interval, "profile-refresh",
		scheduler.ProfileRefresh(a.state, a.hub, &syncStatus, nil))

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer scancel()
		_ = srv.Shutdown(sctx)
	}()

	// The desktop shell reads this line to learn how to stop the engine.
	fmt.Fprintf(out, "ENGINE_SHUTDOWN_TOKEN=%s\n", token)
	a.log.Info("engine listening",
		slog.String("component", "engine"),
		slog.String("addr", "http://"+addr),
		slog.String("data_dir", a.dataDir),
		slog.String("api", a.client.BaseURL()),
	)

	err = srv.Serve(ln)
	cancel()
	<-stopped
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
