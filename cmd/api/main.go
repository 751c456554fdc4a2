// @title PetPal API
// @version 1.0
// @description Tareas de cuidado y visitas al veterinario.
// @BasePath /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petpal/internal/adapters/storage/orm"
	"petpal/internal/domain/tasks"
	"petpal/internal/platform/config"
	"petpal/internal/platform/logger"
	"petpal/internal/platform/scheduler"
	"petpal/internal/router"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type serveFlags struct {
	configPath string
	addr       string
	dbDriver   string
	dbDSN      string
	resetAt    string
}

func newRootCmd() *cobra.Command {
	var f serveFlags

	cmd := &cobra.Command{
		Use:           "petpal-api",
		Short:         "PetPal HTTP API (tareas y visitas al veterinario)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd.Flags(), &cfg, f)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "ruta a un archivo TOML (default $"+config.EnvConfigPath+")")
	flags.StringVar(&f.addr, "addr", "", "dirección de escucha, p.ej. :8080")
	flags.StringVar(&f.dbDriver, "db-driver", "", "sqlite | postgres")
	flags.StringVar(&f.dbDSN, "db-dsn", "", "archivo SQLite o DSN de Postgres")
	flags.StringVar(&f.resetAt, "daily-reset-at", "", "HH:MM para resetear tareas diarias (vacío = desactivado)")

	return cmd
}

// applyFlags: solo los flags seteados explícitamente pisan archivo/env.
func applyFlags(flags *pflag.FlagSet, cfg *config.Config, f serveFlags) {
	if flags.Changed("addr") {
		cfg.Server.Addr = f.addr
	}
	if flags.Changed("db-driver") {
		cfg.Database.Driver = f.dbDriver
	}
	if flags.Changed("db-dsn") {
		cfg.Database.DSN = f.dbDSN
	}
	if flags.Changed("daily-reset-at") {
		cfg.Jobs.DailyResetAt = f.resetAt
	}
}

func serve(parent context.Context, cfg config.Config) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	store, err := orm.Open(ctx, orm.Options{
		Driver:        cfg.Database.Driver,
		DSN:           cfg.Database.DSN,
		Logger:        log,
		SlowThreshold: cfg.Database.SlowThreshold.Duration,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	log.Info("store ready", map[string]any{"driver": store.Driver()})

	if cfg.Jobs.DailyResetAt != "" {
		sched := scheduler.New(time.Local, log)
		svc := tasks.NewService(store.TaskSessions())
		_, err := sched.ScheduleDaily("daily-reset", cfg.Jobs.DailyResetAt, func(ctx context.Context) error {
			n, err := svc.ResetDaily(ctx)
			if err != nil {
				return err
			}
			log.Info("daily tasks reset", map[string]any{"tasks": n})
			return nil
		})
		if err != nil {
			return fmt.Errorf("schedule daily reset: %w", err)
		}
		sched.Start()
		defer sched.Stop()
		log.Info("daily reset scheduled", map[string]any{"at": cfg.Jobs.DailyResetAt})
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router.NewRouter(router.Options{Store: store, Logger: log}),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": cfg.Server.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("shutdown complete", nil)
	return nil
}
