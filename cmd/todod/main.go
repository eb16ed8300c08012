package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sandeepkv93/todod/internal/config"
	"github.com/sandeepkv93/todod/internal/digest"
	"github.com/sandeepkv93/todod/internal/reminder"
	"github.com/sandeepkv93/todod/internal/storage"
	"github.com/sandeepkv93/todod/internal/todo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todod failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := storage.MigrateUp(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	repo, err := storage.NewSQLiteRepository(db)
	if err != nil {
		return err
	}

	svc := todo.NewService(repo)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := reminder.NewEngine(cfg.ReminderBuffer)
	engine.Start()
	defer engine.Stop()

	dispatcher := reminder.NewDispatcher(repo, engine, reminder.NewLogNotifier(log), log)
	if err := dispatcher.Refresh(ctx); err != nil {
		log.Warn("initial reminder refresh failed", "err", err)
	}
	go dispatcher.Run(ctx)

	digester := digest.NewDigester(svc, repo, digest.NewLogSink(log), log)
	sched := digest.NewScheduler(loc)
	if _, err := sched.ScheduleDaily(cfg.DigestTime, func() {
		if err := digester.RunOnce(ctx, time.Now().In(loc)); err != nil {
			log.Warn("daily digest run failed", "err", err)
		}
	}); err != nil {
		return err
	}
	if _, err := sched.ScheduleEvery(cfg.ReminderRefreshInterval(), func() {
		if err := dispatcher.Refresh(ctx); err != nil {
			log.Warn("reminder refresh failed", "err", err)
		}
	}); err != nil {
		return err
	}
	sched.Start()
	defer sched.Stop()

	log.Info("todod started",
		"db_path", cfg.DBPath,
		"digest_time", cfg.DigestTime,
		"timezone", loc.String(),
	)

	<-ctx.Done()
	log.Info("shutting down")
	return nil
}
