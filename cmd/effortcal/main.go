package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/effortcal/internal/artifact"
	"github.com/alexanderramin/effortcal/internal/cli"
	"github.com/alexanderramin/effortcal/internal/config"
	"github.com/alexanderramin/effortcal/internal/db"
	"github.com/alexanderramin/effortcal/internal/metrics"
	"github.com/alexanderramin/effortcal/internal/render"
	"github.com/alexanderramin/effortcal/internal/repository"
	"github.com/alexanderramin/effortcal/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	// A missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, err := service.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	observer := service.NewLogUseCaseObserver(os.Stderr, level)

	database, err := db.OpenDB(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	records := repository.NewSQLiteTimeRecordRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	rules := cfg.Rules()

	style := render.Style{
		Width:       cfg.Width,
		Height:      cfg.Height,
		TitleFormat: cfg.Title,
		Rules:       rules,
	}

	var recorder service.RenderRecorder
	if cfg.MetricsTextfile != "" {
		rec := metrics.NewRecorder()
		recorder = rec
		defer func() {
			if werr := rec.WriteTextfile(cfg.MetricsTextfile); werr != nil {
				err = errors.Join(err, werr)
			}
		}()
	}

	app := &cli.App{
		Records:     service.NewRecordService(records, uow, rules, observer),
		Calendar:    service.NewCalendarService(records, artifact.FileWriter{}, style, recorder, observer),
		Rules:       rules,
		OutTemplate: cfg.Out,
		Interactive: cli.StdinIsTerminal,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
