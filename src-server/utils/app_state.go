package utils

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"sync"

	"careerhub/src-server/calendarlink"
	"careerhub/src-server/model"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type AppState struct {
	Config      *Config
	RawDB       *sql.DB
	BunDB       *bun.DB
	MetricChans *Metric
	LinkBuilder *calendarlink.Builder

	// SIGINT/SIGTERM land here; main waits on it
	AppCloseSignalChan chan os.Signal

	gracefulShutdownMu    sync.Mutex
	gracefulShutdownChans []*chan struct{}
}

func NewAppState() *AppState {
	// env
	config := NewConfig()

	// database
	rawDB, err := sql.Open(sqliteshim.ShimName, "file:"+config.GetDatabasePath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	rawDB.SetMaxIdleConns(8)

	as := NewAppStateFromDB(config, rawDB)
	if err := model.CreateSchema(context.Background(), as.BunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}
	return as
}

// Wire an AppState around an already opened database.
func NewAppStateFromDB(config *Config, rawDB *sql.DB) *AppState {
	as := &AppState{
		Config:             config,
		RawDB:              rawDB,
		MetricChans:        NewMetric(),
		AppCloseSignalChan: make(chan os.Signal, 1),
	}

	as.BunDB = bun.NewDB(rawDB, sqlitedialect.New())
	as.BunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(true),
		bundebug.FromEnv("BUNDEBUG"),
	))

	as.LinkBuilder = calendarlink.NewBuilder(
		calendarlink.WithLocation(config.GetTimezone(), config.GetLocation()),
		calendarlink.WithFooter(config.GetCalendarFooter()),
	)

	return as
}

// Create a channel that is closed once GracefulShutdown runs.
func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.gracefulShutdownMu.Lock()
	defer as.gracefulShutdownMu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, &ch)
	return &ch
}

// Notify every background worker, then close the database.
func (as *AppState) GracefulShutdown() {
	as.gracefulShutdownMu.Lock()
	for _, ch := range as.gracefulShutdownChans {
		close(*ch)
	}
	as.gracefulShutdownChans = nil
	as.gracefulShutdownMu.Unlock()

	if as.BunDB != nil {
		if err := as.BunDB.Close(); err != nil {
			slog.Warn("can't close database", "error", err)
		}
	}
}
