package main

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/disco-express/kiosk/internal/charts"
	"github.com/disco-express/kiosk/internal/client"
	"github.com/disco-express/kiosk/internal/config"
	"github.com/disco-express/kiosk/internal/docsync"
	"github.com/disco-express/kiosk/internal/logger"
	"github.com/disco-express/kiosk/internal/models"
	"github.com/disco-express/kiosk/internal/monitor"
	"github.com/disco-express/kiosk/internal/pipeline"
	"github.com/disco-express/kiosk/internal/profanity"
)

// app wires the kiosk core together. The UI shell calls Submit, State
// and Charts; the monitor and document syncer run in the background.
type app struct {
	monitor  *monitor.Monitor
	docs     *docsync.Syncer
	pipeline *pipeline.Pipeline
	charts   *charts.Manager
}

func newApp(cfg config.Config, c client.Client) (*app, error) {
	filter, err := profanity.New(cfg.SlursFile)
	if err != nil {
		return nil, err
	}

	manager, err := charts.NewManager(cfg.ChartsFile, cfg.ChartsThreshold)
	if err != nil {
		return nil, err
	}

	mon := monitor.New(c, cfg.StatusInterval)
	mon.Subscribe(func(state models.ServerStatus) {
		logger.Log.Debug("connection state", zap.String("status", string(state)))
	})

	docs := docsync.New(c, cfg.DocumentsDir, cfg.DocumentInterval, func() {
		logger.Log.Debug("document cache refreshed")
	})

	return &app{
		monitor:  mon,
		docs:     docs,
		pipeline: pipeline.New(c, filter, manager),
		charts:   manager,
	}, nil
}

// Submit runs one music request submission. Exposed to the UI shell.
func (a *app) Submit(ctx context.Context, form pipeline.FormValues) error {
	return a.pipeline.Submit(ctx, form)
}

// State reports current server reachability. Exposed to the UI shell.
func (a *app) State() models.ServerStatus {
	return a.monitor.State()
}

// Charts returns the current leaderboard. Exposed to the UI shell.
func (a *app) Charts() []models.Song {
	return a.charts.List()
}

// run starts the background loops and blocks until ctx is cancelled.
func (a *app) run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.monitor.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		a.docs.Run(ctx)
	}()
	wg.Wait()
}
