package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/inkveil/inkveil/internal/client/client"
	"github.com/inkveil/inkveil/internal/client/config"
	"github.com/inkveil/inkveil/internal/client/intake"
	"github.com/inkveil/inkveil/internal/client/orchestrator"
	"github.com/inkveil/inkveil/internal/client/repositories/history"
	"github.com/inkveil/inkveil/internal/client/repositories/settings"
	"github.com/inkveil/inkveil/internal/client/sink"
	"github.com/inkveil/inkveil/internal/client/tracker"
	"github.com/inkveil/inkveil/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config   *config.Config
	api      client.Client
	intake   *intake.Intake
	tracker  *tracker.Tracker
	orch     *orchestrator.Orchestrator
	settings settings.Repository
	history  history.Repository
	log      logging.Logger
	db       io.Closer
	Mode     Mode
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := client.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServiceEndpointURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	a := &App{
		config:   c,
		api:      apiClient,
		intake:   intake.New(),
		tracker:  tracker.New(),
		settings: repos.Settings,
		history:  repos.History,
		log:      logger,
		db:       repos.DB,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	resolver := sink.NewResolver(a.promptOutputDir, c.DownloadsDir, apiClient, logger)
	a.orch = orchestrator.New(apiClient, a.intake, a.tracker, resolver, repos.History, logger)

	return a, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the local database handle.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// StartHealthWatcher probes the service on a fixed interval and flips
// the connectivity mode accordingly. It blocks until ctx is cancelled,
// so run it in its own goroutine.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), a.config.HealthCheckTimeout)
			err := a.api.Ping(probeCtx)
			cancel()

			if err != nil {
				if a.Mode != ModeOffline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
