package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/accbox/internal/adapter"
	"github.com/MKhiriev/accbox/internal/clipboard"
	"github.com/MKhiriev/accbox/internal/config"
	"github.com/MKhiriev/accbox/internal/logger"
	"github.com/MKhiriev/accbox/internal/otp"
	"github.com/MKhiriev/accbox/internal/popup"
	"github.com/MKhiriev/accbox/internal/service"
	"github.com/MKhiriev/accbox/internal/tui"
	"github.com/MKhiriev/accbox/internal/workers"
	"github.com/MKhiriev/accbox/models"
)

// ui is the part of [tui.TUI] the runtime depends on.
type ui interface {
	Run(ctx context.Context) error
}

// App is the accbox client process. It owns the background scheduler, the
// popup manager and the secure clipboard, and tears them down when the UI
// exits.
type App struct {
	ui        ui
	popup     *popup.Manager
	clipboard *clipboard.Manager
	stop      context.CancelFunc
	logger    *logger.Logger
}

// NewApp wires every client component from cfg.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	api, err := adapter.NewHTTPAdapter(cfg.Adapter, cfg.App, log.Component("adapter"))
	if err != nil {
		return nil, fmt.Errorf("create api adapter: %w", err)
	}

	generator := otp.NewGenerator(log.Component("otp"))
	services := service.NewServices(api, generator, cfg.TOTP, log)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler := workers.NewScheduler(ctx)
	bridge := tui.NewBridge()

	clip := clipboard.NewManager(
		clipboard.SystemClipboard{},
		clipboard.NewTerminalClipboard(os.Stdout),
		scheduler,
		cfg.Clipboard.ClearAfter,
		bridge.Notify,
		log.Component("clipboard"),
	)

	popups := popup.NewManager(
		services.TOTPService.Source(),
		clip,
		scheduler,
		bridge.Notify,
		log.Component("popup"),
		popup.WithInterval(cfg.TOTP.RefreshInterval),
		popup.WithListener(bridge.Frame),
	)

	view, err := tui.New(tui.Options{
		Services:  services,
		Popup:     popups,
		Clipboard: clip,
		Bridge:    bridge,
		BuildInfo: buildInfo,
	}, log.Component("tui"))
	if err != nil {
		cancel()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		ui:        view,
		popup:     popups,
		clipboard: clip,
		stop:      cancel,
		logger:    log,
	}, nil
}

// Run shows the UI until the user quits or the process receives SIGINT or
// SIGTERM. Both are a clean exit.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.shutdown()

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled):
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}

// shutdown closes the popup, wipes a pending secret from the clipboard and
// stops every remaining timer.
func (a *App) shutdown() {
	if a.popup != nil {
		a.popup.Close()
	}
	if a.clipboard != nil {
		a.clipboard.Close()
	}
	if a.stop != nil {
		a.stop()
	}
	a.logger.Info().Msg("client stopped")
}
