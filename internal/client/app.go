package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rcorral/go-robinhood/internal/config"
	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/service"
	"github.com/rcorral/go-robinhood/internal/workers"
	"github.com/rcorral/go-robinhood/models"
)

// App drives one client session: log in, keep the session alive in the
// background, and answer the market-data queries given on the command line.
type App struct {
	services *service.ClientServices
	bus      *events.Bus
	cfg      *config.ClientConfig
	logger   *logger.Logger

	// in/out are the interactive streams, swappable in tests
	in  io.Reader
	out io.Writer
}

func NewApp(services *service.ClientServices, bus *events.Bus, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if services == nil || bus == nil || cfg == nil {
		return nil, errors.New("client app: missing dependencies")
	}
	return &App{
		services: services,
		bus:      bus,
		cfg:      cfg,
		logger:   log,
		in:       os.Stdin,
		out:      os.Stdout,
	}, nil
}

// Run implements [Client]. It blocks until the session is established and
// every requested symbol has been reported, then shuts the keep-alive down.
func (a *App) Run(ctx context.Context, symbols []string) error {
	sub := a.bus.Subscribe()
	defer sub.Close()

	opts, err := a.authOptions()
	if err != nil {
		return err
	}

	if err = a.services.AuthService.Authenticate(ctx, opts); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}
	if err = a.awaitSession(ctx, sub); err != nil {
		return err
	}

	keepAlive := newSessionKeepAlive(ctx, a.services.SessionJob, a.cfg.Workers.RefreshInterval)
	workers.NewWorkers(keepAlive).Run()
	defer a.services.SessionJob.Stop()

	if len(symbols) == 0 {
		fmt.Fprintln(a.out, "session established; no symbols requested")
		return nil
	}
	return a.printQuotes(ctx, symbols)
}

// authOptions maps the configuration onto the token or credential login path.
func (a *App) authOptions() (service.AuthOptions, error) {
	if a.cfg.App.AuthToken != "" {
		return service.AuthOptions{AuthToken: a.cfg.App.AuthToken}, nil
	}
	if a.cfg.App.Username != "" && a.cfg.App.Password != "" {
		return service.AuthOptions{Credentials: &models.Credentials{
			Username: a.cfg.App.Username,
			Password: a.cfg.App.Password,
		}}, nil
	}
	return service.AuthOptions{}, errors.New("no auth token and no credentials configured")
}

// awaitSession consumes lifecycle events until the session is authenticated,
// answering at most one MFA challenge interactively along the way.
func (a *App) awaitSession(ctx context.Context, sub *events.Subscription) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-sub.C:
			switch e.Type {
			case events.Authenticated:
				fmt.Fprintln(a.out, "session established")
				return nil
			case events.MFARequested:
				code, err := a.promptMFACode(e.MFAType)
				if err != nil {
					return err
				}
				if err = a.services.AuthService.LoginWithMFA(ctx, code); err != nil {
					return fmt.Errorf("mfa login: %w", err)
				}
			case events.Error, events.Critical:
				return fmt.Errorf("login failed: %s: %s", e.Code, e.Message)
			}
		}
	}
}

func (a *App) promptMFACode(mfaType string) (string, error) {
	fmt.Fprintf(a.out, "MFA code (%s): ", mfaType)
	scanner := bufio.NewScanner(a.in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read mfa code: %w", err)
		}
		return "", errors.New("no mfa code entered")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

func (a *App) printQuotes(ctx context.Context, symbols []string) error {
	quotes, err := a.services.MarketService.Quote(ctx, symbols...)
	if err != nil {
		return fmt.Errorf("quotes: %w", err)
	}

	for _, q := range quotes {
		fmt.Fprintf(a.out, "%-8s last %-12s bid %-12s ask %-12s\n",
			q.Symbol, q.LastTradePrice, q.BidPrice, q.AskPrice)
	}
	a.logger.Info().Int("quotes", len(quotes)).Msg("symbols reported")
	return nil
}

// sessionKeepAlive adapts the session probe job to the workers runner.
type sessionKeepAlive struct {
	run func()
}

func newSessionKeepAlive(ctx context.Context, job service.ClientSessionJob, interval time.Duration) *sessionKeepAlive {
	return &sessionKeepAlive{run: func() { job.Start(ctx, interval) }}
}

func (w *sessionKeepAlive) Run() {
	w.run()
}
