package client

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rcorral/go-robinhood/internal/config"
	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/mock"
	"github.com/rcorral/go-robinhood/internal/service"
	"github.com/rcorral/go-robinhood/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller, appCfg config.ClientApp) (*App, *mock.MockAPIAdapter, *bytes.Buffer) {
	t.Helper()

	mockAdapter := mock.NewMockAPIAdapter(ctrl)
	bus := events.NewBus()
	services := service.NewClientServices(mockAdapter, session.New(), bus,
		config.ClientAuth{RecoveryTimeout: time.Minute}, logger.Nop())

	cfg := &config.ClientConfig{
		App:     appCfg,
		Workers: config.ClientWorkers{RefreshInterval: time.Hour},
	}

	app, err := NewApp(services, bus, cfg, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app.out = out
	return app, mockAdapter, out
}

func TestRun_TokenPathPrintsQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAdapter, out := newTestApp(t, ctrl, config.ClientApp{AuthToken: "tok"})

	gomock.InOrder(
		mockAdapter.EXPECT().
			Get(gomock.Any(), "/accounts/", gomock.Nil()).
			Return([]byte(`{"results":[{"account_number":"XYZ","url":"u"}]}`), nil),
		mockAdapter.EXPECT().
			Get(gomock.Any(), "/quotes/", gomock.Any()).
			Return([]byte(`{"results":[{"symbol":"AAPL","last_trade_price":"178.10"}]}`), nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"aapl"}))

	assert.Contains(t, out.String(), "session established")
	assert.Contains(t, out.String(), "AAPL")
	assert.Contains(t, out.String(), "178.10")
}

func TestRun_MFAPromptCompletesLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAdapter, out := newTestApp(t, ctrl, config.ClientApp{Username: "jdoe", Password: "hunter2"})
	app.in = strings.NewReader("123456\n")

	gomock.InOrder(
		mockAdapter.EXPECT().
			Post(gomock.Any(), "/api-token-auth/", gomock.Any()).
			Return([]byte(`{"mfa_required":true,"mfa_type":"sms"}`), nil),
		mockAdapter.EXPECT().
			Post(gomock.Any(), "/api-token-auth/", gomock.Any()).
			Return([]byte(`{"token":"tok-mfa"}`), nil),
		mockAdapter.EXPECT().
			Get(gomock.Any(), "/accounts/", gomock.Nil()).
			Return([]byte(`{"results":[{"account_number":"XYZ"}]}`), nil),
	)

	require.NoError(t, app.Run(context.Background(), nil))

	assert.Contains(t, out.String(), "MFA code (sms):")
	assert.Contains(t, out.String(), "no symbols requested")
}

func TestRun_LoginFailureSurfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockAdapter, _ := newTestApp(t, ctrl, config.ClientApp{Username: "jdoe", Password: "wrong"})

	mockAdapter.EXPECT().
		Post(gomock.Any(), "/api-token-auth/", gomock.Any()).
		Return([]byte(`{}`), nil)

	err := app.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestRun_NoAuthConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, _ := newTestApp(t, ctrl, config.ClientApp{})

	err := app.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no auth token and no credentials")
}
