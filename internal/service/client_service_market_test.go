package service

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/mock"
	"github.com/rcorral/go-robinhood/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMarketSvc(t *testing.T, ctrl *gomock.Controller) (ClientMarketService, *mock.MockAPIAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockAPIAdapter(ctrl)
	recovery := newRecoveryService(events.NewBus(), &stubReauthenticator{}, time.Minute, logger.Nop())
	return NewClientMarketService(mockAdapter, recovery, logger.Nop()), mockAdapter
}

func TestQuote_NormalizesSymbols(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketSvc(t, ctrl)

	body := []byte(`{"results":[{"symbol":"FB"},{"symbol":"AAPL"}]}`)
	mockAdapter.EXPECT().
		Get(gomock.Any(), endpointQuotes, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values) ([]byte, error) {
			assert.Equal(t, "FB,AAPL", query.Get("symbols"))
			return body, nil
		}).
		Times(2)

	// variadic lower-case symbols and one pre-joined string request the same thing
	first, err := svc.Quote(context.Background(), "fb", "AAPL")
	require.NoError(t, err)
	second, err := svc.Quote(context.Background(), "FB,AAPL")
	require.NoError(t, err)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "FB", first[0].Symbol)
}

func TestInstrument_ByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketSvc(t, ctrl)

	mockAdapter.EXPECT().
		Get(gomock.Any(), "/instruments/abc-123/", gomock.Nil()).
		Return([]byte(`{"id":"abc-123","symbol":"AAPL"}`), nil)

	inst, err := svc.Instrument(context.Background(), "abc-123")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", inst.Symbol)
}

func TestInstrumentBySymbol(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketSvc(t, ctrl)

	mockAdapter.EXPECT().
		Get(gomock.Any(), endpointInstruments, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values) ([]byte, error) {
			assert.Equal(t, "AAPL", query.Get("symbol"))
			return []byte(`{"results":[{"id":"abc-123","symbol":"AAPL"}]}`), nil
		})

	results, err := svc.InstrumentBySymbol(context.Background(), "aapl")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc-123", results[0].ID)
}

func TestFundamentals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketSvc(t, ctrl)

	mockAdapter.EXPECT().
		Get(gomock.Any(), "/fundamentals/SBUX/", gomock.Nil()).
		Return([]byte(`{"open":"28.50","market_cap":"42000000000"}`), nil)

	f, err := svc.Fundamentals(context.Background(), "sbux")
	require.NoError(t, err)
	assert.Equal(t, "28.50", f.Open)
}

func TestURL_PassesThroughRawBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestMarketSvc(t, ctrl)

	next := "https://api.example.com/orders/?cursor=abc"
	mockAdapter.EXPECT().
		Get(gomock.Any(), next, gomock.Nil()).
		Return([]byte(`{"results":[],"next":null}`), nil)

	raw, err := svc.URL(context.Background(), next)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[],"next":null}`, string(raw))
}

func TestQuote_RecoversFromInvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockAPIAdapter(ctrl)
	bus := events.NewBus()
	auth := &stubReauthenticator{fn: func(context.Context) {
		bus.Publish(events.Event{Type: events.Authenticated})
	}}
	recovery := newRecoveryService(bus, auth, time.Minute, logger.Nop())
	svc := NewClientMarketService(mockAdapter, recovery, logger.Nop())

	gomock.InOrder(
		mockAdapter.EXPECT().
			Get(gomock.Any(), endpointQuotes, gomock.Any()).
			Return(nil, &models.APIError{StatusCode: 401, Detail: "Invalid token."}),
		mockAdapter.EXPECT().
			Get(gomock.Any(), endpointQuotes, gomock.Any()).
			Return([]byte(`{"results":[{"symbol":"AAPL"}]}`), nil),
	)

	quotes, err := svc.Quote(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, int32(1), auth.calls.Load())
}
