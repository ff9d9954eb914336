package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rcorral/go-robinhood/internal/adapter"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/session"
	"github.com/rcorral/go-robinhood/internal/utils"
	"github.com/rcorral/go-robinhood/models"
)

// Endpoint defaults applied to order placement when the caller leaves the
// corresponding option zero-valued.
const (
	defaultOrderType        = "market"
	defaultOrderTimeInForce = "gfd"
	defaultOrderTrigger     = "immediate"
)

type clientOrderService struct {
	adapter  adapter.APIAdapter
	recovery *recoveryService
	state    *session.State
	refIDs   *utils.UUIDGenerator
	logger   *logger.Logger
}

func NewClientOrderService(apiAdapter adapter.APIAdapter, recovery *recoveryService, state *session.State, logger *logger.Logger) ClientOrderService {
	return &clientOrderService{
		adapter:  apiAdapter,
		recovery: recovery,
		state:    state,
		refIDs:   utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// PlaceBuyOrder implements [ClientOrderService].
func (s *clientOrderService) PlaceBuyOrder(ctx context.Context, opts models.OrderOptions) (models.Order, error) {
	return s.placeOrder(ctx, models.OrderSideBuy, opts)
}

// PlaceSellOrder implements [ClientOrderService].
func (s *clientOrderService) PlaceSellOrder(ctx context.Context, opts models.OrderOptions) (models.Order, error) {
	return s.placeOrder(ctx, models.OrderSideSell, opts)
}

func (s *clientOrderService) placeOrder(ctx context.Context, side string, opts models.OrderOptions) (models.Order, error) {
	form, err := s.buildOrderForm(side, opts)
	if err != nil {
		return models.Order{}, err
	}

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Post(ctx, endpointOrders, form)
	})
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err = json.Unmarshal(body, &order); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}

	s.logger.Info().
		Str("side", side).
		Str("symbol", form.Get("symbol")).
		Str("order_id", order.ID).
		Msg("order placed")
	return order, nil
}

// buildOrderForm merges caller-supplied fields over the endpoint defaults and
// attaches the bootstrapped account URL and a client-generated ref_id.
func (s *clientOrderService) buildOrderForm(side string, opts models.OrderOptions) (url.Values, error) {
	account := s.state.Account()
	if account == nil {
		return nil, ErrNoAccount
	}

	orderType := opts.Type
	if orderType == "" {
		orderType = defaultOrderType
	}
	timeInForce := opts.TimeInForce
	if timeInForce == "" {
		timeInForce = defaultOrderTimeInForce
	}
	trigger := opts.Trigger
	if trigger == "" {
		trigger = defaultOrderTrigger
	}

	form := url.Values{}
	form.Set("account", account.URL)
	form.Set("instrument", opts.InstrumentURL)
	form.Set("symbol", strings.ToUpper(opts.Symbol))
	form.Set("quantity", opts.Quantity)
	form.Set("side", side)
	form.Set("type", orderType)
	form.Set("time_in_force", timeInForce)
	form.Set("trigger", trigger)
	form.Set("extended_hours", strconv.FormatBool(opts.ExtendedHours))
	form.Set("ref_id", s.refIDs.Generate())
	if opts.BidPrice != "" {
		form.Set("price", opts.BidPrice)
	}
	if opts.StopPrice != "" {
		form.Set("stop_price", opts.StopPrice)
	}

	return form, nil
}

// Orders implements [ClientOrderService].
func (s *clientOrderService) Orders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	var query url.Values
	if !filter.UpdatedSince.IsZero() {
		query = url.Values{"updated_at[gte]": {filter.UpdatedSince.Format(time.RFC3339)}}
	}

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, endpointOrders, query)
	})
	if err != nil {
		return nil, err
	}

	var res models.OrdersResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}
	return res.Results, nil
}

// Order implements [ClientOrderService].
func (s *clientOrderService) Order(ctx context.Context, orderID string) (models.Order, error) {
	uri := endpointOrders + orderID + "/"

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, uri, nil)
	})
	if err != nil {
		return models.Order{}, err
	}

	var order models.Order
	if err = json.Unmarshal(body, &order); err != nil {
		return models.Order{}, fmt.Errorf("decode order response: %w", err)
	}
	return order, nil
}

// CancelOrder implements [ClientOrderService]. Terminal orders short-circuit
// to an empty result; otherwise the order's own cancel URL is used when the
// server provided one, falling back to the cancel-by-id endpoint.
func (s *clientOrderService) CancelOrder(ctx context.Context, order models.Order) (json.RawMessage, error) {
	if order.IsTerminal() {
		return json.RawMessage("{}"), nil
	}

	uri := order.Cancel
	if uri == "" {
		uri = endpointOrders + order.ID + "/cancel/"
	}

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Post(ctx, uri, nil)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("order_id", order.ID).Msg("order cancelled")
	return json.RawMessage(body), nil
}
