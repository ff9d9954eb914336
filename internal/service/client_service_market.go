package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/rcorral/go-robinhood/internal/adapter"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/models"
)

type clientMarketService struct {
	adapter  adapter.APIAdapter
	recovery *recoveryService
	logger   *logger.Logger
}

func NewClientMarketService(apiAdapter adapter.APIAdapter, recovery *recoveryService, logger *logger.Logger) ClientMarketService {
	return &clientMarketService{adapter: apiAdapter, recovery: recovery, logger: logger}
}

// Quote implements [ClientMarketService]. Quote(ctx, "fb", "AAPL") and
// Quote(ctx, "FB,AAPL") issue the same request.
func (s *clientMarketService) Quote(ctx context.Context, symbols ...string) ([]models.Quote, error) {
	query := url.Values{"symbols": {normalizeSymbols(symbols)}}

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, endpointQuotes, query)
	})
	if err != nil {
		return nil, err
	}

	var res models.QuotesResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode quotes response: %w", err)
	}
	return res.Results, nil
}

// Instrument implements [ClientMarketService].
func (s *clientMarketService) Instrument(ctx context.Context, instrumentID string) (models.Instrument, error) {
	uri := endpointInstruments + instrumentID + "/"

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, uri, nil)
	})
	if err != nil {
		return models.Instrument{}, err
	}

	var instrument models.Instrument
	if err = json.Unmarshal(body, &instrument); err != nil {
		return models.Instrument{}, fmt.Errorf("decode instrument response: %w", err)
	}
	return instrument, nil
}

// InstrumentBySymbol implements [ClientMarketService].
func (s *clientMarketService) InstrumentBySymbol(ctx context.Context, symbol string) ([]models.Instrument, error) {
	query := url.Values{"symbol": {strings.ToUpper(symbol)}}

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, endpointInstruments, query)
	})
	if err != nil {
		return nil, err
	}

	var res models.InstrumentsResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode instruments response: %w", err)
	}
	return res.Results, nil
}

// Fundamentals implements [ClientMarketService].
func (s *clientMarketService) Fundamentals(ctx context.Context, symbol string) (models.Fundamentals, error) {
	uri := endpointFundamentals + strings.ToUpper(symbol) + "/"

	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, uri, nil)
	})
	if err != nil {
		return models.Fundamentals{}, err
	}

	var fundamentals models.Fundamentals
	if err = json.Unmarshal(body, &fundamentals); err != nil {
		return models.Fundamentals{}, fmt.Errorf("decode fundamentals response: %w", err)
	}
	return fundamentals, nil
}

// URL implements [ClientMarketService].
func (s *clientMarketService) URL(ctx context.Context, uri string) (json.RawMessage, error) {
	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, uri, nil)
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// normalizeSymbols joins and upper-cases ticker symbols into the single
// comma-separated form the quotes endpoint expects.
func normalizeSymbols(symbols []string) string {
	return strings.ToUpper(strings.Join(symbols, ","))
}
