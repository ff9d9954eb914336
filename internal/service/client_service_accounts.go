package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rcorral/go-robinhood/internal/adapter"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/models"
)

type clientAccountService struct {
	adapter  adapter.APIAdapter
	recovery *recoveryService
	logger   *logger.Logger
}

func NewClientAccountService(apiAdapter adapter.APIAdapter, recovery *recoveryService, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{adapter: apiAdapter, recovery: recovery, logger: logger}
}

// Accounts implements [ClientAccountService].
func (s *clientAccountService) Accounts(ctx context.Context) ([]models.Account, error) {
	body, err := s.recovery.Do(ctx, func(ctx context.Context) ([]byte, error) {
		return s.adapter.Get(ctx, endpointAccounts, nil)
	})
	if err != nil {
		return nil, err
	}

	var res models.AccountsResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode accounts response: %w", err)
	}
	return res.Results, nil
}
