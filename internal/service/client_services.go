package service

import (
	"github.com/rcorral/go-robinhood/internal/adapter"
	"github.com/rcorral/go-robinhood/internal/config"
	"github.com/rcorral/go-robinhood/internal/events"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/session"
)

type ClientServices struct {
	AuthService    ClientAuthService
	AccountService ClientAccountService
	MarketService  ClientMarketService
	OrderService   ClientOrderService
	SessionJob     ClientSessionJob
}

func NewClientServices(apiAdapter adapter.APIAdapter, state *session.State, bus *events.Bus, authCfg config.ClientAuth, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(apiAdapter, state, bus, log)
	recovery := newRecoveryService(bus, authSvc.(*clientAuthService), authCfg.RecoveryTimeout, log)

	accountSvc := NewClientAccountService(apiAdapter, recovery, log)
	marketSvc := NewClientMarketService(apiAdapter, recovery, log)
	orderSvc := NewClientOrderService(apiAdapter, recovery, state, log)

	return &ClientServices{
		AuthService:    authSvc,
		AccountService: accountSvc,
		MarketService:  marketSvc,
		OrderService:   orderSvc,
		SessionJob:     NewClientSessionJob(accountSvc),
	}
}
