package service

// REST endpoints of the brokerage API, relative to the configured API
// address. Trailing slashes are part of the API's URL scheme.
const (
	endpointTokenAuth    = "/api-token-auth/"
	endpointTokenLogout  = "/api-token-logout/"
	endpointAccounts     = "/accounts/"
	endpointQuotes       = "/quotes/"
	endpointInstruments  = "/instruments/"
	endpointOrders       = "/orders/"
	endpointFundamentals = "/fundamentals/"
)
