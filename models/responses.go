package models

// AuthResponse is the body of the token-auth endpoint. Exactly one of Token
// or MFARequired is expected to be set; any other shape is treated as an
// unhandled response by the authenticator.
type AuthResponse struct {
	Token       string `json:"token"`
	MFARequired bool   `json:"mfa_required"`
	MFAType     string `json:"mfa_type"`
}

// AccountsResponse is the paginated envelope of the accounts endpoint.
type AccountsResponse struct {
	Next     string    `json:"next"`
	Previous string    `json:"previous"`
	Results  []Account `json:"results"`
}

// QuotesResponse is the envelope of the quotes endpoint.
type QuotesResponse struct {
	Results []Quote `json:"results"`
}

// InstrumentsResponse is the paginated envelope of the instruments endpoint.
type InstrumentsResponse struct {
	Next     string       `json:"next"`
	Previous string       `json:"previous"`
	Results  []Instrument `json:"results"`
}

// OrdersResponse is the paginated envelope of the orders list endpoint.
type OrdersResponse struct {
	Next     string  `json:"next"`
	Previous string  `json:"previous"`
	Results  []Order `json:"results"`
}
