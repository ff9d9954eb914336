package models

// Quote is a single real-time quote row from the quotes endpoint.
type Quote struct {
	Symbol                      string `json:"symbol"`
	AskPrice                    string `json:"ask_price"`
	AskSize                     int64  `json:"ask_size"`
	BidPrice                    string `json:"bid_price"`
	BidSize                     int64  `json:"bid_size"`
	LastTradePrice              string `json:"last_trade_price"`
	LastExtendedHoursTradePrice string `json:"last_extended_hours_trade_price"`
	PreviousClose               string `json:"previous_close"`
	PreviousCloseDate           string `json:"previous_close_date"`
	AdjustedPreviousClose       string `json:"adjusted_previous_close"`
	TradingHalted               bool   `json:"trading_halted"`
	HasTraded                   bool   `json:"has_traded"`
	UpdatedAt                   string `json:"updated_at"`
	Instrument                  string `json:"instrument"`
}
