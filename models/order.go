package models

// Order side values accepted by the orders endpoint.
const (
	OrderSideBuy  = "buy"
	OrderSideSell = "sell"
)

// Order is an order record as returned by the orders endpoints. Cancel, when
// present, is the ready-made cancellation URL for this order.
type Order struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	Account       string `json:"account"`
	Instrument    string `json:"instrument"`
	Cancel        string `json:"cancel"`
	Side          string `json:"side"`
	State         string `json:"state"`
	Type          string `json:"type"`
	TimeInForce   string `json:"time_in_force"`
	Trigger       string `json:"trigger"`
	Price         string `json:"price"`
	StopPrice     string `json:"stop_price"`
	AveragePrice  string `json:"average_price"`
	Quantity      string `json:"quantity"`
	CumulativeQty string `json:"cumulative_quantity"`
	Fees          string `json:"fees"`
	RejectReason  string `json:"reject_reason"`
	RefID         string `json:"ref_id"`
	ExtendedHours bool   `json:"extended_hours"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// IsTerminal reports whether the order is in a state that can no longer be
// cancelled. Both the US and UK spellings of "cancelled" occur in the wild.
func (o Order) IsTerminal() bool {
	switch o.State {
	case "filled", "rejected", "canceled", "cancelled", "failed":
		return true
	}
	return false
}

// OrderOptions carries the caller-supplied fields for order placement.
// Zero-valued fields fall back to the endpoint defaults (good-for-day market
// order with an immediate trigger and no limit or stop price).
type OrderOptions struct {
	// Symbol of the security to trade. Normalised to upper case before the
	// request is sent.
	Symbol string
	// InstrumentURL is the URL of the instrument to trade.
	InstrumentURL string
	// Quantity is the number of shares, as a decimal string.
	Quantity string
	// BidPrice, when set, turns the order into a limit order.
	BidPrice string
	// StopPrice, when set together with a stop trigger, sets the stop.
	StopPrice string
	// Type is the order type: "market" (default) or "limit".
	Type string
	// TimeInForce is one of "gfd" (default), "gtc", "ioc", "fok" or "opg".
	TimeInForce string
	// Trigger is "immediate" (default) or "stop".
	Trigger string
	// ExtendedHours allows the order to execute outside regular hours.
	ExtendedHours bool
}
