package models

// Instrument describes a tradable security. Orders reference instruments by
// their URL rather than by symbol.
type Instrument struct {
	ID                 string `json:"id"`
	URL                string `json:"url"`
	Symbol             string `json:"symbol"`
	Name               string `json:"name"`
	SimpleName         string `json:"simple_name"`
	Country            string `json:"country"`
	Tradeable          bool   `json:"tradeable"`
	State              string `json:"state"`
	Market             string `json:"market"`
	Quote              string `json:"quote"`
	Fundamentals       string `json:"fundamentals"`
	Splits             string `json:"splits"`
	MinTickSize        string `json:"min_tick_size"`
	MaintenanceRatio   string `json:"maintenance_ratio"`
	DayTradeRatio      string `json:"day_trade_ratio"`
	MarginInitialRatio string `json:"margin_initial_ratio"`
	ListDate           string `json:"list_date"`
}
