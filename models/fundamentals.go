package models

// Fundamentals holds the fundamental indicators of a single security.
type Fundamentals struct {
	Open          string `json:"open"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Volume        string `json:"volume"`
	AverageVolume string `json:"average_volume"`
	High52Weeks   string `json:"high_52_weeks"`
	Low52Weeks    string `json:"low_52_weeks"`
	MarketCap     string `json:"market_cap"`
	DividendYield string `json:"dividend_yield"`
	PERatio       string `json:"pe_ratio"`
	Description   string `json:"description"`
	Instrument    string `json:"instrument"`
}
