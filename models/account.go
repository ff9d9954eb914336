package models

// Account is a brokerage account record as returned by the accounts endpoint.
// The client keeps only the first account of the list; its URL identifies the
// account to charge on order placement.
type Account struct {
	URL                        string `json:"url"`
	AccountNumber              string `json:"account_number"`
	Type                       string `json:"type"`
	BuyingPower                string `json:"buying_power"`
	Cash                       string `json:"cash"`
	CashAvailableForWithdrawal string `json:"cash_available_for_withdrawal"`
	CashHeldForOrders          string `json:"cash_held_for_orders"`
	UnclearedDeposits          string `json:"uncleared_deposits"`
	UnsettledFunds             string `json:"unsettled_funds"`
	Deactivated                bool   `json:"deactivated"`
	DepositHalted              bool   `json:"deposit_halted"`
	OnlyPositionClosingTrades  bool   `json:"only_position_closing_trades"`
	SweepEnabled               bool   `json:"sweep_enabled"`
	WithdrawalHalted           bool   `json:"withdrawal_halted"`
	MaxACHEarlyAccessAmount    string `json:"max_ach_early_access_amount"`
	Positions                  string `json:"positions"`
	Portfolio                  string `json:"portfolio"`
	User                       string `json:"user"`
	CreatedAt                  string `json:"created_at"`
	UpdatedAt                  string `json:"updated_at"`
}
