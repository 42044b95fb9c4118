package api

import "hlpnl/internal/pnl"

const (
	dataSource   = "hyperliquid_api"
	derivedNotes = "Unrealized PnL derived from (Net - Realized - Funding + Fees) to ensure balance."

	msgInvalidWallet = "Invalid wallet address"
	msgDatesRequired = "Start and End dates required"
	msgInvertedRange = "Start date must not be after End date"
	msgRangeTooLong  = "Date range exceeds the maximum number of days"
	msgInternal      = "Internal Server Error"
)

// PnLResponse is the body of a successful /pnl request.
type PnLResponse struct {
	Wallet      string            `json:"wallet"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Daily       []pnl.DailyRecord `json:"daily"`
	Summary     pnl.SummaryRecord `json:"summary"`
	Diagnostics Diagnostics       `json:"diagnostics"`
}

type Diagnostics struct {
	DataSource  string `json:"data_source"`
	LastAPICall string `json:"last_api_call"`
	Notes       string `json:"notes"`
}

// ErrorResponse is the body of a 400.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is the body of a 500; message is always present.
type FailureResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
