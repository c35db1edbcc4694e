package models

import "github.com/shopspring/decimal"

// AccountInfo is the read-only account resolution returned by the
// account-info endpoint; it never initiates a transfer.
type AccountInfo struct {
	Address      string
	Exists       bool
	XRPBalance   decimal.Decimal
	RLUSDBalance decimal.Decimal
}
