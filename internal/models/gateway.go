package models

import "github.com/shopspring/decimal"

// DepositTarget is the (address, tag) pair the exchange assigns for
// receiving a coin from a given chain. Immutable once obtained.
type DepositTarget struct {
	Address string `json:"address"`
	Tag     string `json:"tag,omitempty"`
}

// SendReceipt is the result of one ledger payment attempt.
// TxHash is set only on success, FailureReason only on failure.
type SendReceipt struct {
	Success       bool
	TxHash        string
	FailureReason string
}

// DepositConfirmation is the terminal result of a confirmation wait.
type DepositConfirmation struct {
	Confirmed bool
	// TradeID is the exchange-assigned identifier of the matched deposit.
	TradeID string
	// Amount is the size of the matched deposit.
	Amount decimal.Decimal
}

// Quote is a single-use conversion price quote. The trace id binds the
// quote to the conversion call that must consume it; the provider rejects
// stale trace ids.
type Quote struct {
	Price      decimal.Decimal
	ToCoinSize decimal.Decimal
	TraceID    string
}

// ConversionResult is produced once per transfer by the convert stage.
type ConversionResult struct {
	ConvertedAmount decimal.Decimal
	OrderID         string
}

// WithdrawalResult reports a submitted exchange withdrawal. TxID may be
// empty until the provider broadcasts the transaction.
type WithdrawalResult struct {
	OrderID string
	TxID    string
}

// AccountSnapshot reports whether a ledger account is provisioned and its
// native currency balance.
type AccountSnapshot struct {
	Exists     bool
	XRPBalance decimal.Decimal
}
