package models

import "github.com/shopspring/decimal"

// Pipeline stages a transfer can reach, in execution order.
const (
	StageValidation     = "validation"
	StageDepositAddress = "deposit_address"
	StageSend           = "send"
	StageConfirm        = "confirm"
	StageConvert        = "convert"
	StageWithdraw       = "withdraw"
	StageComplete       = "complete"
)

// TransferRequest carries everything needed to run one cross-chain transfer.
// The seed is used in memory only and is never persisted or logged.
type TransferRequest struct {
	Seed               string
	Amount             decimal.Decimal
	DestinationNetwork string
	DestinationAddress string
}

// Validate enforces the request invariants: a credential, a positive
// amount, a supported destination network and a destination address.
func (r TransferRequest) Validate() error {
	if r.Seed == "" {
		return NewValidationError("xrpl_seed is required")
	}
	if !r.Amount.IsPositive() {
		return NewValidationError("rlusd_amount must be positive")
	}
	if r.DestinationNetwork == "" {
		return NewValidationError("destination_network is required")
	}
	if !IsSupportedNetwork(r.DestinationNetwork) {
		return NewValidationError("unsupported destination network %q", r.DestinationNetwork)
	}
	if r.DestinationAddress == "" {
		return NewValidationError("destination_address is required")
	}
	return nil
}

// TransferOutcome is the terminal record of one pipeline run. It is built
// exactly once, when the pipeline completes or aborts, and never mutated.
// ConvertedAmount is a pointer so that failure outcomes, which never reach
// the conversion stage's result, omit the field from JSON entirely.
type TransferOutcome struct {
	Success         bool             `json:"success"`
	Stage           string           `json:"stage"`
	OriginalAmount  decimal.Decimal  `json:"original_amount"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"`
	XRPLTxHash      string           `json:"xrpl_tx_hash,omitempty"`
	ConvertOrderID  string           `json:"convert_order_id,omitempty"`
	WithdrawOrderID string           `json:"withdraw_order_id,omitempty"`
	Error           string           `json:"error,omitempty"`
}

// TransferEvent is the audit record published to Kafka after each pipeline
// run. Failures past the send stage require manual reconciliation, so the
// event stream is the operator's trail for those.
type TransferEvent struct {
	TransferID string `json:"transfer_id"`
	Timestamp  int64  `json:"timestamp"`
	Stage      string `json:"stage"`
	Success    bool   `json:"success"`
	Amount     string `json:"amount"`
	Network    string `json:"network"`
	Error      string `json:"error,omitempty"`
}
