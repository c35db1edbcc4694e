package bitget

import "fmt"

// CodeOK is the provider status code denoting success; every other code is
// a provider-reported error carrying a human-readable message.
const CodeOK = "00000"

// APIError is a non-success provider response.
type APIError struct {
	Code string
	Msg  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bitget: %s (code %s)", e.Msg, e.Code)
}

// DepositAddress is a provider-assigned address/tag pair for routing funds
// into the exchange.
type DepositAddress struct {
	Address string `json:"address"`
	Tag     string `json:"tag"`
	Chain   string `json:"chain"`
	Coin    string `json:"coin"`
}

// DepositRecord is one raw entry from the spot deposit history.
type DepositRecord struct {
	Coin    string `json:"coin"`
	Chain   string `json:"chain"`
	Size    string `json:"size"`
	Status  string `json:"status"`
	TradeID string `json:"tradeId"`
	CTime   string `json:"cTime"`
}

// QuotedPrice is a single-use conversion quote. TraceID binds the quote to
// the convert call that consumes it; the provider rejects stale trace ids.
type QuotedPrice struct {
	CnvtPrice  string `json:"cnvtPrice"`
	ToCoinSize string `json:"toCoinSize"`
	TraceID    string `json:"traceId"`
}

// ConvertOrder is the provider's record of an executed conversion.
type ConvertOrder struct {
	OrderID    string `json:"orderId"`
	ToCoinSize string `json:"toCoinSize"`
}

// WithdrawalOrder is the provider's record of a submitted withdrawal. TxID
// may be empty until the provider broadcasts the transaction.
type WithdrawalOrder struct {
	OrderID string `json:"orderId"`
	TxID    string `json:"txId"`
}
