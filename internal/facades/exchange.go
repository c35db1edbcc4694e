package facades

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/clients/bitget"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

const (
	// Pinned deposit target for RLUSD arriving from the XRPL: a
	// pre-registered known-good address, returned instead of a live
	// lookup. A business decision, not dead code.
	pinnedRLUSDAddress = "rGDreBvnHrX1get7na3J4oowN19ny4GzFn"
	pinnedRLUSDTag     = "102717160"

	// DefaultConfirmMaxWait bounds the deposit confirmation wait.
	DefaultConfirmMaxWait = 15 * time.Minute

	defaultPollInterval = 30 * time.Second
	defaultLookback     = 30 * time.Minute

	depositRecordLimit = 100
)

// amountTolerance is the maximum absolute difference between a deposit size
// and the expected amount for the two to be considered the same transfer.
var amountTolerance = decimal.RequireFromString("0.001")

// ExchangeAPI is the exchange REST client surface the facade consumes.
// Implemented by *bitget.Client.
type ExchangeAPI interface {
	Simulated() bool
	GetDepositAddress(ctx context.Context, coin, chain string) (*bitget.DepositAddress, error)
	GetDepositRecords(ctx context.Context, coin string, start, end time.Time, limit int) ([]bitget.DepositRecord, error)
	GetQuotedPrice(ctx context.Context, fromCoin, toCoin string, fromCoinSize decimal.Decimal) (*bitget.QuotedPrice, error)
	Convert(ctx context.Context, fromCoin, toCoin string, fromCoinSize decimal.Decimal, quote *bitget.QuotedPrice) (*bitget.ConvertOrder, error)
	Withdraw(ctx context.Context, coin, address, chain string, size decimal.Decimal) (*bitget.WithdrawalOrder, error)
}

// DepositTargetCache caches deposit targets per (coin, chain). Deposit
// targets are immutable once assigned, so caching is safe.
type DepositTargetCache interface {
	GetDepositTarget(ctx context.Context, coin, chain string) (models.DepositTarget, error)
	SetDepositTarget(ctx context.Context, coin, chain string, target models.DepositTarget) error
}

// ExchangeFacade implements the exchange gateway: deposit-address
// resolution, the deposit confirmation wait, conversion and withdrawal.
type ExchangeFacade struct {
	client ExchangeAPI
	cache  DepositTargetCache // nil disables caching

	pollInterval time.Duration
	lookback     time.Duration
}

// NewExchangeFacade builds a facade. cache may be nil; non-positive
// durations select the defaults (30s poll cadence, 30m lookback).
func NewExchangeFacade(client ExchangeAPI, cache DepositTargetCache, pollInterval, lookback time.Duration) *ExchangeFacade {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	if lookback <= 0 {
		lookback = defaultLookback
	}
	return &ExchangeFacade{
		client:       client,
		cache:        cache,
		pollInterval: pollInterval,
		lookback:     lookback,
	}
}

// GetDepositTarget resolves the exchange deposit address for a coin coming
// from a chain. RLUSD from the XRPL always resolves to the pinned
// pre-registered target; everything else is a live lookup behind the
// best-effort cache.
func (f *ExchangeFacade) GetDepositTarget(ctx context.Context, coin, chain string) (models.DepositTarget, error) {
	if coin == models.CoinRLUSD && chain == models.ChainXRPL {
		return models.DepositTarget{Address: pinnedRLUSDAddress, Tag: pinnedRLUSDTag}, nil
	}

	if f.cache != nil {
		if target, err := f.cache.GetDepositTarget(ctx, coin, chain); err == nil {
			return target, nil
		}
	}

	address, err := f.client.GetDepositAddress(ctx, coin, chain)
	if err != nil {
		return models.DepositTarget{}, err
	}
	target := models.DepositTarget{Address: address.Address, Tag: address.Tag}

	if f.cache != nil {
		if err := f.cache.SetDepositTarget(ctx, coin, chain, target); err != nil {
			logger.Log.Errorw("failed to cache deposit target", "coin", coin, "chain", chain, "error", err)
		}
	}

	return target, nil
}

// GetDepositRecords is a pass-through history query over a time window.
func (f *ExchangeFacade) GetDepositRecords(ctx context.Context, coin string, start, end time.Time) ([]bitget.DepositRecord, error) {
	return f.client.GetDepositRecords(ctx, coin, start, end, depositRecordLimit)
}

// WaitForDeposit polls deposit history until a deposit matching the
// expected amount (within tolerance), a confirmed status and the source
// transaction reference appears, or until maxWait elapses. Query errors
// during a cycle are logged and retried, never fatal; cancellation of ctx
// stops the loop. At least one cycle always runs before a timeout can be
// declared. A non-positive maxWait selects the default deadline. In
// simulation mode the deposit is confirmed immediately.
func (f *ExchangeFacade) WaitForDeposit(ctx context.Context, coin string, expected decimal.Decimal, txHash string, maxWait time.Duration) (models.DepositConfirmation, error) {
	if maxWait <= 0 {
		maxWait = DefaultConfirmMaxWait
	}

	// Without real credentials the deposit history is always empty, so
	// polling could never observe the transfer. Confirm immediately with
	// the expected amount so the rest of the pipeline can run.
	if f.client.Simulated() {
		logger.Log.Infow("simulation mode: confirming deposit without polling", "coin", coin, "tx_hash", txHash)
		return models.DepositConfirmation{Confirmed: true, TradeID: txHash, Amount: expected}, nil
	}

	deadline := time.Now().Add(maxWait)

	logger.Log.Infow("waiting for deposit confirmation",
		"coin", coin,
		"expected_amount", expected.String(),
		"tx_hash", txHash,
		"max_wait", maxWait,
	)

	for {
		if confirmation, ok := f.pollOnce(ctx, coin, expected, txHash); ok {
			return confirmation, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			logger.Log.Warnw("deposit confirmation timed out", "coin", coin, "tx_hash", txHash)
			return models.DepositConfirmation{}, models.ErrConfirmationTimeout
		}

		wait := f.pollInterval
		if remaining < wait {
			wait = remaining
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return models.DepositConfirmation{}, ctx.Err()
		case <-timer.C:
		}
	}
}

// pollOnce runs a single confirmation cycle over the sliding lookback
// window. The second return is true only when a matching deposit was found.
func (f *ExchangeFacade) pollOnce(ctx context.Context, coin string, expected decimal.Decimal, txHash string) (models.DepositConfirmation, bool) {
	now := time.Now()
	records, err := f.client.GetDepositRecords(ctx, coin, now.Add(-f.lookback), now, depositRecordLimit)
	if err != nil {
		// Transient: the next cycle retries.
		logger.Log.Errorw("deposit history query failed, will retry", "coin", coin, "error", err)
		return models.DepositConfirmation{}, false
	}

	for _, record := range records {
		size, err := decimal.NewFromString(record.Size)
		if err != nil {
			logger.Log.Warnw("unparseable deposit size", "size", record.Size, "trade_id", record.TradeID)
			continue
		}

		amountMatch := size.Sub(expected).Abs().LessThan(amountTolerance)
		statusConfirmed := record.Status == "success" || record.Status == "SUCCESS"
		txIDMatch := record.TradeID == txHash

		if amountMatch && statusConfirmed && txIDMatch {
			logger.Log.Infow("deposit confirmed",
				"coin", coin,
				"amount", record.Size,
				"trade_id", record.TradeID,
			)
			return models.DepositConfirmation{Confirmed: true, TradeID: record.TradeID, Amount: size}, true
		}
	}

	return models.DepositConfirmation{}, false
}

// GetQuote requests a fresh single-use conversion quote.
func (f *ExchangeFacade) GetQuote(ctx context.Context, fromCoin, toCoin string, amount decimal.Decimal) (models.Quote, error) {
	quoted, err := f.client.GetQuotedPrice(ctx, fromCoin, toCoin, amount)
	if err != nil {
		return models.Quote{}, err
	}

	price, err := decimal.NewFromString(quoted.CnvtPrice)
	if err != nil {
		return models.Quote{}, err
	}
	toSize, err := decimal.NewFromString(quoted.ToCoinSize)
	if err != nil {
		return models.Quote{}, err
	}

	return models.Quote{Price: price, ToCoinSize: toSize, TraceID: quoted.TraceID}, nil
}

// Convert obtains a fresh quote and immediately executes the conversion
// against it. Quotes are never cached or reused; the provider rejects
// conversions carrying a stale trace id.
func (f *ExchangeFacade) Convert(ctx context.Context, fromCoin, toCoin string, amount decimal.Decimal) (models.ConversionResult, error) {
	quote, err := f.client.GetQuotedPrice(ctx, fromCoin, toCoin, amount)
	if err != nil {
		return models.ConversionResult{}, err
	}

	logger.Log.Infow("executing conversion",
		"from", fromCoin,
		"to", toCoin,
		"amount", amount.String(),
		"trace_id", quote.TraceID,
	)

	order, err := f.client.Convert(ctx, fromCoin, toCoin, amount, quote)
	if err != nil {
		return models.ConversionResult{}, err
	}

	converted, err := decimal.NewFromString(order.ToCoinSize)
	if err != nil {
		return models.ConversionResult{}, err
	}

	return models.ConversionResult{ConvertedAmount: converted, OrderID: order.OrderID}, nil
}

// Withdraw submits an on-chain withdrawal to the target chain. One attempt;
// provider and transport errors propagate to the caller.
func (f *ExchangeFacade) Withdraw(ctx context.Context, coin, address, chain string, amount decimal.Decimal) (models.WithdrawalResult, error) {
	order, err := f.client.Withdraw(ctx, coin, address, chain, amount)
	if err != nil {
		return models.WithdrawalResult{}, err
	}
	return models.WithdrawalResult{OrderID: order.OrderID, TxID: order.TxID}, nil
}
