package facades

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/clients/xrpl"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// RLUSDCurrencyHex is the 160-bit currency code of RLUSD on the XRPL.
const RLUSDCurrencyHex = "524C555344000000000000000000000000000000"

// DefaultRLUSDIssuer is the mainnet RLUSD issuing account, overridable via
// configuration.
const DefaultRLUSDIssuer = "rMxCKbEDwqr76QuheSUMdEGf4B9xJ8m5De"

const dropsPerXRP = 1_000_000

// tesSuccess is the ledger's canonical fully-succeeded transaction result.
const tesSuccess = "tesSUCCESS"

// LedgerConn is the per-operation XRPL connection surface the facade
// drives. Implemented by *xrpl.Client.
type LedgerConn interface {
	AccountInfo(ctx context.Context, address string) (*xrpl.AccountData, error)
	AccountLines(ctx context.Context, address string) ([]xrpl.TrustLine, error)
	SubmitPayment(ctx context.Context, w *xrpl.Wallet, p *xrpl.Payment) (*xrpl.PaymentResult, error)
	Close() error
}

// LedgerFacade implements the ledger gateway: balance and account reads plus
// token sends. A connection is dialed immediately before each operation and
// closed immediately after, whatever the outcome.
type LedgerFacade struct {
	dial     func(ctx context.Context) (LedgerConn, error)
	issuer   string
	currency string
}

// NewLedgerFacade builds a facade dialing the given WebSocket endpoint.
// An empty issuer selects the mainnet RLUSD issuer.
func NewLedgerFacade(wsURL, issuer string) *LedgerFacade {
	if issuer == "" {
		issuer = DefaultRLUSDIssuer
	}
	return &LedgerFacade{
		dial: func(ctx context.Context) (LedgerConn, error) {
			return xrpl.Dial(ctx, wsURL)
		},
		issuer:   issuer,
		currency: RLUSDCurrencyHex,
	}
}

// NewLedgerFacadeWithDialer is the injection point for tests.
func NewLedgerFacadeWithDialer(dial func(ctx context.Context) (LedgerConn, error), issuer string) *LedgerFacade {
	if issuer == "" {
		issuer = DefaultRLUSDIssuer
	}
	return &LedgerFacade{dial: dial, issuer: issuer, currency: RLUSDCurrencyHex}
}

// DeriveAddress resolves the classic address a seed controls.
func (f *LedgerFacade) DeriveAddress(seed string) (string, error) {
	w, err := xrpl.NewWalletFromSeed(seed)
	if err != nil {
		return "", err
	}
	return w.Address, nil
}

// GetTokenBalance returns the RLUSD trust-line balance of an address. This
// is a best-effort read: any failure, including a missing trust line, is
// logged and reported as a zero balance, never as an error.
func (f *LedgerFacade) GetTokenBalance(ctx context.Context, address string) decimal.Decimal {
	conn, err := f.dial(ctx)
	if err != nil {
		logger.Log.Errorw("failed to connect to XRPL for balance read", "address", address, "error", err)
		return decimal.Zero
	}
	defer conn.Close()

	lines, err := conn.AccountLines(ctx, address)
	if err != nil {
		logger.Log.Errorw("failed to read trust lines", "address", address, "error", err)
		return decimal.Zero
	}

	for _, line := range lines {
		if line.Currency != f.currency || line.Account != f.issuer {
			continue
		}
		balance, err := decimal.NewFromString(line.Balance)
		if err != nil {
			logger.Log.Errorw("unparseable trust line balance", "address", address, "balance", line.Balance, "error", err)
			return decimal.Zero
		}
		return balance
	}

	logger.Log.Infow("no RLUSD trust line", "address", address)
	return decimal.Zero
}

// GetAccountSnapshot reports whether an account is provisioned and its XRP
// balance. Unlike GetTokenBalance, query failures propagate: this result
// gates user-facing account import.
func (f *LedgerFacade) GetAccountSnapshot(ctx context.Context, address string) (models.AccountSnapshot, error) {
	conn, err := f.dial(ctx)
	if err != nil {
		return models.AccountSnapshot{}, err
	}
	defer conn.Close()

	account, err := conn.AccountInfo(ctx, address)
	if err != nil {
		if err == xrpl.ErrAccountNotFound {
			return models.AccountSnapshot{Exists: false, XRPBalance: decimal.Zero}, nil
		}
		return models.AccountSnapshot{}, err
	}

	drops, err := strconv.ParseInt(account.Balance, 10, 64)
	if err != nil {
		return models.AccountSnapshot{}, err
	}

	return models.AccountSnapshot{
		Exists:     true,
		XRPBalance: decimal.New(drops, 0).Div(decimal.New(dropsPerXRP, 0)),
	}, nil
}

// Send pays amount RLUSD from the account the seed controls to the
// destination, waiting for ledger finality. Success is strictly the
// canonical tesSUCCESS result; any other engine code comes back as a failed
// receipt carrying that code.
func (f *LedgerFacade) Send(ctx context.Context, seed, destination string, amount decimal.Decimal, destinationTag string) (models.SendReceipt, error) {
	wallet, err := xrpl.NewWalletFromSeed(seed)
	if err != nil {
		return models.SendReceipt{}, err
	}

	payment := &xrpl.Payment{
		Destination: destination,
		Amount: xrpl.IssuedAmount{
			Currency: f.currency,
			Issuer:   f.issuer,
			Value:    amount,
		},
	}
	if destinationTag != "" {
		tag, err := strconv.ParseUint(destinationTag, 10, 32)
		if err != nil {
			return models.SendReceipt{}, err
		}
		t := uint32(tag)
		payment.DestinationTag = &t
	}

	conn, err := f.dial(ctx)
	if err != nil {
		return models.SendReceipt{}, err
	}
	defer conn.Close()

	logger.Log.Infow("sending RLUSD",
		"from", wallet.Address,
		"to", destination,
		"amount", amount.String(),
	)

	result, err := conn.SubmitPayment(ctx, wallet, payment)
	if err != nil {
		return models.SendReceipt{}, err
	}

	if !result.Validated || result.EngineResult != tesSuccess {
		logger.Log.Errorw("XRPL payment failed",
			"hash", result.Hash,
			"engine_result", result.EngineResult,
		)
		return models.SendReceipt{Success: false, FailureReason: result.EngineResult}, nil
	}

	logger.Log.Infow("XRPL payment validated", "hash", result.Hash)
	return models.SendReceipt{Success: true, TxHash: result.Hash}, nil
}
