package xrpl

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
)

const (
	// defaultRequestTimeout bounds a single WebSocket round trip when the
	// caller's context carries no deadline.
	defaultRequestTimeout = 30 * time.Second

	// txPollInterval is how often SubmitPayment re-checks a submitted
	// transaction for validation.
	txPollInterval = 2 * time.Second

	// ledgerWindow is added to the current ledger index as the
	// LastLedgerSequence, after which an unvalidated transaction expires.
	ledgerWindow = 20

	// fallbackFeeDrops is used when the fee query fails.
	fallbackFeeDrops = 12
)

// ErrAccountNotFound is returned for addresses with no ledger entry.
var ErrAccountNotFound = errors.New("account not found")

// RPCError is an error reported by the XRPL server for a single request.
type RPCError struct {
	Code    string
	Message string
}

func (e *RPCError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("xrpl: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("xrpl: %s", e.Code)
}

// Client speaks the XRPL JSON WebSocket API. Requests are serialized over a
// single connection; a client is intended to live for one logical operation
// (dial, use, close).
type Client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	nextID int64
}

// Dial opens a WebSocket connection to an XRPL server.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("xrpl: dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

type rpcEnvelope struct {
	ID           int64           `json:"id"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
}

// request performs one correlated request/response exchange.
func (c *Client) request(ctx context.Context, req map[string]any, result any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id := c.nextID
	req["id"] = id

	deadline := time.Now().Add(defaultRequestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = c.conn.SetWriteDeadline(deadline)
	_ = c.conn.SetReadDeadline(deadline)

	if err := c.conn.WriteJSON(req); err != nil {
		return fmt.Errorf("xrpl: write request: %w", err)
	}

	for {
		var env rpcEnvelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return fmt.Errorf("xrpl: read response: %w", err)
		}
		if env.ID != id {
			// Unsolicited stream message or a stale reply; skip it.
			continue
		}
		if env.Status != "success" {
			return &RPCError{Code: env.Error, Message: env.ErrorMessage}
		}
		if result != nil {
			if err := json.Unmarshal(env.Result, result); err != nil {
				return fmt.Errorf("xrpl: decode result: %w", err)
			}
		}
		return nil
	}
}

// AccountData is the subset of account_info state the bridge reads.
type AccountData struct {
	Balance  string `json:"Balance"`
	Sequence uint32 `json:"Sequence"`
}

// AccountInfo queries validated account state. ErrAccountNotFound is
// returned for unprovisioned addresses.
func (c *Client) AccountInfo(ctx context.Context, address string) (*AccountData, error) {
	var result struct {
		AccountData AccountData `json:"account_data"`
	}
	err := c.request(ctx, map[string]any{
		"command":      "account_info",
		"account":      address,
		"ledger_index": "validated",
	}, &result)
	if err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) && rpcErr.Code == "actNotFound" {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &result.AccountData, nil
}

// TrustLine is one entry from account_lines.
type TrustLine struct {
	Account  string `json:"account"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
	Limit    string `json:"limit"`
}

// AccountLines queries the validated trust lines of an account.
func (c *Client) AccountLines(ctx context.Context, address string) ([]TrustLine, error) {
	var result struct {
		Lines []TrustLine `json:"lines"`
	}
	err := c.request(ctx, map[string]any{
		"command":      "account_lines",
		"account":      address,
		"ledger_index": "validated",
	}, &result)
	if err != nil {
		return nil, err
	}
	return result.Lines, nil
}

// currentLedgerIndex returns the server's in-progress ledger index.
func (c *Client) currentLedgerIndex(ctx context.Context) (uint32, error) {
	var result struct {
		LedgerCurrentIndex uint32 `json:"ledger_current_index"`
	}
	err := c.request(ctx, map[string]any{"command": "ledger_current"}, &result)
	if err != nil {
		return 0, err
	}
	return result.LedgerCurrentIndex, nil
}

// openLedgerFee returns the current open-ledger fee in drops, falling back
// to a constant when the query fails.
func (c *Client) openLedgerFee(ctx context.Context) uint64 {
	var result struct {
		Drops struct {
			OpenLedgerFee string `json:"open_ledger_fee"`
		} `json:"drops"`
	}
	if err := c.request(ctx, map[string]any{"command": "fee"}, &result); err != nil {
		logger.Log.Warnw("fee query failed, using fallback", "error", err)
		return fallbackFeeDrops
	}
	fee, err := strconv.ParseUint(result.Drops.OpenLedgerFee, 10, 64)
	if err != nil || fee == 0 {
		return fallbackFeeDrops
	}
	return fee
}

// PaymentResult is the outcome of SubmitPayment. EngineResult is the
// ledger's canonical transaction result code; "tesSUCCESS" with
// Validated=true is the only fully-succeeded state.
type PaymentResult struct {
	Hash         string
	EngineResult string
	Validated    bool
}

// SubmitPayment autofills, signs, submits a payment and waits for ledger
// finality: the transaction either appears in a validated ledger or its
// LastLedgerSequence passes without inclusion.
func (c *Client) SubmitPayment(ctx context.Context, w *Wallet, p *Payment) (*PaymentResult, error) {
	account, err := c.AccountInfo(ctx, w.Address)
	if err != nil {
		return nil, err
	}
	current, err := c.currentLedgerIndex(ctx)
	if err != nil {
		return nil, err
	}

	p.Account = w.Address
	p.Sequence = account.Sequence
	p.FeeDrops = c.openLedgerFee(ctx)
	p.LastLedgerSequence = current + ledgerWindow

	blob, hash, err := SignPayment(w, p)
	if err != nil {
		return nil, fmt.Errorf("xrpl: sign payment: %w", err)
	}

	var submitted struct {
		EngineResult string `json:"engine_result"`
	}
	err = c.request(ctx, map[string]any{
		"command": "submit",
		"tx_blob": strings.ToUpper(hex.EncodeToString(blob)),
	}, &submitted)
	if err != nil {
		return nil, err
	}

	// tem and tef codes are terminal: the transaction can never be included.
	if strings.HasPrefix(submitted.EngineResult, "tem") || strings.HasPrefix(submitted.EngineResult, "tef") {
		return &PaymentResult{Hash: hash, EngineResult: submitted.EngineResult}, nil
	}

	return c.waitValidated(ctx, hash, p.LastLedgerSequence)
}

// waitValidated polls the tx method until the transaction is validated or
// its ledger window has passed.
func (c *Client) waitValidated(ctx context.Context, hash string, lastLedger uint32) (*PaymentResult, error) {
	ticker := time.NewTicker(txPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var result struct {
			Validated bool `json:"validated"`
			Meta      struct {
				TransactionResult string `json:"TransactionResult"`
			} `json:"meta"`
		}
		err := c.request(ctx, map[string]any{
			"command":     "tx",
			"transaction": hash,
		}, &result)
		if err != nil {
			var rpcErr *RPCError
			if errors.As(err, &rpcErr) && rpcErr.Code == "txnNotFound" {
				// Not seen yet; fall through to the ledger-window check.
			} else {
				return nil, err
			}
		} else if result.Validated {
			return &PaymentResult{
				Hash:         hash,
				EngineResult: result.Meta.TransactionResult,
				Validated:    true,
			}, nil
		}

		current, err := c.currentLedgerIndex(ctx)
		if err != nil {
			return nil, err
		}
		if current > lastLedger {
			return nil, fmt.Errorf("xrpl: transaction %s not validated before ledger %d", hash, lastLedger)
		}
	}
}
