package bitget

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
)

const (
	// DefaultBaseURL is the production REST endpoint.
	DefaultBaseURL = "https://api.bitget.com"

	// placeholderAPIKey keeps the historical no-credential marker working:
	// configs shipped with this value run in simulation mode.
	placeholderAPIKey = "YOUR_BITGET_API_KEY"

	pathDepositAddress = "/api/v2/spot/wallet/deposit-address"
	pathDepositRecords = "/api/v2/spot/wallet/deposit-records"
	pathQuotedPrice    = "/api/v2/convert/quoted-price"
	pathConvertTrade   = "/api/v2/convert/trade"
	pathWithdrawal     = "/api/v2/spot/wallet/withdrawal"
)

// ErrInvalidAmount is returned when an operation is attempted with a
// non-positive amount.
var ErrInvalidAmount = errors.New("bitget: amount must be positive")

var (
	simQuoteRate   = decimal.RequireFromString("0.99")
	simConvertRate = decimal.RequireFromString("0.998") // 0.2% conversion fee
)

// Credentials holds the API key triple. Leaving them empty (or at the
// placeholder value) switches the client into simulation mode.
type Credentials struct {
	APIKey     string
	SecretKey  string
	Passphrase string
}

// Client is a signed REST client for the Bitget v2 API. Safe for concurrent
// use; it keeps no per-call state.
type Client struct {
	baseURL string
	creds   Credentials
	http    *http.Client
}

// NewClient builds a client against the given base URL. An empty baseURL
// selects the production endpoint.
func NewClient(baseURL string, creds Credentials) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Simulated reports whether the client runs without real credentials,
// serving deterministic synthetic responses instead of calling the
// provider. This is an explicit operating mode for offline and demo use.
func (c *Client) Simulated() bool {
	return c.creds.APIKey == "" || c.creds.APIKey == placeholderAPIKey
}

// GetDepositAddress looks up the deposit address for a coin on a chain.
func (c *Client) GetDepositAddress(ctx context.Context, coin, chain string) (*DepositAddress, error) {
	if c.Simulated() {
		return &DepositAddress{
			Address: "sim_" + uuid.NewString(),
			Tag:     "0",
			Coin:    coin,
			Chain:   chain,
		}, nil
	}

	query := url.Values{}
	query.Set("coin", coin)
	query.Set("chain", chain)

	var out DepositAddress
	if err := c.do(ctx, http.MethodGet, pathDepositAddress, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDepositRecords queries deposit history over a time window. In
// simulation mode it returns an empty set, never an error.
func (c *Client) GetDepositRecords(ctx context.Context, coin string, start, end time.Time, limit int) ([]DepositRecord, error) {
	if c.Simulated() {
		logger.Log.Debugw("simulation mode: no deposit records", "coin", coin)
		return nil, nil
	}

	query := url.Values{}
	query.Set("coin", coin)
	query.Set("startTime", strconv.FormatInt(start.UnixMilli(), 10))
	query.Set("endTime", strconv.FormatInt(end.UnixMilli(), 10))
	query.Set("limit", strconv.Itoa(limit))

	var out []DepositRecord
	if err := c.do(ctx, http.MethodGet, pathDepositRecords, query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuotedPrice requests a fresh conversion quote. Quotes are single-use
// and time-sensitive.
func (c *Client) GetQuotedPrice(ctx context.Context, fromCoin, toCoin string, fromCoinSize decimal.Decimal) (*QuotedPrice, error) {
	if fromCoinSize.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if c.Simulated() {
		return &QuotedPrice{
			CnvtPrice:  fromCoinSize.Mul(simQuoteRate).String(),
			ToCoinSize: fromCoinSize.Mul(simQuoteRate).String(),
			TraceID:    "simulated_trace_" + uuid.NewString(),
		}, nil
	}

	query := url.Values{}
	query.Set("fromCoin", fromCoin)
	query.Set("toCoin", toCoin)
	query.Set("fromCoinSize", fromCoinSize.String())

	var out QuotedPrice
	if err := c.do(ctx, http.MethodGet, pathQuotedPrice, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Convert executes a conversion against a previously obtained quote,
// forwarding the quote's price, size and trace id verbatim.
func (c *Client) Convert(ctx context.Context, fromCoin, toCoin string, fromCoinSize decimal.Decimal, quote *QuotedPrice) (*ConvertOrder, error) {
	if fromCoinSize.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if c.Simulated() {
		return &ConvertOrder{
			OrderID:    "convert_" + uuid.NewString(),
			ToCoinSize: fromCoinSize.Mul(simConvertRate).String(),
		}, nil
	}

	body := map[string]string{
		"fromCoin":     fromCoin,
		"toCoin":       toCoin,
		"fromCoinSize": fromCoinSize.String(),
		"cnvtPrice":    quote.CnvtPrice,
		"toCoinSize":   quote.ToCoinSize,
		"traceId":      quote.TraceID,
	}

	var out ConvertOrder
	if err := c.do(ctx, http.MethodPost, pathConvertTrade, nil, body, &out); err != nil {
		return nil, err
	}
	if out.ToCoinSize == "" {
		out.ToCoinSize = quote.ToCoinSize
	}
	return &out, nil
}

// Withdraw submits an on-chain withdrawal. Single attempt, no retry.
func (c *Client) Withdraw(ctx context.Context, coin, address, chain string, size decimal.Decimal) (*WithdrawalOrder, error) {
	if size.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	if c.Simulated() {
		return &WithdrawalOrder{
			OrderID: "withdraw_" + uuid.NewString(),
			TxID:    "simulated_tx_" + uuid.NewString(),
		}, nil
	}

	body := map[string]string{
		"coin":         coin,
		"transferType": "on_chain",
		"address":      address,
		"chain":        chain,
		"size":         size.String(),
	}

	var out WithdrawalOrder
	if err := c.do(ctx, http.MethodPost, pathWithdrawal, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type envelope struct {
	Code string          `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// do performs one signed request and decodes the data payload into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	requestPath := path
	if len(query) > 0 {
		requestPath += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("bitget: marshal request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+requestPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("bitget: build request: %w", err)
	}

	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("ACCESS-KEY", c.creds.APIKey)
	req.Header.Set("ACCESS-SIGN", c.sign(ts, method, requestPath, payload))
	req.Header.Set("ACCESS-TIMESTAMP", ts)
	req.Header.Set("ACCESS-PASSPHRASE", c.creds.Passphrase)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("bitget: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("bitget: read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("bitget: decode response (http %d): %w", resp.StatusCode, err)
	}
	if env.Code != CodeOK {
		return &APIError{Code: env.Code, Msg: env.Msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("bitget: decode data: %w", err)
		}
	}
	return nil
}

// sign computes the request signature: base64(HMAC-SHA256(secret,
// timestamp + method + requestPath + body)).
func (c *Client) sign(ts, method, requestPath string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.creds.SecretKey))
	mac.Write([]byte(ts))
	mac.Write([]byte(method))
	mac.Write([]byte(requestPath))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
