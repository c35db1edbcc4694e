package xrpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer serves the JSON WebSocket API, answering each command through
// the supplied handler.
func fakeServer(t *testing.T, handle func(req map[string]any) map[string]any) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			var req map[string]any
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			resp := handle(req)
			resp["id"] = req["id"]
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func success(result map[string]any) map[string]any {
	return map[string]any{"status": "success", "result": result}
}

func TestAccountInfo(t *testing.T) {
	srv := fakeServer(t, func(req map[string]any) map[string]any {
		assert.Equal(t, "account_info", req["command"])
		assert.Equal(t, "rSomeAddress", req["account"])
		assert.Equal(t, "validated", req["ledger_index"])
		return success(map[string]any{
			"account_data": map[string]any{"Balance": "21500000", "Sequence": 7},
		})
	})
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	account, err := c.AccountInfo(context.Background(), "rSomeAddress")
	require.NoError(t, err)
	assert.Equal(t, "21500000", account.Balance)
	assert.Equal(t, uint32(7), account.Sequence)
}

func TestAccountInfoNotFound(t *testing.T) {
	srv := fakeServer(t, func(req map[string]any) map[string]any {
		return map[string]any{
			"status":        "error",
			"error":         "actNotFound",
			"error_message": "Account not found.",
		}
	})
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.AccountInfo(context.Background(), "rUnfunded")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestAccountLines(t *testing.T) {
	srv := fakeServer(t, func(req map[string]any) map[string]any {
		assert.Equal(t, "account_lines", req["command"])
		return success(map[string]any{
			"lines": []map[string]any{
				{"account": "rIssuer", "currency": "524C555344000000000000000000000000000000", "balance": "100", "limit": "1000000"},
			},
		})
	})
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	lines, err := c.AccountLines(context.Background(), "rSomeAddress")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "rIssuer", lines[0].Account)
	assert.Equal(t, "100", lines[0].Balance)
}

func TestRequestSkipsUnrelatedMessages(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var req map[string]any
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		// A stream notification arrives before the correlated reply.
		conn.WriteJSON(map[string]any{"type": "ledgerClosed", "ledger_index": 123})
		conn.WriteJSON(map[string]any{
			"id":     req["id"],
			"status": "success",
			"result": map[string]any{"ledger_current_index": 500},
		})
	}))
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	index, err := c.currentLedgerIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint32(500), index)
}

func TestRPCErrorSurfaced(t *testing.T) {
	srv := fakeServer(t, func(req map[string]any) map[string]any {
		return map[string]any{
			"status":        "error",
			"error":         "invalidParams",
			"error_message": "Missing field account.",
		}
	})
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	_, err = c.AccountLines(context.Background(), "")
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "invalidParams", rpcErr.Code)
	assert.Contains(t, rpcErr.Error(), "Missing field account.")
}

func TestSubmitPayment(t *testing.T) {
	sender := testWallet(t, 0x0A)
	receiver := testWallet(t, 0x0B)
	issuer := testWallet(t, 0x0C)

	var submittedBlob string
	srv := fakeServer(t, func(req map[string]any) map[string]any {
		switch req["command"] {
		case "account_info":
			return success(map[string]any{
				"account_data": map[string]any{"Balance": "100000000", "Sequence": 3},
			})
		case "ledger_current":
			return success(map[string]any{"ledger_current_index": 900})
		case "fee":
			return success(map[string]any{
				"drops": map[string]any{"open_ledger_fee": "10"},
			})
		case "submit":
			submittedBlob, _ = req["tx_blob"].(string)
			return success(map[string]any{"engine_result": "tesSUCCESS"})
		case "tx":
			return success(map[string]any{
				"validated": true,
				"meta":      map[string]any{"TransactionResult": "tesSUCCESS"},
			})
		}
		t.Errorf("unexpected command %v", req["command"])
		return map[string]any{"status": "error", "error": "unknownCmd"}
	})
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	p := &Payment{
		Destination: receiver.Address,
		Amount: IssuedAmount{
			Currency: "524C555344000000000000000000000000000000",
			Issuer:   issuer.Address,
			Value:    decimal.NewFromInt(10),
		},
	}

	result, err := c.SubmitPayment(context.Background(), sender, p)
	require.NoError(t, err)
	assert.True(t, result.Validated)
	assert.Equal(t, "tesSUCCESS", result.EngineResult)
	assert.Len(t, result.Hash, 64)

	// Autofilled fields come from the server responses.
	assert.Equal(t, sender.Address, p.Account)
	assert.Equal(t, uint32(3), p.Sequence)
	assert.Equal(t, uint64(10), p.FeeDrops)
	assert.Equal(t, uint32(900+ledgerWindow), p.LastLedgerSequence)
	assert.NotEmpty(t, submittedBlob)
	assert.Equal(t, strings.ToUpper(submittedBlob), submittedBlob)
}

func TestSubmitPaymentTerminalEngineResult(t *testing.T) {
	sender := testWallet(t, 0x0D)
	receiver := testWallet(t, 0x0E)

	srv := fakeServer(t, func(req map[string]any) map[string]any {
		switch req["command"] {
		case "account_info":
			return success(map[string]any{
				"account_data": map[string]any{"Balance": "100000000", "Sequence": 1},
			})
		case "ledger_current":
			return success(map[string]any{"ledger_current_index": 10})
		case "fee":
			return success(map[string]any{
				"drops": map[string]any{"open_ledger_fee": "10"},
			})
		case "submit":
			return success(map[string]any{"engine_result": "temBAD_AMOUNT"})
		}
		t.Errorf("unexpected command %v", req["command"])
		return map[string]any{"status": "error", "error": "unknownCmd"}
	})
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	p := &Payment{
		Destination: receiver.Address,
		Amount: IssuedAmount{
			Currency: "USD",
			Issuer:   receiver.Address,
			Value:    decimal.NewFromInt(1),
		},
	}

	result, err := c.SubmitPayment(context.Background(), sender, p)
	require.NoError(t, err)
	assert.False(t, result.Validated)
	assert.Equal(t, "temBAD_AMOUNT", result.EngineResult)
}

func TestRequestRespectsContext(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// Read but never reply; exit when the peer closes.
		for {
			var req map[string]any
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	c, err := Dial(context.Background(), wsURL(srv))
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.AccountInfo(ctx, "rSomeAddress")
	assert.Error(t, err)
}
