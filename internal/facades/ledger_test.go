package facades

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/clients/xrpl"
)

// Well-formed ed25519 seed usable for offline derivation and signing.
const testSeed = "sEdSJHdnVumf99WfaHTnU8DaQkx5Q4n"

func dialerFor(conn LedgerConn, err error) func(ctx context.Context) (LedgerConn, error) {
	return func(ctx context.Context) (LedgerConn, error) {
		return conn, err
	}
}

func TestDeriveAddress(t *testing.T) {
	f := NewLedgerFacadeWithDialer(dialerFor(nil, errors.New("must not dial")), "")

	address, err := f.DeriveAddress(testSeed)
	require.NoError(t, err)
	assert.True(t, address[0] == 'r')

	again, err := f.DeriveAddress(testSeed)
	require.NoError(t, err)
	assert.Equal(t, address, again)

	_, err = f.DeriveAddress("bogus")
	assert.ErrorIs(t, err, xrpl.ErrInvalidSeed)
}

func TestGetTokenBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	issuer := DefaultRLUSDIssuer

	tests := []struct {
		name  string
		lines []xrpl.TrustLine
		err   error
		want  string
	}{
		{
			name: "trust line present",
			lines: []xrpl.TrustLine{
				{Account: "rOther", Currency: "USD", Balance: "5"},
				{Account: issuer, Currency: RLUSDCurrencyHex, Balance: "123.45"},
			},
			want: "123.45",
		},
		{
			name: "wrong issuer ignored",
			lines: []xrpl.TrustLine{
				{Account: "rOther", Currency: RLUSDCurrencyHex, Balance: "50"},
			},
			want: "0",
		},
		{
			name: "no trust line",
			want: "0",
		},
		{
			name: "query error reads as zero",
			err:  errors.New("connection reset"),
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := NewMockLedgerConn(ctrl)
			conn.EXPECT().AccountLines(gomock.Any(), "rSomeAddress").Return(tt.lines, tt.err)
			conn.EXPECT().Close().Return(nil)

			f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

			balance := f.GetTokenBalance(context.Background(), "rSomeAddress")
			assert.True(t, balance.Equal(decimal.RequireFromString(tt.want)),
				"want %s, got %s", tt.want, balance)
		})
	}
}

func TestGetTokenBalanceDialFailure(t *testing.T) {
	f := NewLedgerFacadeWithDialer(dialerFor(nil, errors.New("dial tcp: refused")), "")

	balance := f.GetTokenBalance(context.Background(), "rSomeAddress")
	assert.True(t, balance.IsZero())
}

func TestGetAccountSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("existing account", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().AccountInfo(gomock.Any(), "rSomeAddress").
			Return(&xrpl.AccountData{Balance: "21500000", Sequence: 5}, nil)
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		snapshot, err := f.GetAccountSnapshot(context.Background(), "rSomeAddress")
		require.NoError(t, err)
		assert.True(t, snapshot.Exists)
		assert.True(t, snapshot.XRPBalance.Equal(decimal.RequireFromString("21.5")))
	})

	t.Run("unfunded account", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().AccountInfo(gomock.Any(), "rSomeAddress").
			Return(nil, xrpl.ErrAccountNotFound)
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		snapshot, err := f.GetAccountSnapshot(context.Background(), "rSomeAddress")
		require.NoError(t, err)
		assert.False(t, snapshot.Exists)
		assert.True(t, snapshot.XRPBalance.IsZero())
	})

	t.Run("query error propagates", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().AccountInfo(gomock.Any(), "rSomeAddress").
			Return(nil, errors.New("timeout"))
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		_, err := f.GetAccountSnapshot(context.Background(), "rSomeAddress")
		assert.Error(t, err)
	})
}

func TestSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	destination := "rGDreBvnHrX1get7na3J4oowN19ny4GzFn"
	amount := decimal.NewFromInt(10)

	t.Run("validated payment", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, w *xrpl.Wallet, p *xrpl.Payment) (*xrpl.PaymentResult, error) {
				assert.Equal(t, destination, p.Destination)
				assert.Equal(t, RLUSDCurrencyHex, p.Amount.Currency)
				assert.Equal(t, DefaultRLUSDIssuer, p.Amount.Issuer)
				require.NotNil(t, p.DestinationTag)
				assert.Equal(t, uint32(102717160), *p.DestinationTag)
				return &xrpl.PaymentResult{Hash: "ABCDEF", EngineResult: "tesSUCCESS", Validated: true}, nil
			})
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		receipt, err := f.Send(context.Background(), testSeed, destination, amount, "102717160")
		require.NoError(t, err)
		assert.True(t, receipt.Success)
		assert.Equal(t, "ABCDEF", receipt.TxHash)
	})

	t.Run("engine failure is a failed receipt", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&xrpl.PaymentResult{Hash: "ABCDEF", EngineResult: "tecPATH_DRY", Validated: true}, nil)
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		receipt, err := f.Send(context.Background(), testSeed, destination, amount, "")
		require.NoError(t, err)
		assert.False(t, receipt.Success)
		assert.Equal(t, "tecPATH_DRY", receipt.FailureReason)
	})

	t.Run("unvalidated result is a failed receipt", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&xrpl.PaymentResult{Hash: "ABCDEF", EngineResult: "tesSUCCESS", Validated: false}, nil)
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		receipt, err := f.Send(context.Background(), testSeed, destination, amount, "")
		require.NoError(t, err)
		assert.False(t, receipt.Success)
	})

	t.Run("invalid seed", func(t *testing.T) {
		f := NewLedgerFacadeWithDialer(dialerFor(nil, errors.New("must not dial")), "")

		_, err := f.Send(context.Background(), "bogus", destination, amount, "")
		assert.ErrorIs(t, err, xrpl.ErrInvalidSeed)
	})

	t.Run("invalid destination tag", func(t *testing.T) {
		f := NewLedgerFacadeWithDialer(dialerFor(nil, errors.New("must not dial")), "")

		_, err := f.Send(context.Background(), testSeed, destination, amount, "not-a-tag")
		assert.Error(t, err)
	})

	t.Run("submit error propagates", func(t *testing.T) {
		conn := NewMockLedgerConn(ctrl)
		conn.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("websocket closed"))
		conn.EXPECT().Close().Return(nil)

		f := NewLedgerFacadeWithDialer(dialerFor(conn, nil), "")

		_, err := f.Send(context.Background(), testSeed, destination, amount, "")
		assert.Error(t, err)
	})
}
