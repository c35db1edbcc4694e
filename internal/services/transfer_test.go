package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

func validTransferRequest() models.TransferRequest {
	return models.TransferRequest{
		Seed:               "sEdSJHdnVumf99WfaHTnU8DaQkx5Q4n",
		Amount:             decimal.NewFromInt(10),
		DestinationNetwork: "polygon",
		DestinationAddress: "0xdest",
	}
}

func TestTransferHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)

	req := validTransferRequest()
	target := models.DepositTarget{Address: "rExchange", Tag: "102717160"}
	converted := decimal.RequireFromString("9.98")

	gomock.InOrder(
		exchange.EXPECT().
			GetDepositTarget(gomock.Any(), models.CoinRLUSD, models.ChainXRPL).
			Return(target, nil),
		ledger.EXPECT().
			Send(gomock.Any(), req.Seed, target.Address, req.Amount, target.Tag).
			Return(models.SendReceipt{Success: true, TxHash: "HASH1"}, nil),
		exchange.EXPECT().
			WaitForDeposit(gomock.Any(), models.CoinRLUSD, req.Amount, "HASH1", 15*time.Minute).
			Return(models.DepositConfirmation{Confirmed: true, TradeID: "HASH1", Amount: req.Amount}, nil),
		exchange.EXPECT().
			Convert(gomock.Any(), models.CoinRLUSD, models.CoinUSDC, req.Amount).
			Return(models.ConversionResult{ConvertedAmount: converted, OrderID: "convert-1"}, nil),
		exchange.EXPECT().
			Withdraw(gomock.Any(), models.CoinUSDC, req.DestinationAddress, req.DestinationNetwork, converted).
			Return(models.WithdrawalResult{OrderID: "withdraw-1", TxID: "0xtx"}, nil),
	)

	svc := NewTransferService(ledger, exchange, nil, 0)
	outcome := svc.Transfer(context.Background(), req)

	assert.True(t, outcome.Success)
	assert.Equal(t, models.StageComplete, outcome.Stage)
	assert.True(t, outcome.OriginalAmount.Equal(req.Amount))
	require.NotNil(t, outcome.ConvertedAmount)
	assert.True(t, outcome.ConvertedAmount.Equal(converted))
	assert.Equal(t, "HASH1", outcome.XRPLTxHash)
	assert.Equal(t, "convert-1", outcome.ConvertOrderID)
	assert.Equal(t, "withdraw-1", outcome.WithdrawOrderID)
	assert.Empty(t, outcome.Error)
}

func TestTransferValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Gateways must not be touched when validation fails.
	svc := NewTransferService(NewMockLedgerGateway(ctrl), NewMockExchangeGateway(ctrl), nil, 0)

	req := validTransferRequest()
	req.DestinationNetwork = "dogechain"

	outcome := svc.Transfer(context.Background(), req)

	assert.False(t, outcome.Success)
	assert.Equal(t, models.StageValidation, outcome.Stage)
	assert.Contains(t, outcome.Error, "dogechain")
}

func TestTransferDepositTargetFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), models.CoinRLUSD, models.ChainXRPL).
		Return(models.DepositTarget{}, errors.New("provider down"))

	svc := NewTransferService(ledger, exchange, nil, 0)
	outcome := svc.Transfer(context.Background(), validTransferRequest())

	assert.False(t, outcome.Success)
	assert.Equal(t, models.StageDepositAddress, outcome.Stage)
	assert.Empty(t, outcome.XRPLTxHash)
}

func TestTransferSendFailureStopsPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), models.CoinRLUSD, models.ChainXRPL).
		Return(models.DepositTarget{Address: "rExchange", Tag: "1"}, nil)
	ledger.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SendReceipt{Success: false, FailureReason: "tecUNFUNDED_PAYMENT"}, nil)

	svc := NewTransferService(ledger, exchange, nil, 0)
	outcome := svc.Transfer(context.Background(), validTransferRequest())

	assert.False(t, outcome.Success)
	assert.Equal(t, models.StageSend, outcome.Stage)
	assert.Contains(t, outcome.Error, "tecUNFUNDED_PAYMENT")
	assert.Empty(t, outcome.XRPLTxHash)
	assert.Empty(t, outcome.ConvertOrderID)
	assert.Empty(t, outcome.WithdrawOrderID)
}

func TestTransferConfirmationTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), models.CoinRLUSD, models.ChainXRPL).
		Return(models.DepositTarget{Address: "rExchange", Tag: "1"}, nil)
	ledger.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SendReceipt{Success: true, TxHash: "HASH1"}, nil)
	exchange.EXPECT().
		WaitForDeposit(gomock.Any(), models.CoinRLUSD, gomock.Any(), "HASH1", time.Minute).
		Return(models.DepositConfirmation{}, models.ErrConfirmationTimeout)

	svc := NewTransferService(ledger, exchange, nil, time.Minute)
	outcome := svc.Transfer(context.Background(), validTransferRequest())

	assert.False(t, outcome.Success)
	assert.Equal(t, models.StageConfirm, outcome.Stage)

	// Funds already left the ledger: the hash must survive into the outcome.
	assert.Equal(t, "HASH1", outcome.XRPLTxHash)
	assert.Nil(t, outcome.ConvertedAmount)
}

func TestTransferConvertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), models.CoinRLUSD, models.ChainXRPL).
		Return(models.DepositTarget{Address: "rExchange", Tag: "1"}, nil)
	ledger.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SendReceipt{Success: true, TxHash: "HASH1"}, nil)
	exchange.EXPECT().
		WaitForDeposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DepositConfirmation{Confirmed: true}, nil)
	exchange.EXPECT().
		Convert(gomock.Any(), models.CoinRLUSD, models.CoinUSDC, gomock.Any()).
		Return(models.ConversionResult{}, errors.New("quote expired"))

	svc := NewTransferService(ledger, exchange, nil, 0)
	outcome := svc.Transfer(context.Background(), validTransferRequest())

	assert.False(t, outcome.Success)
	assert.Equal(t, models.StageConvert, outcome.Stage)
	assert.Equal(t, "HASH1", outcome.XRPLTxHash)
	assert.Empty(t, outcome.WithdrawOrderID)
}

func TestTransferWithdrawFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), models.CoinRLUSD, models.ChainXRPL).
		Return(models.DepositTarget{Address: "rExchange", Tag: "1"}, nil)
	ledger.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SendReceipt{Success: true, TxHash: "HASH1"}, nil)
	exchange.EXPECT().
		WaitForDeposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DepositConfirmation{Confirmed: true}, nil)
	exchange.EXPECT().
		Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ConversionResult{ConvertedAmount: decimal.RequireFromString("9.98"), OrderID: "convert-1"}, nil)
	exchange.EXPECT().
		Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.WithdrawalResult{}, errors.New("withdrawal rejected"))

	svc := NewTransferService(ledger, exchange, nil, 0)
	outcome := svc.Transfer(context.Background(), validTransferRequest())

	assert.False(t, outcome.Success)
	assert.Equal(t, models.StageWithdraw, outcome.Stage)
	assert.Equal(t, "HASH1", outcome.XRPLTxHash)
}

func TestTransferPublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DepositTarget{}, errors.New("provider down"))

	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)

			var event models.TransferEvent
			require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
			assert.Equal(t, string(msgs[0].Key), event.TransferID)
			assert.Equal(t, models.StageDepositAddress, event.Stage)
			assert.False(t, event.Success)
			assert.Equal(t, "10", event.Amount)
			assert.Equal(t, "polygon", event.Network)
			assert.NotEmpty(t, event.Error)
			return nil
		})

	svc := NewTransferService(ledger, exchange, writer, 0)
	svc.Transfer(context.Background(), validTransferRequest())
}

func TestTransferPublishErrorIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := NewMockLedgerGateway(ctrl)
	exchange := NewMockExchangeGateway(ctrl)
	writer := NewMockKafkaWriter(ctrl)

	exchange.EXPECT().
		GetDepositTarget(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DepositTarget{Address: "rExchange", Tag: "1"}, nil)
	ledger.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.SendReceipt{Success: true, TxHash: "HASH1"}, nil)
	exchange.EXPECT().
		WaitForDeposit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DepositConfirmation{Confirmed: true}, nil)
	exchange.EXPECT().
		Convert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.ConversionResult{ConvertedAmount: decimal.NewFromInt(9), OrderID: "convert-1"}, nil)
	exchange.EXPECT().
		Withdraw(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.WithdrawalResult{OrderID: "withdraw-1"}, nil)

	writer.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	svc := NewTransferService(ledger, exchange, writer, 0)
	outcome := svc.Transfer(context.Background(), validTransferRequest())

	assert.True(t, outcome.Success)
}
