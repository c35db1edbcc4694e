package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// defaultConfirmMaxWait bounds the deposit confirmation stage when no
// explicit deadline is configured.
const defaultConfirmMaxWait = 15 * time.Minute

// LedgerGateway defines the source-ledger operations the pipeline drives.
type LedgerGateway interface {
	Send(ctx context.Context, seed, destination string, amount decimal.Decimal, destinationTag string) (models.SendReceipt, error)
}

// ExchangeGateway defines the exchange operations the pipeline drives.
type ExchangeGateway interface {
	GetDepositTarget(ctx context.Context, coin, chain string) (models.DepositTarget, error)
	WaitForDeposit(ctx context.Context, coin string, expected decimal.Decimal, txHash string, maxWait time.Duration) (models.DepositConfirmation, error)
	Convert(ctx context.Context, fromCoin, toCoin string, amount decimal.Decimal) (models.ConversionResult, error)
	Withdraw(ctx context.Context, coin, address, chain string, amount decimal.Decimal) (models.WithdrawalResult, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// TransferService orchestrates the cross-chain transfer pipeline:
// deposit-address, send, confirm, convert, withdraw. Stages run strictly in
// order; the first failure aborts the run and becomes the outcome. No
// compensation is attempted for completed stages: once funds leave the
// source ledger, only the exchange operator can recover them.
type TransferService struct {
	ledger         LedgerGateway
	exchange       ExchangeGateway
	kafkaWriter    KafkaWriter
	confirmMaxWait time.Duration
}

// NewTransferService creates a new TransferService. kafkaWriter may be nil
// to disable event publishing; a non-positive confirmMaxWait selects the
// 15 minute default.
func NewTransferService(
	ledger LedgerGateway,
	exchange ExchangeGateway,
	kafkaWriter KafkaWriter,
	confirmMaxWait time.Duration,
) *TransferService {
	if confirmMaxWait <= 0 {
		confirmMaxWait = defaultConfirmMaxWait
	}
	return &TransferService{
		ledger:         ledger,
		exchange:       exchange,
		kafkaWriter:    kafkaWriter,
		confirmMaxWait: confirmMaxWait,
	}
}

// Transfer runs one complete pipeline and returns its terminal outcome.
// The outcome is also published to Kafka when a writer is configured.
func (s *TransferService) Transfer(ctx context.Context, req models.TransferRequest) models.TransferOutcome {
	outcome := s.run(ctx, req)
	s.publishOutcome(ctx, req, outcome)
	return outcome
}

func (s *TransferService) run(ctx context.Context, req models.TransferRequest) models.TransferOutcome {
	if err := req.Validate(); err != nil {
		return models.TransferOutcome{
			Stage:          models.StageValidation,
			OriginalAmount: req.Amount,
			Error:          err.Error(),
		}
	}

	// Failure outcomes carry the ledger transaction hash once the send has
	// happened: any abort past that point needs manual reconciliation and
	// the hash is the operator's handle on the funds.
	fail := func(stage, txHash string, err error) models.TransferOutcome {
		logger.Log.Errorw("transfer aborted",
			"stage", stage,
			"amount", req.Amount.String(),
			"network", req.DestinationNetwork,
			"error", err,
		)
		return models.TransferOutcome{
			Stage:          stage,
			OriginalAmount: req.Amount,
			XRPLTxHash:     txHash,
			Error:          err.Error(),
		}
	}

	// Stage 1: resolve the exchange deposit target for RLUSD on the XRPL.
	target, err := s.exchange.GetDepositTarget(ctx, models.CoinRLUSD, models.ChainXRPL)
	if err != nil {
		return fail(models.StageDepositAddress, "", err)
	}

	// Stage 2: send RLUSD from the source ledger to the exchange.
	receipt, err := s.ledger.Send(ctx, req.Seed, target.Address, req.Amount, target.Tag)
	if err != nil {
		return fail(models.StageSend, "", err)
	}
	if !receipt.Success {
		return fail(models.StageSend, "", models.NewGatewayError(models.StageSend, "XRPL payment failed: %s", receipt.FailureReason))
	}

	// Stage 3: wait for the exchange to recognize the deposit.
	if _, err := s.exchange.WaitForDeposit(ctx, models.CoinRLUSD, req.Amount, receipt.TxHash, s.confirmMaxWait); err != nil {
		return fail(models.StageConfirm, receipt.TxHash, err)
	}

	// Stage 4: convert RLUSD to USDC inside the exchange.
	conversion, err := s.exchange.Convert(ctx, models.CoinRLUSD, models.CoinUSDC, req.Amount)
	if err != nil {
		return fail(models.StageConvert, receipt.TxHash, err)
	}

	// Stage 5: withdraw USDC to the destination chain.
	withdrawal, err := s.exchange.Withdraw(ctx, models.CoinUSDC, req.DestinationAddress, req.DestinationNetwork, conversion.ConvertedAmount)
	if err != nil {
		return fail(models.StageWithdraw, receipt.TxHash, err)
	}

	logger.Log.Infow("transfer complete",
		"amount", req.Amount.String(),
		"converted_amount", conversion.ConvertedAmount.String(),
		"network", req.DestinationNetwork,
		"tx_hash", receipt.TxHash,
	)

	return models.TransferOutcome{
		Success:         true,
		Stage:           models.StageComplete,
		OriginalAmount:  req.Amount,
		ConvertedAmount: &conversion.ConvertedAmount,
		XRPLTxHash:      receipt.TxHash,
		ConvertOrderID:  conversion.OrderID,
		WithdrawOrderID: withdrawal.OrderID,
	}
}

// publishOutcome publishes a transfer event to Kafka.
func (s *TransferService) publishOutcome(ctx context.Context, req models.TransferRequest, outcome models.TransferOutcome) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "stage", outcome.Stage)
		return
	}

	event := models.TransferEvent{
		TransferID: uuid.NewString(),
		Timestamp:  time.Now().Unix(),
		Stage:      outcome.Stage,
		Success:    outcome.Success,
		Amount:     outcome.OriginalAmount.String(),
		Network:    req.DestinationNetwork,
		Error:      outcome.Error,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transfer event for Kafka", "transfer_id", event.TransferID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransferID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transfer event to Kafka", "transfer_id", event.TransferID, "error", err)
	} else {
		logger.Log.Infow("Transfer event published to Kafka", "transfer_id", event.TransferID, "stage", event.Stage)
	}
}
