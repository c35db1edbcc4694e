package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// LedgerReader defines the read-only ledger operations used for account
// resolution.
type LedgerReader interface {
	DeriveAddress(seed string) (string, error)
	GetAccountSnapshot(ctx context.Context, address string) (models.AccountSnapshot, error)
	GetTokenBalance(ctx context.Context, address string) decimal.Decimal
}

// AccountService resolves account existence and balances without initiating
// a transfer.
type AccountService struct {
	ledger LedgerReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(ledger LedgerReader) *AccountService {
	return &AccountService{ledger: ledger}
}

// GetAccountInfo resolves an account by address, or by the seed controlling
// it when no address is given. A bad seed or a missing identifier is a
// validation error; ledger query failures propagate.
func (s *AccountService) GetAccountInfo(ctx context.Context, address, seed string) (models.AccountInfo, error) {
	if address == "" && seed != "" {
		derived, err := s.ledger.DeriveAddress(seed)
		if err != nil {
			return models.AccountInfo{}, models.NewValidationError("invalid XRPL seed provided")
		}
		address = derived
	}
	if address == "" {
		return models.AccountInfo{}, models.NewValidationError("address or XRPL seed is required")
	}

	snapshot, err := s.ledger.GetAccountSnapshot(ctx, address)
	if err != nil {
		logger.Log.Errorw("failed to get account snapshot", "address", address, "error", err)
		return models.AccountInfo{}, err
	}

	return models.AccountInfo{
		Address:      address,
		Exists:       snapshot.Exists,
		XRPBalance:   snapshot.XRPBalance,
		RLUSDBalance: s.ledger.GetTokenBalance(ctx, address),
	}, nil
}

// GetTokenBalance returns the RLUSD balance of an address. Best-effort:
// failures surface as a zero balance.
func (s *AccountService) GetTokenBalance(ctx context.Context, address string) decimal.Decimal {
	return s.ledger.GetTokenBalance(ctx, address)
}
