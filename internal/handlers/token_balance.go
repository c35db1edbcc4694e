package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// TokenBalanceReader reads the RLUSD balance of an address. Best-effort:
// failures surface as a zero balance.
type TokenBalanceReader interface {
	GetTokenBalance(ctx context.Context, address string) decimal.Decimal
}

// TokenBalanceResponse carries a trust line balance.
// swagger:model TokenBalanceResponse
type TokenBalanceResponse struct {
	// RLUSD balance; 0 when no trust line exists
	// example: 100
	Balance string `json:"balance"`
}

// NewTokenBalanceHandler returns the RLUSD balance of an address.
// @Summary Get RLUSD balance
// @Description Returns the RLUSD trust line balance for an XRPL address; 0 when no trust line exists
// @Tags xrpl
// @Produce json
// @Param address path string true "XRPL address"
// @Success 200 {object} handlers.TokenBalanceResponse "Balance"
// @Router /api/xrpl/balance/{address} [get]
func NewTokenBalanceHandler(reader TokenBalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := chi.URLParam(r, "address")

		balance := reader.GetTokenBalance(r.Context(), address)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenBalanceResponse{Balance: balance.String()})
	}
}
