package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// AccountInfoProvider resolves account existence and balances.
type AccountInfoProvider interface {
	GetAccountInfo(ctx context.Context, address, seed string) (models.AccountInfo, error)
}

// AccountInfoRequest identifies an account by address or by the seed
// controlling it.
// swagger:model AccountInfoRequest
type AccountInfoRequest struct {
	// Classic XRPL address
	// example: rMxCKbEDwqr76QuheSUMdEGf4B9xJ8m5De
	Address string `json:"address"`

	// XRPL seed, used only to derive the address
	XRPLSeed string `json:"xrpl_seed"`
}

// AccountInfoData carries the resolved account state.
// swagger:model AccountInfoData
type AccountInfoData struct {
	// Resolved address
	Address string `json:"address"`

	// Whether the account exists on the validated ledger
	AccountExists bool `json:"account_exists"`

	// Native XRP balance
	// example: 21.5
	XRPBalance string `json:"xrp_balance"`

	// RLUSD trust line balance
	// example: 100
	RLUSDBalance string `json:"rlusd_balance"`
}

// AccountInfoResponse wraps a successful account resolution.
// swagger:model AccountInfoResponse
type AccountInfoResponse struct {
	Success bool            `json:"success"`
	Data    AccountInfoData `json:"data"`
}

// AccountInfoErrorResponse is returned when resolution fails.
// swagger:model AccountInfoErrorResponse
type AccountInfoErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewAccountInfoHandler handles account resolution requests.
// @Summary Resolve an XRPL account
// @Description Returns account existence, XRP balance and RLUSD balance for an address or seed
// @Tags xrpl
// @Accept json
// @Produce json
// @Param request body handlers.AccountInfoRequest true "Account identifier"
// @Success 200 {object} handlers.AccountInfoResponse "Account resolved"
// @Failure 400 {object} handlers.AccountInfoErrorResponse "Missing or invalid identifier"
// @Failure 500 {object} handlers.AccountInfoErrorResponse "Ledger query failed"
// @Router /api/xrpl/account-info [post]
func NewAccountInfoHandler(provider AccountInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req AccountInfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AccountInfoErrorResponse{Message: "Invalid request body."})
			return
		}

		info, err := provider.GetAccountInfo(ctx, req.Address, req.XRPLSeed)
		if err != nil {
			var validationErr *models.ValidationError
			if errors.As(err, &validationErr) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AccountInfoErrorResponse{Message: validationErr.Message})
				return
			}
			logger.Log.Errorw("account info resolution failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AccountInfoErrorResponse{Message: "Error connecting to XRPL. Please try again."})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AccountInfoResponse{
			Success: true,
			Data: AccountInfoData{
				Address:       info.Address,
				AccountExists: info.Exists,
				XRPBalance:    info.XRPBalance.String(),
				RLUSDBalance:  info.RLUSDBalance.String(),
			},
		})
	}
}
