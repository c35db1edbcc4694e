package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// Transferer runs one cross-chain transfer pipeline to its terminal
// outcome.
type Transferer interface {
	Transfer(ctx context.Context, req models.TransferRequest) models.TransferOutcome
}

// StartTransferRequest is the JSON body starting a cross-chain transfer.
// swagger:model StartTransferRequest
type StartTransferRequest struct {
	// Amount of RLUSD to move, in source asset units
	// example: 10
	RLUSDAmount decimal.Decimal `json:"rlusd_amount"`

	// Destination chain identifier
	// example: polygon
	DestinationNetwork string `json:"destination_network"`

	// XRPL seed controlling the source account; held in memory only
	XRPLSeed string `json:"xrpl_seed"`

	// USDC address on the destination chain
	// example: 0xABC0000000000000000000000000000000000000
	DestinationAddress string `json:"destination_address"`
}

// TransferErrorResponse is returned for malformed transfer requests.
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: rlusd_amount must be positive
	Error string `json:"error"`
}

// NewStartTransferHandler handles cross-chain transfer requests. The
// pipeline runs synchronously; the response carries its terminal outcome.
// @Summary Start a cross-chain transfer
// @Description Moves RLUSD from the XRPL to USDC on a destination chain via the exchange
// @Tags crosschain
// @Accept json
// @Produce json
// @Param request body handlers.StartTransferRequest true "Transfer Request"
// @Success 200 {object} models.TransferOutcome "Transfer completed"
// @Failure 400 {object} handlers.TransferErrorResponse "Malformed request"
// @Failure 500 {object} models.TransferOutcome "Pipeline aborted; stage and error identify the failure"
// @Router /api/crosschain/start-crosschain [post]
func NewStartTransferHandler(transferer Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req StartTransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: "Invalid request body."})
			return
		}

		transferReq := models.TransferRequest{
			Seed:               req.XRPLSeed,
			Amount:             req.RLUSDAmount,
			DestinationNetwork: req.DestinationNetwork,
			DestinationAddress: req.DestinationAddress,
		}
		if err := transferReq.Validate(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TransferErrorResponse{Error: err.Error()})
			return
		}

		outcome := transferer.Transfer(ctx, transferReq)
		if !outcome.Success {
			w.WriteHeader(http.StatusInternalServerError)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		json.NewEncoder(w).Encode(outcome)
	}
}
