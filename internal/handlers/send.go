package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/logger"
	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// LedgerSender submits one RLUSD payment on the source ledger.
type LedgerSender interface {
	Send(ctx context.Context, seed, destination string, amount decimal.Decimal, destinationTag string) (models.SendReceipt, error)
}

// SendRequest is the JSON body for a direct ledger send.
// swagger:model SendRequest
type SendRequest struct {
	// XRPL seed controlling the sending account
	SenderSeed string `json:"senderSeed"`

	// Destination XRPL address
	DestinationAddress string `json:"destinationAddress"`

	// Amount of RLUSD to send
	// example: 10
	Amount decimal.Decimal `json:"amount"`

	// Optional destination tag
	// example: 102717160
	DestinationTag string `json:"destinationTag"`
}

// SendResponse reports one payment attempt. Hash is set only on success,
// Message only on failure.
// swagger:model SendResponse
type SendResponse struct {
	Success bool   `json:"success"`
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}

// NewSendHandler handles direct RLUSD sends on the XRPL.
// @Summary Send RLUSD on the XRPL
// @Description Signs and submits an RLUSD payment, waiting for ledger finality
// @Tags xrpl
// @Accept json
// @Produce json
// @Param request body handlers.SendRequest true "Send Request"
// @Success 200 {object} handlers.SendResponse "Payment result"
// @Failure 400 {object} handlers.SendResponse "Malformed request"
// @Failure 500 {object} handlers.SendResponse "Submission failed"
// @Router /api/xrpl/send [post]
func NewSendHandler(sender LedgerSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		var req SendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendResponse{Message: "Invalid request body."})
			return
		}
		if req.SenderSeed == "" || req.DestinationAddress == "" || !req.Amount.IsPositive() {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendResponse{Message: "senderSeed, destinationAddress and a positive amount are required."})
			return
		}

		receipt, err := sender.Send(ctx, req.SenderSeed, req.DestinationAddress, req.Amount, req.DestinationTag)
		if err != nil {
			logger.Log.Errorw("ledger send failed", "destination", req.DestinationAddress, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SendResponse{Message: err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendResponse{
			Success: receipt.Success,
			Hash:    receipt.TxHash,
			Message: receipt.FailureReason,
		})
	}
}
