package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-crosschain-bridge/internal/models"
)

// NewSupportedNetworksHandler returns the list of destination chains the
// bridge can deliver USDC to.
// @Summary List supported destination networks
// @Description Returns every chain the bridge can withdraw the settlement token to
// @Tags crosschain
// @Produce json
// @Success 200 {array} models.Network "Supported networks"
// @Router /api/crosschain/supported-networks [get]
func NewSupportedNetworksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(models.SupportedNetworks)
	}
}
