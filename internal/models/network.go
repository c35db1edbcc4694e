package models

// Coin and chain identifiers used across the bridge.
const (
	CoinRLUSD = "RLUSD"
	CoinUSDC  = "USDC"
	ChainXRPL = "XRPL"
)

// Network describes a destination chain the bridge can withdraw to.
// swagger:model Network
type Network struct {
	// Network identifier
	// example: polygon
	ID string `json:"id"`

	// Human readable name
	// example: Polygon
	Name string `json:"name"`

	// Settlement token delivered on this network
	// example: USDC
	Token string `json:"token"`
}

// SupportedNetworks lists every chain the exchange can withdraw USDC to.
var SupportedNetworks = []Network{
	{ID: "ethereum", Name: "Ethereum", Token: CoinUSDC},
	{ID: "polygon", Name: "Polygon", Token: CoinUSDC},
	{ID: "bsc", Name: "BSC", Token: CoinUSDC},
	{ID: "arbitrum", Name: "Arbitrum", Token: CoinUSDC},
	{ID: "optimism", Name: "Optimism", Token: CoinUSDC},
	{ID: "avalanche", Name: "Avalanche", Token: CoinUSDC},
	{ID: "solana", Name: "Solana", Token: CoinUSDC},
}

// IsSupportedNetwork reports whether id names a supported destination chain.
func IsSupportedNetwork(id string) bool {
	for _, n := range SupportedNetworks {
		if n.ID == id {
			return true
		}
	}
	return false
}
