package assets

import "github.com/coinfolio-dev/coinfolio/internal/model"

// DefaultAssets returns the built-in catalog covering the majors most
// exchange exports reference.
func DefaultAssets() []model.Asset {
	return []model.Asset{
		{Symbol: "BTC", Name: "Bitcoin"},
		{Symbol: "XBT", Name: "Bitcoin"},
		{Symbol: "ETH", Name: "Ethereum"},
		{Symbol: "USDT", Name: "Tether"},
		{Symbol: "USDC", Name: "USD Coin"},
		{Symbol: "BNB", Name: "BNB"},
		{Symbol: "XRP", Name: "XRP"},
		{Symbol: "ADA", Name: "Cardano"},
		{Symbol: "SOL", Name: "Solana"},
		{Symbol: "DOGE", Name: "Dogecoin"},
		{Symbol: "DOT", Name: "Polkadot"},
		{Symbol: "MATIC", Name: "Polygon"},
		{Symbol: "LINK", Name: "Chainlink"},
		{Symbol: "AVAX", Name: "Avalanche"},
		{Symbol: "ATOM", Name: "Cosmos"},
		{Symbol: "LTC", Name: "Litecoin"},
		{Symbol: "UNI", Name: "Uniswap"},
		{Symbol: "XLM", Name: "Stellar"},
		{Symbol: "ALGO", Name: "Algorand"},
		{Symbol: "TRX", Name: "TRON"},
	}
}
