// Package catalog holds the static asset catalogs served by the listing
// endpoints. Entries are compiled in; there is no admin surface for them.
package catalog

import "strings"

// StockInfo is one listed equity.
type StockInfo struct {
	CompanyName string `json:"company_name"`
	Symbol      string `json:"symbol"`
	LogoURL     string `json:"logo_url"`
}

// CryptoInfo is one listed crypto asset.
type CryptoInfo struct {
	Symbol string `json:"symbol"`
	ID     string `json:"id"`
	Image  string `json:"image"`
}

var Stocks = []StockInfo{
	{"Apple Inc.", "AAPL", "https://1000logos.net/wp-content/uploads/2016/10/Apple-Logo.png"},
	{"Microsoft Corporation", "MSFT", "https://1000logos.net/wp-content/uploads/2021/10/Microsoft-Logo.png"},
	{"Alphabet Inc. (Class A)", "GOOGL", "https://1000logos.net/wp-content/uploads/2021/10/Alphabet-Logo.png"},
	{"Amazon.com, Inc.", "AMZN", "https://1000logos.net/wp-content/uploads/2016/10/Amazon-Logo.png"},
	{"NVIDIA Corporation", "NVDA", "https://1000logos.net/wp-content/uploads/2020/08/Nvidia-Logo.png"},
	{"Meta Platforms, Inc.", "META", "https://1000logos.net/wp-content/uploads/2021/11/Facebook-Meta-Logo.png"},
	{"Tesla, Inc.", "TSLA", "https://1000logos.net/wp-content/uploads/2018/03/Tesla-Logo.png"},
	{"Taiwan Semiconductor Manufacturing Company Limited", "TSM", "https://1000logos.net/wp-content/uploads/2021/06/TSMC-Logo.png"},
	{"Samsung Electronics Co., Ltd.", "005930.KS", "https://1000logos.net/wp-content/uploads/2017/06/Samsung-Logo.png"},
	{"Intel Corporation", "INTC", "https://1000logos.net/wp-content/uploads/2016/10/Intel-Logo.png"},
	{"JPMorgan Chase & Co.", "JPM", "https://1000logos.net/wp-content/uploads/2021/05/JPMorgan-Chase-Logo.png"},
	{"Procter & Gamble Co.", "PG", "https://1000logos.net/wp-content/uploads/2017/03/Procter-Gamble-Logo.png"},
	{"Johnson & Johnson", "JNJ", "https://1000logos.net/wp-content/uploads/2016/10/Johnson-Johnson-Logo.png"},
	{"Berkshire Hathaway Inc. (Class B)", "BRK.B", "https://1000logos.net/wp-content/uploads/2021/05/Berkshire-Hathaway-Logo.png"},
	{"Nestlé S.A.", "NESN.SW", "https://1000logos.net/wp-content/uploads/2017/03/Nestle-Logo.png"},
	{"Alibaba Group Holding Limited", "BABA", "https://1000logos.net/wp-content/uploads/2017/02/Alibaba-Logo.png"},
	{"Tencent Holdings Ltd.", "0700.HK", "https://1000logos.net/wp-content/uploads/2017/02/Tencent-Logo.png"},
	{"Industrial and Commercial Bank of China Limited", "1398.HK", "https://1000logos.net/wp-content/uploads/2021/05/ICBC-Logo.png"},
	{"Exxon Mobil Corporation", "XOM", "https://1000logos.net/wp-content/uploads/2016/10/ExxonMobil-Logo.png"},
}

var Cryptos = []CryptoInfo{
	{"BTC", "bitcoin", "https://assets.coingecko.com/coins/images/1/large/bitcoin.png"},
	{"ETH", "ethereum", "https://assets.coingecko.com/coins/images/279/large/ethereum.png"},
	{"BNB", "binancecoin", "https://assets.coingecko.com/coins/images/825/large/binance-coin-logo.png"},
	{"SOL", "solana", "https://assets.coingecko.com/coins/images/4128/large/solana.png"},
	{"XRP", "ripple", "https://assets.coingecko.com/coins/images/44/large/xrp-symbol-white-128.png"},
	{"ADA", "cardano", "https://assets.coingecko.com/coins/images/975/large/cardano.png"},
	{"AVAX", "avalanche-2", "https://assets.coingecko.com/coins/images/12559/large/coin-round-red.png"},
	{"DOGE", "dogecoin", "https://assets.coingecko.com/coins/images/5/large/dogecoin.png"},
	{"DOT", "polkadot", "https://assets.coingecko.com/coins/images/12171/large/polkadot.png"},
	{"MATIC", "matic-network", "https://assets.coingecko.com/coins/images/4713/large/matic-token-icon.png"},
	{"LINK", "chainlink", "https://assets.coingecko.com/coins/images/877/large/chainlink-new-logo.png"},
	{"LTC", "litecoin", "https://assets.coingecko.com/coins/images/2/large/litecoin.png"},
	{"UNI", "uniswap", "https://assets.coingecko.com/coins/images/12504/large/uniswap-uni.png"},
	{"SHIB", "shiba-inu", "https://assets.coingecko.com/coins/images/11939/large/shiba.png"},
	{"TRX", "tron", "https://assets.coingecko.com/coins/images/1094/large/tron-logo.png"},
	{"XLM", "stellar", "https://assets.coingecko.com/coins/images/100/large/Stellar_symbol_black_RGB.png"},
	{"ATOM", "cosmos", "https://assets.coingecko.com/coins/images/1481/large/cosmos_hub.png"},
	{"CRO", "crypto-com-chain", "https://assets.coingecko.com/coins/images/7310/large/cro_token_logo.png"},
	{"BCH", "bitcoin-cash", "https://assets.coingecko.com/coins/images/780/large/bitcoin-cash-circle.png"},
	{"ALGO", "algorand", "https://assets.coingecko.com/coins/images/4380/large/download.png"},
	{"ETC", "ethereum-classic", "https://assets.coingecko.com/coins/images/453/large/ethereum-classic-logo.png"},
	{"FIL", "filecoin", "https://assets.coingecko.com/coins/images/12817/large/filecoin.png"},
	{"VET", "vechain", "https://assets.coingecko.com/coins/images/1578/large/VeChain-Logo-1.png"},
	{"MANA", "decentraland", "https://assets.coingecko.com/coins/images/878/large/decentraland-mana.png"},
	{"THETA", "theta-token", "https://assets.coingecko.com/coins/images/2538/large/theta-token-logo.png"},
	{"AXS", "axie-infinity", "https://assets.coingecko.com/coins/images/13029/large/axie_infinity_logo.png"},
	{"ICP", "internet-computer", "https://assets.coingecko.com/coins/images/14495/large/Internet_Computer_logo.png"},
	{"XTZ", "tezos", "https://assets.coingecko.com/coins/images/976/large/Tezos-logo.png"},
	{"AAVE", "aave", "https://assets.coingecko.com/coins/images/12645/large/AAVE.png"},
	{"XMR", "monero", "https://assets.coingecko.com/coins/images/69/large/monero_logo.png"},
}

// CryptoPage returns a slice of the crypto catalog for list pagination.
// Out-of-range requests yield an empty slice.
func CryptoPage(offset, limit int) []CryptoInfo {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = 10
	}
	if offset >= len(Cryptos) {
		return []CryptoInfo{}
	}
	end := offset + limit
	if end > len(Cryptos) {
		end = len(Cryptos)
	}
	return Cryptos[offset:end]
}

// StockLogo returns the logo URL for a symbol, or "" when unknown.
func StockLogo(symbol string) string {
	symbol = strings.ToUpper(symbol)
	for _, s := range Stocks {
		if s.Symbol == symbol {
			return s.LogoURL
		}
	}
	return ""
}

// CryptoImage returns the image URL for a crypto symbol, or "" when unknown.
func CryptoImage(symbol string) string {
	symbol = strings.ToUpper(symbol)
	for _, c := range Cryptos {
		if c.Symbol == symbol {
			return c.Image
		}
	}
	return ""
}
