package exchange

// Alias tables for the known exporters. Column names changed across exporter
// versions; each list is ordered newest-first.

var binanceAdapter = &Adapter{
	exchange: "binance",
	aliases: fieldAliases{
		symbol:    []string{"pair", "market"},
		side:      []string{"side", "type"},
		quantity:  []string{"executed", "amount", "filled"},
		price:     []string{"price", "average price"},
		fee:       []string{"fee"},
		timestamp: []string{"date(utc)", "date", "time"},
	},
}

var coinbaseAdapter = &Adapter{
	exchange: "coinbase",
	aliases: fieldAliases{
		symbol:    []string{"asset", "currency"},
		side:      []string{"transaction type", "type"},
		quantity:  []string{"quantity transacted", "quantity", "amount"},
		price:     []string{"spot price at transaction", "spot price", "price"},
		fee:       []string{"fees", "fees and/or spread", "fee"},
		timestamp: []string{"timestamp", "date"},
	},
}

var coinbaseProAdapter = &Adapter{
	exchange: "coinbasepro",
	aliases: fieldAliases{
		symbol:    []string{"product", "size unit"},
		side:      []string{"side"},
		quantity:  []string{"size", "amount"},
		price:     []string{"price", "avg price"},
		fee:       []string{"fee", "fees"},
		timestamp: []string{"created at", "time", "timestamp"},
	},
}

var krakenAdapter = &Adapter{
	exchange: "kraken",
	aliases: fieldAliases{
		symbol:    []string{"pair"},
		side:      []string{"type"},
		quantity:  []string{"vol", "volume"},
		price:     []string{"price", "avg. price"},
		fee:       []string{"fee"},
		timestamp: []string{"time", "date"},
	},
}

var kucoinAdapter = &Adapter{
	exchange: "kucoin",
	aliases: fieldAliases{
		symbol:    []string{"symbol", "pair"},
		side:      []string{"direction", "side"},
		quantity:  []string{"amount", "filled amount", "size"},
		price:     []string{"deal price", "avg. deal price", "filled price", "price"},
		fee:       []string{"fee"},
		timestamp: []string{"time", "filled time", "created date"},
	},
}
