package steammarket

import "time"

const (
	// DefaultBaseURL is the Steam community host serving the market API.
	DefaultBaseURL = "https://steamcommunity.com"

	// DefaultAppID is the CS:GO/CS2 app id, the market this tracker was
	// built around.
	DefaultAppID = 730

	// DefaultCurrency is the Steam currency code for USD.
	DefaultCurrency = 1

	// DefaultTimeout bounds a single priceoverview call.
	DefaultTimeout = 10 * time.Second

	priceOverviewPath = "/market/priceoverview/"

	// listingsMarker splits a market listing URL into host part and
	// "<appid>/<market_hash_name>".
	listingsMarker = "/market/listings/"
)
