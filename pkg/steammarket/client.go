package steammarket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Client is the HTTP wrapper for the Steam community market priceoverview API.
type Client struct {
	baseURL    string
	appID      int
	currency   int
	httpClient *http.Client
}

// NewClient creates a new Steam market client. Zero values fall back to the
// package defaults.
func NewClient(baseURL string, appID, currency int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if appID == 0 {
		appID = DefaultAppID
	}
	if currency == 0 {
		currency = DefaultCurrency
	}
	return &Client{
		baseURL:    baseURL,
		appID:      appID,
		currency:   currency,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Lookup resolves the lowest listed price for the item behind itemLink.
// Any failure collapses to ErrUnavailable so callers can apply a single
// unavailable-price policy.
func (c *Client) Lookup(ctx context.Context, itemLink string) (decimal.Decimal, error) {
	// The listing link carries the hash name percent-encoded already;
	// decode it once so QueryEscape below does not double-encode.
	hashName, err := DisplayName(itemLink)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	reqURL := fmt.Sprintf("%s%s?appid=%d&currency=%d&market_hash_name=%s",
		c.baseURL, priceOverviewPath, c.appID, c.currency, url.QueryEscape(hashName))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var overview priceOverviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&overview); err != nil {
		return decimal.Zero, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if !overview.Success || overview.LowestPrice == "" {
		return decimal.Zero, fmt.Errorf("%w: no listing for %q", ErrUnavailable, hashName)
	}

	price, err := parsePrice(overview.LowestPrice)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return price, nil
}

// HashName extracts the market_hash_name from a market listing URL, i.e.
// everything after "/market/listings/<appid>/".
func HashName(itemLink string) (string, error) {
	idx := strings.Index(itemLink, listingsMarker)
	if idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidLink, itemLink)
	}
	rest := itemLink[idx+len(listingsMarker):]

	slash := strings.Index(rest, "/")
	if slash < 0 || slash == len(rest)-1 {
		return "", fmt.Errorf("%w: missing item name in %q", ErrInvalidLink, itemLink)
	}
	return rest[slash+1:], nil
}

// DisplayName derives the human-readable item name from a market listing
// URL by percent-decoding its market_hash_name.
func DisplayName(itemLink string) (string, error) {
	hashName, err := HashName(itemLink)
	if err != nil {
		return "", err
	}
	name, err := url.PathUnescape(hashName)
	if err != nil {
		// Keep the raw segment rather than failing item creation on a
		// sloppy link.
		return hashName, nil
	}
	return name, nil
}

// parsePrice turns a localized price string such as "$1,234.56" into a
// decimal. The currency symbol and thousands separators are dropped. A
// comma with exactly three digits after it is a thousands separator
// ("$1,234"), otherwise it is the decimal separator ("12,34€").
func parsePrice(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	switch {
	case strings.Contains(cleaned, ".") && strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case strings.Contains(cleaned, ","):
		if idx := strings.LastIndex(cleaned, ","); len(cleaned)-idx == 4 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	}

	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed price %q", raw)
	}
	return price, nil
}
