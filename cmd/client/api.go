package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// apiClient talks to the SteamInvest API and unwraps its response envelope.
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		base: serverAddr,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// envelope mirrors the server's response wrapper.
type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func (c *apiClient) do(ctx context.Context, method, p string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+p, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if env.ErrorCode != 0 {
		return fmt.Errorf("%s", env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decoding response data: %w", err)
		}
	}
	return nil
}

func queryEscape(s string) string { return url.QueryEscape(s) }

// wsURL rewrites the API address into the websocket endpoint.
func wsURL(p string) (string, error) {
	u, err := url.Parse(serverAddr)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = p
	return u.String(), nil
}

// --- API payloads ---

type item struct {
	ID            int64  `json:"id"`
	PurchaseDate  string `json:"purchase_date"`
	ItemName      string `json:"item_name"`
	ItemLink      string `json:"item_link"`
	CostPerItem   string `json:"cost_per_item"`
	NumberOfItems int64  `json:"number_of_items"`
	CurrentPrice  string `json:"current_price"`

	TotalCost          string `json:"total_cost"`
	TotalValue         string `json:"total_value"`
	TotalReturnDollar  string `json:"total_return_dollar"`
	TotalReturnPercent string `json:"total_return_percent"`
}

type itemData struct {
	Item             item `json:"item"`
	PriceUnavailable bool `json:"price_unavailable"`
}

type listData struct {
	Items []item `json:"items"`
	Count int    `json:"count"`
}

type statsData struct {
	Count              int    `json:"count"`
	TotalCost          string `json:"total_cost"`
	TotalValue         string `json:"total_value"`
	TotalReturnDollar  string `json:"total_return_dollar"`
	TotalReturnPercent string `json:"total_return_percent"`
}

type progressEvent struct {
	Progress   int    `json:"progress"`
	TotalItems int    `json:"total_items"`
	ItemName   string `json:"item_name"`
	Message    string `json:"message"`
	Failed     bool   `json:"failed"`
}

type statusData struct {
	Status  string `json:"status"`
	LastRun *struct {
		Total     int `json:"total"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	} `json:"last_run"`
}
