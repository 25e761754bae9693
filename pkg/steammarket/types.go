package steammarket

// priceOverviewResponse is the body of GET /market/priceoverview/.
type priceOverviewResponse struct {
	Success     bool   `json:"success"`
	LowestPrice string `json:"lowest_price"`
	MedianPrice string `json:"median_price"`
	Volume      string `json:"volume"`
}
