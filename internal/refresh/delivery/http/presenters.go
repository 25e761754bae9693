package http

import (
	"steaminvest/internal/model"
	"steaminvest/internal/refresh"
	"steaminvest/pkg/response"
)

// --- Response DTOs ---

type itemResp struct {
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

func newItemResp(item model.InventoryItem) itemResp {
	return itemResp{
		ID:            item.ID,
		PurchaseDate:  item.PurchaseDate,
		ItemName:      item.ItemName,
		ItemLink:      item.ItemLink,
		CostPerItem:   item.CostPerItem.StringFixed(2),
		NumberOfItems: item.NumberOfItems,
		CurrentPrice:  item.CurrentPrice.StringFixed(2),

		TotalCost:          item.TotalCost.StringFixed(2),
		TotalValue:         item.TotalValue.StringFixed(2),
		TotalReturnDollar:  item.TotalReturnDollar.StringFixed(2),
		TotalReturnPercent: item.TotalReturnPercent.StringFixed(2),
	}
}

type refreshOneResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newRefreshOneResp(out refresh.RefreshOneOutput) refreshOneResp {
	return refreshOneResp{Item: newItemResp(out.Item)}
}

type startResp struct {
	Status refresh.Status `json:"status"`
}

type lastRunResp struct {
	Total      int               `json:"total"`
	Succeeded  int               `json:"succeeded"`
	Failed     int               `json:"failed"`
	StartedAt  response.DateTime `json:"started_at"`
	FinishedAt response.DateTime `json:"finished_at"`
}

type statusResp struct {
	Status  refresh.Status `json:"status"`
	LastRun *lastRunResp   `json:"last_run,omitempty"`
}

func (h *handler) newStatusResp(out refresh.StatusOutput) statusResp {
	resp := statusResp{Status: out.Status}
	if out.LastRun != nil {
		resp.LastRun = &lastRunResp{
			Total:      out.LastRun.Total,
			Succeeded:  out.LastRun.Succeeded,
			Failed:     out.LastRun.Failed,
			StartedAt:  response.DateTime(out.LastRun.StartedAt),
			FinishedAt: response.DateTime(out.LastRun.FinishedAt),
		}
	}
	return resp
}
