package http

import (
	"github.com/shopspring/decimal"

	"steaminvest/internal/inventory"
	"steaminvest/internal/model"
)

// --- Request DTOs ---

// createReq deliberately leaves cost and quantity unconstrained here: a cost
// of zero is legal (drops are free), so validation lives in the use case.
type createReq struct {
	ItemLink      string          `json:"item_link" binding:"required,url"`
	CostPerItem   decimal.Decimal `json:"cost_per_item"`
	NumberOfItems int64           `json:"number_of_items"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		ItemLink:      r.ItemLink,
		CostPerItem:   r.CostPerItem,
		NumberOfItems: r.NumberOfItems,
	}
}

// ---

type searchReq struct {
	Keyword string `form:"keyword"`
}

func (r searchReq) validate() error { return nil }

// ---

// updateReq is a partial update: absent fields stay untouched.
type updateReq struct {
	ID            int64            `json:"-"` // populated from URI param
	ItemName      *string          `json:"item_name"       binding:"omitempty,min=1,max=255"`
	CostPerItem   *decimal.Decimal `json:"cost_per_item"   binding:"omitempty"`
	NumberOfItems *int64           `json:"number_of_items" binding:"omitempty"`
	CurrentPrice  *decimal.Decimal `json:"current_price"   binding:"omitempty"`
	PurchaseDate  *string          `json:"purchase_date"   binding:"omitempty"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		ID:            r.ID,
		ItemName:      r.ItemName,
		CostPerItem:   r.CostPerItem,
		NumberOfItems: r.NumberOfItems,
		CurrentPrice:  r.CurrentPrice,
		PurchaseDate:  r.PurchaseDate,
	}
}

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

// Money fields serialize as fixed two-decimal strings so clients never see
// float artifacts.
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

type createResp struct {
	Item             itemResp `json:"item"`
	PriceUnavailable bool     `json:"price_unavailable"`
}

func (h *handler) newCreateResp(out inventory.CreateItemOutput) createResp {
	return createResp{
		Item:             newItemResp(out.Item),
		PriceUnavailable: out.PriceUnavailable,
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out inventory.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items, Count: out.Count}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out inventory.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out inventory.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type deleteResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDeleteResp(out inventory.DeleteItemOutput) deleteResp {
	return deleteResp{Item: newItemResp(out.Item)}
}

type statsResp struct {
	Count              int    `json:"count"`
	TotalCost          string `json:"total_cost"`
	TotalValue         string `json:"total_value"`
	TotalReturnDollar  string `json:"total_return_dollar"`
	TotalReturnPercent string `json:"total_return_percent"`
}

func (h *handler) newStatsResp(out inventory.StatsOutput) statsResp {
	return statsResp{
		Count:              out.Count,
		TotalCost:          out.TotalCost.StringFixed(2),
		TotalValue:         out.TotalValue.StringFixed(2),
		TotalReturnDollar:  out.TotalReturnDollar.StringFixed(2),
		TotalReturnPercent: out.TotalReturnPercent.StringFixed(2),
	}
}
