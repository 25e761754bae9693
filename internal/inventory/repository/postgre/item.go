package postgre

import (
	"context"
	"database/sql"
	"fmt"

	repo "steaminvest/internal/inventory/repository"
	"steaminvest/internal/model"
)

const itemColumns = `id, purchase_date, item_name, item_link, cost_per_item,
	number_of_items, current_price, total_cost, total_value,
	total_return_dollar, total_return_percent`

func scanItem(row interface{ Scan(...any) error }) (model.InventoryItem, error) {
	var item model.InventoryItem
	err := row.Scan(
		&item.ID, &item.PurchaseDate, &item.ItemName, &item.ItemLink,
		&item.CostPerItem, &item.NumberOfItems, &item.CurrentPrice,
		&item.TotalCost, &item.TotalValue,
		&item.TotalReturnDollar, &item.TotalReturnPercent,
	)
	return item, err
}

// CreateItem inserts a new inventory row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.InventoryItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO inventory_items (purchase_date, item_name, item_link,
			cost_per_item, number_of_items, current_price,
			total_cost, total_value, total_return_dollar, total_return_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.PurchaseDate, opt.ItemName, opt.ItemLink,
		opt.CostPerItem, opt.NumberOfItems, opt.CurrentPrice,
		opt.TotalCost, opt.TotalValue, opt.TotalReturnDollar, opt.TotalReturnPercent,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.InventoryItem{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetItem retrieves a single item by id.
// Returns a zero-value item (ID == 0) when not found — do NOT return error
// for not-found.
func (r *implRepository) GetItem(ctx context.Context, id int64) (model.InventoryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items WHERE id = $1`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.InventoryItem{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItem"), err)
		return model.InventoryItem{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns items ordered by ascending id, optionally filtered by a
// case-insensitive name substring.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.InventoryItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM inventory_items`, itemColumns)
	var args []any
	if opt.Keyword != "" {
		query += ` WHERE item_name ILIKE '%' || $1 || '%'`
		args = append(args, opt.Keyword)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// UpdateItem rewrites all mutable fields of an item in one statement and
// returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.InventoryItem, error) {
	query := fmt.Sprintf(`
		UPDATE inventory_items
		SET purchase_date = $1, item_name = $2, cost_per_item = $3,
			number_of_items = $4, current_price = $5, total_cost = $6,
			total_value = $7, total_return_dollar = $8, total_return_percent = $9
		WHERE id = $10
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.PurchaseDate, opt.ItemName, opt.CostPerItem,
		opt.NumberOfItems, opt.CurrentPrice, opt.TotalCost,
		opt.TotalValue, opt.TotalReturnDollar, opt.TotalReturnPercent,
		opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.InventoryItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.InventoryItem{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// UpdateItemPrice writes a refreshed current price together with the
// re-derived valuation fields in one statement.
func (r *implRepository) UpdateItemPrice(ctx context.Context, opt repo.UpdatePriceOptions) (model.InventoryItem, error) {
	query := fmt.Sprintf(`
		UPDATE inventory_items
		SET current_price = $1, total_cost = $2, total_value = $3,
			total_return_dollar = $4, total_return_percent = $5
		WHERE id = $6
		RETURNING %s`, itemColumns)

	item, err := scanItem(r.db.QueryRowContext(ctx, query,
		opt.CurrentPrice, opt.TotalCost, opt.TotalValue,
		opt.TotalReturnDollar, opt.TotalReturnPercent,
		opt.ID,
	))
	if err == sql.ErrNoRows {
		return model.InventoryItem{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItemPrice"), err)
		return model.InventoryItem{}, repo.ErrFailedToUpdate
	}
	return item, nil
}

// DeleteItem removes an item by id.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM inventory_items WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
