package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const createTable = `
	CREATE TABLE IF NOT EXISTS inventory_items (
		id                   BIGSERIAL PRIMARY KEY,
		purchase_date        VARCHAR(10)    NOT NULL,
		item_name            TEXT           NOT NULL,
		item_link            TEXT           NOT NULL,
		cost_per_item        NUMERIC(20, 2) NOT NULL,
		number_of_items      BIGINT         NOT NULL,
		current_price        NUMERIC(20, 2) NOT NULL,
		total_cost           NUMERIC(20, 2) NOT NULL,
		total_value          NUMERIC(20, 2) NOT NULL,
		total_return_dollar  NUMERIC(20, 2) NOT NULL,
		total_return_percent NUMERIC(20, 2) NOT NULL
	)`

// EnsureSchema creates the inventory table when it does not exist yet.
// Called once at process start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("ensure inventory schema: %w", err)
	}
	return nil
}
