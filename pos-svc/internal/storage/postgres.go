package storage

import (
	"context"
	"database/sql"
	"fmt"

	"overcooked-pos/pos-svc/internal/domain"
)

// PostgresArchive appends paid orders to Postgres for bookkeeping. The POS
// never reads them back.
type PostgresArchive struct {
	DB *sql.DB
}

func NewPostgresArchive(db *sql.DB) *PostgresArchive {
	return &PostgresArchive{DB: db}
}

func (r *PostgresArchive) ArchiveOrder(ctx context.Context, entry domain.OrderHistoryEntry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("archive order %s: %w", entry.ID, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO order_history (id, table_id, table_number, total, created_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`, entry.ID, entry.TableID, entry.TableNumber, entry.Total, entry.CreatedAt, entry.PaidAt)
	if err != nil {
		return fmt.Errorf("archive order %s: %w", entry.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// already archived by an earlier attempt
		return tx.Commit()
	}

	for _, line := range entry.Items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_history_items (history_id, line_id, inventory_item_id, name, category, quantity, price, total)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, entry.ID, line.ID, line.InventoryItemID, line.Name, line.Category, line.Quantity, line.Price, line.Total); err != nil {
			return fmt.Errorf("archive order %s line %s: %w", entry.ID, line.ID, err)
		}
	}

	return tx.Commit()
}

func (r *PostgresArchive) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS order_history (
			id TEXT PRIMARY KEY,
			table_id TEXT NOT NULL,
			table_number INTEGER NOT NULL DEFAULT 0,
			total NUMERIC(12, 2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			paid_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_history_items (
			history_id TEXT NOT NULL REFERENCES order_history (id) ON DELETE CASCADE,
			line_id TEXT NOT NULL,
			inventory_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL,
			price NUMERIC(12, 2) NOT NULL,
			total NUMERIC(12, 2) NOT NULL,
			PRIMARY KEY (history_id, line_id)
		)`,
		"CREATE INDEX IF NOT EXISTS order_history_paid_at_idx ON order_history (paid_at)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}
