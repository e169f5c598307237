package db

import (
	"context"
	"database/sql"
	"fmt"
)

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// HasTable reports whether table exists in the current schema. Errors read as false.
func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS bulk_list_edits (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		edit_option VARCHAR(32) NOT NULL,
		edit_value DECIMAL(14,2) NOT NULL,
		expiration INT NOT NULL DEFAULT 0,
		currency_code CHAR(3) NOT NULL,
		list_count INT NOT NULL DEFAULT 0,
		request_id VARCHAR(64) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_bulk_list_edits_user (user_id, id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS bulk_list_edit_items (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		edit_id BIGINT NOT NULL,
		offer_list_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		size VARCHAR(16) NOT NULL,
		old_price DECIMAL(14,2) NOT NULL,
		new_price DECIMAL(14,2) NOT NULL,
		KEY idx_bulk_list_edit_items_edit (edit_id),
		CONSTRAINT fk_bulk_list_edit_items_edit FOREIGN KEY (edit_id) REFERENCES bulk_list_edits(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the audit tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// NullIfEmpty stores optional strings as NULL.
func NullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
