package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intconfig "resale/internal/config"
	intdb "resale/internal/db"
	"resale/internal/domain"
	"resale/internal/domain/models"
)

// BulkEditRepository stores the audit trail of confirmed bulk list edits.
type BulkEditRepository struct {
	DB *sql.DB
}

func (r BulkEditRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts the edit and its items in one transaction and returns the new id.
func (r BulkEditRepository) Create(ctx context.Context, edit models.BulkEdit, items []models.BulkEditItem) (int64, error) {
	db := r.db()
	if db == nil {
		return 0, domain.InternalError{Msg: "database not connected"}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.InternalError{Msg: "begin bulk edit", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO bulk_list_edits
			(user_id, edit_option, edit_value, expiration, currency_code, list_count, request_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		edit.UserID, edit.EditOption, edit.EditValue, edit.Expiration, edit.CurrencyCode, len(items),
		intdb.NullIfEmpty(edit.RequestID),
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "insert bulk edit", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "bulk edit id", Err: err}
	}

	for _, it := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO bulk_list_edit_items
				(edit_id, offer_list_id, product_id, size, old_price, new_price)
			VALUES (?, ?, ?, ?, ?, ?)`,
			id, it.OfferListID, it.ProductID, it.Size, it.OldPrice, it.NewPrice,
		); err != nil {
			return 0, domain.InternalError{Msg: fmt.Sprintf("insert bulk edit item %d", it.OfferListID), Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Msg: "commit bulk edit", Err: err}
	}
	return id, nil
}

// GetByID loads one edit with its items, scoped to the owning user.
func (r BulkEditRepository) GetByID(ctx context.Context, userID, id int64) (models.BulkEdit, error) {
	db := r.db()
	if db == nil {
		return models.BulkEdit{}, domain.InternalError{Msg: "database not connected"}
	}

	var e models.BulkEdit
	var requestID sql.NullString
	err := db.QueryRowContext(ctx, `
		SELECT id, user_id, edit_option, edit_value, expiration, currency_code, list_count, request_id, created_at
		FROM bulk_list_edits
		WHERE id = ? AND user_id = ?
		LIMIT 1`, id, userID).Scan(
		&e.ID, &e.UserID, &e.EditOption, &e.EditValue, &e.Expiration, &e.CurrencyCode, &e.ListCount,
		&requestID, &e.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.BulkEdit{}, domain.NotFoundError{Resource: "bulk edit", Err: err}
	}
	if err != nil {
		return models.BulkEdit{}, domain.InternalError{Msg: "load bulk edit", Err: err}
	}
	e.RequestID = requestID.String

	rows, err := db.QueryContext(ctx, `
		SELECT id, edit_id, offer_list_id, product_id, size, old_price, new_price
		FROM bulk_list_edit_items
		WHERE edit_id = ?
		ORDER BY id`, e.ID)
	if err != nil {
		return models.BulkEdit{}, domain.InternalError{Msg: "load bulk edit items", Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var it models.BulkEditItem
		if err := rows.Scan(&it.ID, &it.EditID, &it.OfferListID, &it.ProductID, &it.Size, &it.OldPrice, &it.NewPrice); err != nil {
			return models.BulkEdit{}, domain.InternalError{Msg: "scan bulk edit item", Err: err}
		}
		e.Items = append(e.Items, it)
	}
	if err := rows.Err(); err != nil {
		return models.BulkEdit{}, domain.InternalError{Msg: "load bulk edit items", Err: err}
	}
	return e, nil
}

// ListByUser returns the newest edits first, without items.
func (r BulkEditRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.BulkEdit, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(ctx, db, "bulk_list_edits") {
		return []models.BulkEdit{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, edit_option, edit_value, expiration, currency_code, list_count, request_id, created_at
		FROM bulk_list_edits
		WHERE user_id = ?
		ORDER BY id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, domain.InternalError{Msg: "list bulk edits", Err: err}
	}
	defer rows.Close()

	out := []models.BulkEdit{}
	for rows.Next() {
		var e models.BulkEdit
		var requestID sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.EditOption, &e.EditValue, &e.Expiration, &e.CurrencyCode,
			&e.ListCount, &requestID, &e.CreatedAt); err != nil {
			return nil, domain.InternalError{Msg: "scan bulk edit", Err: err}
		}
		e.RequestID = requestID.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "list bulk edits", Err: err}
	}
	return out, nil
}
