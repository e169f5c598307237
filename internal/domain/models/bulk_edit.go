package models

import "time"

// BulkEdit is the audit record of one confirmed bulk list edit.
type BulkEdit struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"user_id"`
	EditOption   string         `json:"edit_option"`
	EditValue    float64        `json:"edit_value"`
	Expiration   int            `json:"expiration"`
	CurrencyCode string         `json:"currency_code"`
	RequestID    string         `json:"request_id,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	Items        []BulkEditItem `json:"items,omitempty"`
	ListCount    int            `json:"list_count"`
}

type BulkEditItem struct {
	ID          int64   `json:"id"`
	EditID      int64   `json:"edit_id"`
	OfferListID int64   `json:"offer_list_id"`
	ProductID   int64   `json:"product_id"`
	Size        string  `json:"size"`
	OldPrice    float64 `json:"old_price"`
	NewPrice    float64 `json:"new_price"`
}
