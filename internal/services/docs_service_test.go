package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"resale/internal/domain"
	"resale/internal/domain/models"
)

func TestDocsServiceBulkEditSummary(t *testing.T) {
	loader := func(_ context.Context, userID, editID int64) (models.BulkEdit, error) {
		if userID != 7 {
			return models.BulkEdit{}, domain.NotFoundError{Resource: "bulk edit"}
		}
		return models.BulkEdit{
			ID:           editID,
			UserID:       userID,
			EditOption:   "increaseByValue",
			EditValue:    10,
			Expiration:   30,
			CurrencyCode: "EUR",
			CreatedAt:    time.Now(),
			Items: []models.BulkEditItem{
				{OfferListID: 1, ProductID: 100, Size: "9", OldPrice: 120, NewPrice: 130},
				{OfferListID: 2, ProductID: 101, Size: "10.5", OldPrice: 99.5, NewPrice: 109.5},
			},
		}, nil
	}

	svc := DocsService{Currencies: testTable(t), Loader: loader}

	pdf, filename, err := svc.BulkEditSummary(context.Background(), Seller{UserID: 7}, 42)
	if err != nil {
		t.Fatalf("BulkEditSummary returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("expected PDF output")
	}
	if filename != "BULK_EDIT_42_EUR.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}

	if _, _, err := svc.BulkEditSummary(context.Background(), Seller{UserID: 8}, 42); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for other seller, got %v", err)
	}
}

func TestDocsServiceUnknownCurrencyStillRenders(t *testing.T) {
	svc := DocsService{Loader: func(_ context.Context, _, id int64) (models.BulkEdit, error) {
		return models.BulkEdit{ID: id, EditOption: "setToValue", EditValue: 50, CurrencyCode: "XYZ"}, nil
	}}
	pdf, _, err := svc.BulkEditSummary(context.Background(), Seller{UserID: 1}, 3)
	if err != nil || len(pdf) == 0 {
		t.Fatalf("expected pdf, got err=%v", err)
	}
}
