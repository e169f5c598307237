package services

import (
	"context"
	"testing"

	"resale/internal/currency"
	"resale/internal/domain/models"
	"resale/internal/marketplace"
	"resale/internal/search"

	"github.com/stretchr/testify/require"
)

const testCurrencies = `
currencies:
  - id: 1
    name: Singapore Dollar
    code: SGD
    symbol: S$
    locale: en-SG
    rate: 1
    min_offer_price: 20
    min_list_price: 20
    offer_step: 1
    list_step: 1
    max_decimals: 2
    precision: 1
    filter_prices: [100, 200, 300]
  - id: 9
    name: Euro
    code: EUR
    symbol: "€"
    locale: de-DE
    rate: 0.7
    min_offer_price: 15
    min_list_price: 15
    offer_step: 1
    list_step: 1
    max_decimals: 2
    precision: 1
    filter_prices: [50, 100]
`

func testTable(t *testing.T) *currency.Table {
	t.Helper()
	table, err := currency.ParseTable([]byte(testCurrencies))
	require.NoError(t, err)
	return table
}

func testCurrency(t *testing.T, code string) models.Currency {
	t.Helper()
	cur, ok := testTable(t).ByCode(code)
	require.True(t, ok)
	return cur
}

type fakeGateway struct {
	lists    []models.OfferList
	listErr  error
	editErr  error
	gotIDs   []int64
	gotToken string
	edits    []marketplace.EditListsRequest
}

func (f *fakeGateway) CurrentLists(_ context.Context, token string, ids []int64) ([]models.OfferList, error) {
	f.gotToken = token
	f.gotIDs = ids
	return f.lists, f.listErr
}

func (f *fakeGateway) EditLists(_ context.Context, _ string, req marketplace.EditListsRequest) error {
	f.edits = append(f.edits, req)
	return f.editErr
}

func (f *fakeGateway) ProductOfferLists(_ context.Context, _ int64) ([]models.OfferList, error) {
	return f.lists, f.listErr
}

type fakeEditStore struct {
	created []models.BulkEdit
	items   [][]models.BulkEditItem
	err     error
}

func (f *fakeEditStore) Create(_ context.Context, e models.BulkEdit, items []models.BulkEditItem) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, e)
	f.items = append(f.items, items)
	return int64(len(f.created)), nil
}

func (f *fakeEditStore) GetByID(_ context.Context, _, id int64) (models.BulkEdit, error) {
	return models.BulkEdit{ID: id}, nil
}

func (f *fakeEditStore) ListByUser(_ context.Context, _ int64, _ int) ([]models.BulkEdit, error) {
	return f.created, nil
}

type fakeSearcher struct {
	got search.Query
	err error
}

func (f *fakeSearcher) Search(_ context.Context, q search.Query) (search.Result, error) {
	f.got = q
	if f.err != nil {
		return search.Result{}, f.err
	}
	return search.Result{Index: q.Index, NbHits: 3, Page: q.Page}, nil
}
