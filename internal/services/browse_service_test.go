package services

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"resale/internal/browse"
	"resale/internal/domain"
	"resale/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseSearchResolvesIndexAndFilters(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := BrowseService{Searcher: searcher, IndexBase: "products"}

	params, err := browse.ParseSearchParams(url.Values{
		"q":      {" jordan "},
		"sort":   {"priceLowToHigh"},
		"page":   {"2"},
		"gender": {"men"},
	})
	require.NoError(t, err)

	page, err := svc.Search(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "products-price_low_to_high", searcher.got.Index)
	assert.Equal(t, "jordan", searcher.got.Text)
	assert.Equal(t, 2, searcher.got.Page)
	assert.Equal(t, browse.BuildFilterString(params.Filters), searcher.got.Filters)
	assert.Equal(t, searcher.got.Filters, page.FilterString)
	assert.Equal(t, "priceLowToHigh", page.Sort)
	assert.Equal(t, 3, page.NbHits)
}

func TestBrowseSearchDefaultsAndUnknownSort(t *testing.T) {
	searcher := &fakeSearcher{}
	svc := BrowseService{Searcher: searcher, IndexBase: "products"}

	page, err := svc.Search(context.Background(), browse.SearchParams{Filters: browse.DefaultFilters()})
	require.NoError(t, err)
	assert.Equal(t, "products", searcher.got.Index)
	assert.Equal(t, "search", page.Sort)

	_, err = svc.Search(context.Background(), browse.SearchParams{Sort: "cheapest"})
	assert.True(t, domain.IsValidation(err))

	_, err = BrowseService{}.Search(context.Background(), browse.SearchParams{})
	assert.True(t, domain.IsInternal(err))
}

func TestBrowseSearchIndexFailureIsUnavailable(t *testing.T) {
	svc := BrowseService{Searcher: &fakeSearcher{err: errors.New("dial tcp: timeout")}, IndexBase: "products"}

	_, err := svc.Search(context.Background(), browse.SearchParams{Filters: browse.DefaultFilters()})
	require.True(t, domain.IsUnavailable(err), "got %v", err)
	assert.Equal(t, "search unavailable", err.Error())
}

func TestBrowsePriceOptions(t *testing.T) {
	svc := BrowseService{Currencies: testTable(t)}

	opts, err := svc.PriceOptions("sgd")
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	opts, err = svc.PriceOptions("")
	require.NoError(t, err)
	assert.Len(t, opts, 4)

	_, err = svc.PriceOptions("XXX")
	assert.True(t, domain.IsValidation(err))
}

func TestBrowseHighLowExcludesOwnEntries(t *testing.T) {
	gw := &fakeGateway{lists: []models.OfferList{
		{ID: 4, UserID: 7, Type: models.OfferListSelling, Size: "10", Price: 150},
		{ID: 3, UserID: 3, Type: models.OfferListBuying, Size: "10", Price: 80},
		{ID: 2, UserID: 2, Type: models.OfferListSelling, Size: "9", Price: 90},
		{ID: 1, UserID: 1, Type: models.OfferListSelling, Size: "9", Price: 100},
	}}
	svc := BrowseService{Currencies: testTable(t), OfferLists: gw}

	out, err := svc.HighLow(context.Background(), 55, 7, "SGD", "")
	require.NoError(t, err)
	assert.Equal(t, 90.0, out.HighLow.LowestListingPrice)
	assert.Equal(t, 80.0, out.HighLow.HighestOfferPrice)
	require.Len(t, out.Sizes, 2)
	assert.Equal(t, "9", out.Sizes[0].Size)
	assert.Equal(t, 90.0, out.Sizes[0].LowestListPrice)
	assert.Equal(t, "10", out.Sizes[1].Size)
	assert.Equal(t, 80.0, out.Sizes[1].HighestOfferPrice)
	assert.Zero(t, out.Sizes[1].LowestListPrice)

	one, err := svc.HighLow(context.Background(), 55, 0, "SGD", "10")
	require.NoError(t, err)
	require.Len(t, one.Sizes, 1)
	assert.Equal(t, 150.0, one.Sizes[0].LowestListPrice)

	_, err = svc.HighLow(context.Background(), 0, 0, "SGD", "")
	assert.True(t, domain.IsValidation(err))
}

func TestCompareSizes(t *testing.T) {
	assert.Negative(t, compareSizes("9", "10"))
	assert.Negative(t, compareSizes("10.5", "M"))
	assert.Positive(t, compareSizes("XL", "L"))
	assert.Zero(t, compareSizes("9.0", "9"))
}
