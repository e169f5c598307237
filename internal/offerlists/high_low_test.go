package offerlists

import (
	"testing"

	"resale/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, user int64, typ, size string, price float64, instant bool) models.OfferList {
	return models.OfferList{ID: id, UserID: user, Type: typ, Size: size, Price: price, IsInstant: instant}
}

func TestAggregate(t *testing.T) {
	// newest first
	entries := []models.OfferList{
		entry(1, 10, models.OfferListSelling, "9", 200, false),
		entry(2, 11, models.OfferListSelling, "9", 180, true),
		entry(3, 12, models.OfferListSelling, "10", 250, false),
		entry(4, 13, models.OfferListBuying, "9", 150, false),
		entry(5, 14, models.OfferListBuying, "9", 160, false),
		entry(6, 15, models.OfferListBuying, "10", 120, false),
	}
	h := Aggregate(entries, 0)

	assert.Equal(t, 180.0, h.LowestListingPrice)
	assert.Equal(t, 160.0, h.HighestOfferPrice)
	assert.Equal(t, int64(2), h.Lists["9"].ID)
	assert.Equal(t, int64(3), h.Lists["10"].ID)
	assert.Equal(t, int64(2), h.InstantLists["9"].ID)
	assert.Equal(t, int64(1), h.NonInstantLists["9"].ID)
	assert.Equal(t, int64(5), h.Offers["9"].ID)
	assert.Equal(t, int64(6), h.Offers["10"].ID)
}

func TestAggregateOlderWinsTies(t *testing.T) {
	entries := []models.OfferList{
		entry(1, 10, models.OfferListSelling, "9", 200, false),
		entry(2, 11, models.OfferListSelling, "9", 200, false),
		entry(3, 12, models.OfferListBuying, "9", 150, false),
		entry(4, 13, models.OfferListBuying, "9", 150, false),
	}
	h := Aggregate(entries, 0)
	assert.Equal(t, int64(2), h.Lists["9"].ID)
	assert.Equal(t, int64(4), h.Offers["9"].ID)
}

func TestAggregateExcludesOwnEntries(t *testing.T) {
	entries := []models.OfferList{
		entry(1, 10, models.OfferListSelling, "9", 100, false),
		entry(2, 11, models.OfferListSelling, "9", 180, false),
	}
	h := Aggregate(entries, 10)
	assert.Equal(t, 180.0, h.LowestListingPrice)
	assert.Equal(t, int64(2), h.Lists["9"].ID)

	empty := Aggregate(nil, 0)
	assert.Zero(t, empty.LowestListingPrice)
	assert.Empty(t, empty.Lists)
}

func TestForSize(t *testing.T) {
	usd := models.Currency{Code: "USD", Rate: 0.74, Precision: 0.01}
	h := Aggregate([]models.OfferList{
		entry(1, 10, models.OfferListSelling, "9", 100.5, false),
		entry(2, 11, models.OfferListBuying, "9", 100.5, false),
	}, 0)

	q := h.ForSize("9", usd)
	require.NotNil(t, q.LowestList)
	require.NotNil(t, q.HighestOffer)
	assert.Equal(t, 75.0, q.LowestListPrice)
	assert.Equal(t, 74.0, q.HighestOfferPrice)

	none := h.ForSize("12", usd)
	assert.Nil(t, none.LowestList)
	assert.Zero(t, none.LowestListPrice)
}
