package browse

import (
	"testing"

	"resale/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFilterOptionsBaseCurrency(t *testing.T) {
	sgd := models.Currency{Code: "SGD", Symbol: "S$", Locale: "en-US", Rate: 1, Precision: 0.01, MaxDecimals: 2,
		FilterPrices: []float64{100, 200, 300}}

	opts := PriceFilterOptions(sgd)
	require.Len(t, opts, 4)
	assert.Equal(t, Option{Name: "Under S$ 100", Value: " < 100"}, opts[0])
	assert.Equal(t, Option{Name: "S$ 100 - S$ 200", Value: ":100 TO 200"}, opts[1])
	assert.Equal(t, Option{Name: "S$ 200 - S$ 300", Value: ":200 TO 300"}, opts[2])
	assert.Equal(t, Option{Name: "S$ 300+", Value: " > 300"}, opts[3])
}

func TestPriceFilterOptionsConvertToBase(t *testing.T) {
	usd := models.Currency{Code: "USD", Symbol: "US$", Locale: "en-US", Rate: 0.74, Precision: 0.01, MaxDecimals: 2,
		FilterPrices: []float64{100, 200}}

	opts := PriceFilterOptions(usd)
	require.Len(t, opts, 3)
	assert.Equal(t, " < 136", opts[0].Value)
	assert.Equal(t, ":135 TO 271", opts[1].Value)
	assert.Equal(t, " > 270", opts[2].Value)
}

func TestPriceFilterOptionsRupiahInMillions(t *testing.T) {
	idr := models.Currency{Code: "IDR", Symbol: "Rp", Locale: "en-US", Rate: 10000, Precision: 1000,
		FilterPrices: []float64{1_000_000, 2_000_000}}

	opts := PriceFilterOptions(idr)
	require.Len(t, opts, 3)
	assert.Equal(t, "Under Rp 1M", opts[0].Name)
	assert.Equal(t, "Rp 1M - Rp 2M", opts[1].Name)
	assert.Equal(t, "Rp 2M+", opts[2].Name)
	assert.Equal(t, ":100 TO 200", opts[1].Value)
}

func TestPriceFilterOptionsWithoutBuckets(t *testing.T) {
	opts := PriceFilterOptions(models.Currency{Code: "SGD", Symbol: "S$", Locale: "en-US", Rate: 1})
	require.Len(t, opts, 1)
	assert.Equal(t, Option{Name: "Under +", Value: ""}, opts[0])
}
