package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"resale/internal/browse"
	"resale/internal/currency"
	"resale/internal/domain"
	"resale/internal/domain/models"
	"resale/internal/offerlists"
	"resale/internal/search"
	"resale/internal/utils"
)

type ProductOfferLists interface {
	ProductOfferLists(ctx context.Context, productID int64) ([]models.OfferList, error)
}

// BrowseService serves the browse screen: filter strings, price buckets, search and per-size quotes.
type BrowseService struct {
	Currencies *currency.Table
	Searcher   search.Searcher
	IndexBase  string
	OfferLists ProductOfferLists
	RequestID  string
}

type SearchPage struct {
	search.Result
	Sort         string `json:"sort"`
	FilterString string `json:"filter_string"`
}

type ProductHighLow struct {
	ProductID int64                  `json:"product_id"`
	Currency  string                 `json:"currency"`
	HighLow   offerlists.HighLow     `json:"high_low"`
	Sizes     []offerlists.SizeQuote `json:"sizes,omitempty"`
}

// FilterString renders the index filter expression for a selection.
func (s BrowseService) FilterString(f browse.FilterState) string {
	return browse.BuildFilterString(f)
}

// PriceOptions returns the price buckets for a currency code.
func (s BrowseService) PriceOptions(code string) ([]browse.Option, error) {
	cur, err := s.currency(code)
	if err != nil {
		return nil, err
	}
	return browse.PriceFilterOptions(cur), nil
}

// Search runs one browse page against the index picked by the sort.
func (s BrowseService) Search(ctx context.Context, p browse.SearchParams) (SearchPage, error) {
	if s.Searcher == nil {
		return SearchPage{}, domain.InternalError{Msg: "search is not configured"}
	}
	sortName := p.Sort
	if sortName == "" {
		sortName = search.DefaultSort
	}
	index, err := search.IndexName(s.IndexBase, sortName)
	if err != nil {
		return SearchPage{}, err
	}
	filters := browse.BuildFilterString(p.Filters)

	res, err := s.Searcher.Search(ctx, search.Query{Index: index, Text: p.Q, Filters: filters, Page: p.Page})
	if err != nil {
		utils.LogEvent(s.RequestID, "browse", "search_failed", err.Error())
		return SearchPage{}, domain.UnavailableError{Service: "search", Err: err}
	}
	utils.LogEvent(s.RequestID, "browse", "search",
		fmt.Sprintf("index=%s page=%d hits=%d", index, p.Page, res.NbHits))
	return SearchPage{Result: res, Sort: sortName, FilterString: filters}, nil
}

// HighLow aggregates a product's lists and offers, leaving out excludeUserID's own entries.
// With size set, only that size is quoted.
func (s BrowseService) HighLow(ctx context.Context, productID, excludeUserID int64, code, size string) (ProductHighLow, error) {
	if productID <= 0 {
		return ProductHighLow{}, domain.ValidationError{Field: "id", Msg: "invalid product id"}
	}
	cur, err := s.currency(code)
	if err != nil {
		return ProductHighLow{}, err
	}
	entries, err := s.OfferLists.ProductOfferLists(ctx, productID)
	if err != nil {
		return ProductHighLow{}, err
	}

	hl := offerlists.Aggregate(entries, excludeUserID)
	out := ProductHighLow{ProductID: productID, Currency: cur.Code, HighLow: hl}

	sizes := sizesOf(hl)
	if size = strings.TrimSpace(size); size != "" {
		sizes = []string{size}
	}
	for _, sz := range sizes {
		out.Sizes = append(out.Sizes, hl.ForSize(sz, cur))
	}
	return out, nil
}

func (s BrowseService) currency(code string) (models.Currency, error) {
	if s.Currencies == nil {
		return models.Currency{}, domain.InternalError{Msg: "currency table not loaded"}
	}
	if strings.TrimSpace(code) == "" {
		codes := s.Currencies.Codes()
		if len(codes) == 0 {
			return models.Currency{}, domain.InternalError{Msg: "currency table is empty"}
		}
		code = codes[0]
	}
	cur, ok := s.Currencies.ByCode(code)
	if !ok {
		return models.Currency{}, domain.ValidationError{Field: "currency", Msg: fmt.Sprintf("unknown currency %q", code)}
	}
	return cur, nil
}

// sizesOf lists every size with a list or an offer. Numeric sizes sort by value and come first.
func sizesOf(hl offerlists.HighLow) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range []map[string]models.OfferList{hl.Lists, hl.Offers} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	slices.SortFunc(out, compareSizes)
	return out
}

func compareSizes(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(fa, fb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
