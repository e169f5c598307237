package handlers

import (
	"net/http"
	"strconv"

	"resale/internal/browse"
	"resale/internal/http/middleware"
	"resale/internal/services"

	"github.com/gin-gonic/gin"
)

func browseService(c *gin.Context) services.BrowseService {
	d := current()
	return services.BrowseService{
		Currencies: d.Currencies,
		Searcher:   d.Searcher,
		IndexBase:  d.IndexBase,
		OfferLists: d.Marketplace,
		RequestID:  middleware.GetRequestID(c),
	}
}

type filterStringRequest struct {
	Filters browse.FilterState `json:"filters"`
	// Defaults lays Filters over the default selection first.
	Defaults bool `json:"defaults"`
}

// POST /api/browse/filter-string
func BuildFilterString(c *gin.Context) {
	var req filterStringRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	filters := req.Filters
	if req.Defaults {
		merged, err := browse.DefaultFilters().Merge(req.Filters)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		filters = merged
	}
	c.JSON(http.StatusOK, gin.H{
		"filters":       filters,
		"filter_string": browseService(c).FilterString(filters),
	})
}

// GET /api/browse/defaults
func DefaultFilters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"filters": browse.DefaultFilters()})
}

// GET /api/browse/price-options?currency=SGD
func PriceOptions(c *gin.Context) {
	code := c.Query("currency")
	opts, err := browseService(c).PriceOptions(code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"currency": code, "options": opts})
}

// GET /api/browse/search?q=&sort=&page=&<filter keys>
func Search(c *gin.Context) {
	params, err := browse.ParseSearchParams(c.Request.URL.Query())
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid query", err)
		return
	}
	page, err := browseService(c).Search(c.Request.Context(), params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/products/:id/high-low?currency=&size=&exclude_user_id=
func ProductHighLow(c *gin.Context) {
	productID, ok := paramID(c, "id", "invalid_product_id")
	if !ok {
		return
	}
	var exclude int64
	if raw := c.Query("exclude_user_id"); raw != "" {
		var err error
		exclude, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_user_id", "invalid exclude_user_id", nil)
			return
		}
	}
	if current().Marketplace == nil {
		respondError(c, http.StatusServiceUnavailable, "marketplace_unavailable", "marketplace is not configured", nil)
		return
	}

	out, err := browseService(c).HighLow(c.Request.Context(), productID, exclude, c.Query("currency"), c.Query("size"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
