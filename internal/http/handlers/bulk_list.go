package handlers

import (
	"net/http"
	"strconv"

	"resale/internal/http/middleware"
	"resale/internal/services"

	"github.com/gin-gonic/gin"
)

func seller(c *gin.Context) services.Seller {
	return services.Seller{UserID: middleware.GetUserID(c), Token: middleware.GetToken(c)}
}

func bulkListService(c *gin.Context) (services.BulkListService, bool) {
	d := current()
	if d.Marketplace == nil {
		respondError(c, http.StatusServiceUnavailable, "marketplace_unavailable", "marketplace is not configured", nil)
		return services.BulkListService{}, false
	}
	return services.BulkListService{
		Lists:     d.Marketplace,
		Edits:     d.Edits,
		RequestID: middleware.GetRequestID(c),
	}, true
}

// POST /api/me/bulk-list/preview
func PreviewBulkList(c *gin.Context) {
	var req services.BulkListRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc, ok := bulkListService(c)
	if !ok {
		return
	}
	preview, err := svc.Preview(c.Request.Context(), seller(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// PUT /api/me/bulk-list
func ConfirmBulkList(c *gin.Context) {
	var req services.BulkListRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc, ok := bulkListService(c)
	if !ok {
		return
	}
	res, err := svc.Confirm(c.Request.Context(), seller(c), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/me/bulk-list/edits?limit=
func ListBulkEdits(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	svc := services.BulkListService{Edits: current().Edits, RequestID: middleware.GetRequestID(c)}
	edits, err := svc.History(c.Request.Context(), seller(c), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"edits": edits})
}
