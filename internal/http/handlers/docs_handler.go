package handlers

import (
	"net/http"

	"resale/internal/http/middleware"
	"resale/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/me/bulk-list/edits/:id/summary returns the edit summary PDF (inline).
func GetBulkEditSummaryPDF(c *gin.Context) {
	editID, ok := paramID(c, "id", "invalid_edit_id")
	if !ok {
		return
	}
	d := current()
	if d.Edits == nil {
		respondError(c, http.StatusServiceUnavailable, "history_unavailable", "edit history is not configured", nil)
		return
	}

	svc := services.DocsService{
		Edits:      d.Edits,
		Currencies: d.Currencies,
		RequestID:  middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.BulkEditSummary(c.Request.Context(), seller(c), editID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
